package checkout

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"balajee_back_end/internal/cart"
	"balajee_back_end/internal/models"
)

// PaymentConfirmer confirme l'acompte de réservation avant toute écriture.
// Un refus se signale par ErrPaymentDeclined (éventuellement enveloppé).
type PaymentConfirmer interface {
	Confirm(ctx context.Context, method string, amount float64, orderID string) error
}

// OrderWriter persiste la commande en deux écritures liées : l'en-tête
// d'abord, puis les articles.
type OrderWriter interface {
	InsertHeader(ctx context.Context, order models.Order) error
	InsertItems(ctx context.Context, orderID string, items []models.OrderItem) error
}

// Notifier prévient le vendeur d'une commande placée. L'implémentation doit
// être fire-and-forget : son résultat n'influence jamais la soumission.
type Notifier interface {
	OrderPlaced(order models.Order)
}

// CartClearer vide le panier de l'utilisateur après validation
type CartClearer interface {
	Clear(ctx context.Context, userID string) error
}

// Coordinator enchaîne paiement → en-tête → articles → notification,
// strictement en séquence et sans retry automatique (le retry est un
// re-submit manuel de l'utilisateur).
type Coordinator struct {
	payments PaymentConfirmer
	orders   OrderWriter
	notifier Notifier
	carts    CartClearer

	// Acompte fixe de réservation (₹), le solde se règle en showroom
	DepositAmount float64

	now        func() time.Time
	newOrderID func() string
}

func NewCoordinator(payments PaymentConfirmer, orders OrderWriter, notifier Notifier, carts CartClearer, deposit float64) *Coordinator {
	return &Coordinator{
		payments:      payments,
		orders:        orders,
		notifier:      notifier,
		carts:         carts,
		DepositAmount: deposit,
		now:           time.Now,
		newOrderID:    NewOrderID,
	}
}

// NewOrderID génère une référence courte de type BT-483920
func NewOrderID() string {
	return fmt.Sprintf("BT-%d", rand.Intn(900000)+100000)
}

// Submit valide la commande complète. En cas d'échec (paiement refusé ou
// écriture ratée) le panier reste intact et la session reste à l'étape
// paiement ; en cas de succès le panier est vidé et la session passe en
// Success. Le drapeau Processing interdit deux soumissions simultanées
// pour la même session.
func (co *Coordinator) Submit(ctx context.Context, userID string, items []models.CartItem, session *Session) (*models.Order, error) {
	if session.Succeeded {
		return nil, ErrAlreadySucceeded
	}
	if session.Processing {
		return nil, ErrAlreadyProcessing
	}
	if session.Step != StepPayment {
		return nil, &ValidationError{Step: session.Step, Fields: []string{"step"}}
	}
	if err := session.ValidateStep(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	session.Processing = true
	defer func() { session.Processing = false }()

	orderID := co.newOrderID()

	// 1. Confirmation du paiement (PhonePe / carte) avant toute écriture.
	//    Le paiement au showroom ne demande aucune confirmation préalable.
	if err := co.payments.Confirm(ctx, session.PaymentMethod, co.DepositAmount, orderID); err != nil {
		log.Printf("❌ Paiement refusé pour %s (%s): %v", orderID, session.PaymentMethod, err)
		return nil, err
	}

	order := models.Order{
		ID:             orderID,
		UserID:         userID,
		Customer:       session.Customer,
		Total:          cart.Total(items),
		Status:         models.OrderStatusProcessing,
		PaymentMethod:  session.PaymentMethod,
		ShippingMethod: session.ShippingMethod,
		CreatedAt:      co.now(),
	}
	for _, item := range items {
		order.Items = append(order.Items, models.OrderItem{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Variant:   variantOf(item),
		})
	}

	// 2. En-tête puis articles, deux écritures séparées
	if err := co.orders.InsertHeader(ctx, order); err != nil {
		return nil, &PersistenceError{Write: "header", Err: err}
	}
	if err := co.orders.InsertItems(ctx, orderID, order.Items); err != nil {
		// L'en-tête est déjà écrit : la commande existe sans ses articles.
		// Pas de suppression compensatoire, on le signale bruyamment.
		log.Printf("⚠️ Commande %s : en-tête écrit mais articles manquants — incohérence à corriger manuellement", orderID)
		return nil, &PersistenceError{Write: "items", Err: err}
	}

	// 3. Notification vendeur, jamais bloquante
	co.notifier.OrderPlaced(order)

	// 4. Panier vidé, état terminal. Un échec du vidage ne remet pas en
	//    cause la commande déjà persistée.
	if err := co.carts.Clear(ctx, userID); err != nil {
		log.Printf("⚠️ Échec vidage panier de %s après commande %s: %v", userID, orderID, err)
	}
	session.MarkSuccess(orderID)

	log.Printf("✅ Commande %s validée (%.2f₹, %d articles) pour %s", orderID, order.Total, len(order.Items), userID)
	return &order, nil
}

// variantOf concatène couleur et taille pour la ligne de commande
func variantOf(item models.CartItem) string {
	parts := []string{}
	if item.SelectedColor != "" {
		parts = append(parts, item.SelectedColor)
	}
	if item.SelectedSize != "" {
		parts = append(parts, item.SelectedSize)
	}
	return strings.Join(parts, ", ")
}
