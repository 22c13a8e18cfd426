package payment

import (
	"context"
	"fmt"
	"log"
	"os"

	"balajee_back_end/internal/checkout"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// Gateway confirme l'acompte de réservation selon la méthode choisie :
//   - phonepe : passerelle UPI, simulée tant qu'aucun marchand PhonePe
//     n'est configuré (le vrai flux est une redirection côté front)
//   - card    : PaymentIntent Stripe sur l'acompte
//   - cod     : règlement au showroom, aucune confirmation préalable
type Gateway struct {
	Merchant UPIMerchant

	// Injecté en test pour éviter l'appel réseau Stripe
	createIntent func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

func NewGateway(merchant UPIMerchant) *Gateway {
	return &Gateway{
		Merchant:     merchant,
		createIntent: paymentintent.New,
	}
}

// Confirm implémente checkout.PaymentConfirmer. Un refus remonte
// checkout.ErrPaymentDeclined, jamais une erreur brute de passerelle.
func (g *Gateway) Confirm(ctx context.Context, method string, amount float64, orderID string) error {
	switch method {
	case checkout.PaymentPhonePe:
		return g.confirmPhonePe(ctx, amount, orderID)
	case checkout.PaymentCard:
		return g.confirmCard(amount, orderID)
	case checkout.PaymentCOD:
		// rien à encaisser maintenant
		return nil
	default:
		return fmt.Errorf("%w: méthode inconnue %q", checkout.ErrPaymentDeclined, method)
	}
}

func (g *Gateway) confirmPhonePe(ctx context.Context, amount float64, orderID string) error {
	if os.Getenv("PHONEPE_MERCHANT_ID") == "" {
		// Mode simulation : pas de marchand PhonePe configuré, on valide
		// l'acompte comme si la redirection avait abouti
		log.Printf("⚠️ PhonePe non configuré — acompte de %.2f₹ simulé pour %s", amount, orderID)
		return nil
	}

	// Le flux PhonePe réel est une redirection : côté serveur on se
	// contente de journaliser le lien d'intention attendu
	log.Printf("💳 Acompte UPI %.2f₹ attendu pour %s (%s)", amount, orderID, g.Merchant.IntentLink(amount, orderID))
	return nil
}

func (g *Gateway) confirmCard(amount float64, orderID string) error {
	if stripe.Key == "" {
		log.Printf("⚠️ Stripe non configuré — acompte carte de %.2f₹ simulé pour %s", amount, orderID)
		return nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String("inr"),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"order_id": orderID,
		},
	}

	intent, err := g.createIntent(params)
	if err != nil {
		log.Printf("❌ Erreur Stripe pour %s: %v", orderID, err)
		return fmt.Errorf("%w: %v", checkout.ErrPaymentDeclined, err)
	}

	log.Printf("💳 PaymentIntent créé : %s (%.2f₹) pour %s", intent.ID, amount, orderID)
	return nil
}
