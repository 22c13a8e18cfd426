package checkout

import (
	"context"
	"errors"
	"net/http"

	"balajee_back_end/internal/cart"
	chk "balajee_back_end/internal/checkout"
	"balajee_back_end/internal/database"
	"balajee_back_end/internal/models"
	"balajee_back_end/internal/notify"
	"balajee_back_end/internal/orders"
	"balajee_back_end/internal/payment"

	"github.com/gin-gonic/gin"
)

// Acompte fixe de réservation (₹), le solde se règle à la livraison ou en
// showroom
const DepositAmount = 2000

func sessionStore() *chk.SessionStore {
	return chk.NewSessionStore(database.Redis)
}

func coordinator() *chk.Coordinator {
	return chk.NewCoordinator(
		payment.NewGateway(payment.MerchantFromEnv()),
		orders.NewScyllaRepository(),
		notify.NewTelegramSink(),
		cart.NewStore(database.Redis),
		DepositAmount,
	)
}

//
// 💳 POST /api/checkout/start : (ré)ouvre le tunnel de commande
//
func StartCheckout(c *gin.Context) {
	userID := c.GetString("user_id")

	session := chk.NewSession()
	// L'email vient du compte, pas du formulaire
	if email, ok := c.Get("email"); ok {
		session.Customer.Email, _ = email.(string)
	}

	if err := sessionStore().Save(c.Request.Context(), userID, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création session"})
		return
	}

	c.JSON(http.StatusOK, session)
}

//
// 💳 GET /api/checkout : état courant du tunnel
//
func GetCheckout(c *gin.Context) {
	userID := c.GetString("user_id")

	session, err := sessionStore().Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture session"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucune session de commande en cours"})
		return
	}

	c.JSON(http.StatusOK, session)
}

//
// 💳 PUT /api/checkout : renseigne les champs de l'étape courante
//
func UpdateCheckout(c *gin.Context) {
	userID := c.GetString("user_id")

	store := sessionStore()
	session, err := store.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture session"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucune session de commande en cours"})
		return
	}
	if session.Succeeded {
		c.JSON(http.StatusConflict, gin.H{"error": "Commande déjà validée", "order_id": session.OrderID})
		return
	}

	var input struct {
		Customer       *models.CustomerDetails `json:"customer"`
		ShippingMethod *string                 `json:"shipping_method"`
		PaymentMethod  *string                 `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Customer != nil {
		email := session.Customer.Email // figé à l'ouverture
		session.Customer = *input.Customer
		session.Customer.Email = email
	}
	if input.ShippingMethod != nil {
		session.ShippingMethod = *input.ShippingMethod
	}
	if input.PaymentMethod != nil {
		session.PaymentMethod = *input.PaymentMethod
	}

	if err := store.Save(c.Request.Context(), userID, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}

	c.JSON(http.StatusOK, session)
}

//
// 💳 POST /api/checkout/advance : étape suivante (validation incluse)
//
func AdvanceCheckout(c *gin.Context) {
	userID := c.GetString("user_id")

	store := sessionStore()
	session, err := store.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture session"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucune session de commande en cours"})
		return
	}

	if err := session.Advance(); err != nil {
		var vErr *chk.ValidationError
		switch {
		case errors.Is(err, chk.ErrSubmitRequired):
			c.JSON(http.StatusConflict, gin.H{"error": "Dernière étape atteinte, utilisez /submit"})
		case errors.Is(err, chk.ErrAlreadySucceeded):
			c.JSON(http.StatusConflict, gin.H{"error": "Commande déjà validée", "order_id": session.OrderID})
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Champs manquants ou invalides",
				"step":   vErr.Step.String(),
				"fields": vErr.Fields,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur progression"})
		}
		return
	}

	if err := store.Save(c.Request.Context(), userID, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}

	c.JSON(http.StatusOK, session)
}

//
// 💳 POST /api/checkout/submit : soumission finale de la commande
//
func SubmitCheckout(c *gin.Context) {
	userID := c.GetString("user_id")

	store := sessionStore()
	session, err := store.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture session"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucune session de commande en cours"})
		return
	}

	// Verrou inter-requêtes : chaque requête travaille sur sa propre copie de
	// la session, seul un SETNX en Redis empêche deux soumissions simultanées
	locked, err := store.AcquireSubmitLock(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur verrou soumission"})
		return
	}
	if !locked {
		c.JSON(http.StatusConflict, gin.H{"error": "Soumission déjà en cours"})
		return
	}
	// Contexte neuf : le verrou doit tomber même si le client a raccroché
	defer store.ReleaseSubmitLock(context.Background(), userID)

	items, err := cart.NewStore(database.Redis).Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	order, err := coordinator().Submit(c.Request.Context(), userID, items, session)

	// Persister l'issue (Succeeded, OrderID) avant de répondre
	if saveErr := store.Save(c.Request.Context(), userID, session); saveErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}

	if err != nil {
		var vErr *chk.ValidationError
		var pErr *chk.PersistenceError
		switch {
		case errors.Is(err, chk.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		case errors.Is(err, chk.ErrPaymentDeclined):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Paiement refusé, réessayez"})
		case errors.Is(err, chk.ErrAlreadyProcessing):
			c.JSON(http.StatusConflict, gin.H{"error": "Soumission déjà en cours"})
		case errors.Is(err, chk.ErrAlreadySucceeded):
			c.JSON(http.StatusConflict, gin.H{"error": "Commande déjà validée", "order_id": session.OrderID})
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Champs manquants ou invalides",
				"step":   vErr.Step.String(),
				"fields": vErr.Fields,
			})
		case errors.As(err, &pErr):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement commande, réessayez"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur soumission"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Commande validée 📦",
		"order":   order,
	})
}

//
// 💳 GET /api/checkout/upi-link : lien d'intent UPI pour l'acompte
//
func GetUPILink(c *gin.Context) {
	userID := c.GetString("user_id")

	session, err := sessionStore().Get(c.Request.Context(), userID)
	if err != nil || session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucune session de commande en cours"})
		return
	}

	merchant := payment.MerchantFromEnv()
	ref := session.OrderID
	if ref == "" {
		ref = "deposit-" + userID
	}

	c.JSON(http.StatusOK, gin.H{
		"link":   merchant.IntentLink(DepositAmount, ref),
		"amount": DepositAmount,
		"vpa":    merchant.VPA,
	})
}

//
// 💳 GET /api/checkout/upi-qr : le même intent, en QR code PNG
//
func GetUPIQRCode(c *gin.Context) {
	userID := c.GetString("user_id")

	session, err := sessionStore().Get(c.Request.Context(), userID)
	if err != nil || session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucune session de commande en cours"})
		return
	}

	merchant := payment.MerchantFromEnv()
	ref := session.OrderID
	if ref == "" {
		ref = "deposit-" + userID
	}

	png, err := merchant.QRCodePNG(DepositAmount, ref)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
