package checkout

import (
	"errors"
	"time"

	"balajee_back_end/internal/models"
)

// Step est l'étape courante du tunnel de commande. La progression est
// linéaire et uniquement vers l'avant : Identity → Logistics → Payment,
// puis Success une fois la commande validée.
type Step int

const (
	StepIdentity  Step = 1
	StepLogistics Step = 2
	StepPayment   Step = 3
)

func (s Step) String() string {
	switch s {
	case StepIdentity:
		return "identity"
	case StepLogistics:
		return "logistics"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

// Méthodes de livraison proposées
const (
	ShippingWhiteGlove = "white-glove"
	ShippingShowroom   = "showroom"
)

// Méthodes de paiement acceptées
const (
	PaymentPhonePe = "phonepe"
	PaymentCard    = "card"
	PaymentCOD     = "cod"
)

// ErrSubmitRequired : à l'étape paiement, "avancer" ne mène pas à une étape
// numérotée mais déclenche la soumission de la commande.
var ErrSubmitRequired = errors.New("dernière étape atteinte, soumission requise")

// Session est l'état éphémère du tunnel. Stockée en Redis avec un TTL
// court : une expiration perd la progression, ce qui est accepté.
type Session struct {
	Step           Step                   `json:"step"`
	Customer       models.CustomerDetails `json:"customer"`
	ShippingMethod string                 `json:"shipping_method"`
	PaymentMethod  string                 `json:"payment_method"`
	Processing     bool                   `json:"processing"`
	Succeeded      bool                   `json:"succeeded"`
	OrderID        string                 `json:"order_id,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

func NewSession() *Session {
	return &Session{Step: StepIdentity, CreatedAt: time.Now()}
}

// Advance valide l'étape courante puis passe à la suivante. Aucun recul
// possible : quitter le tunnel se fait en retournant à la boutique, pas en
// régressant d'étape. À l'étape paiement la transition retourne
// ErrSubmitRequired ; c'est au coordinateur de soumission de jouer.
func (s *Session) Advance() error {
	if s.Succeeded {
		return ErrAlreadySucceeded
	}

	if err := s.ValidateStep(); err != nil {
		return err
	}

	switch s.Step {
	case StepIdentity:
		s.Step = StepLogistics
	case StepLogistics:
		s.Step = StepPayment
	case StepPayment:
		return ErrSubmitRequired
	}
	return nil
}

// ValidateStep vérifie les champs requis de l'étape courante ; des champs
// vides bloquent la progression
func (s *Session) ValidateStep() error {
	var missing []string

	switch s.Step {
	case StepIdentity:
		if s.Customer.FirstName == "" {
			missing = append(missing, "first_name")
		}
		if s.Customer.LastName == "" {
			missing = append(missing, "last_name")
		}
		if s.Customer.Phone == "" {
			missing = append(missing, "phone")
		}
		if s.Customer.Address == "" {
			missing = append(missing, "address")
		}
		if s.Customer.City == "" {
			missing = append(missing, "city")
		}
		if s.Customer.Zip == "" {
			missing = append(missing, "zip")
		}
	case StepLogistics:
		if s.ShippingMethod != ShippingWhiteGlove && s.ShippingMethod != ShippingShowroom {
			missing = append(missing, "shipping_method")
		}
	case StepPayment:
		if s.PaymentMethod != PaymentPhonePe && s.PaymentMethod != PaymentCard && s.PaymentMethod != PaymentCOD {
			missing = append(missing, "payment_method")
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Step: s.Step, Fields: missing}
	}
	return nil
}

// MarkSuccess bascule la session dans son état terminal
func (s *Session) MarkSuccess(orderID string) {
	s.Succeeded = true
	s.OrderID = orderID
}
