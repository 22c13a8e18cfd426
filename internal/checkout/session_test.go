package checkout

import (
	"errors"
	"testing"

	"balajee_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledCustomer() models.CustomerDetails {
	return models.CustomerDetails{
		FirstName: "Julius",
		LastName:  "Wright",
		Phone:     "+91 63904 73964",
		Address:   "Suite 402, Architectural Plaza",
		City:      "Tiruchirappalli",
		Zip:       "620017",
	}
}

func TestAdvance_BlockedOnEmptyIdentity(t *testing.T) {
	s := NewSession()

	err := s.Advance()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StepIdentity, verr.Step)
	assert.Contains(t, verr.Fields, "first_name")
	assert.Contains(t, verr.Fields, "zip")
	assert.Equal(t, StepIdentity, s.Step, "un échec de validation ne doit pas avancer")
}

func TestAdvance_PartialIdentityReportsMissingFields(t *testing.T) {
	s := NewSession()
	s.Customer = filledCustomer()
	s.Customer.Phone = ""
	s.Customer.City = ""

	err := s.Advance()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"phone", "city"}, verr.Fields)
}

func TestAdvance_IdentityToLogistics(t *testing.T) {
	s := NewSession()
	s.Customer = filledCustomer()

	require.NoError(t, s.Advance())
	assert.Equal(t, StepLogistics, s.Step)
}

func TestAdvance_LogisticsRequiresKnownShippingMethod(t *testing.T) {
	s := NewSession()
	s.Customer = filledCustomer()
	require.NoError(t, s.Advance())

	s.ShippingMethod = "drone"
	err := s.Advance()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StepLogistics, s.Step)

	s.ShippingMethod = ShippingShowroom
	require.NoError(t, s.Advance())
	assert.Equal(t, StepPayment, s.Step)
}

func TestAdvance_PaymentStepRequiresSubmit(t *testing.T) {
	s := sessionAtPayment()

	err := s.Advance()

	assert.True(t, errors.Is(err, ErrSubmitRequired))
	assert.Equal(t, StepPayment, s.Step, "pas d'étape numérotée après paiement")
}

func TestAdvance_NeverRegresses(t *testing.T) {
	s := sessionAtPayment()

	// répéter l'action d'avance ne ramène jamais en arrière
	_ = s.Advance()
	_ = s.Advance()
	assert.Equal(t, StepPayment, s.Step)
}

func TestAdvance_AfterSuccessIsRejected(t *testing.T) {
	s := sessionAtPayment()
	s.MarkSuccess("BT-123456")

	err := s.Advance()
	assert.True(t, errors.Is(err, ErrAlreadySucceeded))
}

func TestValidateStep_PaymentMethodWhitelist(t *testing.T) {
	s := sessionAtPayment()

	for _, method := range []string{PaymentPhonePe, PaymentCard, PaymentCOD} {
		s.PaymentMethod = method
		assert.NoError(t, s.ValidateStep(), method)
	}

	s.PaymentMethod = "cheque"
	var verr *ValidationError
	require.ErrorAs(t, s.ValidateStep(), &verr)
	assert.Contains(t, verr.Fields, "payment_method")
}

func sessionAtPayment() *Session {
	s := NewSession()
	s.Customer = filledCustomer()
	s.ShippingMethod = ShippingWhiteGlove
	s.PaymentMethod = PaymentPhonePe
	if err := s.Advance(); err != nil {
		panic(err)
	}
	if err := s.Advance(); err != nil {
		panic(err)
	}
	return s
}
