package payment

import (
	"context"
	"errors"
	"testing"

	"balajee_back_end/internal/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v83"
)

func TestConfirm_CODNeedsNothing(t *testing.T) {
	g := NewGateway(MerchantFromEnv())

	err := g.Confirm(context.Background(), checkout.PaymentCOD, 2000, "BT-1")

	assert.NoError(t, err)
}

func TestConfirm_UnknownMethodDeclined(t *testing.T) {
	g := NewGateway(MerchantFromEnv())

	err := g.Confirm(context.Background(), "cheque", 2000, "BT-1")

	assert.True(t, errors.Is(err, checkout.ErrPaymentDeclined))
}

func TestConfirm_PhonePeSimulatedWithoutMerchant(t *testing.T) {
	t.Setenv("PHONEPE_MERCHANT_ID", "")
	g := NewGateway(MerchantFromEnv())

	err := g.Confirm(context.Background(), checkout.PaymentPhonePe, 2000, "BT-1")

	assert.NoError(t, err)
}

func TestConfirm_CardStripeFailureIsDeclined(t *testing.T) {
	old := stripe.Key
	stripe.Key = "sk_test_xxx"
	defer func() { stripe.Key = old }()

	g := NewGateway(MerchantFromEnv())
	g.createIntent = func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		return nil, errors.New("card_declined")
	}

	err := g.Confirm(context.Background(), checkout.PaymentCard, 2000, "BT-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, checkout.ErrPaymentDeclined))
}

func TestConfirm_CardStripeSuccess(t *testing.T) {
	old := stripe.Key
	stripe.Key = "sk_test_xxx"
	defer func() { stripe.Key = old }()

	g := NewGateway(MerchantFromEnv())
	var got *stripe.PaymentIntentParams
	g.createIntent = func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		got = params
		return &stripe.PaymentIntent{ID: "pi_123"}, nil
	}

	err := g.Confirm(context.Background(), checkout.PaymentCard, 2000, "BT-9")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(200000), *got.Amount, "montant en paise")
	assert.Equal(t, "inr", *got.Currency)
	assert.Equal(t, "BT-9", got.Metadata["order_id"])
}
