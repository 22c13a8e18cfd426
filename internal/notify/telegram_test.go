package notify

import (
	"testing"
	"time"

	"balajee_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderMessage_Format(t *testing.T) {
	order := models.Order{
		ID: "BT-424242",
		Customer: models.CustomerDetails{
			FirstName: "Julius",
			LastName:  "Wright",
			Phone:     "+91 98765 43210",
			Address:   "12 Main Bazaar St",
			City:      "Tiruchirappalli",
			Zip:       "620008",
		},
		Items: []models.OrderItem{
			{Name: "Aurum Velvet Sofa", Quantity: 1, Price: 145000, Variant: "Emerald, 3-Seater"},
			{Name: "Ghost Marble Table", Quantity: 2, Price: 72000},
		},
		Total:          289000,
		PaymentMethod:  "cod",
		ShippingMethod: "showroom",
		CreatedAt:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}

	msg := orderMessage(order)

	assert.Contains(t, msg, "BT-424242")
	assert.Contains(t, msg, "Julius Wright")
	assert.Contains(t, msg, "Tiruchirappalli")
	assert.Contains(t, msg, "Aurum Velvet Sofa [Emerald, 3-Seater] x1")
	assert.Contains(t, msg, "Ghost Marble Table x2")
	assert.Contains(t, msg, "Total: ₹289000.00")
	assert.Contains(t, msg, "Payment: cod | Shipping: showroom")
}

func TestSend_SkipsWhenUnconfigured(t *testing.T) {
	sink := &TelegramSink{}

	// Ne doit ni paniquer ni tenter d'appel réseau
	sink.send("hello")
}
