package payment

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentLink_Format(t *testing.T) {
	m := UPIMerchant{VPA: "balajeetraders@ybl", Name: "Balajee Traders"}

	link := m.IntentLink(2000, "BT-123456")

	require.True(t, strings.HasPrefix(link, "upi://pay?"))

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "balajeetraders@ybl", q.Get("pa"))
	assert.Equal(t, "Balajee Traders", q.Get("pn"))
	assert.Equal(t, "2000.00", q.Get("am"))
	assert.Equal(t, "BT-123456", q.Get("tr"))
	assert.Equal(t, "Order BT-123456", q.Get("tn"))
	assert.Equal(t, "INR", q.Get("cu"))
}

func TestIntentLink_EscapesMerchantName(t *testing.T) {
	m := UPIMerchant{VPA: "x@ybl", Name: "Balajee Traders & Co"}

	link := m.IntentLink(100, "BT-1")

	assert.NotContains(t, link, " & ", "les espaces et & doivent être échappés")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Balajee Traders & Co", u.Query().Get("pn"))
}

func TestQRCodePNG(t *testing.T) {
	m := MerchantFromEnv()

	png, err := m.QRCodePNG(2000, "BT-777777")

	require.NoError(t, err)
	// signature PNG
	require.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
