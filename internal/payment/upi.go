package payment

import (
	"fmt"
	"net/url"
	"os"

	"github.com/skip2/go-qrcode"
)

// UPIMerchant identifie le compte encaisseur des acomptes
type UPIMerchant struct {
	VPA  string // ex: balajeetraders@ybl
	Name string
}

func MerchantFromEnv() UPIMerchant {
	vpa := os.Getenv("UPI_MERCHANT_VPA")
	if vpa == "" {
		vpa = "balajeetraders@ybl"
	}
	name := os.Getenv("UPI_MERCHANT_NAME")
	if name == "" {
		name = "Balajee Traders"
	}
	return UPIMerchant{VPA: vpa, Name: name}
}

// IntentLink construit le deep-link upi://pay ouvert par PhonePe/GPay sur
// mobile. L'encodage des paramètres est impératif, certains clients UPI
// rejettent les liens mal échappés.
func (m UPIMerchant) IntentLink(amount float64, orderID string) string {
	q := url.Values{}
	q.Set("pa", m.VPA)
	q.Set("pn", m.Name)
	q.Set("am", fmt.Sprintf("%.2f", amount))
	q.Set("tr", orderID)
	q.Set("tn", "Order "+orderID)
	q.Set("cu", "INR")
	return "upi://pay?" + q.Encode()
}

// QRCodePNG encode le lien d'intention en QR à scanner depuis le checkout
// desktop (256x256, correction moyenne)
func (m UPIMerchant) QRCodePNG(amount float64, orderID string) ([]byte, error) {
	return qrcode.Encode(m.IntentLink(amount, orderID), qrcode.Medium, 256)
}
