package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"balajee_back_end/internal/models"
	"balajee_back_end/internal/utils"
)

// TelegramSink pousse les événements boutique vers le Telegram du magasin.
// Tout est fire-and-forget : une panne Telegram ne doit jamais bloquer une
// commande.
type TelegramSink struct {
	BotToken string
	ChatID   string
	Client   *http.Client
}

func NewTelegramSink() *TelegramSink {
	return &TelegramSink{
		BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		ChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// OrderPlaced envoie le récap commande et, si possible, l'e-mail de
// confirmation au client. Tout part en goroutine : l'appelant n'attend rien.
func (t *TelegramSink) OrderPlaced(order models.Order) {
	go func() {
		t.send(orderMessage(order))

		if order.Customer.Email != "" {
			subject := fmt.Sprintf("Balajee Traders — Order %s confirmed", order.ID)
			html := utils.GenerateOrderConfirmationHTML(order)
			if err := utils.SendConfirmationEmail(order.Customer.Email, subject, html); err != nil {
				log.Printf("⚠️ E-mail de confirmation non envoyé pour %s: %v", order.ID, err)
			}
		}
	}()
}

// ReviewSubmitted prévient le magasin qu'un avis attend modération
func (t *TelegramSink) ReviewSubmitted(review models.Review) {
	go t.send(fmt.Sprintf("⭐ New review pending approval\nOrder: %s\nRating: %d/5\nBy: %s\n\n%s",
		review.OrderID, review.Rating, review.UserName, review.Comment))
}

func orderMessage(order models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 New Order %s\n", order.ID)
	fmt.Fprintf(&b, "Customer: %s %s\n", order.Customer.FirstName, order.Customer.LastName)
	fmt.Fprintf(&b, "Phone: %s\n", order.Customer.Phone)
	fmt.Fprintf(&b, "Address: %s, %s %s\n", order.Customer.Address, order.Customer.City, order.Customer.Zip)
	fmt.Fprintf(&b, "Payment: %s | Shipping: %s\n\n", order.PaymentMethod, order.ShippingMethod)
	for _, item := range order.Items {
		variant := ""
		if item.Variant != "" {
			variant = " [" + item.Variant + "]"
		}
		fmt.Fprintf(&b, "• %s%s x%d — ₹%.2f\n", item.Name, variant, item.Quantity, item.Price*float64(item.Quantity))
	}
	fmt.Fprintf(&b, "\nTotal: ₹%.2f", order.Total)
	return b.String()
}

func (t *TelegramSink) send(text string) {
	if t.BotToken == "" || t.ChatID == "" {
		log.Println("⚠️ Telegram non configuré, notification ignorée")
		return
	}

	payload, _ := json.Marshal(map[string]string{
		"chat_id": t.ChatID,
		"text":    text,
	})

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.BotToken)
	resp, err := t.Client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("⚠️ Envoi Telegram échoué: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ Telegram a répondu %d", resp.StatusCode)
	}
}
