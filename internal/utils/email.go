package utils

import (
	"fmt"
	"log"
	"os"

	"balajee_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

func SendConfirmationEmail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if err := msg.From("orders@balajeetraders.in"); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		variant := ""
		if item.Variant != "" {
			variant = " (" + item.Variant + ")"
		}
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s%s</td>
				<td>%d</td>
				<td>₹%.2f</td>
				<td>₹%.2f</td>
			</tr>`, item.Name, variant, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Order Confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Thank you for your order %s</h2>
		<p>Dear %s %s,</p>
		<p>Your order has been confirmed. Our team will call you on %s to arrange delivery.</p>

		<h3>Order details</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Item</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Qty</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Unit price</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">₹%.2f</td>
				</tr>
			</tfoot>
		</table>

		<p style="margin-top: 30px; color: #555;">
			Warm regards,<br>
			<strong>Balajee Traders, Tiruchirappalli</strong>
		</p>
	</div>
</body>
</html>`, order.ID, order.Customer.FirstName, order.Customer.LastName, order.Customer.Phone, itemsHTML, order.Total)
}
