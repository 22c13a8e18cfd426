package models

import "time"

// Statuts de commande exposés au front
const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
)

// CustomerDetails est l'instantané de contact/adresse figé à la commande.
// Email vient du compte connecté, pas du formulaire, et reste optionnel.
type CustomerDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

type Order struct {
	ID             string          `json:"id" db:"order_id"`
	UserID         string          `json:"user_id,omitempty" db:"user_id"`
	Customer       CustomerDetails `json:"customer" db:"customer"`
	Items          []OrderItem     `json:"items"`
	Total          float64         `json:"total" db:"total"`
	Status         string          `json:"status" db:"status"`
	PaymentMethod  string          `json:"payment_method" db:"payment_method"`
	ShippingMethod string          `json:"shipping_method" db:"shipping_method"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

type OrderItem struct {
	OrderID   string  `json:"order_id" db:"order_id"`
	ProductID string  `json:"product_id" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Price     float64 `json:"price" db:"price"`
	Variant   string  `json:"variant,omitempty" db:"variant"`
}
