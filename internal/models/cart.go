package models

// CartItem est un instantané du produit au moment de l'ajout au panier.
// Deux lignes sont distinctes dès que (product_id, selected_color,
// selected_size) diffère : même produit, variante différente.
type CartItem struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	SelectedColor string  `json:"selected_color,omitempty"`
	SelectedSize  string  `json:"selected_size,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
}

type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}
