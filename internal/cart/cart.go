package cart

import (
	"balajee_back_end/internal/models"
)

// LineKey identifie une ligne du panier : même produit mais couleur ou
// taille différente = ligne séparée.
type LineKey struct {
	ProductID     string
	SelectedColor string
	SelectedSize  string
}

func KeyOf(item models.CartItem) LineKey {
	return LineKey{
		ProductID:     item.ProductID,
		SelectedColor: item.SelectedColor,
		SelectedSize:  item.SelectedSize,
	}
}

// AddOptions porte la variante et la quantité demandées à l'ajout
type AddOptions struct {
	SelectedColor string
	SelectedSize  string
	Quantity      int
}

// Add fusionne le produit dans le panier : si une ligne avec la même clé
// (produit, couleur, taille) existe déjà, sa quantité augmente ; sinon une
// nouvelle ligne est ajoutée en fin de liste. Ne peut pas échouer.
func Add(items []models.CartItem, product models.Product, opts AddOptions) []models.CartItem {
	qty := opts.Quantity
	if qty < 1 {
		qty = 1
	}

	key := LineKey{
		ProductID:     product.ID,
		SelectedColor: opts.SelectedColor,
		SelectedSize:  opts.SelectedSize,
	}

	for i := range items {
		if KeyOf(items[i]) == key {
			items[i].Quantity += qty
			return items
		}
	}

	return append(items, models.CartItem{
		ProductID:     product.ID,
		Name:          product.Name,
		Price:         product.Price,
		Quantity:      qty,
		SelectedColor: opts.SelectedColor,
		SelectedSize:  opts.SelectedSize,
		ImageURL:      product.Image(),
	})
}

// UpdateQuantity applique un delta à la ligne visée, plancher à 1 : passer
// sous 1 ne supprime jamais la ligne (suppression = action explicite).
// Clé inconnue = no-op.
func UpdateQuantity(items []models.CartItem, key LineKey, delta int) []models.CartItem {
	for i := range items {
		if KeyOf(items[i]) == key {
			q := items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			items[i].Quantity = q
			break
		}
	}
	return items
}

// Remove supprime la ligne visée ; clé inconnue = no-op
func Remove(items []models.CartItem, key LineKey) []models.CartItem {
	out := items[:0]
	for _, item := range items {
		if KeyOf(item) != key {
			out = append(out, item)
		}
	}
	return out
}

// Total recalcule la somme prix × quantité à chaque lecture (pas de cache,
// le panier est petit)
func Total(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count retourne le nombre de lignes (badge du panier)
func Count(items []models.CartItem) int {
	return len(items)
}
