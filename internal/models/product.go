package models

import (
	"time"
)

// ProductColor représente une variante de couleur (nom + code hex pour le front)
type ProductColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type Product struct {
	ID          string         `json:"id" db:"product_id"`
	Name        string         `json:"name" db:"name"`
	Description string         `json:"description" db:"description"`
	Price       float64        `json:"price" db:"price"`
	Category    string         `json:"category" db:"category"`
	Room        string         `json:"room" db:"room"`
	Style       string         `json:"style" db:"style"`
	Material    string         `json:"material" db:"material"`
	ImageURLs   []string       `json:"image_urls" db:"image_urls"`
	Dimensions  string         `json:"dimensions,omitempty" db:"dimensions"`
	Rating      float64        `json:"rating" db:"rating"`
	ReviewCount int            `json:"review_count" db:"review_count"`
	Featured    bool           `json:"featured" db:"featured"`
	NewArrival  bool           `json:"new_arrival" db:"new_arrival"`
	Colors      []ProductColor `json:"colors,omitempty" db:"colors"`
	Sizes       []string       `json:"sizes,omitempty" db:"sizes"`
	Tags        []string       `json:"tags,omitempty" db:"tags"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// Image retourne la première image (aperçu panier / wishlist)
func (p Product) Image() string {
	if len(p.ImageURLs) > 0 {
		return p.ImageURLs[0]
	}
	return ""
}
