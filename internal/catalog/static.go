package catalog

import "balajee_back_end/internal/models"

// StaticProducts est le catalogue embarqué servi quand la base produits est
// indisponible, vide ou non configurée. La boutique doit rester navigable
// même sans backend.
func StaticProducts() []models.Product {
	return []models.Product{
		{
			ID:          "l1",
			Name:        "Aurum Velvet Sofa",
			Description: "A masterpiece of comfort and elegance. Hand-tufted velvet and brushed brass legs.",
			Price:       145000,
			Category:    "Seating",
			Room:        "Living Room",
			Style:       "Contemporary",
			Material:    "Velvet",
			ImageURLs:   []string{"https://images.pexels.com/photos/1866149/pexels-photo-1866149.jpeg"},
			Rating:      4.8,
			ReviewCount: 124,
			Featured:    true,
			Colors: []models.ProductColor{
				{Name: "Emerald", Hex: "#047857"},
				{Name: "Midnight", Hex: "#1e1b4b"},
			},
			Sizes:      []string{"3-Seater", "4-Seater"},
			Dimensions: "W: 240cm H: 85cm D: 100cm",
		},
		{
			ID:          "l2",
			Name:        "Ghost Marble Table",
			Description: "Floating Carrara marble top on a near-invisible acrylic base.",
			Price:       72000,
			Category:    "Tables",
			Room:        "Living Room",
			Style:       "Minimalist",
			Material:    "Marble",
			ImageURLs:   []string{"https://images.pexels.com/photos/2082090/pexels-photo-2082090.jpeg"},
			Rating:      4.9,
			ReviewCount: 38,
			Featured:    true,
		},
		{
			ID:          "l3",
			Name:        "Icon Lounge Chair",
			Description: "Bentwood walnut shell paired with premium aniline leather upholstery.",
			Price:       85000,
			Category:    "Seating",
			Room:        "Living Room",
			Style:       "Mid-Century Modern",
			Material:    "Leather",
			ImageURLs:   []string{"https://images.pexels.com/photos/1350789/pexels-photo-1350789.jpeg"},
			Rating:      5.0,
			ReviewCount: 45,
			Featured:    true,
		},
		{
			ID:          "d1",
			Name:        "Nordic Oak Table",
			Description: "Minimalist solid oak dining table with a natural matte finish.",
			Price:       95000,
			Category:    "Tables",
			Room:        "Dining Room",
			Style:       "Scandinavian",
			Material:    "Oak Wood",
			ImageURLs:   []string{"https://images.pexels.com/photos/890669/pexels-photo-890669.jpeg"},
			Rating:      4.9,
			ReviewCount: 85,
			Featured:    true,
		},
		{
			ID:          "b1",
			Name:        "Elysian Bed Frame",
			Description: "Breathe easy in the Elysian bed, wrapped in premium Belgian linen.",
			Price:       180000,
			Category:    "Beds",
			Room:        "Bedroom",
			Style:       "Minimalist",
			Material:    "Linen",
			ImageURLs:   []string{"https://images.pexels.com/photos/6480198/pexels-photo-6480198.jpeg"},
			Rating:      5.0,
			ReviewCount: 92,
			Featured:    true,
		},
		{
			ID:          "o2",
			Name:        "Ergo Task Chair",
			Description: "All-day ergonomic support in powder-coated steel and breathable mesh.",
			Price:       48000,
			Category:    "Seating",
			Room:        "Office",
			Style:       "Contemporary",
			Material:    "Steel",
			ImageURLs:   []string{"https://images.pexels.com/photos/1957477/pexels-photo-1957477.jpeg"},
			Rating:      4.9,
			ReviewCount: 210,
			Featured:    true,
		},
		{
			ID:          "s1",
			Name:        "Bentwood Chair",
			Description: "A timeless café classic, steam-bent from solid oak.",
			Price:       16000,
			Category:    "Seating",
			Room:        "Dining Room",
			Style:       "Traditional",
			Material:    "Oak Wood",
			ImageURLs:   []string{"https://images.pexels.com/photos/2762247/pexels-photo-2762247.jpeg"},
			Rating:      4.5,
			ReviewCount: 56,
			Featured:    true,
		},
		{
			ID:          "s2",
			Name:        "Brutal Study Desk",
			Description: "Cast concrete top over reclaimed teak trestles.",
			Price:       68000,
			Category:    "Tables",
			Room:        "Office",
			Style:       "Industrial",
			Material:    "Concrete & Wood",
			ImageURLs:   []string{"https://images.pexels.com/photos/3740958/pexels-photo-3740958.jpeg"},
			Rating:      4.7,
			ReviewCount: 12,
			Featured:    true,
		},
		{
			ID:          "s3",
			Name:        "Infinite Bookshelf",
			Description: "Modular steel shelving that grows with your library.",
			Price:       92000,
			Category:    "Storage",
			Room:        "Office",
			Style:       "Minimalist",
			Material:    "Steel",
			ImageURLs:   []string{"https://images.pexels.com/photos/1370298/pexels-photo-1370298.jpeg"},
			Rating:      4.7,
			ReviewCount: 22,
			Featured:    true,
		},
		{
			ID:          "n1",
			Name:        "Opal Pendant Light",
			Description: "Hand-blown opal glass diffusing a warm, even glow.",
			Price:       22000,
			Category:    "Lighting",
			Room:        "Living Room",
			Style:       "Contemporary",
			Material:    "Glass",
			ImageURLs:   []string{"https://images.pexels.com/photos/1123262/pexels-photo-1123262.jpeg"},
			Rating:      4.6,
			ReviewCount: 12,
			NewArrival:  true,
		},
		{
			ID:          "n2",
			Name:        "Zen Nightstand",
			Description: "Floating oak nightstand with a soft-close drawer.",
			Price:       34000,
			Category:    "Storage",
			Room:        "Bedroom",
			Style:       "Scandinavian",
			Material:    "Oak Wood",
			ImageURLs:   []string{"https://images.pexels.com/photos/2082087/pexels-photo-2082087.jpeg"},
			Rating:      4.8,
			ReviewCount: 5,
			NewArrival:  true,
		},
		{
			ID:          "n3",
			Name:        "Monolith Sideboard",
			Description: "A single sculptural volume in smoked oak.",
			Price:       125000,
			Category:    "Storage",
			Room:        "Dining Room",
			Style:       "Contemporary",
			Material:    "Oak Wood",
			ImageURLs:   []string{"https://images.pexels.com/photos/2451264/pexels-photo-2451264.jpeg"},
			Rating:      4.8,
			ReviewCount: 8,
			NewArrival:  true,
		},
	}
}
