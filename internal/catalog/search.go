package catalog

import (
	"context"
	"strings"

	"balajee_back_end/internal/models"
)

// FilterByQuery est le repli quand Elasticsearch est indisponible :
// simple recherche de sous-chaîne sur les champs texte du catalogue servi
func FilterByQuery(p *Provider, ctx context.Context, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	products, _ := p.Products(ctx)

	var matches []models.Product
	for _, product := range products {
		if matchesQuery(product, q) {
			matches = append(matches, product)
		}
	}
	return matches
}

func matchesQuery(p models.Product, q string) bool {
	fields := []string{p.Name, p.Description, p.Material, p.Room, p.Category, p.Style}
	fields = append(fields, p.Tags...)

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
