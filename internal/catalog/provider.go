package catalog

import (
	"context"
	"log"

	"balajee_back_end/internal/models"
)

// Repository est la source produits vivante (ScyllaDB)
type Repository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// Resolve est la décision pure de repli : la source vivante gagne si elle a
// répondu avec au moins un produit, sinon le catalogue embarqué prend le
// relais. Le booléen indique si les données sont vivantes.
func Resolve(live []models.Product, err error) ([]models.Product, bool) {
	if err != nil {
		return StaticProducts(), false
	}
	if len(live) == 0 {
		return StaticProducts(), false
	}
	return live, true
}

// Provider sert le catalogue en appliquant la politique de repli
type Provider struct {
	repo Repository
}

// NewProvider accepte un repo nil (base non configurée) : tout part alors
// sur le catalogue embarqué
func NewProvider(repo Repository) *Provider {
	return &Provider{repo: repo}
}

// Products retourne la liste complète ; jamais d'erreur, au pire le
// catalogue embarqué
func (p *Provider) Products(ctx context.Context) ([]models.Product, bool) {
	if p.repo == nil {
		return StaticProducts(), false
	}

	live, err := p.repo.ListProducts(ctx)
	if err != nil {
		log.Printf("⚠️ Lecture catalogue échouée, repli sur le catalogue embarqué: %v", err)
	}
	return Resolve(live, err)
}

// ProductByID cherche d'abord la source vivante, puis le catalogue embarqué
// (utile pour du contenu mixte). Retourne nil si introuvable partout.
func (p *Provider) ProductByID(ctx context.Context, id string) (*models.Product, bool) {
	if p.repo != nil {
		if product, err := p.repo.GetProduct(ctx, id); err == nil && product != nil {
			return product, true
		}
	}

	for _, product := range StaticProducts() {
		if product.ID == id {
			p := product
			return &p, false
		}
	}
	return nil, false
}
