package catalog

import (
	"context"
	"errors"
	"testing"

	"balajee_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	products []models.Product
	err      error
}

func (s *stubRepo) ListProducts(context.Context) ([]models.Product, error) {
	return s.products, s.err
}

func (s *stubRepo) GetProduct(_ context.Context, id string) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, errors.New("introuvable")
}

func TestResolve_ErrorFallsBackToStatic(t *testing.T) {
	products, live := Resolve(nil, errors.New("connexion refusée"))

	assert.False(t, live)
	assert.Equal(t, StaticProducts(), products)
}

func TestResolve_EmptyFallsBackToStatic(t *testing.T) {
	products, live := Resolve([]models.Product{}, nil)

	assert.False(t, live)
	assert.NotEmpty(t, products)
}

func TestResolve_LiveWins(t *testing.T) {
	liveProducts := []models.Product{{ID: "x1", Name: "Teak Bench"}}

	products, live := Resolve(liveProducts, nil)

	assert.True(t, live)
	assert.Equal(t, liveProducts, products)
}

func TestProvider_NilRepoServesStatic(t *testing.T) {
	p := NewProvider(nil)

	products, live := p.Products(context.Background())

	assert.False(t, live)
	assert.Equal(t, StaticProducts(), products)
}

func TestProvider_RepoErrorServesStatic(t *testing.T) {
	p := NewProvider(&stubRepo{err: errors.New("timeout")})

	products, live := p.Products(context.Background())

	assert.False(t, live)
	assert.NotEmpty(t, products)
}

func TestProvider_ProductByID_LiveFirstThenStatic(t *testing.T) {
	p := NewProvider(&stubRepo{products: []models.Product{{ID: "x1", Name: "Teak Bench"}}})

	product, live := p.ProductByID(context.Background(), "x1")
	require.NotNil(t, product)
	assert.True(t, live)
	assert.Equal(t, "Teak Bench", product.Name)

	// absent en base mais présent dans le catalogue embarqué
	product, live = p.ProductByID(context.Background(), "l1")
	require.NotNil(t, product)
	assert.False(t, live)
	assert.Equal(t, "Aurum Velvet Sofa", product.Name)
}

func TestProvider_ProductByID_UnknownEverywhere(t *testing.T) {
	p := NewProvider(nil)

	product, _ := p.ProductByID(context.Background(), "zzz")

	assert.Nil(t, product)
}

func TestStaticProducts_ShapeIsUsable(t *testing.T) {
	for _, p := range StaticProducts() {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.Price, 0.0)
		assert.NotEmpty(t, p.Room)
		assert.NotEmpty(t, p.ImageURLs)
	}
}
