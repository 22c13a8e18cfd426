package catalog

import (
	"context"
	"encoding/json"
	"time"

	"balajee_back_end/internal/database"
	"balajee_back_end/internal/models"
)

const productColumns = `product_id, name, description, price, category, room, style, material,
	image_urls, dimensions, rating, review_count, featured, new_arrival, colors_json, sizes, tags,
	created_at, updated_at`

// ScyllaRepository lit le catalogue depuis le keyspace produits.
// Les variantes de couleur sont stockées en JSON (colors_json) car Scylla
// n'a pas de type naturel pour des paires nom/hex.
type ScyllaRepository struct{}

func NewScyllaRepository() *ScyllaRepository {
	return &ScyllaRepository{}
}

func (r *ScyllaRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query("SELECT " + productColumns + " FROM products").WithContext(ctx).Iter()

	var products []models.Product
	for {
		product, ok := scanProduct(iter.Scan)
		if !ok {
			break
		}
		products = append(products, product)
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ScyllaRepository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, err
	}

	q := session.Query("SELECT "+productColumns+" FROM products WHERE product_id = ?", id).WithContext(ctx)

	var product models.Product
	var colorsJSON string
	err = q.Scan(
		&product.ID, &product.Name, &product.Description, &product.Price,
		&product.Category, &product.Room, &product.Style, &product.Material,
		&product.ImageURLs, &product.Dimensions, &product.Rating, &product.ReviewCount,
		&product.Featured, &product.NewArrival, &colorsJSON, &product.Sizes, &product.Tags,
		&product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	decodeColors(colorsJSON, &product)
	return &product, nil
}

// scanProduct lit une ligne de l'itérateur ; ok=false en fin de résultat
func scanProduct(scan func(...interface{}) bool) (models.Product, bool) {
	var product models.Product
	var colorsJSON string
	var createdAt, updatedAt time.Time

	ok := scan(
		&product.ID, &product.Name, &product.Description, &product.Price,
		&product.Category, &product.Room, &product.Style, &product.Material,
		&product.ImageURLs, &product.Dimensions, &product.Rating, &product.ReviewCount,
		&product.Featured, &product.NewArrival, &colorsJSON, &product.Sizes, &product.Tags,
		&createdAt, &updatedAt,
	)
	if !ok {
		return models.Product{}, false
	}

	product.CreatedAt = createdAt
	product.UpdatedAt = updatedAt
	decodeColors(colorsJSON, &product)
	return product, true
}

func decodeColors(colorsJSON string, product *models.Product) {
	if colorsJSON == "" {
		return
	}
	_ = json.Unmarshal([]byte(colorsJSON), &product.Colors)
}
