package orders

import (
	"context"
	"sort"

	"balajee_back_end/internal/database"
	"balajee_back_end/internal/models"

	"github.com/gocql/gocql"
)

// ScyllaRepository persiste les commandes dans le keyspace orders.
// Deux tables : orders_by_user (en-têtes, partitionnées par client) et
// order_items (articles, partitionnés par commande). Pas de transaction
// entre les deux, l'en-tête part toujours en premier.
type ScyllaRepository struct{}

func NewScyllaRepository() *ScyllaRepository {
	return &ScyllaRepository{}
}

func (r *ScyllaRepository) InsertHeader(ctx context.Context, order models.Order) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	return session.Query(`INSERT INTO orders_by_user
		(user_id, created_at, order_id, first_name, last_name, phone, email, address, city, zip,
		 total, status, payment_method, shipping_method)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.UserID, order.CreatedAt, order.ID,
		order.Customer.FirstName, order.Customer.LastName, order.Customer.Phone, order.Customer.Email,
		order.Customer.Address, order.Customer.City, order.Customer.Zip,
		order.Total, order.Status, order.PaymentMethod, order.ShippingMethod,
	).WithContext(ctx).Exec()
}

func (r *ScyllaRepository) InsertItems(ctx context.Context, orderID string, items []models.OrderItem) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	// Batch unlogged : une seule partition (order_id), pas besoin du log
	batch := session.NewBatch(gocql.UnloggedBatch)
	for _, item := range items {
		batch.Query(`INSERT INTO order_items (order_id, product_id, name, quantity, price, variant)
			VALUES (?, ?, ?, ?, ?, ?)`,
			orderID, item.ProductID, item.Name, item.Quantity, item.Price, item.Variant)
	}
	return session.ExecuteBatch(batch.WithContext(ctx))
}

// ListByUser retourne l'historique d'un client, plus récent d'abord
func (r *ScyllaRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT order_id, created_at, first_name, last_name, phone, email,
		address, city, zip, total, status, payment_method, shipping_method
		FROM orders_by_user WHERE user_id = ?`, userID).WithContext(ctx).Iter()

	var result []models.Order
	for {
		order := models.Order{UserID: userID}
		ok := iter.Scan(&order.ID, &order.CreatedAt,
			&order.Customer.FirstName, &order.Customer.LastName, &order.Customer.Phone, &order.Customer.Email,
			&order.Customer.Address, &order.Customer.City, &order.Customer.Zip,
			&order.Total, &order.Status, &order.PaymentMethod, &order.ShippingMethod)
		if !ok {
			break
		}
		result = append(result, order)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// GetByID retourne une commande avec ses articles, ou nil si elle
// n'appartient pas à ce client
func (r *ScyllaRepository) GetByID(ctx context.Context, userID, orderID string) (*models.Order, error) {
	all, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID != orderID {
			continue
		}
		items, err := r.listItems(ctx, orderID)
		if err != nil {
			return nil, err
		}
		all[i].Items = items
		return &all[i], nil
	}
	return nil, nil
}

// HasPurchased vérifie qu'un client a bien commandé ce produit (condition
// pour déposer un avis)
func (r *ScyllaRepository) HasPurchased(ctx context.Context, userID, productID string) (string, bool, error) {
	all, err := r.ListByUser(ctx, userID)
	if err != nil {
		return "", false, err
	}

	for _, order := range all {
		items, err := r.listItems(ctx, order.ID)
		if err != nil {
			return "", false, err
		}
		for _, item := range items {
			if item.ProductID == productID {
				return order.ID, true, nil
			}
		}
	}
	return "", false, nil
}

func (r *ScyllaRepository) listItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT product_id, name, quantity, price, variant
		FROM order_items WHERE order_id = ?`, orderID).WithContext(ctx).Iter()

	var items []models.OrderItem
	for {
		item := models.OrderItem{OrderID: orderID}
		if !iter.Scan(&item.ProductID, &item.Name, &item.Quantity, &item.Price, &item.Variant) {
			break
		}
		items = append(items, item)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return items, nil
}
