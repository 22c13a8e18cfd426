package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts de modération des avis
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

type Review struct {
	ID        gocql.UUID `json:"id" db:"review_id"`
	ProductID string     `json:"product_id" db:"product_id"`
	OrderID   string     `json:"order_id" db:"order_id"`
	UserID    string     `json:"user_id" db:"user_id"`
	UserName  string     `json:"user_name" db:"user_name"`
	Rating    int        `json:"rating" db:"rating"` // 1-5
	Comment   string     `json:"comment" db:"comment"`
	Status    string     `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
