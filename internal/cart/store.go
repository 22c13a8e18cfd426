package cart

import (
	"context"
	"encoding/json"
	"time"

	"balajee_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "cart:"
	cartTTL   = 30 * 24 * time.Hour
)

// Store persiste le panier en Redis (blob JSON par utilisateur) et publie
// les changements sur le canal cart:<userID> pour la synchro websocket.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Get retourne le panier de l'utilisateur ; clé absente = panier vide
func (s *Store) Get(ctx context.Context, userID string) ([]models.CartItem, error) {
	data, err := s.rdb.Get(ctx, keyPrefix+userID).Result()
	if err == redis.Nil || data == "" {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Save écrase le panier (TTL 30 jours) puis notifie les abonnés
func (s *Store) Save(ctx context.Context, userID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, keyPrefix+userID, data, cartTTL).Err(); err != nil {
		return err
	}
	s.rdb.Publish(ctx, keyPrefix+userID, "updated")
	return nil
}

// Clear vide complètement le panier (appelé après commande validée)
func (s *Store) Clear(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, keyPrefix+userID).Err(); err != nil {
		return err
	}
	s.rdb.Publish(ctx, keyPrefix+userID, "cleared")
	return nil
}
