package checkout

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "checkout:"
	sessionTTL       = 1 * time.Hour

	// Verrou de soumission : SETNX partagé entre instances, avec un TTL de
	// sécurité au cas où un process meurt sans relâcher
	lockKeyPrefix = "checkout:lock:"
	lockTTL       = 2 * time.Minute
)

// SessionStore garde la session de checkout en Redis le temps du tunnel.
// L'état est éphémère : l'expiration de la clé perd la progression.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

// Get retourne la session en cours, ou nil si aucune
func (s *SessionStore) Get(ctx context.Context, userID string) (*Session, error) {
	data, err := s.rdb.Get(ctx, sessionKeyPrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionStore) Save(ctx context.Context, userID string, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKeyPrefix+userID, data, sessionTTL).Err()
}

// Delete détruit la session (sortie du tunnel ou succès acquitté)
func (s *SessionStore) Delete(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+userID).Err()
}

// AcquireSubmitLock pose le drapeau "soumission en cours" de façon atomique.
// Le drapeau Processing de la session ne suffit pas entre deux requêtes :
// chacune charge sa propre copie depuis Redis, seul un SETNX les départage.
func (s *SessionStore) AcquireSubmitLock(ctx context.Context, userID string) (bool, error) {
	return s.rdb.SetNX(ctx, lockKeyPrefix+userID, "1", lockTTL).Result()
}

// ReleaseSubmitLock relâche le drapeau à la fin de la soumission, succès ou
// échec (un échec autorise un re-submit manuel)
func (s *SessionStore) ReleaseSubmitLock(ctx context.Context, userID string) {
	s.rdb.Del(ctx, lockKeyPrefix+userID)
}
