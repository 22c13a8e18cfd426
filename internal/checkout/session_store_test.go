package checkout

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewSessionStore(rdb), mr
}

func TestSessionStore_SaveGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	session := NewSession()
	session.Customer.Email = "kavitha@example.in"
	session.ShippingMethod = ShippingWhiteGlove

	require.NoError(t, store.Save(ctx, "user-1", session))

	got, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "kavitha@example.in", got.Customer.Email)
	assert.Equal(t, ShippingWhiteGlove, got.ShippingMethod)
}

func TestSessionStore_GetMissingReturnsNil(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Get(context.Background(), "inconnu")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Deux requêtes concurrentes chargent chacune leur copie de la session, le
// drapeau Processing en mémoire ne les départage donc pas. Seul le verrou
// SETNX partagé doit laisser passer une seule soumission à la fois.
func TestSubmitLock_SingleHolderAcrossRequests(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	locked, err := store.AcquireSubmitLock(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, locked, "la première requête doit obtenir le verrou")

	// Deuxième requête pendant que la première est en vol
	locked, err = store.AcquireSubmitLock(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, locked, "la soumission concurrente doit être refusée")

	// Un autre client n'est pas concerné par ce verrou
	locked, err = store.AcquireSubmitLock(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestSubmitLock_ReleasedAfterSubmitEnds(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	locked, err := store.AcquireSubmitLock(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, locked)

	store.ReleaseSubmitLock(ctx, "user-1")

	// Un paiement refusé doit pouvoir être retenté immédiatement
	locked, err = store.AcquireSubmitLock(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, locked, "le verrou relâché doit redevenir disponible")
}

func TestSubmitLock_ExpiresIfHolderDies(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	locked, err := store.AcquireSubmitLock(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, locked)

	// Process mort sans relâcher : le TTL doit finir par libérer le verrou
	mr.FastForward(lockTTL)

	locked, err = store.AcquireSubmitLock(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, locked)
}
