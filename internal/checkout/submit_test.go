package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"balajee_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mocks maison pour les collaborateurs du coordinateur

type mockPayments struct {
	err       error
	confirmed []string // méthodes confirmées, dans l'ordre
	amount    float64
}

func (m *mockPayments) Confirm(_ context.Context, method string, amount float64, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.confirmed = append(m.confirmed, method)
	m.amount = amount
	return nil
}

type mockOrders struct {
	headerErr error
	itemsErr  error
	header    *models.Order
	items     []models.OrderItem
}

func (m *mockOrders) InsertHeader(_ context.Context, order models.Order) error {
	if m.headerErr != nil {
		return m.headerErr
	}
	m.header = &order
	return nil
}

func (m *mockOrders) InsertItems(_ context.Context, _ string, items []models.OrderItem) error {
	if m.itemsErr != nil {
		return m.itemsErr
	}
	m.items = items
	return nil
}

type mockNotifier struct {
	orders []models.Order
}

func (m *mockNotifier) OrderPlaced(order models.Order) {
	m.orders = append(m.orders, order)
}

type mockCarts struct {
	cleared []string
	err     error
}

func (m *mockCarts) Clear(_ context.Context, userID string) error {
	if m.err != nil {
		return m.err
	}
	m.cleared = append(m.cleared, userID)
	return nil
}

func testItems() []models.CartItem {
	return []models.CartItem{
		{ProductID: "l1", Name: "Aurum Velvet Sofa", Price: 145000, Quantity: 2, SelectedColor: "Emerald"},
		{ProductID: "d1", Name: "Nordic Oak Table", Price: 95000, Quantity: 1, SelectedSize: "6-Seater"},
	}
}

func newTestCoordinator(p *mockPayments, o *mockOrders, n *mockNotifier, c *mockCarts) *Coordinator {
	co := NewCoordinator(p, o, n, c, 2000)
	co.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }
	co.newOrderID = func() string { return "BT-424242" }
	return co
}

func TestSubmit_Success(t *testing.T) {
	payments := &mockPayments{}
	orders := &mockOrders{}
	notifier := &mockNotifier{}
	carts := &mockCarts{}
	co := newTestCoordinator(payments, orders, notifier, carts)
	session := sessionAtPayment()

	order, err := co.Submit(context.Background(), "user-1", testItems(), session)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "BT-424242", order.ID)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Equal(t, 385000.0, order.Total, "total = somme prix × quantité du panier")
	assert.Equal(t, 2000.0, payments.amount, "seul l'acompte est encaissé")

	// les deux écritures ont eu lieu, en-tête puis articles
	require.NotNil(t, orders.header)
	require.Len(t, orders.items, 2)
	assert.Equal(t, "Emerald", orders.items[0].Variant)
	assert.Equal(t, "6-Seater", orders.items[1].Variant)

	// notification partie, panier vidé, session terminale
	assert.Len(t, notifier.orders, 1)
	assert.Equal(t, []string{"user-1"}, carts.cleared)
	assert.True(t, session.Succeeded)
	assert.Equal(t, "BT-424242", session.OrderID)
	assert.False(t, session.Processing)
}

func TestSubmit_PaymentDeclinedKeepsCart(t *testing.T) {
	payments := &mockPayments{err: ErrPaymentDeclined}
	orders := &mockOrders{}
	carts := &mockCarts{}
	co := newTestCoordinator(payments, orders, &mockNotifier{}, carts)
	session := sessionAtPayment()

	order, err := co.Submit(context.Background(), "user-1", testItems(), session)

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, ErrPaymentDeclined))
	assert.Nil(t, orders.header, "rien ne doit être écrit après un refus")
	assert.Empty(t, carts.cleared, "le panier reste intact")
	assert.Equal(t, StepPayment, session.Step)
	assert.False(t, session.Succeeded)
	assert.False(t, session.Processing, "le drapeau doit retomber sur tous les chemins de sortie")
}

func TestSubmit_HeaderWriteFailure(t *testing.T) {
	orders := &mockOrders{headerErr: errors.New("scylla timeout")}
	carts := &mockCarts{}
	co := newTestCoordinator(&mockPayments{}, orders, &mockNotifier{}, carts)
	session := sessionAtPayment()

	_, err := co.Submit(context.Background(), "user-1", testItems(), session)

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "header", perr.Write)
	assert.Empty(t, carts.cleared)
	assert.Equal(t, StepPayment, session.Step)
}

func TestSubmit_ItemsWriteFailureLeavesOrphanHeader(t *testing.T) {
	orders := &mockOrders{itemsErr: errors.New("scylla timeout")}
	notifier := &mockNotifier{}
	carts := &mockCarts{}
	co := newTestCoordinator(&mockPayments{}, orders, notifier, carts)
	session := sessionAtPayment()

	_, err := co.Submit(context.Background(), "user-1", testItems(), session)

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "items", perr.Write)
	assert.NotNil(t, orders.header, "l'en-tête reste écrit, incohérence assumée")
	assert.Empty(t, notifier.orders, "pas de notification sur échec")
	assert.Empty(t, carts.cleared)
	assert.False(t, session.Succeeded)
}

func TestSubmit_EmptyCart(t *testing.T) {
	co := newTestCoordinator(&mockPayments{}, &mockOrders{}, &mockNotifier{}, &mockCarts{})
	session := sessionAtPayment()

	_, err := co.Submit(context.Background(), "user-1", nil, session)

	assert.True(t, errors.Is(err, ErrEmptyCart))
}

func TestSubmit_RejectedBeforePaymentStep(t *testing.T) {
	co := newTestCoordinator(&mockPayments{}, &mockOrders{}, &mockNotifier{}, &mockCarts{})
	session := NewSession()
	session.Customer = filledCustomer()

	_, err := co.Submit(context.Background(), "user-1", testItems(), session)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSubmit_ProcessingFlagBlocksDuplicate(t *testing.T) {
	co := newTestCoordinator(&mockPayments{}, &mockOrders{}, &mockNotifier{}, &mockCarts{})
	session := sessionAtPayment()
	session.Processing = true

	_, err := co.Submit(context.Background(), "user-1", testItems(), session)

	assert.True(t, errors.Is(err, ErrAlreadyProcessing))
}

func TestSubmit_AfterSuccessIsRejected(t *testing.T) {
	co := newTestCoordinator(&mockPayments{}, &mockOrders{}, &mockNotifier{}, &mockCarts{})
	session := sessionAtPayment()
	session.MarkSuccess("BT-111111")

	_, err := co.Submit(context.Background(), "user-1", testItems(), session)

	assert.True(t, errors.Is(err, ErrAlreadySucceeded))
}

func TestSubmit_CartClearFailureDoesNotFailOrder(t *testing.T) {
	carts := &mockCarts{err: errors.New("redis down")}
	co := newTestCoordinator(&mockPayments{}, &mockOrders{}, &mockNotifier{}, carts)
	session := sessionAtPayment()

	order, err := co.Submit(context.Background(), "user-1", testItems(), session)

	require.NoError(t, err, "la commande est déjà persistée, on ne la casse pas")
	assert.NotNil(t, order)
	assert.True(t, session.Succeeded)
}
