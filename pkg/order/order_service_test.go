package order

import (
	"context"
	"sync"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/entities"
)

// fakeOrderRepository hands out copies, the way a real store does: a change
// to a fetched order is invisible until UpdateOrder writes it back. The
// assignment durability test depends on that.
type fakeOrderRepository struct {
	orders map[uint]*entities.Order
	nextID uint
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: map[uint]*entities.Order{}, nextID: 1}
}

func (r *fakeOrderRepository) CreateOrder(_ context.Context, order *entities.Order) error {
	order.ID = r.nextID
	r.nextID++
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepository) GetOrderByID(_ context.Context, id uint) (*entities.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepository) UpdateOrder(_ context.Context, order *entities.Order) error {
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepository) ListOrdersByUser(_ context.Context, userID string) ([]*entities.Order, error) {
	var out []*entities.Order
	for _, order := range r.orders {
		if order.UserID.String() == userID {
			copied := *order
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeOrderRepository) ListOrdersByCrew(_ context.Context, crewUserID string) ([]*entities.Order, error) {
	var out []*entities.Order
	for _, order := range r.orders {
		if order.DeliveryCrewID != nil && order.DeliveryCrewID.String() == crewUserID {
			copied := *order
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeCartRepo struct {
	lines map[string][]*entities.Cart
}

func (r *fakeCartRepo) GetCartByUser(_ context.Context, userID string) ([]*entities.Cart, error) {
	return r.lines[userID], nil
}
func (r *fakeCartRepo) GetCartLine(_ context.Context, _ string, _ uint) (*entities.Cart, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeCartRepo) AddCartLine(_ context.Context, _ *entities.Cart) error    { return nil }
func (r *fakeCartRepo) UpdateCartLine(_ context.Context, _ *entities.Cart) error { return nil }
func (r *fakeCartRepo) RemoveCartLine(_ context.Context, _ string, _ uint) error { return nil }
func (r *fakeCartRepo) ClearCart(_ context.Context, userID string) error {
	delete(r.lines, userID)
	return nil
}

type fakeUserRepo struct {
	users map[string]*entities.User
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}
func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}
func (r *fakeUserRepo) GetUserByUsername(_ context.Context, _ string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeUserRepo) GetGroupByName(_ context.Context, _ string) (*entities.Group, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeUserRepo) AddUserToGroup(_ context.Context, _ *entities.User, _ *entities.Group) error {
	return nil
}
func (r *fakeUserRepo) RemoveUserFromGroup(_ context.Context, _ *entities.User, _ *entities.Group) error {
	return nil
}

type fakePayment struct {
	invoices int
}

func (p *fakePayment) CreateInvoice(order *entities.Order, _ string) (string, error) {
	p.invoices++
	return "https://pay.test/invoice/1", nil
}

func (p *fakePayment) ResolveNotification(n domain.PaymentNotification) (uint, string, error) {
	if n.TransactionStatus == "settlement" {
		return 1, domain.PaymentStatusSettled, nil
	}
	return 1, domain.PaymentStatusPending, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *fakeMailer) SendOrderConfirmation(email string, _ *entities.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, email)
	return nil
}

type orderFixture struct {
	svc      OrderService
	orders   *fakeOrderRepository
	carts    *fakeCartRepo
	users    *fakeUserRepo
	payments *fakePayment
	mailer   *fakeMailer
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		orders:   newFakeOrderRepository(),
		carts:    &fakeCartRepo{lines: map[string][]*entities.Cart{}},
		users:    &fakeUserRepo{users: map[string]*entities.User{}},
		payments: &fakePayment{},
		mailer:   &fakeMailer{},
	}
	f.svc = NewOrderService(f.orders, f.carts, f.users, f.payments, f.mailer)
	return f
}

func (f *orderFixture) addUser(email string) *entities.User {
	user := &entities.User{ID: uuid.New(), Username: "customer", Email: email}
	f.users.users[user.ID.String()] = user
	return user
}

func (f *orderFixture) fillCart(userID uuid.UUID, totals ...float64) {
	for i, total := range totals {
		f.carts.lines[userID.String()] = append(f.carts.lines[userID.String()], &entities.Cart{
			ID:         uint(i + 1),
			UserID:     userID,
			MenuItemID: uint(i + 1),
			Quantity:   1,
			UnitPrice:  total,
			TotalPrice: total,
		})
	}
}

func TestPlaceOrderFromCart(t *testing.T) {
	c := qt.New(t)
	f := newOrderFixture()
	customer := f.addUser("customer@example.com")
	f.fillCart(customer.ID, 25.00, 8.00)

	res, err := f.svc.PlaceOrder(context.Background(), customer.ID.String(), domain.PlaceOrderRequest{})
	c.Assert(err, qt.IsNil)
	c.Assert(res.Total, qt.Equals, 33.00)
	c.Assert(res.Status, qt.Equals, entities.OrderStatusPlaced)

	// Checkout empties the cart.
	lines, err := f.carts.GetCartByUser(context.Background(), customer.ID.String())
	c.Assert(err, qt.IsNil)
	c.Assert(lines, qt.HasLen, 0)

	orders, err := f.svc.ListOrders(context.Background(), customer.ID.String())
	c.Assert(err, qt.IsNil)
	c.Assert(orders, qt.HasLen, 1)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	c := qt.New(t)
	f := newOrderFixture()
	customer := f.addUser("customer@example.com")

	_, err := f.svc.PlaceOrder(context.Background(), customer.ID.String(), domain.PlaceOrderRequest{})
	c.Assert(err, qt.ErrorIs, domain.ErrEmptyCart)
}

func TestPlaceOrderWithInvoice(t *testing.T) {
	c := qt.New(t)
	f := newOrderFixture()
	customer := f.addUser("customer@example.com")
	f.fillCart(customer.ID, 25.00)

	res, err := f.svc.PlaceOrder(context.Background(), customer.ID.String(), domain.PlaceOrderRequest{RequestInvoice: true})
	c.Assert(err, qt.IsNil)
	c.Assert(res.InvoiceURL, qt.Equals, "https://pay.test/invoice/1")
	c.Assert(res.PaymentStatus, qt.Equals, domain.PaymentStatusPending)
	c.Assert(f.payments.invoices, qt.Equals, 1)
}

// The crew assignment must survive a fresh read from storage.
func TestAssignOrderDurable(t *testing.T) {
	c := qt.New(t)
	f := newOrderFixture()
	customer := f.addUser("customer@example.com")
	crew := f.addUser("crew@example.com")
	f.fillCart(customer.ID, 25.00)

	placed, err := f.svc.PlaceOrder(context.Background(), customer.ID.String(), domain.PlaceOrderRequest{})
	c.Assert(err, qt.IsNil)

	err = f.svc.AssignOrder(context.Background(), domain.AssignOrderRequest{Order: placed.ID, Crew: crew.ID.String()})
	c.Assert(err, qt.IsNil)

	stored, err := f.orders.GetOrderByID(context.Background(), placed.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(stored.DeliveryCrewID, qt.Not(qt.IsNil))
	c.Assert(stored.DeliveryCrewID.String(), qt.Equals, crew.ID.String())
}

func TestAssignedOrdersPerCrew(t *testing.T) {
	c := qt.New(t)
	f := newOrderFixture()
	customer := f.addUser("customer@example.com")
	crewA := f.addUser("a@example.com")
	crewB := f.addUser("b@example.com")

	f.fillCart(customer.ID, 25.00)
	placed, err := f.svc.PlaceOrder(context.Background(), customer.ID.String(), domain.PlaceOrderRequest{})
	c.Assert(err, qt.IsNil)

	err = f.svc.AssignOrder(context.Background(), domain.AssignOrderRequest{Order: placed.ID, Crew: crewA.ID.String()})
	c.Assert(err, qt.IsNil)

	assignedA, err := f.svc.ListAssignedOrders(context.Background(), crewA.ID.String())
	c.Assert(err, qt.IsNil)
	c.Assert(assignedA, qt.HasLen, 1)
	c.Assert(assignedA[0].ID, qt.Equals, placed.ID)

	assignedB, err := f.svc.ListAssignedOrders(context.Background(), crewB.ID.String())
	c.Assert(err, qt.IsNil)
	c.Assert(assignedB, qt.HasLen, 0)
}

func TestAssignOrderUnknownOrder(t *testing.T) {
	c := qt.New(t)
	f := newOrderFixture()
	crew := f.addUser("crew@example.com")

	err := f.svc.AssignOrder(context.Background(), domain.AssignOrderRequest{Order: 404, Crew: crew.ID.String()})
	c.Assert(err, qt.ErrorIs, domain.ErrOrderNotFound)
}

func TestUpdateStatusOverwritesAnyCode(t *testing.T) {
	c := qt.New(t)
	f := newOrderFixture()
	customer := f.addUser("customer@example.com")
	f.fillCart(customer.ID, 25.00)

	placed, err := f.svc.PlaceOrder(context.Background(), customer.ID.String(), domain.PlaceOrderRequest{})
	c.Assert(err, qt.IsNil)

	// Status codes carry no transition rules; any int may follow any other.
	for _, code := range []int{3, 1, 99, 0} {
		status := code
		id, err := f.svc.UpdateStatus(context.Background(), domain.UpdateOrderStatusRequest{ID: placed.ID, Status: &status})
		c.Assert(err, qt.IsNil)
		c.Assert(id, qt.Equals, placed.ID)

		stored, err := f.orders.GetOrderByID(context.Background(), placed.ID)
		c.Assert(err, qt.IsNil)
		c.Assert(stored.Status, qt.Equals, code)
	}
}

func TestHandlePaymentNotification(t *testing.T) {
	c := qt.New(t)
	f := newOrderFixture()
	customer := f.addUser("customer@example.com")
	f.fillCart(customer.ID, 25.00)

	placed, err := f.svc.PlaceOrder(context.Background(), customer.ID.String(), domain.PlaceOrderRequest{})
	c.Assert(err, qt.IsNil)

	err = f.svc.HandlePaymentNotification(context.Background(), domain.PaymentNotification{
		OrderID:           "ORDER-1",
		TransactionStatus: "settlement",
	})
	c.Assert(err, qt.IsNil)

	stored, err := f.orders.GetOrderByID(context.Background(), placed.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(stored.PaymentStatus, qt.Equals, domain.PaymentStatusSettled)
}

func TestPlaceOrderSendsConfirmation(t *testing.T) {
	c := qt.New(t)
	f := newOrderFixture()
	customer := f.addUser("customer@example.com")
	f.fillCart(customer.ID, 25.00)

	_, err := f.svc.PlaceOrder(context.Background(), customer.ID.String(), domain.PlaceOrderRequest{})
	c.Assert(err, qt.IsNil)

	// The mail goes out asynchronously.
	deadline := time.Now().Add(time.Second)
	for {
		f.mailer.mu.Lock()
		sent := len(f.mailer.sent)
		f.mailer.mu.Unlock()
		if sent == 1 || time.Now().After(deadline) {
			c.Assert(sent, qt.Equals, 1)
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
}
