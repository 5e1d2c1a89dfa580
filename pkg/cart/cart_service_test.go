package cart

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/entities"
)

type fakeCartRepository struct {
	lines  []*entities.Cart
	nextID uint
}

func (r *fakeCartRepository) GetCartByUser(_ context.Context, userID string) ([]*entities.Cart, error) {
	var out []*entities.Cart
	for _, line := range r.lines {
		if line.UserID.String() == userID {
			out = append(out, line)
		}
	}
	return out, nil
}

func (r *fakeCartRepository) GetCartLine(_ context.Context, userID string, menuItemID uint) (*entities.Cart, error) {
	for _, line := range r.lines {
		if line.UserID.String() == userID && line.MenuItemID == menuItemID {
			return line, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCartRepository) AddCartLine(_ context.Context, line *entities.Cart) error {
	r.nextID++
	line.ID = r.nextID
	r.lines = append(r.lines, line)
	return nil
}

func (r *fakeCartRepository) UpdateCartLine(_ context.Context, line *entities.Cart) error {
	for i, l := range r.lines {
		if l.ID == line.ID {
			r.lines[i] = line
		}
	}
	return nil
}

func (r *fakeCartRepository) RemoveCartLine(_ context.Context, userID string, menuItemID uint) error {
	kept := r.lines[:0]
	for _, line := range r.lines {
		if !(line.UserID.String() == userID && line.MenuItemID == menuItemID) {
			kept = append(kept, line)
		}
	}
	r.lines = kept
	return nil
}

func (r *fakeCartRepository) ClearCart(_ context.Context, userID string) error {
	kept := r.lines[:0]
	for _, line := range r.lines {
		if line.UserID.String() != userID {
			kept = append(kept, line)
		}
	}
	r.lines = kept
	return nil
}

type fakeMenuLookup struct {
	items map[uint]*entities.MenuItem
}

func (r *fakeMenuLookup) GetMenuItemByID(_ context.Context, id uint) (*entities.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakeMenuLookup) AddMenuItem(_ context.Context, _ *entities.MenuItem) error    { return nil }
func (r *fakeMenuLookup) UpdateMenuItem(_ context.Context, _ *entities.MenuItem) error { return nil }
func (r *fakeMenuLookup) DeleteMenuItem(_ context.Context, _ uint) error               { return nil }
func (r *fakeMenuLookup) ListMenuItems(_ context.Context, _ domain.MenuItemFilter) ([]*entities.MenuItem, error) {
	return nil, nil
}
func (r *fakeMenuLookup) AddCategory(_ context.Context, _ *entities.Category) error { return nil }
func (r *fakeMenuLookup) GetCategoryByID(_ context.Context, _ uint) (*entities.Category, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeMenuLookup) ListCategories(_ context.Context) ([]*entities.Category, error) {
	return nil, nil
}

func newCartService() (CartService, *fakeCartRepository) {
	repo := &fakeCartRepository{}
	menuRepo := &fakeMenuLookup{items: map[uint]*entities.MenuItem{
		7: {ID: 7, Title: "Greek Salad", Price: 12.50},
		8: {ID: 8, Title: "Bruschetta", Price: 8.00},
	}}
	return NewCartService(repo, menuRepo), repo
}

func TestCartAddListRemove(t *testing.T) {
	c := qt.New(t)
	svc, _ := newCartService()
	userID := uuid.NewString()

	line, err := svc.AddToCart(context.Background(), userID, domain.AddToCartRequest{MenuItemID: 7, Quantity: 2})
	c.Assert(err, qt.IsNil)
	c.Assert(line.Quantity, qt.Equals, 2)
	c.Assert(line.UnitPrice, qt.Equals, 12.50)
	c.Assert(line.TotalPrice, qt.Equals, 25.00)

	lines, err := svc.GetCart(context.Background(), userID)
	c.Assert(err, qt.IsNil)
	c.Assert(lines, qt.HasLen, 1)
	c.Assert(lines[0].MenuItemID, qt.Equals, uint(7))
	c.Assert(lines[0].Quantity, qt.Equals, 2)

	c.Assert(svc.RemoveFromCart(context.Background(), userID, 7), qt.IsNil)

	lines, err = svc.GetCart(context.Background(), userID)
	c.Assert(err, qt.IsNil)
	c.Assert(lines, qt.HasLen, 0)
}

func TestAddToCartMergesExistingLine(t *testing.T) {
	c := qt.New(t)
	svc, _ := newCartService()
	userID := uuid.NewString()

	_, err := svc.AddToCart(context.Background(), userID, domain.AddToCartRequest{MenuItemID: 8, Quantity: 1})
	c.Assert(err, qt.IsNil)
	line, err := svc.AddToCart(context.Background(), userID, domain.AddToCartRequest{MenuItemID: 8, Quantity: 3})
	c.Assert(err, qt.IsNil)
	c.Assert(line.Quantity, qt.Equals, 4)
	c.Assert(line.TotalPrice, qt.Equals, 32.00)

	lines, err := svc.GetCart(context.Background(), userID)
	c.Assert(err, qt.IsNil)
	c.Assert(lines, qt.HasLen, 1)
}

func TestCartIsolatedPerUser(t *testing.T) {
	c := qt.New(t)
	svc, _ := newCartService()
	first := uuid.NewString()
	second := uuid.NewString()

	_, err := svc.AddToCart(context.Background(), first, domain.AddToCartRequest{MenuItemID: 7, Quantity: 1})
	c.Assert(err, qt.IsNil)

	lines, err := svc.GetCart(context.Background(), second)
	c.Assert(err, qt.IsNil)
	c.Assert(lines, qt.HasLen, 0)
}

func TestRemoveFromCartUnknownLine(t *testing.T) {
	c := qt.New(t)
	svc, _ := newCartService()

	err := svc.RemoveFromCart(context.Background(), uuid.NewString(), 7)
	c.Assert(err, qt.ErrorIs, domain.ErrCartLineNotFound)
}

func TestAddToCartUnknownItem(t *testing.T) {
	c := qt.New(t)
	svc, _ := newCartService()

	_, err := svc.AddToCart(context.Background(), uuid.NewString(), domain.AddToCartRequest{MenuItemID: 99, Quantity: 1})
	c.Assert(err, qt.ErrorIs, domain.ErrMenuItemNotFound)
}
