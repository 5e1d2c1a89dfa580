package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/entities"
	"github.com/littlelemon/backend/pkg/menu"
)

type (
	CartService interface {
		GetCart(ctx context.Context, userID string) ([]domain.CartLineResponse, error)
		AddToCart(ctx context.Context, userID string, req domain.AddToCartRequest) (domain.CartLineResponse, error)
		RemoveFromCart(ctx context.Context, userID string, menuItemID uint) error
	}

	cartService struct {
		cartRepository CartRepository
		menuRepository menu.MenuRepository
	}
)

func NewCartService(cartRepository CartRepository, menuRepository menu.MenuRepository) CartService {
	return &cartService{
		cartRepository: cartRepository,
		menuRepository: menuRepository,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID string) ([]domain.CartLineResponse, error) {
	lines, err := s.cartRepository.GetCartByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CartLineResponse, 0, len(lines))
	for _, line := range lines {
		res := domain.CartLineResponse{
			ID:         line.ID,
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
		}
		if line.MenuItem != nil {
			res.Title = line.MenuItem.Title
		}
		result = append(result, res)
	}
	return result, nil
}

// AddToCart snapshots the menu item's price into the line. Later price
// changes do not touch existing lines.
func (s *cartService) AddToCart(ctx context.Context, userID string, req domain.AddToCartRequest) (domain.CartLineResponse, error) {
	if req.Quantity <= 0 {
		return domain.CartLineResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CartLineResponse{}, domain.ErrParseUUID
	}

	item, err := s.menuRepository.GetMenuItemByID(ctx, req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartLineResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.CartLineResponse{}, err
	}

	line, err := s.cartRepository.GetCartLine(ctx, userID, req.MenuItemID)
	switch {
	case err == nil:
		line.Quantity += req.Quantity
		line.TotalPrice = line.UnitPrice * float64(line.Quantity)
		if err := s.cartRepository.UpdateCartLine(ctx, line); err != nil {
			return domain.CartLineResponse{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		line = &entities.Cart{
			UserID:     userUUID,
			MenuItemID: item.ID,
			Quantity:   req.Quantity,
			UnitPrice:  item.Price,
			TotalPrice: item.Price * float64(req.Quantity),
		}
		if err := s.cartRepository.AddCartLine(ctx, line); err != nil {
			return domain.CartLineResponse{}, err
		}
	default:
		return domain.CartLineResponse{}, err
	}

	return domain.CartLineResponse{
		ID:         line.ID,
		MenuItemID: line.MenuItemID,
		Title:      item.Title,
		Quantity:   line.Quantity,
		UnitPrice:  line.UnitPrice,
		TotalPrice: line.TotalPrice,
	}, nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, userID string, menuItemID uint) error {
	if _, err := s.cartRepository.GetCartLine(ctx, userID, menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartLineNotFound
		}
		return err
	}
	return s.cartRepository.RemoveCartLine(ctx, userID, menuItemID)
}
