package cart

import (
	"context"

	"gorm.io/gorm"

	"github.com/littlelemon/backend/entities"
)

type (
	CartRepository interface {
		GetCartByUser(ctx context.Context, userID string) ([]*entities.Cart, error)
		GetCartLine(ctx context.Context, userID string, menuItemID uint) (*entities.Cart, error)
		AddCartLine(ctx context.Context, line *entities.Cart) error
		UpdateCartLine(ctx context.Context, line *entities.Cart) error
		RemoveCartLine(ctx context.Context, userID string, menuItemID uint) error
		ClearCart(ctx context.Context, userID string) error
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetCartByUser(ctx context.Context, userID string) ([]*entities.Cart, error) {
	var lines []*entities.Cart
	if err := r.db.WithContext(ctx).Preload("MenuItem").Where("user_id = ?", userID).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *cartRepository) GetCartLine(ctx context.Context, userID string, menuItemID uint) (*entities.Cart, error) {
	var line entities.Cart
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *cartRepository) AddCartLine(ctx context.Context, line *entities.Cart) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *cartRepository) UpdateCartLine(ctx context.Context, line *entities.Cart) error {
	return r.db.WithContext(ctx).Save(line).Error
}

func (r *cartRepository) RemoveCartLine(ctx context.Context, userID string, menuItemID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Delete(&entities.Cart{}).Error
}

func (r *cartRepository) ClearCart(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.Cart{}).Error
}
