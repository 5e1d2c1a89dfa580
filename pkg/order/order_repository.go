package order

import (
	"context"

	"gorm.io/gorm"

	"github.com/littlelemon/backend/entities"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id uint) (*entities.Order, error)
		UpdateOrder(ctx context.Context, order *entities.Order) error
		ListOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error)
		ListOrdersByCrew(ctx context.Context, crewUserID string) ([]*entities.Order, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uint) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ListOrdersByCrew(ctx context.Context, crewUserID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).Where("delivery_crew_id = ?", crewUserID).Order("date desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
