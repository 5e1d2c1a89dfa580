package order

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/entities"
	"github.com/littlelemon/backend/pkg/cart"
	"github.com/littlelemon/backend/pkg/payment"
	"github.com/littlelemon/backend/pkg/user"
)

type (
	// Mailer sends the checkout confirmation. Delivery failures are logged,
	// never surfaced to the customer.
	Mailer interface {
		SendOrderConfirmation(email string, order *entities.Order) error
	}

	OrderService interface {
		ListOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		PlaceOrder(ctx context.Context, userID string, req domain.PlaceOrderRequest) (domain.OrderResponse, error)
		ListAssignedOrders(ctx context.Context, crewUserID string) ([]domain.OrderResponse, error)
		AssignOrder(ctx context.Context, req domain.AssignOrderRequest) error
		UpdateStatus(ctx context.Context, req domain.UpdateOrderStatusRequest) (uint, error)
		HandlePaymentNotification(ctx context.Context, notification domain.PaymentNotification) error
	}

	orderService struct {
		orderRepository OrderRepository
		cartRepository  cart.CartRepository
		userRepository  user.UserRepository
		paymentService  payment.PaymentService
		mailer          Mailer
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	cartRepository cart.CartRepository,
	userRepository user.UserRepository,
	paymentService payment.PaymentService,
	mailer Mailer,
) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		cartRepository:  cartRepository,
		userRepository:  userRepository,
		paymentService:  paymentService,
		mailer:          mailer,
	}
}

func (s *orderService) ListOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// PlaceOrder turns the user's cart into an order: total is the sum of the
// line totals, the cart is cleared afterwards. An invoice and the
// confirmation mail are side additions and never fail the checkout.
func (s *orderService) PlaceOrder(ctx context.Context, userID string, req domain.PlaceOrderRequest) (domain.OrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	lines, err := s.cartRepository.GetCartByUser(ctx, userID)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	if len(lines) == 0 {
		return domain.OrderResponse{}, domain.ErrEmptyCart
	}

	var total float64
	for _, line := range lines {
		total += line.TotalPrice
	}

	order := &entities.Order{
		UserID: userUUID,
		Status: entities.OrderStatusPlaced,
		Total:  total,
		Date:   time.Now(),
	}

	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}

	if err := s.cartRepository.ClearCart(ctx, userID); err != nil {
		return domain.OrderResponse{}, err
	}

	placer, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	if req.RequestInvoice {
		invoiceURL, err := s.paymentService.CreateInvoice(order, placer.Email)
		if err != nil {
			log.Printf("invoice request for order %d failed: %v", order.ID, err)
		} else {
			order.InvoiceURL = invoiceURL
			order.PaymentStatus = domain.PaymentStatusPending
			if err := s.orderRepository.UpdateOrder(ctx, order); err != nil {
				return domain.OrderResponse{}, err
			}
		}
	}

	if placer.Email != "" {
		go func(email string, order entities.Order) {
			if err := s.mailer.SendOrderConfirmation(email, &order); err != nil {
				log.Printf("confirmation mail for order %d failed: %v", order.ID, err)
			}
		}(placer.Email, *order)
	}

	return toOrderResponse(order), nil
}

func (s *orderService) ListAssignedOrders(ctx context.Context, crewUserID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.ListOrdersByCrew(ctx, crewUserID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// AssignOrder stores the crew assignment. The system this replaces dropped
// the write on the floor; here the update is part of the contract and a
// test fails if the assignment does not survive a re-read.
func (s *orderService) AssignOrder(ctx context.Context, req domain.AssignOrderRequest) error {
	order, err := s.orderRepository.GetOrderByID(ctx, req.Order)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	crew, err := s.userRepository.GetUserByID(ctx, req.Crew)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	order.DeliveryCrewID = &crew.ID
	return s.orderRepository.UpdateOrder(ctx, order)
}

// UpdateStatus overwrites the status code without transition checks; codes
// mean whatever the clients agree they mean.
func (s *orderService) UpdateStatus(ctx context.Context, req domain.UpdateOrderStatusRequest) (uint, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrOrderNotFound
		}
		return 0, err
	}

	order.Status = *req.Status
	if err := s.orderRepository.UpdateOrder(ctx, order); err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (s *orderService) HandlePaymentNotification(ctx context.Context, notification domain.PaymentNotification) error {
	orderID, status, err := s.paymentService.ResolveNotification(notification)
	if err != nil {
		return err
	}

	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	order.PaymentStatus = status
	return s.orderRepository.UpdateOrder(ctx, order)
}

func toOrderResponse(order *entities.Order) domain.OrderResponse {
	res := domain.OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID.String(),
		Status:        order.Status,
		Total:         order.Total,
		Date:          order.Date,
		PaymentStatus: order.PaymentStatus,
		InvoiceURL:    order.InvoiceURL,
	}
	if order.DeliveryCrewID != nil {
		res.DeliveryCrewID = order.DeliveryCrewID.String()
	}
	return res
}

func toOrderResponses(orders []*entities.Order) []domain.OrderResponse {
	result := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}
	return result
}
