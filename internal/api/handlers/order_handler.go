package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/internal/api/presenters"
	"github.com/littlelemon/backend/pkg/order"
)

type (
	OrderHandler interface {
		GetOrders(c *fiber.Ctx) error
		PlaceOrder(c *fiber.Ctx) error
		GetAssignedOrders(c *fiber.Ctx) error
		AssignOrder(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) GetOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orders, err := h.orderService.ListOrders(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetOrders, err)
	}

	return presenters.JSONResponse(c, fiber.StatusOK, orders)
}

func (h *orderHandler) PlaceOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.PlaceOrderRequest)

	// An empty body is a plain checkout.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	res, err := h.orderService.PlaceOrder(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedPlaceOrder, err)
	}

	return presenters.JSONResponse(c, fiber.StatusCreated, res)
}

// GetAssignedOrders lists the orders assigned to the requesting crew member
// only; another crew member's assignments never appear.
func (h *orderHandler) GetAssignedOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orders, err := h.orderService.ListAssignedOrders(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetCrewOrders, err)
	}

	return presenters.JSONResponse(c, fiber.StatusOK, orders)
}

func (h *orderHandler) AssignOrder(c *fiber.Ctx) error {
	req := new(domain.AssignOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssignOrder, err)
	}

	if err := h.orderService.AssignOrder(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAssignOrder, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessAssignOrder)
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateOrderStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrder, err)
	}

	id, err := h.orderService.UpdateStatus(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateOrder, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, fmt.Sprintf("Order %d updated successfully", id))
}
