package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/internal/api/presenters"
	"github.com/littlelemon/backend/pkg/order"
)

type (
	PaymentHandler interface {
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	paymentHandler struct {
		orderService order.OrderService
	}
)

func NewPaymentHandler(orderService order.OrderService) PaymentHandler {
	return &paymentHandler{orderService: orderService}
}

func (h *paymentHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	notification := new(domain.PaymentNotification)

	if err := c.BodyParser(notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.orderService.HandlePaymentNotification(c.Context(), *notification); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedPaymentCallback, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessPaymentCallback)
}
