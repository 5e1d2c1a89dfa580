package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetOrders       = "orders retrieved successfully"
	MessageSuccessPlaceOrder      = "order placed successfully"
	MessageSuccessAssignOrder     = "Order assigned to delivery crew successfully"
	MessageSuccessUpdateOrder     = "order updated successfully"
	MessageSuccessGetCrewOrders   = "assigned orders retrieved successfully"
	MessageSuccessPaymentCallback = "payment notification processed"

	MessageFailedGetOrders       = "failed to retrieve orders"
	MessageFailedPlaceOrder      = "failed to place order"
	MessageFailedAssignOrder     = "failed to assign order to delivery crew"
	MessageFailedUpdateOrder     = "failed to update order"
	MessageFailedGetCrewOrders   = "failed to retrieve assigned orders"
	MessageFailedPaymentCallback = "failed to process payment notification"

	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrPaymentFailed = errors.New("payment request failed")
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusSettled = "Settled"
	PaymentStatusFailed  = "Failed"
)

type (
	PlaceOrderRequest struct {
		// RequestInvoice asks for a Midtrans Snap invoice alongside the order.
		RequestInvoice bool `json:"request_invoice"`
	}

	OrderResponse struct {
		ID             uint      `json:"id"`
		UserID         string    `json:"user_id"`
		DeliveryCrewID string    `json:"delivery_crew_id,omitempty"`
		Status         int       `json:"status"`
		Total          float64   `json:"total"`
		Date           time.Time `json:"date"`
		PaymentStatus  string    `json:"payment_status,omitempty"`
		InvoiceURL     string    `json:"invoice_url,omitempty"`
	}

	AssignOrderRequest struct {
		Order uint   `json:"order" validate:"required"`
		Crew  string `json:"crew" validate:"required,uuid"`
	}

	UpdateOrderStatusRequest struct {
		ID     uint `json:"id" validate:"required"`
		Status *int `json:"status" validate:"required"`
	}

	PaymentNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
