package payment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/entities"
	"github.com/littlelemon/backend/internal/utils"
)

type (
	PaymentService interface {
		CreateInvoice(order *entities.Order, email string) (string, error)
		ResolveNotification(notification domain.PaymentNotification) (uint, string, error)
	}

	paymentService struct {
		client snap.Client
	}
)

func NewPaymentService() PaymentService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &paymentService{client: client}
}

func (s *paymentService) CreateInvoice(order *entities.Order, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  paymentReference(order.ID),
			GrossAmt: int64(order.Total),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: email,
		},
	}

	resp, err := s.client.CreateTransaction(req)
	if err != nil {
		return "", domain.ErrPaymentFailed
	}
	return resp.RedirectURL, nil
}

// ResolveNotification maps a Midtrans callback onto an order id and the
// payment status to store.
func (s *paymentService) ResolveNotification(notification domain.PaymentNotification) (uint, string, error) {
	orderID, err := parsePaymentReference(notification.OrderID)
	if err != nil {
		return 0, "", err
	}

	status := domain.PaymentStatusPending
	switch notification.TransactionStatus {
	case "capture":
		if notification.FraudStatus == "accept" {
			status = domain.PaymentStatusSettled
		}
	case "settlement":
		status = domain.PaymentStatusSettled
	case "deny", "cancel", "expire", "failure":
		status = domain.PaymentStatusFailed
	}
	return orderID, status, nil
}

func paymentReference(orderID uint) string {
	return fmt.Sprintf("ORDER-%d", orderID)
}

func parsePaymentReference(ref string) (uint, error) {
	raw, ok := strings.CutPrefix(ref, "ORDER-")
	if !ok {
		return 0, domain.ErrOrderNotFound
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, domain.ErrOrderNotFound
	}
	return uint(id), nil
}
