// Package payment simulates payment processing. There is no gateway behind
// it: card payments resolve after a fixed artificial delay and cash payments
// settle immediately. No cancellation path, no retries.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farmstead/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentHandler processes a payment request and returns an invoice.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// SimulatedPaymentHandler implements PaymentHandler with fake settlement.
type SimulatedPaymentHandler struct {
	logger *zap.Logger
	// CardDelay simulates gateway latency for card payments.
	CardDelay time.Duration
}

// NewPaymentHandler constructs a SimulatedPaymentHandler.
func NewPaymentHandler(logger *zap.Logger) *SimulatedPaymentHandler {
	return &SimulatedPaymentHandler{
		logger:    logger,
		CardDelay: 1 * time.Second,
	}
}

// ProcessPayment validates the request and settles it by method.
func (h *SimulatedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		SessionID: req.SessionID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch req.Method {
	case "card":
		return h.processCardPayment(ctx, req, inv)
	case "cash":
		return h.processCashPayment(req, inv)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

func (h *SimulatedPaymentHandler) processCardPayment(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	// Simulate card processing latency.
	select {
	case <-time.After(h.CardDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	inv.PaymentID = "pi_" + uuid.New().String()
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()

	h.logger.Info("Simulated card payment settled",
		zap.String("invoiceID", inv.InvoiceID),
		zap.String("sessionID", req.SessionID),
		zap.Float64("amount", req.Amount))
	return inv, nil
}

func (h *SimulatedPaymentHandler) processCashPayment(req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	// Cash settles on delivery; the invoice stays pending but is accepted.
	inv.PaymentID = "cash_" + uuid.New().String()
	inv.UpdatedAt = time.Now()

	h.logger.Info("Cash-on-delivery payment recorded",
		zap.String("invoiceID", inv.InvoiceID),
		zap.String("sessionID", req.SessionID),
		zap.Float64("amount", req.Amount))
	return inv, nil
}

func validateRequest(req models.PaymentRequest) error {
	if req.SessionID == "" {
		return errors.New("missing session id")
	}
	if req.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if req.Currency == "" {
		return errors.New("missing currency")
	}
	return nil
}
