package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"airlace/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentProcessor finalizes payment for an order.
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// SimulatedPaymentHandler is the demo processor: it waits a fixed delay
// and always succeeds. There is no decline path and the delay is never
// canceled.
type SimulatedPaymentHandler struct {
	logger *zap.Logger
	delay  time.Duration
}

// NewSimulatedPaymentHandler creates the demo processor with the given
// artificial delay.
func NewSimulatedPaymentHandler(logger *zap.Logger, delay time.Duration) *SimulatedPaymentHandler {
	return &SimulatedPaymentHandler{
		logger: logger,
		delay:  delay,
	}
}

func (h *SimulatedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	inv := newInvoice(req)

	time.Sleep(h.delay) // Simulate payment processing

	inv.PaymentID = "pi_" + uuid.New().String()
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()

	h.logger.Info("Simulated payment successful",
		zap.String("invoice", inv.InvoiceID),
		zap.String("method", inv.Method),
	)
	return inv, nil
}

// StripePaymentHandler charges through a Stripe PaymentIntent. Selected by
// config for runs against a Stripe test account.
type StripePaymentHandler struct {
	logger *zap.Logger
}

func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	inv := newInvoice(req)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(req.Amount * 100)),
		Currency: stripe.String(string(stripe.CurrencyINR)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		ReceiptEmail: stripe.String(req.Email),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()

	h.logger.Info("Stripe payment intent created",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID),
	)
	return inv, nil
}

func newInvoice(req models.PaymentRequest) *models.Invoice {
	return &models.Invoice{
		InvoiceID: uuid.New().String(),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	switch req.Method {
	case models.PaymentMethodCredit, models.PaymentMethodDebit,
		models.PaymentMethodUPI, models.PaymentMethodNetBanking:
		return nil
	default:
		return errors.New("unsupported method")
	}
}
