package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"airlace/database/repository/localstore"
	"airlace/models"
	"airlace/services/cart"

	"go.uber.org/zap"
)

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	Cart     cart.CartService
	Payments PaymentProcessor
	Orders   localstore.OrderStore
	Logger   *zap.Logger
}

func (s *DefaultCheckoutService) PlaceOrder(ctx context.Context, form models.CheckoutForm) (*models.Order, error) {
	items := s.Cart.Items()
	if len(items) == 0 {
		return nil, &EmptyCartError{}
	}

	if errs := ValidateForm(form); errs != nil {
		// No mutation on validation failure: cart and form stay intact.
		return nil, errs
	}

	total := s.Cart.CartTotal()
	invoice, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		Amount:   total,
		Currency: "INR",
		Method:   form.PaymentMethod,
		Email:    form.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("payment processing failed: %w", err)
	}

	// Snapshot the cart before clearing it: the order records what was
	// bought at submission time.
	order := &models.Order{
		ConfirmationID: newConfirmationID(),
		Items:          items,
		Total:          total,
		PaymentMethod:  form.PaymentMethod,
		Email:          form.Email,
		Invoice:        invoice,
		CreatedAt:      time.Now(),
	}

	if err := s.Cart.ClearCart(); err != nil {
		return nil, fmt.Errorf("failed to clear cart after payment: %w", err)
	}

	if err := s.Orders.SaveLastOrder(order.ConfirmationID); err != nil {
		s.Logger.Warn("failed to persist last order", zap.Error(err))
	}

	s.Logger.Info("Order placed",
		zap.String("confirmation", order.ConfirmationID),
		zap.Float64("total", order.Total),
		zap.Int("items", len(order.Items)),
	)
	return order, nil
}

func (s *DefaultCheckoutService) LastOrder() (string, error) {
	return s.Orders.LastOrder()
}

// newConfirmationID generates a confirmation number like AIR4821933.
func newConfirmationID() string {
	return fmt.Sprintf("AIR%d", 1000000+rand.Intn(9000000))
}
