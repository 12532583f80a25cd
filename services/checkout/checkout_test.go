package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"airlace/database/repository/localstore"
	"airlace/models"
	"airlace/services/cart"
	"airlace/utils"
)

func validForm() models.CheckoutForm {
	return models.CheckoutForm{
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "+91 98765-43210",
		Address:       "12 MG Road",
		City:          "Bengaluru",
		State:         "Karnataka",
		ZipCode:       "560001",
		PaymentMethod: models.PaymentMethodCredit,
		CardName:      "Asha Rao",
		CardNumber:    "4111111111111111",
		CardExpiry:    "12/27",
		CardCvv:       "123",
	}
}

func newTestCheckout(t *testing.T) (*DefaultCheckoutService, cart.CartService, *localstore.MemoryStore) {
	t.Helper()
	store := localstore.NewMemoryStore()
	cartSvc := cart.NewCartService(store)
	svc := &DefaultCheckoutService{
		Cart:     cartSvc,
		Payments: NewSimulatedPaymentHandler(utils.GetLogger(), time.Millisecond),
		Orders:   store,
		Logger:   utils.GetLogger(),
	}
	return svc, cartSvc, store
}

func addItem(t *testing.T, cartSvc cart.CartService, id string, price float64) {
	t.Helper()
	_, err := cartSvc.AddToCart(models.CartItem{
		ID:       id,
		Property: models.Property{ID: id, Price: price},
		CheckIn:  "2026-09-01",
		CheckOut: "2026-09-05",
		Guests:   2,
		Price:    price,
	})
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
}

func TestPlaceOrderRefusesEmptyCart(t *testing.T) {
	svc, _, _ := newTestCheckout(t)

	_, err := svc.PlaceOrder(context.Background(), validForm())
	var emptyCart *EmptyCartError
	if !errors.As(err, &emptyCart) {
		t.Fatalf("want EmptyCartError, got %v", err)
	}
}

func TestPlaceOrderSuccessClearsCartAndConfirms(t *testing.T) {
	svc, cartSvc, store := newTestCheckout(t)
	addItem(t, cartSvc, "1", 19960)
	addItem(t, cartSvc, "2", 15560)

	order, err := svc.PlaceOrder(context.Background(), validForm())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if len(order.ConfirmationID) != 10 || order.ConfirmationID[:3] != "AIR" {
		t.Fatalf("confirmation id = %q", order.ConfirmationID)
	}
	if order.Total != 35520 {
		t.Fatalf("order total = %v, want 35520", order.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("order snapshot has %d items, want 2", len(order.Items))
	}
	if order.Invoice == nil || order.Invoice.Status != "paid" {
		t.Fatalf("invoice = %+v", order.Invoice)
	}
	if cartSvc.CartCount() != 0 {
		t.Fatalf("cart should be empty after checkout, count = %d", cartSvc.CartCount())
	}

	last, err := store.LastOrder()
	if err != nil {
		t.Fatalf("LastOrder: %v", err)
	}
	if last != order.ConfirmationID {
		t.Fatalf("persisted last order = %q, want %q", last, order.ConfirmationID)
	}
}

func TestPlaceOrderValidationFailureLeavesCartIntact(t *testing.T) {
	svc, cartSvc, _ := newTestCheckout(t)
	addItem(t, cartSvc, "1", 19960)

	form := validForm()
	form.PaymentMethod = models.PaymentMethodUPI
	form.UpiID = ""

	_, err := svc.PlaceOrder(context.Background(), form)
	var validation ValidationErrors
	if !errors.As(err, &validation) {
		t.Fatalf("want ValidationErrors, got %v", err)
	}
	if _, ok := validation["upiId"]; !ok {
		t.Fatalf("missing UPI id should be reported, got %v", validation)
	}
	if cartSvc.CartCount() != 1 {
		t.Fatalf("validation failure must not touch the cart")
	}
}
