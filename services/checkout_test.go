package services

import (
	"errors"
	"testing"
)

func TestScriptCheckoutNotReadyUntilLoaded(t *testing.T) {
	c := NewScriptCheckout(func(session CheckoutSession) error { return nil })

	if c.Ready() {
		t.Fatal("checkout reported ready before Load")
	}
	if err := c.Open(CheckoutSession{OrderID: "order_1"}); !errors.Is(err, ErrCheckoutNotReady) {
		t.Fatalf("Open before load: err = %v, want ErrCheckoutNotReady", err)
	}
}

func TestScriptCheckoutLoadSuccess(t *testing.T) {
	var opened CheckoutSession
	c := NewScriptCheckout(func(session CheckoutSession) error {
		opened = session
		return nil
	})

	c.Load(func() error { return nil })
	if !c.Ready() {
		t.Fatal("checkout not ready after successful load")
	}

	session := CheckoutSession{Key: "rzp_test_key", AmountPaise: 99900, Currency: "INR", OrderID: "order_1"}
	if err := c.Open(session); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if opened != session {
		t.Errorf("opened session = %+v, want %+v", opened, session)
	}
}

func TestScriptCheckoutLoadFailureStaysNotReady(t *testing.T) {
	c := NewScriptCheckout(func(session CheckoutSession) error { return nil })

	c.Load(func() error { return errors.New("script blocked") })
	if c.Ready() {
		t.Fatal("checkout ready after failed load")
	}
	if err := c.Open(CheckoutSession{}); !errors.Is(err, ErrCheckoutNotReady) {
		t.Fatalf("Open after failed load: err = %v, want ErrCheckoutNotReady", err)
	}
}

func TestScriptCheckoutLoadsOnce(t *testing.T) {
	loads := 0
	c := NewScriptCheckout(func(session CheckoutSession) error { return nil })

	c.Load(func() error { loads++; return nil })
	c.Load(func() error { loads++; return nil })
	if loads != 1 {
		t.Errorf("loader ran %d times, want 1", loads)
	}
	if !c.Ready() {
		t.Error("checkout not ready after load")
	}
}
