package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"counselling-module/models"
)

type fakeOrderGateway struct {
	calls   int
	orderID string
	err     error
}

func (f *fakeOrderGateway) CreateOrder(amountPaise int, currency, receipt string, notes map[string]interface{}) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.orderID, nil
}

func TestResolvePackage(t *testing.T) {
	svc := NewPaymentService(nil, &fakeOrderGateway{}, "secret")

	tests := []struct {
		price   string
		want    models.PackageType
		wantErr bool
	}{
		{price: "999", want: models.PackageStarter},
		{price: "4,999", want: models.PackageSilver},
		{price: "9999", want: models.PackageGold},
		{price: "9,999", want: models.PackageGold},
		{price: " 999 ", want: models.PackageStarter},
		{price: "1000", wantErr: true},
		{price: "abc", wantErr: true},
		{price: "", wantErr: true},
		{price: "4999.00", wantErr: true},
		{price: "-999", wantErr: true},
	}

	for _, tt := range tests {
		got, err := svc.ResolvePackage(tt.price)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownPackage) {
				t.Errorf("ResolvePackage(%q) err = %v, want ErrUnknownPackage", tt.price, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolvePackage(%q): %v", tt.price, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolvePackage(%q) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestCreateOrderRejectsUnknownPackage(t *testing.T) {
	gateway := &fakeOrderGateway{orderID: "order_1"}
	svc := NewPaymentService(nil, gateway, "secret")

	for _, pkg := range []models.PackageType{"", "platinum", "STARTER"} {
		_, err := svc.CreateOrder(context.Background(), models.PaymentOrder{
			PackageType: pkg,
			Name:        "Priya Nair",
			Email:       "priya@example.com",
		})
		if !errors.Is(err, ErrUnknownPackage) {
			t.Errorf("CreateOrder with package %q: err = %v, want ErrUnknownPackage", pkg, err)
		}
	}
	if gateway.calls != 0 {
		t.Errorf("gateway calls = %d, want 0 (fail closed before provider call)", gateway.calls)
	}
}

func signPayment(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	const secret = "test_key_secret"
	sig := signPayment(secret, "order_abc", "pay_xyz")

	if !VerifyPaymentSignature(secret, "order_abc", "pay_xyz", sig) {
		t.Error("valid signature rejected")
	}
	if VerifyPaymentSignature(secret, "order_abc", "pay_xyz", "deadbeef") {
		t.Error("tampered signature accepted")
	}
	if VerifyPaymentSignature(secret, "order_other", "pay_xyz", sig) {
		t.Error("signature accepted for a different order")
	}
	if VerifyPaymentSignature("wrong_secret", "order_abc", "pay_xyz", sig) {
		t.Error("signature accepted under the wrong secret")
	}
}

func TestVerifyPaymentSignatureEmptyFields(t *testing.T) {
	const secret = "test_key_secret"
	sig := signPayment(secret, "order_abc", "pay_xyz")

	cases := []struct {
		name                         string
		secret, orderID, payID, sign string
	}{
		{"empty secret", "", "order_abc", "pay_xyz", sig},
		{"empty order id", secret, "", "pay_xyz", sig},
		{"empty payment id", secret, "order_abc", "", sig},
		{"empty signature", secret, "order_abc", "pay_xyz", ""},
	}
	for _, tc := range cases {
		if VerifyPaymentSignature(tc.secret, tc.orderID, tc.payID, tc.sign) {
			t.Errorf("%s: signature accepted", tc.name)
		}
	}
}
