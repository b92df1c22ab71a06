package models

import "time"

// PaymentOrder is the order-creation payload from the website checkout form.
type PaymentOrder struct {
	PackageType PackageType `json:"packageType"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	PhoneNo     string      `json:"phoneNo"`
	WhatsappNo  string      `json:"whatsappNo"`
}

// PaymentVerification carries the opaque identifiers the checkout widget
// hands back after completion. They are relayed verbatim; their presence
// alone is never treated as proof of payment.
type PaymentVerification struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// RazorpayOrder is the order returned to the client after creation. Amount is
// in whole rupees; the checkout widget multiplies by 100 itself.
type RazorpayOrder struct {
	OrderID  string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

// PaymentRecord mirrors a payment_order row.
type PaymentRecord struct {
	ID           int         `json:"id"`
	Reference    string      `json:"reference"`
	PackageType  PackageType `json:"package_type"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PhoneNo      string      `json:"phone_no"`
	WhatsappNo   string      `json:"whatsapp_no"`
	Amount       float64     `json:"amount"`
	Currency     string      `json:"currency"`
	Status       string      `json:"status"`
	OrderID      string      `json:"order_id"`
	PaymentID    string      `json:"payment_id"`
	RazorpaySign string      `json:"razorpay_signature"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
