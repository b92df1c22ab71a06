package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"counselling-module/config"
	apperrors "counselling-module/errors"
	"counselling-module/models"
	"counselling-module/utils"

	"github.com/google/uuid"
	"github.com/razorpay/razorpay-go"
)

// Payment precondition errors. Both abort before any network call.
var (
	ErrCheckoutNotReady = apperrors.NewPreconditionError("checkout is still loading, please wait")
	ErrUnknownPackage   = apperrors.NewInvalidParamsError("invalid package: price does not match any plan")
)

// OrderGateway creates orders with the upstream payment provider.
type OrderGateway interface {
	CreateOrder(amountPaise int, currency, receipt string, notes map[string]interface{}) (string, error)
}

// razorpayGateway is the production OrderGateway backed by razorpay-go.
type razorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway builds an OrderGateway from the configured credentials.
func NewRazorpayGateway() (OrderGateway, error) {
	keyID := config.AppConfig.RazorpayKeyID
	keySecret := config.AppConfig.RazorpayKeySecret
	if keyID == "" || keySecret == "" {
		return nil, apperrors.NewInternalServerError("razorpay credentials not configured")
	}
	return &razorpayGateway{client: razorpay.NewClient(keyID, keySecret)}, nil
}

func (g *razorpayGateway) CreateOrder(amountPaise int, currency, receipt string, notes map[string]interface{}) (string, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	resp, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("error creating razorpay order: %w", err)
	}

	orderID, ok := resp["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order response missing id")
	}
	return orderID, nil
}

// PaymentService owns the server side of the checkout flow: resolving plans,
// creating provider orders and verifying payment signatures.
type PaymentService struct {
	db        *sql.DB
	orders    OrderGateway
	keySecret string
}

func NewPaymentService(db *sql.DB, orders OrderGateway, keySecret string) *PaymentService {
	return &PaymentService{db: db, orders: orders, keySecret: keySecret}
}

// ResolvePackage maps a displayed price to its package identifier. The price
// string may carry comma thousands-separators ("4,999"). Anything that does
// not match a plan exactly fails closed before any network call.
func (s *PaymentService) ResolvePackage(displayPrice string) (models.PackageType, error) {
	price, err := utils.NormalizePrice(displayPrice)
	if err != nil {
		return "", ErrUnknownPackage
	}
	plan := models.PlanByPrice(price)
	if plan == nil {
		return "", ErrUnknownPackage
	}
	return plan.PackageType, nil
}

// CreateOrder creates a provider order for the plan behind the payment's
// package type, records it as PENDING and returns order id and amount in
// whole rupees. The server is the authority on both.
func (s *PaymentService) CreateOrder(ctx context.Context, order models.PaymentOrder) (*models.RazorpayOrder, error) {
	if !order.PackageType.Valid() {
		return nil, ErrUnknownPackage
	}
	plan := models.PlanByPackage(order.PackageType)
	if plan == nil {
		return nil, ErrUnknownPackage
	}

	receipt := fmt.Sprintf("rcpt_%s", uuid.NewString())

	orderID, err := s.orders.CreateOrder(utils.ToPaise(plan.Price), "INR", receipt, map[string]interface{}{
		"package_type": string(order.PackageType),
		"email":        order.Email,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[PAYMENT] Order created - OrderID: %s, Package: %s, Amount: %d", orderID, order.PackageType, plan.Price)

	if err := s.savePendingOrder(ctx, order, plan, orderID, receipt); err != nil {
		return nil, err
	}

	s.publishPaymentInitiated(order, plan, orderID)

	return &models.RazorpayOrder{
		OrderID:  orderID,
		Amount:   float64(plan.Price),
		Currency: "INR",
		Receipt:  receipt,
	}, nil
}

func (s *PaymentService) savePendingOrder(ctx context.Context, order models.PaymentOrder, plan *models.PricingPlan, orderID, receipt string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payment_order (reference, package_type, name, email, phone_no, whatsapp_no, amount, currency, status, order_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		receipt, string(order.PackageType), order.Name, order.Email, order.PhoneNo, order.WhatsappNo,
		float64(plan.Price), "INR", utils.StatusPending, orderID)
	if err != nil {
		log.Printf("[PAYMENT] Error saving payment order: %v", err)
		return fmt.Errorf("error saving payment order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

func (s *PaymentService) publishPaymentInitiated(order models.PaymentOrder, plan *models.PricingPlan, orderID string) {
	go func() {
		evt := map[string]interface{}{
			"event":        "payment.initiated",
			"order_id":     orderID,
			"package_type": string(order.PackageType),
			"email":        order.Email,
			"amount":       plan.Price,
			"currency":     "INR",
			"status":       utils.StatusPending,
			"ts":           time.Now().UTC().Format(time.RFC3339),
		}
		if err := Publish(topicFor(TopicPayments), fmt.Sprintf("order-%s", orderID), evt); err != nil {
			log.Printf("Warning: failed to publish payment.initiated event: %v", err)
		}
	}()
}

// VerifyPaymentSignature recomputes the HMAC-SHA256 of "orderID|paymentID"
// with the key secret and compares it with the supplied signature in
// constant time. Field presence alone is never proof of payment.
func VerifyPaymentSignature(keySecret, orderID, paymentID, signature string) bool {
	if keySecret == "" || orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(keySecret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyPayment checks the checkout completion data and settles the order.
// It returns true only when the signature verifies AND the order flips to
// PAID; every failure path returns false without an HTTP-level error so the
// client sees an explicit {success:false}.
func (s *PaymentService) VerifyPayment(ctx context.Context, v models.PaymentVerification) (bool, error) {
	if !VerifyPaymentSignature(s.keySecret, v.RazorpayOrderID, v.RazorpayPaymentID, v.RazorpaySignature) {
		log.Printf("[PAYMENT] Signature mismatch - OrderID: %s", v.RazorpayOrderID)
		return false, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	var record models.PaymentRecord
	err = tx.QueryRowContext(ctx,
		"SELECT id, name, email, package_type, amount FROM payment_order WHERE order_id = $1",
		v.RazorpayOrderID,
	).Scan(&record.ID, &record.Name, &record.Email, &record.PackageType, &record.Amount)
	if err != nil {
		log.Printf("[PAYMENT] Payment lookup failed - OrderID: %s, Error: %v", v.RazorpayOrderID, err)
		return false, fmt.Errorf("payment not found for order_id: %s", v.RazorpayOrderID)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE payment_order SET status = $1, payment_id = $2, razorpay_sign = $3, updated_at = CURRENT_TIMESTAMP WHERE order_id = $4",
		utils.StatusPaid, v.RazorpayPaymentID, v.RazorpaySignature, v.RazorpayOrderID)
	if err != nil {
		log.Printf("[PAYMENT] Error updating payment order: %v", err)
		return false, fmt.Errorf("error updating payment order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("error committing transaction: %w", err)
	}

	log.Printf("[PAYMENT] Payment verified - OrderID: %s, Email: %s", v.RazorpayOrderID, record.Email)

	s.publishPaymentVerified(v, record)
	s.queueReceipt(v.RazorpayOrderID, record)

	return true, nil
}

func (s *PaymentService) publishPaymentVerified(v models.PaymentVerification, record models.PaymentRecord) {
	go func() {
		evt := map[string]interface{}{
			"event":        "payment.verified",
			"order_id":     v.RazorpayOrderID,
			"payment_id":   v.RazorpayPaymentID,
			"package_type": string(record.PackageType),
			"email":        record.Email,
			"status":       utils.StatusPaid,
			"ts":           time.Now().UTC().Format(time.RFC3339),
		}
		if err := Publish(topicFor(TopicPayments), fmt.Sprintf("order-%s", v.RazorpayOrderID), evt); err != nil {
			log.Printf("Warning: failed to publish payment.verified event: %v", err)
		}
	}()
}

func (s *PaymentService) queueReceipt(orderID string, record models.PaymentRecord) {
	plan := models.PlanByPackage(record.PackageType)
	if plan == nil {
		log.Printf("Warning: paid order %s references unknown package %q", orderID, record.PackageType)
		return
	}
	go func() {
		receiptPath, err := GenerateReceipt(record.Name, record.Email, *plan, orderID)
		if err != nil {
			log.Printf("Warning: failed to generate receipt PDF: %v", err)
			receiptPath = ""
		}
		if err := SendPaymentReceiptEmail(record.Name, record.Email, *plan, orderID, receiptPath); err != nil {
			log.Printf("Warning: failed to queue receipt email: %v", err)
		}
	}()
}

// MarkOrderPaid flips an order to PAID without an email/receipt cycle. Used
// by the webhook path where the provider is the caller.
func (s *PaymentService) MarkOrderPaid(ctx context.Context, orderID, paymentID string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE payment_order SET status = $1, payment_id = $2, updated_at = CURRENT_TIMESTAMP WHERE order_id = $3 AND status <> $1",
		utils.StatusPaid, paymentID, orderID)
	if err != nil {
		return fmt.Errorf("error updating payment order: %w", err)
	}
	rows, _ := result.RowsAffected()
	log.Printf("[WEBHOOK] Order %s marked PAID, rows affected: %d", orderID, rows)
	return nil
}
