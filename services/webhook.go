package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"counselling-module/config"
)

// RazorpayWebhookPayload represents the structure of a Razorpay webhook payload
type RazorpayWebhookPayload struct {
	ID        string                 `json:"id"`
	Event     string                 `json:"event"`
	CreatedAt int64                  `json:"created_at"`
	Contains  []string               `json:"contains"`
	Payload   map[string]interface{} `json:"payload"`
}

// VerifyWebhookSignature verifies the signature of the incoming webhook
func VerifyWebhookSignature(payload []byte, signature string) bool {
	webhookSecret := config.AppConfig.RazorpayWebhookSecret
	if webhookSecret == "" {
		return false
	}

	h := hmac.New(sha256.New, []byte(webhookSecret))
	h.Write(payload)
	expectedSignature := hex.EncodeToString(h.Sum(nil))

	// Constant-time comparison
	return hmac.Equal([]byte(expectedSignature), []byte(signature))
}

// ExtractWebhookOrder pulls order and payment ids out of a webhook payload.
// Razorpay nests them under payload.payment.entity.
func ExtractWebhookOrder(p RazorpayWebhookPayload) (orderID, paymentID string) {
	payment, ok := p.Payload["payment"].(map[string]interface{})
	if !ok {
		return "", ""
	}
	entity, ok := payment["entity"].(map[string]interface{})
	if !ok {
		return "", ""
	}
	orderID, _ = entity["order_id"].(string)
	paymentID, _ = entity["id"].(string)
	return orderID, paymentID
}
