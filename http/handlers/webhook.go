package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"counselling-module/db"
	"counselling-module/http/response"
	"counselling-module/services"
)

// RazorpayWebhook handles provider-initiated payment notifications. Every
// webhook is logged; only signature-valid capture events mutate orders.
func RazorpayWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	defer r.Body.Close()

	signature := r.Header.Get("X-Razorpay-Signature")
	signatureValid := services.VerifyWebhookSignature(bodyBytes, signature)

	var payload services.RazorpayWebhookPayload
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid payload format")
		return
	}

	log.Printf("[WEBHOOK] Received: %s (signature valid: %v)", payload.Event, signatureValid)

	orderID, paymentID := services.ExtractWebhookOrder(payload)
	logWebhook(payload.Event, orderID, signatureValid, bodyBytes)

	if !signatureValid {
		response.ErrorResponse(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	switch payload.Event {
	case "payment.captured", "order.paid":
		if orderID == "" {
			response.ErrorResponse(w, http.StatusBadRequest, "Webhook payload missing order id")
			return
		}
		if paymentSvc == nil {
			response.ErrorResponse(w, http.StatusInternalServerError, "Razorpay credentials not configured")
			return
		}
		if err := paymentSvc.MarkOrderPaid(r.Context(), orderID, paymentID); err != nil {
			log.Printf("[WEBHOOK] Error marking order paid: %v", err)
			response.ErrorResponse(w, http.StatusInternalServerError, "Error updating order")
			return
		}
		response.SendJSON(w, http.StatusOK, map[string]interface{}{"status": "processed", "event": payload.Event})
	default:
		// Acknowledge all webhooks even if we don't handle them
		response.SendJSON(w, http.StatusOK, map[string]interface{}{"status": "acknowledged", "event": payload.Event})
	}
}

func logWebhook(event, orderID string, signatureValid bool, payload []byte) {
	if db.DB == nil {
		return
	}
	_, err := db.DB.Exec(
		"INSERT INTO webhook_log (event, order_id, signature_valid, payload) VALUES ($1, $2, $3, $4)",
		event, orderID, signatureValid, string(payload))
	if err != nil {
		log.Printf("[WEBHOOK] DB error: %v", err)
	}
}
