package handlers

import (
	"log"
	"net/http"

	"counselling-module/http/response"
	"counselling-module/models"
	"counselling-module/utils"
)

// PaymentForm handles POST /payment/paymentForm: creates a provider order
// for the selected package and returns {order: {id, amount}}. The amount is
// in whole rupees; the checkout widget converts to paise itself.
func PaymentForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if paymentSvc == nil {
		response.ErrorResponse(w, http.StatusInternalServerError, "Razorpay credentials not configured")
		return
	}

	var req models.PaymentOrder
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	// Fail closed on anything but the three known tiers, before any
	// provider call.
	if !req.PackageType.Valid() {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid package type")
		return
	}
	if err := utils.ValidateName(req.Name); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateMobile(req.PhoneNo); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := paymentSvc.CreateOrder(r.Context(), req)
	if err != nil {
		log.Printf("Error creating payment order: %v", err)
		response.ErrorResponse(w, http.StatusInternalServerError, "Error creating order")
		return
	}

	response.SendJSON(w, http.StatusOK, map[string]interface{}{
		"order": order,
	})
}

// VerifyPayment handles POST /payment/verifyPayment: relays the checkout
// widget's completion fields to signature verification and answers with an
// explicit success boolean. A mismatch is a 200 with success=false, not an
// HTTP error - the client must trust only this flag.
func VerifyPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if paymentSvc == nil {
		response.ErrorResponse(w, http.StatusInternalServerError, "Razorpay credentials not configured")
		return
	}

	var req models.PaymentVerification
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	ok, err := paymentSvc.VerifyPayment(r.Context(), req)
	if err != nil {
		log.Printf("Error verifying payment: %v", err)
		response.ErrorResponse(w, http.StatusInternalServerError, "Error verifying payment")
		return
	}

	response.SendJSON(w, http.StatusOK, map[string]interface{}{
		"success": ok,
	})
}
