package handlers

import (
	"database/sql"
	"log"

	"counselling-module/config"
	"counselling-module/services"
)

// Package-level services, wired once at startup.
var (
	contentSvc *services.ContentService
	consultSvc *services.ConsultationService
	paymentSvc *services.PaymentService
)

// InitHandlers wires the handler package to its services. A missing Razorpay
// configuration is not fatal: content and consultation endpoints keep
// working, payment endpoints report the misconfiguration per request.
func InitHandlers(database *sql.DB, store services.DocumentStore) {
	contentSvc = services.NewContentService(store)
	consultSvc = services.NewConsultationService(store)

	gateway, err := services.NewRazorpayGateway()
	if err != nil {
		log.Printf("Warning: payment endpoints disabled: %v", err)
		return
	}
	paymentSvc = services.NewPaymentService(database, gateway, config.AppConfig.RazorpayKeySecret)
}
