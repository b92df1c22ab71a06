package http

import (
	"net/http"

	"counselling-module/http/handlers"
	"counselling-module/http/middleware"
)

// SetupRoutes builds the service mux with all routes behind CORS.
func SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Content APIs (read path)
	mux.HandleFunc("/plans", middleware.EnableCORS(handlers.GetPlans))
	mux.HandleFunc("/testimonials", middleware.EnableCORS(handlers.GetTestimonials))
	mux.HandleFunc("/blogs", middleware.EnableCORS(handlers.GetBlogs))
	mux.HandleFunc("/universities", middleware.EnableCORS(handlers.GetUniversities))
	mux.HandleFunc("/career-paths", middleware.EnableCORS(handlers.GetCareerPaths))
	mux.HandleFunc("/faqs", middleware.EnableCORS(handlers.GetFAQs))

	// Consultation APIs
	mux.HandleFunc("/consultation", middleware.EnableCORS(handlers.SubmitConsultation))
	mux.HandleFunc("/export-consultations", middleware.EnableCORS(handlers.ExportConsultations))

	// Payment APIs
	mux.HandleFunc("/payment/paymentForm", middleware.EnableCORS(handlers.PaymentForm))
	mux.HandleFunc("/payment/verifyPayment", middleware.EnableCORS(handlers.VerifyPayment))
	mux.HandleFunc("/webhook/razorpay", middleware.EnableCORS(handlers.RazorpayWebhook))

	return mux
}
