package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"counselling-module/config"
	"counselling-module/contentstore"
	"counselling-module/http/response"
)

type stubStore struct {
	list      *contentstore.DocumentList
	listErr   error
	createID  string
	createErr error
	creates   int
}

func (s *stubStore) ListDocuments(ctx context.Context, collection string, opts contentstore.ListOptions) (*contentstore.DocumentList, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if s.list != nil {
		return s.list, nil
	}
	return &contentstore.DocumentList{}, nil
}

func (s *stubStore) CreateDocument(ctx context.Context, collection string, data interface{}) (string, error) {
	s.creates++
	if s.createErr != nil {
		return "", s.createErr
	}
	return s.createID, nil
}

func wire(t *testing.T, store *stubStore, razorpayConfigured bool) {
	t.Helper()
	prev := config.AppConfig
	if razorpayConfigured {
		config.AppConfig.RazorpayKeyID = "rzp_test_key"
		config.AppConfig.RazorpayKeySecret = "rzp_test_secret"
	} else {
		config.AppConfig.RazorpayKeyID = ""
		config.AppConfig.RazorpayKeySecret = ""
	}
	t.Cleanup(func() {
		config.AppConfig = prev
		contentSvc, consultSvc, paymentSvc = nil, nil, nil
	})
	InitHandlers(nil, store)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) response.StandardResponse {
	t.Helper()
	var body response.StandardResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return body
}

func TestSubmitConsultationSuccess(t *testing.T) {
	store := &stubStore{createID: "doc_1"}
	wire(t, store, false)

	req := httptest.NewRequest(http.MethodPost, "/consultation", strings.NewReader(
		`{"name":"Priya Nair","email":"priya@example.com","mobile":"+919876543210","message":"MS guidance","consultation_type":"university-admission"}`))
	rec := httptest.NewRecorder()
	SubmitConsultation(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	if store.creates != 1 {
		t.Errorf("store creates = %d, want 1", store.creates)
	}
}

func TestSubmitConsultationValidation(t *testing.T) {
	store := &stubStore{createID: "doc_1"}
	wire(t, store, false)

	bodies := []string{
		`{"email":"priya@example.com","mobile":"+919876543210"}`,
		`{"name":"Priya","mobile":"+919876543210"}`,
		`{"name":"Priya","email":"not-an-email","mobile":"+919876543210"}`,
		`{"name":"Priya","email":"priya@example.com"}`,
		`{"name":"Priya","email":"priya@example.com","mobile":"12-34"}`,
		`{"name":"Priya","email":"priya@example.com","mobile":"+919876543210","consultation_type":"vip"}`,
		`{"name":"Priya","email":"priya@example.com","mobile":"+919876543210","preferred_time":"tomorrow"}`,
	}
	for _, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/consultation", strings.NewReader(body))
		rec := httptest.NewRecorder()
		SubmitConsultation(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
	if store.creates != 0 {
		t.Errorf("store creates = %d, want 0 (validation runs before submission)", store.creates)
	}
}

func TestSubmitConsultationStoreDown(t *testing.T) {
	wire(t, &stubStore{createErr: errors.New("store unavailable")}, false)

	req := httptest.NewRequest(http.MethodPost, "/consultation", strings.NewReader(
		`{"name":"Priya Nair","email":"priya@example.com","mobile":"+919876543210"}`))
	rec := httptest.NewRecorder()
	SubmitConsultation(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	body := decodeBody(t, rec)
	if body.Status != "error" || body.Error == "" {
		t.Errorf("body = %+v, want error with message", body)
	}
}

func TestGetPlans(t *testing.T) {
	wire(t, &stubStore{}, false)

	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	rec := httptest.NewRecorder()
	GetPlans(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	plans, ok := body.Data.([]interface{})
	if !ok || len(plans) != 3 {
		t.Errorf("data = %T with %v, want 3 plans", body.Data, body.Data)
	}
}

func TestGetTestimonialsDegraded(t *testing.T) {
	wire(t, &stubStore{listErr: errors.New("connection refused")}, false)

	req := httptest.NewRequest(http.MethodGet, "/testimonials", nil)
	rec := httptest.NewRecorder()
	GetTestimonials(rec, req)

	// Degraded reads still answer 200 with the fallback set.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	data, ok := body.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T", body.Data)
	}
	if data["degraded"] != true {
		t.Error("degraded flag not set")
	}
	if data["error"] == nil {
		t.Error("degraded payload missing error detail")
	}
	items, ok := data["items"].([]interface{})
	if !ok || len(items) < 3 {
		t.Errorf("items = %v, want at least 3 fallback entries", data["items"])
	}
}

func TestPaymentFormRejectsUnknownPackage(t *testing.T) {
	store := &stubStore{}
	wire(t, store, true)

	req := httptest.NewRequest(http.MethodPost, "/payment/paymentForm", strings.NewReader(
		`{"packageType":"platinum","name":"Priya Nair","email":"priya@example.com","phoneNo":"+919876543210"}`))
	rec := httptest.NewRecorder()
	PaymentForm(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (fail closed before provider call)", rec.Code)
	}
}

func TestPaymentFormWithoutCredentials(t *testing.T) {
	wire(t, &stubStore{}, false)

	req := httptest.NewRequest(http.MethodPost, "/payment/paymentForm", strings.NewReader(
		`{"packageType":"silver","name":"Priya Nair","email":"priya@example.com","phoneNo":"+919876543210"}`))
	rec := httptest.NewRecorder()
	PaymentForm(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestVerifyPaymentSignatureMismatch(t *testing.T) {
	wire(t, &stubStore{}, true)

	req := httptest.NewRequest(http.MethodPost, "/payment/verifyPayment", strings.NewReader(
		`{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"forged"}`))
	rec := httptest.NewRecorder()
	VerifyPayment(rec, req)

	// A mismatch is an explicit success=false, not an HTTP error.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestContentEndpointsRejectPost(t *testing.T) {
	wire(t, &stubStore{}, false)

	endpoints := map[string]http.HandlerFunc{
		"/plans":        GetPlans,
		"/testimonials": GetTestimonials,
		"/blogs":        GetBlogs,
		"/universities": GetUniversities,
		"/career-paths": GetCareerPaths,
		"/faqs":         GetFAQs,
	}
	for path, handler := range endpoints {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: status = %d, want 405", path, rec.Code)
		}
	}
}
