package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"counselling-module/contentstore"
	"counselling-module/models"
	"counselling-module/utils"
)

// ConsultationService records consultation requests in the content store.
type ConsultationService struct {
	store DocumentStore
}

func NewConsultationService(store DocumentStore) *ConsultationService {
	return &ConsultationService{store: store}
}

// Submit performs exactly one create-document call against the consultations
// collection and reports whether the store acknowledged it. Required-field
// validation is the caller's job; any store error collapses to false and is
// never propagated. No retry is attempted - the user resubmits.
func (s *ConsultationService) Submit(ctx context.Context, req models.ConsultationRequest) bool {
	doc := map[string]interface{}{
		"name":              req.Name,
		"email":             req.Email,
		"mobile":            req.Mobile,
		"message":           req.Message,
		"preferred_time":    req.PreferredTime,
		"consultation_type": req.ConsultationType,
		"created_at":        time.Now().UTC().Format(time.RFC3339),
	}

	id, err := s.store.CreateDocument(ctx, utils.CollectionConsultations, doc)
	if err != nil {
		log.Printf("[CONSULTATION] Submission failed for %s: %v", req.Email, err)
		return false
	}

	log.Printf("[CONSULTATION] Recorded consultation %s for %s", id, req.Email)

	// Best-effort side effects; the acknowledged create already happened.
	go func() {
		evt := map[string]interface{}{
			"event":             "consultation.created",
			"consultation_id":   id,
			"email":             req.Email,
			"consultation_type": req.ConsultationType,
			"ts":                time.Now().UTC().Format(time.RFC3339),
		}
		if err := Publish(topicFor(TopicConsultations), fmt.Sprintf("consultation-%s", id), evt); err != nil {
			log.Printf("Warning: failed to publish consultation.created event: %v", err)
		}
	}()
	go func() {
		if err := SendConsultationConfirmationEmail(req); err != nil {
			log.Printf("Warning: failed to queue confirmation email: %v", err)
		}
	}()

	return true
}

// List fetches consultations from the store for export, newest first.
func (s *ConsultationService) List(ctx context.Context, limit int) ([]models.Consultation, error) {
	list, err := s.store.ListDocuments(ctx, utils.CollectionConsultations, contentstore.ListOptions{
		OrderDesc: "created_at",
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing consultations: %w", err)
	}

	consultations := make([]models.Consultation, 0, len(list.Documents))
	for _, doc := range list.Documents {
		var c models.Consultation
		if err := json.Unmarshal(doc, &c); err != nil {
			return nil, fmt.Errorf("decoding consultation: %w", err)
		}
		consultations = append(consultations, c)
	}
	return consultations, nil
}
