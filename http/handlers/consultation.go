package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"counselling-module/http/response"
	"counselling-module/models"
	"counselling-module/services"
	"counselling-module/utils"
)

// validateConsultation enforces the form contract: name, email and mobile
// are required non-empty; message and preferred time are optional. Runs
// before the submission service is ever invoked.
func validateConsultation(req *models.ConsultationRequest) error {
	if err := utils.ValidateName(req.Name); err != nil {
		return err
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := utils.ValidateMobile(req.Mobile); err != nil {
		return err
	}
	if err := utils.ValidateMessage(req.Message); err != nil {
		return err
	}
	if err := utils.ValidatePreferredTime(req.PreferredTime); err != nil {
		return err
	}
	if !models.ValidConsultationType(req.ConsultationType) {
		return fmt.Errorf("invalid consultation_type: %s", req.ConsultationType)
	}
	return nil
}

// SubmitConsultation records a consultation request from the website form.
func SubmitConsultation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.ConsultationRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := validateConsultation(&req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if !consultSvc.Submit(r.Context(), req) {
		// Generic failure; the client keeps the entered values for resubmission.
		response.ErrorResponse(w, http.StatusBadGateway, "Unable to submit your request right now. Please try again.")
		return
	}

	response.SuccessResponse(w, http.StatusCreated, "Consultation request received", map[string]interface{}{
		"email": req.Email,
	})
}

// ExportConsultations streams the consultation list as an .xlsx download
// for the counselling team. Optional created_after/created_before filters.
func ExportConsultations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	window, err := utils.ParseExportWindow(r)
	if err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	consultations, err := consultSvc.List(r.Context(), 0)
	if err != nil {
		log.Printf("Error listing consultations for export: %v", err)
		response.ErrorResponse(w, http.StatusInternalServerError, "Error fetching consultations")
		return
	}

	filtered := filterByCreatedAt(consultations, window)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=consultations_%s.xlsx", time.Now().Format("2006-01-02")))

	if err := services.WriteConsultationsXLSX(w, filtered); err != nil {
		log.Printf("Error writing consultations export: %v", err)
	}
}

func filterByCreatedAt(consultations []models.Consultation, window *utils.ExportWindow) []models.Consultation {
	if window.Unbounded() {
		return consultations
	}

	filtered := make([]models.Consultation, 0, len(consultations))
	for _, c := range consultations {
		created, err := time.Parse(time.RFC3339, c.CreatedAt)
		if err != nil {
			continue
		}
		if window.Contains(created) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
