package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"counselling-module/http/response"
	"counselling-module/models"
	"counselling-module/services"
)

// parseLimit reads an optional ?limit= query parameter. Zero means the
// server default.
func parseLimit(r *http.Request) int {
	if str := r.URL.Query().Get("limit"); str != "" {
		if v, err := strconv.Atoi(str); err == nil && v > 0 {
			return v
		}
	}
	return 0
}

// sendContent emits the uniform content payload. Degraded responses still
// return 200 with the fallback data - a section must never render empty just
// because the store is unreachable.
func sendContent(w http.ResponseWriter, count int, items interface{}, res services.Result) {
	response.ContentResponse(w, count, items, res.Degraded, res.Err)
}

// GetPlans returns the static pricing tier catalogue.
func GetPlans(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	response.SuccessResponse(w, http.StatusOK, fmt.Sprintf("Retrieved %d plans", len(models.Plans)), models.Plans)
}

// GetTestimonials returns published testimonials, newest first.
func GetTestimonials(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	items, res := contentSvc.Testimonials(r.Context(), parseLimit(r))
	sendContent(w, len(items), items, res)
}

// GetBlogs returns published blog posts, newest first.
func GetBlogs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	items, res := contentSvc.BlogPosts(r.Context(), parseLimit(r))
	sendContent(w, len(items), items, res)
}

// GetUniversities returns published partner universities.
func GetUniversities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	items, res := contentSvc.Universities(r.Context(), parseLimit(r))
	sendContent(w, len(items), items, res)
}

// GetCareerPaths returns published career paths.
func GetCareerPaths(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	items, res := contentSvc.CareerPaths(r.Context(), parseLimit(r))
	sendContent(w, len(items), items, res)
}

// GetFAQs returns published FAQs.
func GetFAQs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	items, res := contentSvc.FAQs(r.Context(), parseLimit(r))
	sendContent(w, len(items), items, res)
}
