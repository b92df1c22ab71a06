package response

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// StandardResponse is the envelope every JSON endpoint answers with.
type StandardResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ContentPayload is the data shape for content-section reads: the items plus
// a degraded flag, and the store error when the fallback set is being served.
// Degraded reads are still status success; the section renders either way.
type ContentPayload struct {
	Items    interface{} `json:"items"`
	Degraded bool        `json:"degraded"`
	Error    string      `json:"error,omitempty"`
}

// SuccessResponse sends a success envelope with the given status code,
// message and data.
func SuccessResponse(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	SendJSON(w, statusCode, StandardResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends an error envelope with the given status code and
// error message.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorMsg string) {
	SendJSON(w, statusCode, StandardResponse{
		Status: "error",
		Error:  errorMsg,
	})
}

// ContentResponse sends a content section as HTTP 200. When degraded, the
// payload carries the store error alongside the fallback items.
func ContentResponse(w http.ResponseWriter, count int, items interface{}, degraded bool, storeErr error) {
	payload := ContentPayload{Items: items, Degraded: degraded}
	message := fmt.Sprintf("Retrieved %d items", count)
	if degraded {
		message = fmt.Sprintf("Serving %d fallback items", count)
		if storeErr != nil {
			payload.Error = storeErr.Error()
		}
	}
	SuccessResponse(w, http.StatusOK, message, payload)
}

// SendJSON encodes and sends a JSON response.
func SendJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}
