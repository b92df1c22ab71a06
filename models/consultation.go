package models

// Consultation type identifiers accepted from the website form
const (
	ConsultationCareerDiscovery     = "career-discovery"
	ConsultationUniversityAdmission = "university-admission"
	ConsultationCompleteCounseling  = "complete-counseling"
)

// ConsultationRequest is a counselling enquiry submitted through the website
// form. Name, email and mobile are required; the rest is optional.
type ConsultationRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Mobile           string `json:"mobile"`
	Message          string `json:"message,omitempty"`
	PreferredTime    string `json:"preferred_time,omitempty"` // RFC3339 or empty
	ConsultationType string `json:"consultation_type,omitempty"`
}

// ValidConsultationType reports whether t is one of the known consultation
// types. The empty string is allowed (the form does not force a choice).
func ValidConsultationType(t string) bool {
	switch t {
	case "", ConsultationCareerDiscovery, ConsultationUniversityAdmission, ConsultationCompleteCounseling:
		return true
	}
	return false
}

// Consultation is a stored consultation document as returned by the content
// store, used for exports.
type Consultation struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Mobile           string `json:"mobile"`
	Message          string `json:"message"`
	PreferredTime    string `json:"preferred_time"`
	ConsultationType string `json:"consultation_type"`
	CreatedAt        string `json:"created_at"`
}
