package utils

import (
	"fmt"
	"regexp"
	"time"
)

// Email and phone regex patterns
var (
	EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	PhoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// ValidationRules contains validation configuration
type ValidationRules struct {
	MaxNameLength    int
	MaxMessageLength int
}

// DefaultValidationRules provides default validation constraints
var DefaultValidationRules = ValidationRules{
	MaxNameLength:    100,
	MaxMessageLength: 2000,
}

// ValidateEmail checks if email format is valid
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !EmailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateMobile checks if mobile is in E.164 format
func ValidateMobile(mobile string) error {
	if mobile == "" {
		return fmt.Errorf("mobile is required")
	}
	if !PhoneRegex.MatchString(mobile) {
		return fmt.Errorf("invalid mobile format (use E.164 format, e.g., +919876543210)")
	}
	return nil
}

// ValidateName checks if name meets requirements
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > DefaultValidationRules.MaxNameLength {
		return fmt.Errorf("name must be less than %d characters", DefaultValidationRules.MaxNameLength)
	}
	return nil
}

// ValidateMessage checks if message meets requirements
func ValidateMessage(message string) error {
	if message != "" && len(message) > DefaultValidationRules.MaxMessageLength {
		return fmt.Errorf("message must be less than %d characters", DefaultValidationRules.MaxMessageLength)
	}
	return nil
}

// ValidatePreferredTime accepts an empty string or an RFC3339 timestamp.
func ValidatePreferredTime(preferred string) error {
	if preferred == "" {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, preferred); err != nil {
		return fmt.Errorf("invalid preferred_time format. Use RFC3339 (e.g., 2026-09-01T10:00:00Z)")
	}
	return nil
}
