package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizePrice turns a display price like "4,999" into its integer rupee
// value. Only comma thousands-separators are stripped; anything else that is
// not a plain integer is rejected.
func NormalizePrice(display string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(display), ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("price is empty")
	}
	price, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", display)
	}
	if price <= 0 {
		return 0, fmt.Errorf("invalid price %d: must be greater than 0", price)
	}
	return price, nil
}

// ToPaise converts whole rupees into paise for the checkout widget. Inputs
// are whole-currency integers so the multiplication is exact.
func ToPaise(rupees int) int {
	return rupees * 100
}
