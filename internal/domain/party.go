package domain

import "regexp"

// Party represents a dealer that places orders.
type Party struct {
	ID          int64
	Name        string
	City        string
	Phone       string
	CreditTerms string
	Active      bool
}

// PartialPartyUpdate carries optional fields to update a party.
// A nil field means “do not change” that attribute.
type PartialPartyUpdate struct {
	ID          int64
	Name        *string
	City        *string
	Phone       *string
	CreditTerms *string
	Active      *bool
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+?[0-9]{10,13}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
