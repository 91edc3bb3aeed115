package validators

import (
	"strings"

	"alexsimon-listings/internal/errors"
	"alexsimon-listings/internal/models"
)

type contactValidator struct{}

func NewContactValidator() ContactValidator {
	return &contactValidator{}
}

// Validate requires name, email, subject and message; phone is optional.
func (v *contactValidator) Validate(req *models.ContactRequest) error {
	if req == nil ||
		strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Subject) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return errors.NewValidationError("Tous les champs requis doivent être remplis")
	}
	if !strings.Contains(req.Email, "@") {
		return errors.NewValidationError("Adresse courriel invalide")
	}
	return nil
}
