package validators

import (
	"alexsimon-listings/internal/errors"
	"alexsimon-listings/internal/models"
)

type ingestValidator struct{}

func NewIngestValidator() IngestValidator {
	return &ingestValidator{}
}

// ValidatePush requires a properties array. An explicit empty array is
// valid and replaces the snapshot with an empty one; an absent field is not.
func (v *ingestValidator) ValidatePush(req *models.IngestRequest) error {
	if req == nil || req.Properties == nil {
		return errors.NewValidationError("Properties array is required")
	}
	return nil
}
