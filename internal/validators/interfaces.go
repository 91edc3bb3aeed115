package validators

import (
	"alexsimon-listings/internal/models"
)

type IngestValidator interface {
	ValidatePush(req *models.IngestRequest) error
}

type ContactValidator interface {
	Validate(req *models.ContactRequest) error
}
