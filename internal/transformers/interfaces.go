package transformers

import (
	"alexsimon-listings/internal/models"
)

type PropertyTransformer interface {
	// TransformUpstream maps a raw upstream entry into a canonical record.
	// ok is false when the entry carries no usable listing identifier.
	TransformUpstream(raw models.UpstreamProperty) (record models.Property, ok bool)
	TransformAll(raw []models.UpstreamProperty) []models.Property
}

type AddressTransformer interface {
	// DedupKey reduces an address to the fuzzy comparison key used for
	// duplicate detection. Returns "" when nothing usable remains.
	DedupKey(address string) string
}
