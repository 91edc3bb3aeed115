package transformers

import (
	"alexsimon-listings/internal/models"
)

type propertyTransformer struct{}

func NewPropertyTransformer() PropertyTransformer {
	return &propertyTransformer{}
}

// TransformUpstream derives the canonical record: id falls back from
// mlsNumber to id, images fall back from the images array to the single
// imageUrl. Everything else passes through untouched.
func (t *propertyTransformer) TransformUpstream(raw models.UpstreamProperty) (models.Property, bool) {
	id := raw.MLSNumber
	if id == "" {
		id = raw.ID
	}
	if id == "" {
		return models.Property{}, false
	}

	images := raw.Images
	if len(images) == 0 {
		if raw.ImageURL != "" {
			images = []string{raw.ImageURL}
		} else {
			images = []string{}
		}
	}

	return models.Property{
		ID:        id,
		MLSNumber: raw.MLSNumber,
		Price:     raw.Price,
		Address:   raw.Address,
		Type:      raw.Type,
		Link:      raw.Link,
		Bedrooms:  raw.Bedrooms,
		Bathrooms: raw.Bathrooms,
		ImageURL:  raw.ImageURL,
		Images:    images,
	}, true
}

// TransformAll keeps input order and silently skips entries without an
// identifier.
func (t *propertyTransformer) TransformAll(raw []models.UpstreamProperty) []models.Property {
	records := make([]models.Property, 0, len(raw))
	for _, entry := range raw {
		if record, ok := t.TransformUpstream(entry); ok {
			records = append(records, record)
		}
	}
	return records
}
