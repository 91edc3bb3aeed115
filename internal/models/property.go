// internal/models/property.go
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Property is the canonical listing record served to the site.
// Price, bedrooms and bathrooms stay display strings; the pipeline
// never parses them.
type Property struct {
	ID        string     `json:"id" bson:"id"`
	MLSNumber string     `json:"mlsNumber,omitempty" bson:"mlsNumber,omitempty"`
	Price     FlexString `json:"price,omitempty" bson:"price,omitempty"`
	Address   string     `json:"address,omitempty" bson:"address,omitempty"`
	Type      string     `json:"type,omitempty" bson:"type,omitempty"`
	Link      string     `json:"link,omitempty" bson:"link,omitempty"`
	Bedrooms  FlexString `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms FlexString `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	ImageURL  string     `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Images    []string   `json:"images" bson:"images"`
}

// PrimaryImage returns the first image, or "" when the record has none.
func (p *Property) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// UpstreamProperty is one raw entry as delivered by the scraper or by an
// automation push. Field types are deliberately loose.
type UpstreamProperty struct {
	ID        string     `json:"id"`
	MLSNumber string     `json:"mlsNumber"`
	Price     FlexString `json:"price"`
	Address   string     `json:"address"`
	Type      string     `json:"type"`
	Link      string     `json:"link"`
	Bedrooms  FlexString `json:"bedrooms"`
	Bathrooms FlexString `json:"bathrooms"`
	ImageURL  string     `json:"imageUrl"`
	Images    []string   `json:"images"`
}

// FlexString accepts JSON strings and numbers; upstream payloads are not
// consistent about which they send for price and room counts.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*s = ""
		return nil
	}
	if trimmed[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = FlexString(num.String())
	return nil
}

func (s FlexString) String() string { return string(s) }

// ParseFlexFloat is used by display helpers that need a numeric view of a
// FlexString; the ingestion pipeline itself never calls it.
func ParseFlexFloat(s FlexString) (float64, bool) {
	f, err := strconv.ParseFloat(string(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
