// internal/models/snapshot.go
package models

import "time"

// Broker identifies whose listings a snapshot belongs to.
type Broker struct {
	Name   string `json:"name" bson:"name"`
	Agency string `json:"agency" bson:"agency"`
}

// Snapshot is the complete, atomically replaced set of current listings
// plus metadata. Each ingestion overwrites the previous snapshot wholesale;
// consumers only ever read it.
type Snapshot struct {
	Success       bool       `json:"success" bson:"success"`
	Broker        *Broker    `json:"broker,omitempty" bson:"broker,omitempty"`
	Properties    []Property `json:"properties" bson:"properties"`
	PropertyCount int        `json:"propertyCount" bson:"propertyCount"`
	LastUpdated   *time.Time `json:"lastUpdated" bson:"lastUpdated"`
	ScrapedAt     string     `json:"scrapedAt,omitempty" bson:"scrapedAt,omitempty"`
}

// EmptySnapshot is what readers get before any ingestion has run. "Never
// written" is a normal state, not an error.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Success:       true,
		Properties:    []Property{},
		PropertyCount: 0,
		LastUpdated:   nil,
	}
}

// IngestRequest is the push-mode payload from a trusted automation caller.
// Properties stays nil when the field is absent, which the validator treats
// differently from an explicit empty array.
type IngestRequest struct {
	Properties []UpstreamProperty `json:"properties"`
	Broker     *Broker            `json:"broker,omitempty"`
	ScrapedAt  string             `json:"scrapedAt,omitempty"`
}

// ScrapeResult is the upstream scraping service's response shape.
type ScrapeResult struct {
	Properties []UpstreamProperty `json:"properties"`
	Broker     *Broker            `json:"broker,omitempty"`
	ScrapedAt  string             `json:"scrapedAt,omitempty"`
}

// IngestData carries the accepted/received counts so the caller can see how
// many records were dropped as duplicates.
type IngestData struct {
	InsertedCount int    `json:"insertedCount"`
	TotalReceived int    `json:"totalReceived"`
	ScrapedAt     string `json:"scrapedAt"`
}

type IngestResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    IngestData `json:"data"`
}

// FetchResponse is returned by pull-mode ingestion.
type FetchResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	PropertyCount int    `json:"propertyCount"`
	LastUpdated   string `json:"lastUpdated"`
}
