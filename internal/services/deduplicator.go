package services

import (
	"alexsimon-listings/internal/models"
	"alexsimon-listings/internal/transformers"
	"alexsimon-listings/pkg/logger"
	"alexsimon-listings/pkg/metrics"
)

// Deduplicator removes duplicate listings in a single left-to-right pass.
// First occurrence wins; later duplicates are dropped regardless of which
// record carries more data.
type Deduplicator struct {
	addrTrans transformers.AddressTransformer
}

func NewDeduplicator(addrTrans transformers.AddressTransformer) *Deduplicator {
	return &Deduplicator{addrTrans: addrTrans}
}

// Dedupe drops records whose id was already seen, then records whose
// normalized address key was already seen. Records without an id are
// excluded outright (the transformer filters those, but a hand-built slice
// must not crash the pass). Output order is first-seen order, and running
// Dedupe on its own output returns it unchanged.
func (d *Deduplicator) Dedupe(records []models.Property) []models.Property {
	seenIDs := make(map[string]struct{}, len(records))
	seenAddresses := make(map[string]struct{}, len(records))
	unique := make([]models.Property, 0, len(records))

	for _, record := range records {
		if record.ID == "" {
			continue
		}
		if _, dup := seenIDs[record.ID]; dup {
			metrics.DuplicatesDroppedTotal.WithLabelValues("id").Inc()
			continue
		}

		addressKey := d.addrTrans.DedupKey(record.Address)
		if addressKey != "" {
			if _, dup := seenAddresses[addressKey]; dup {
				metrics.DuplicatesDroppedTotal.WithLabelValues("address").Inc()
				logger.GlobalLogger.Printf("Skipping duplicate address: %s", record.Address)
				continue
			}
			seenAddresses[addressKey] = struct{}{}
		}

		seenIDs[record.ID] = struct{}{}
		unique = append(unique, record)
	}

	return unique
}
