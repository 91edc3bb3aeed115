package transformers

import (
	"testing"

	"alexsimon-listings/internal/models"
)

func TestTransformUpstream_MLSNumberWinsOverID(t *testing.T) {
	trans := NewPropertyTransformer()

	record, ok := trans.TransformUpstream(models.UpstreamProperty{
		ID:        "fallback-id",
		MLSNumber: "12345678",
		Address:   "123 Main St",
	})
	if !ok {
		t.Fatalf("expected record to be accepted")
	}
	if record.ID != "12345678" {
		t.Fatalf("expected id 12345678, got %s", record.ID)
	}
}

func TestTransformUpstream_FallsBackToID(t *testing.T) {
	trans := NewPropertyTransformer()

	record, ok := trans.TransformUpstream(models.UpstreamProperty{ID: "abc-1"})
	if !ok {
		t.Fatalf("expected record to be accepted")
	}
	if record.ID != "abc-1" {
		t.Fatalf("expected id abc-1, got %s", record.ID)
	}
}

func TestTransformUpstream_RejectsWithoutAnyID(t *testing.T) {
	trans := NewPropertyTransformer()

	if _, ok := trans.TransformUpstream(models.UpstreamProperty{Address: "123 Main St"}); ok {
		t.Fatalf("expected record without mlsNumber or id to be rejected")
	}
}

func TestTransformUpstream_ImageFallbacks(t *testing.T) {
	trans := NewPropertyTransformer()

	record, _ := trans.TransformUpstream(models.UpstreamProperty{
		MLSNumber: "1",
		Images:    []string{"a.jpg", "b.jpg"},
		ImageURL:  "ignored.jpg",
	})
	if len(record.Images) != 2 || record.Images[0] != "a.jpg" {
		t.Fatalf("expected images array to win, got %v", record.Images)
	}
	if record.PrimaryImage() != "a.jpg" {
		t.Fatalf("expected primary image a.jpg, got %s", record.PrimaryImage())
	}

	record, _ = trans.TransformUpstream(models.UpstreamProperty{
		MLSNumber: "2",
		ImageURL:  "only.jpg",
	})
	if len(record.Images) != 1 || record.Images[0] != "only.jpg" {
		t.Fatalf("expected single imageUrl fallback, got %v", record.Images)
	}

	record, _ = trans.TransformUpstream(models.UpstreamProperty{MLSNumber: "3"})
	if record.Images == nil || len(record.Images) != 0 {
		t.Fatalf("expected empty non-nil images, got %v", record.Images)
	}
	if record.PrimaryImage() != "" {
		t.Fatalf("expected empty primary image, got %s", record.PrimaryImage())
	}
}

func TestTransformUpstream_PassesFieldsThrough(t *testing.T) {
	trans := NewPropertyTransformer()

	record, _ := trans.TransformUpstream(models.UpstreamProperty{
		MLSNumber: "9876",
		Price:     "515 000 $",
		Address:   "45 Rue Principale, Montréal",
		Type:      "Condo",
		Link:      "https://example.com/9876",
		Bedrooms:  "3",
		Bathrooms: "1+1",
	})
	if record.Price != "515 000 $" || record.Address != "45 Rue Principale, Montréal" {
		t.Fatalf("expected price and address untouched, got %q / %q", record.Price, record.Address)
	}
	if record.Type != "Condo" || record.Link != "https://example.com/9876" {
		t.Fatalf("expected type and link untouched")
	}
	if record.Bedrooms != "3" || record.Bathrooms != "1+1" {
		t.Fatalf("expected rooms untouched, got %q / %q", record.Bedrooms, record.Bathrooms)
	}
}

func TestTransformAll_SkipsRejectedKeepsOrder(t *testing.T) {
	trans := NewPropertyTransformer()

	records := trans.TransformAll([]models.UpstreamProperty{
		{MLSNumber: "first"},
		{Address: "no id at all"},
		{ID: "second"},
	})
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "first" || records[1].ID != "second" {
		t.Fatalf("expected input order preserved, got %s, %s", records[0].ID, records[1].ID)
	}
}
