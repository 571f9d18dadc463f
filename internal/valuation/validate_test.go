package valuation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/zvz23/valuation-app-sub001/pkg/types"
)

func payload(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var sections map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &sections); err != nil {
		t.Fatalf("bad test payload: %v", err)
	}
	return sections
}

func TestValidateSectionsEmptyPayload(t *testing.T) {
	if err := ValidateSections(map[string]json.RawMessage{}); err != nil {
		t.Fatalf("empty payload must be valid, got %v", err)
	}
	if err := ValidateSections(nil); err != nil {
		t.Fatalf("nil payload must be valid, got %v", err)
	}
}

func TestValidateSectionsPhotosOnlyPayload(t *testing.T) {
	sections := payload(t, `{"photos":{"exteriorPhotos":["https://x/1.jpg"]}}`)
	if err := ValidateSections(sections); err != nil {
		t.Fatalf("photos-only payload must be valid, got %v", err)
	}
}

func TestValidateSectionsAcceptsValidSections(t *testing.T) {
	sections := payload(t, `{
		"overview": {"jobNumber": "J-100", "purposeOfValuation": "mortgage"},
		"siteDetails": {"siteAreaSqm": 620.5, "services": ["water", "sewer"]},
		"marketEvidence": {"sales": [{"address": "1 High St", "salePrice": 850000, "saleDate": "2026-03-14"}]}
	}`)
	if err := ValidateSections(sections); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidateSectionsReportsFailingSection(t *testing.T) {
	sections := payload(t, `{
		"siteDetails": {"siteAreaSqm": 620.5},
		"locationDetails": {"latitude": 200}
	}`)

	err := ValidateSections(sections)
	if err == nil {
		t.Fatal("expected validation failure")
	}

	var sectionErr *types.SectionValidationError
	if !errors.As(err, &sectionErr) {
		t.Fatalf("expected SectionValidationError, got %T", err)
	}
	if sectionErr.Section != "locationDetails" {
		t.Fatalf("expected locationDetails reported, got %s", sectionErr.Section)
	}
}

func TestValidateSectionsFailsFastInRegistryOrder(t *testing.T) {
	// Both sections are invalid; overview comes first in the registry.
	sections := payload(t, `{
		"locationDetails": {"latitude": 200},
		"overview": {"purposeOfValuation": "speculation"}
	}`)

	err := ValidateSections(sections)
	var sectionErr *types.SectionValidationError
	if !errors.As(err, &sectionErr) {
		t.Fatalf("expected SectionValidationError, got %v", err)
	}
	if sectionErr.Section != "overview" {
		t.Fatalf("expected first failing section overview, got %s", sectionErr.Section)
	}
}

func TestValidateSectionsRejectsMalformedSectionBody(t *testing.T) {
	sections := payload(t, `{"overview": ["not", "an", "object"]}`)

	err := ValidateSections(sections)
	var sectionErr *types.SectionValidationError
	if !errors.As(err, &sectionErr) {
		t.Fatalf("expected SectionValidationError, got %v", err)
	}
	if sectionErr.Section != "overview" {
		t.Fatalf("expected overview reported, got %s", sectionErr.Section)
	}
}

func TestValidateSectionsIgnoresUnknownKeys(t *testing.T) {
	sections := payload(t, `{"somethingElse": {"a": 1}}`)
	if err := ValidateSections(sections); err != nil {
		t.Fatalf("unknown keys must be ignored, got %v", err)
	}
}

func TestStripNullSections(t *testing.T) {
	sections := payload(t, `{"overview": null, "siteDetails": {"topography": "level"}}`)

	StripNullSections(sections)

	if _, ok := sections["overview"]; ok {
		t.Fatal("null-valued section should have been stripped")
	}
	if _, ok := sections["siteDetails"]; !ok {
		t.Fatal("non-null section should survive")
	}
}

func TestSectionColumn(t *testing.T) {
	column, ok := SectionColumn("ancillaryImprovements")
	if !ok || column != "ancillary_improvements" {
		t.Fatalf("unexpected mapping: %s %v", column, ok)
	}

	if _, ok := SectionColumn("nope"); ok {
		t.Fatal("unknown section must not resolve")
	}
}
