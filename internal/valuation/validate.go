package valuation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zvz23/valuation-app-sub001/pkg/types"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SectionPhotos is the one section excluded from schema validation; its
// content is client managed and mixed-typed.
const SectionPhotos = "photos"

type sectionSpec struct {
	Name     string
	Column   string
	Validate func(raw json.RawMessage) error
}

// sectionRegistry is the closed table of valuation form sections,
// resolved at compile time. Order matters: validation is fail-fast and
// reports the first failing section in this order.
var sectionRegistry = []sectionSpec{
	{Name: "overview", Column: "overview", Validate: sectionValidator[types.Overview]()},
	{Name: "valuationDetails", Column: "valuation_details", Validate: sectionValidator[types.ValuationDetails]()},
	{Name: "propertyDetails", Column: "property_details", Validate: sectionValidator[types.PropertyDetails]()},
	{Name: "locationDetails", Column: "location_details", Validate: sectionValidator[types.LocationDetails]()},
	{Name: "roomFeatures", Column: "room_features", Validate: sectionValidator[types.RoomFeatures]()},
	{Name: SectionPhotos, Column: "photos"},
	{Name: "descriptors", Column: "descriptors", Validate: sectionValidator[types.Descriptors]()},
	{Name: "ancillaryImprovements", Column: "ancillary_improvements", Validate: sectionValidator[types.AncillaryImprovements]()},
	{Name: "statutoryDetails", Column: "statutory_details", Validate: sectionValidator[types.StatutoryDetails]()},
	{Name: "siteDetails", Column: "site_details", Validate: sectionValidator[types.SiteDetails]()},
	{Name: "planningDetails", Column: "planning_details", Validate: sectionValidator[types.PlanningDetails]()},
	{Name: "generalComments", Column: "general_comments", Validate: sectionValidator[types.GeneralComments]()},
	{Name: "marketEvidence", Column: "market_evidence", Validate: sectionValidator[types.MarketEvidence]()},
	{Name: "annexures", Column: "annexures", Validate: sectionValidator[types.Annexures]()},
}

func sectionValidator[T any]() func(raw json.RawMessage) error {
	return func(raw json.RawMessage) error {
		var section T
		if err := json.Unmarshal(raw, &section); err != nil {
			return fmt.Errorf("malformed section body: %w", err)
		}
		return validate.Struct(&section)
	}
}

// SectionColumn resolves a payload key to its storage column. Unknown
// keys are not persisted.
func SectionColumn(name string) (string, bool) {
	for _, spec := range sectionRegistry {
		if spec.Name == name {
			return spec.Column, true
		}
	}
	return "", false
}

// StripNullSections drops payload keys whose value is JSON null. Absence
// means "no change intended"; clients that serialize undefined as null
// must not wipe stored sections.
func StripNullSections(payload map[string]json.RawMessage) {
	for name, raw := range payload {
		if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			delete(payload, name)
		}
	}
}

// ValidateSections checks every known section present in the payload
// against its schema, skipping photos. It stops at the first failure and
// reports that section's name. An empty payload is trivially valid.
func ValidateSections(payload map[string]json.RawMessage) error {
	for _, spec := range sectionRegistry {
		raw, ok := payload[spec.Name]
		if !ok || spec.Validate == nil {
			continue
		}

		if err := spec.Validate(raw); err != nil {
			return &types.SectionValidationError{
				Section: spec.Name,
				Message: validationMessage(err),
			}
		}
	}
	return nil
}

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		return fmt.Sprintf("field %s failed on the %s rule", first.Field(), first.Tag())
	}
	return err.Error()
}
