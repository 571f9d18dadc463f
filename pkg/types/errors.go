package types

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("valuation record not found")
	ErrPhotoNotFound  = errors.New("photo not found in category")
)

// SectionValidationError reports the first section of a partial update
// that failed schema validation.
type SectionValidationError struct {
	Section string
	Message string
}

func (e *SectionValidationError) Error() string {
	return fmt.Sprintf("section %s failed validation: %s", e.Section, e.Message)
}
