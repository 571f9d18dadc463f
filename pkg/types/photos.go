package types

// Photos maps a photo category to an ordered list of stored URLs. The
// section carries mixed client-managed content, so it is not schema
// validated like the other sections.
type Photos map[string][]string

// Photo category constants. This is the single definition shared by the
// merge policy, the delete endpoint and the multipart decoder.
const (
	PhotoCategoryExterior    = "exteriorPhotos"
	PhotoCategoryInterior    = "interiorPhotos"
	PhotoCategoryAdditional  = "additionalPhotos"
	PhotoCategoryGrannyFlat  = "grannyFlatPhotos"
	PhotoCategoryOutbuilding = "outbuildingPhotos"
	PhotoCategoryReportCover = "reportCoverPhoto"
)

var PhotoCategories = []string{
	PhotoCategoryExterior,
	PhotoCategoryInterior,
	PhotoCategoryAdditional,
	PhotoCategoryGrannyFlat,
	PhotoCategoryOutbuilding,
	PhotoCategoryReportCover,
}

func ValidPhotoCategory(category string) bool {
	for _, c := range PhotoCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can merge without mutating the
// stored mapping.
func (p Photos) Clone() Photos {
	out := make(Photos, len(p))
	for category, urls := range p {
		copied := make([]string, len(urls))
		copy(copied, urls)
		out[category] = copied
	}
	return out
}
