package valuation

import "github.com/zvz23/valuation-app-sub001/pkg/types"

// MergePhotos combines newly uploaded URLs with the currently stored
// mapping. The report cover holds only the latest upload set, so new
// URLs replace that category outright; every other category appends,
// keeping stored order ahead of upload order. Neither input is mutated.
func MergePhotos(current, uploads types.Photos) types.Photos {
	merged := current.Clone()

	for category, urls := range uploads {
		if len(urls) == 0 {
			continue
		}

		if category == types.PhotoCategoryReportCover {
			merged[category] = append([]string(nil), urls...)
			continue
		}

		merged[category] = append(merged[category], urls...)
	}

	return merged
}

// RemovePhoto filters one URL out of one category by exact string match.
// Duplicate entries of the same URL are all removed. Returns the updated
// mapping and the number of URLs remaining in the category, or
// types.ErrPhotoNotFound when the URL is not present.
func RemovePhoto(current types.Photos, category, url string) (types.Photos, int, error) {
	urls, ok := current[category]
	if !ok {
		return nil, 0, types.ErrPhotoNotFound
	}

	filtered := make([]string, 0, len(urls))
	for _, u := range urls {
		if u != url {
			filtered = append(filtered, u)
		}
	}

	if len(filtered) == len(urls) {
		return nil, 0, types.ErrPhotoNotFound
	}

	updated := current.Clone()
	updated[category] = filtered

	return updated, len(filtered), nil
}
