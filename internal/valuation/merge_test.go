package valuation

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zvz23/valuation-app-sub001/pkg/types"
)

func TestMergePhotosAppendsNonCoverCategories(t *testing.T) {
	current := types.Photos{
		types.PhotoCategoryExterior: {"https://x/a.jpg", "https://x/b.jpg"},
	}
	uploads := types.Photos{
		types.PhotoCategoryExterior: {"https://x/c.jpg"},
	}

	merged := MergePhotos(current, uploads)

	want := []string{"https://x/a.jpg", "https://x/b.jpg", "https://x/c.jpg"}
	if !reflect.DeepEqual(merged[types.PhotoCategoryExterior], want) {
		t.Fatalf("expected %v, got %v", want, merged[types.PhotoCategoryExterior])
	}
}

func TestMergePhotosReplacesReportCover(t *testing.T) {
	current := types.Photos{
		types.PhotoCategoryReportCover: {"https://x/a.jpg", "https://x/b.jpg"},
	}
	uploads := types.Photos{
		types.PhotoCategoryReportCover: {"https://x/c.jpg"},
	}

	merged := MergePhotos(current, uploads)

	want := []string{"https://x/c.jpg"}
	if !reflect.DeepEqual(merged[types.PhotoCategoryReportCover], want) {
		t.Fatalf("expected replace semantics for cover, got %v", merged[types.PhotoCategoryReportCover])
	}
}

func TestMergePhotosTreatsMissingCategoryAsEmpty(t *testing.T) {
	merged := MergePhotos(nil, types.Photos{
		types.PhotoCategoryInterior: {"https://x/1.jpg"},
	})

	if got := merged[types.PhotoCategoryInterior]; len(got) != 1 || got[0] != "https://x/1.jpg" {
		t.Fatalf("expected single interior photo, got %v", got)
	}
}

func TestMergePhotosDoesNotMutateInputs(t *testing.T) {
	current := types.Photos{
		types.PhotoCategoryExterior: {"https://x/a.jpg"},
	}
	MergePhotos(current, types.Photos{
		types.PhotoCategoryExterior: {"https://x/b.jpg"},
	})

	if len(current[types.PhotoCategoryExterior]) != 1 {
		t.Fatalf("merge mutated the current mapping: %v", current[types.PhotoCategoryExterior])
	}
}

func TestRemovePhotoRemovesExactMatch(t *testing.T) {
	current := types.Photos{
		types.PhotoCategoryExterior: {"https://x/1.jpg", "https://x/2.jpg"},
	}

	updated, remaining, err := RemovePhoto(current, types.PhotoCategoryExterior, "https://x/1.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("expected 1 remaining, got %d", remaining)
	}
	if !reflect.DeepEqual(updated[types.PhotoCategoryExterior], []string{"https://x/2.jpg"}) {
		t.Fatalf("unexpected category contents: %v", updated[types.PhotoCategoryExterior])
	}
}

func TestRemovePhotoRemovesAllDuplicates(t *testing.T) {
	current := types.Photos{
		types.PhotoCategoryInterior: {"https://x/1.jpg", "https://x/2.jpg", "https://x/1.jpg"},
	}

	_, remaining, err := RemovePhoto(current, types.PhotoCategoryInterior, "https://x/1.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("expected duplicates removed leaving 1, got %d", remaining)
	}
}

func TestRemovePhotoNotFound(t *testing.T) {
	current := types.Photos{
		types.PhotoCategoryExterior: {"https://x/1.jpg"},
	}

	_, _, err := RemovePhoto(current, types.PhotoCategoryExterior, "https://x/absent.jpg")
	if !errors.Is(err, types.ErrPhotoNotFound) {
		t.Fatalf("expected ErrPhotoNotFound, got %v", err)
	}

	_, _, err = RemovePhoto(current, types.PhotoCategoryInterior, "https://x/1.jpg")
	if !errors.Is(err, types.ErrPhotoNotFound) {
		t.Fatalf("expected ErrPhotoNotFound for missing category, got %v", err)
	}
}

func TestRemovePhotoIsIdempotentInEffect(t *testing.T) {
	current := types.Photos{
		types.PhotoCategoryExterior: {"https://x/1.jpg"},
	}

	updated, _, err := RemovePhoto(current, types.PhotoCategoryExterior, "https://x/1.jpg")
	if err != nil {
		t.Fatalf("first removal failed: %v", err)
	}

	_, _, err = RemovePhoto(updated, types.PhotoCategoryExterior, "https://x/1.jpg")
	if !errors.Is(err, types.ErrPhotoNotFound) {
		t.Fatalf("second removal should report not found, got %v", err)
	}
}
