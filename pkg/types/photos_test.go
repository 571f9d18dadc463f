package types

import "testing"

func TestValidPhotoCategory(t *testing.T) {
	for _, category := range PhotoCategories {
		if !ValidPhotoCategory(category) {
			t.Fatalf("expected %s to be valid", category)
		}
	}

	for _, category := range []string{"", "photos", "ExteriorPhotos", "frontYard"} {
		if ValidPhotoCategory(category) {
			t.Fatalf("expected %s to be invalid", category)
		}
	}
}

func TestPhotosClone(t *testing.T) {
	original := Photos{PhotoCategoryExterior: {"https://x/1.jpg"}}

	cloned := original.Clone()
	cloned[PhotoCategoryExterior][0] = "https://x/other.jpg"
	cloned[PhotoCategoryInterior] = []string{"https://x/2.jpg"}

	if original[PhotoCategoryExterior][0] != "https://x/1.jpg" {
		t.Fatal("clone shares backing array with original")
	}
	if _, ok := original[PhotoCategoryInterior]; ok {
		t.Fatal("clone shares map with original")
	}
}
