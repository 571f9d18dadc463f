package server

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/zvz23/valuation-app-sub001/internal/maps"
)

func TestGeocodeRequiresAddress(t *testing.T) {
	svc := newTestService(newMemStore(), nil, nil)

	rr := doRequest(t, svc, http.MethodGet, "/geocode", nil, "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if payload := decodeJSON(t, rr); payload["error"] != "Address is required" {
		t.Fatalf("unexpected error message: %v", payload["error"])
	}
}

func TestGeocodeSuccess(t *testing.T) {
	fake := &fakeMaps{
		geocodeFn: func(ctx context.Context, address string) (*maps.GeocodeResult, error) {
			if address != "1 Test St" {
				t.Fatalf("unexpected address %q", address)
			}
			return &maps.GeocodeResult{
				FormattedAddress: "1 Test St, Sydney NSW",
				Latitude:         -33.87,
				Longitude:        151.21,
				PlaceID:          "place-1",
			}, nil
		},
	}
	svc := newTestService(newMemStore(), nil, fake)

	rr := doRequest(t, svc, http.MethodGet, "/geocode?address=1+Test+St", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if payload := decodeJSON(t, rr); payload["placeId"] != "place-1" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestMapsErrorTranslation(t *testing.T) {
	cases := []struct {
		name       string
		upstream   error
		wantStatus int
	}{
		{"quota", maps.ErrQuotaExceeded, http.StatusTooManyRequests},
		{"denied", maps.ErrRequestDenied, http.StatusForbidden},
		{"timeout", maps.ErrTimeout, http.StatusRequestTimeout},
		{"no results", maps.ErrNoResults, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeMaps{
				geocodeFn: func(ctx context.Context, address string) (*maps.GeocodeResult, error) {
					return nil, tc.upstream
				},
			}
			svc := newTestService(newMemStore(), nil, fake)

			rr := doRequest(t, svc, http.MethodGet, "/geocode?address=anywhere", nil, "")
			if rr.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d body=%s", tc.wantStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestPlacesRequiresInput(t *testing.T) {
	svc := newTestService(newMemStore(), nil, nil)

	rr := doRequest(t, svc, http.MethodGet, "/places", nil, "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if payload := decodeJSON(t, rr); payload["error"] != "Input is required" {
		t.Fatalf("unexpected error message: %v", payload["error"])
	}
}

func TestPlacesReturnsPredictions(t *testing.T) {
	fake := &fakeMaps{
		placesFn: func(ctx context.Context, input string) ([]maps.PlacePrediction, error) {
			return []maps.PlacePrediction{
				{Description: "1 Test St, Sydney NSW", PlaceID: "place-1"},
			}, nil
		},
	}
	svc := newTestService(newMemStore(), nil, fake)

	rr := doRequest(t, svc, http.MethodGet, "/places?input=1+Test", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	payload := decodeJSON(t, rr)
	predictions, _ := payload["predictions"].([]any)
	if len(predictions) != 1 {
		t.Fatalf("expected one prediction, got %v", payload)
	}
}

func TestDistanceMatrixRequiresBothEndpoints(t *testing.T) {
	svc := newTestService(newMemStore(), nil, nil)

	for _, target := range []string{
		"/distance-matrix",
		"/distance-matrix?origins=a",
		"/distance-matrix?destinations=b",
	} {
		rr := doRequest(t, svc, http.MethodGet, target, nil, "")
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rr.Code)
		}
		if payload := decodeJSON(t, rr); payload["error"] != "Origins and destinations are required" {
			t.Fatalf("%s: unexpected error message: %v", target, payload["error"])
		}
	}
}

func TestCustomMapRequiresCenterOrMarkers(t *testing.T) {
	svc := newTestService(newMemStore(), nil, nil)

	rr := doRequest(t, svc, http.MethodGet, "/custom-map", nil, "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if payload := decodeJSON(t, rr); payload["error"] != "Center or markers is required" {
		t.Fatalf("unexpected error message: %v", payload["error"])
	}
}

func TestCustomMapPassesQueryThrough(t *testing.T) {
	var received url.Values
	fake := &fakeMaps{
		staticFn: func(ctx context.Context, params url.Values) ([]byte, string, error) {
			received = params
			return []byte{0x89, 'P', 'N', 'G'}, "image/png", nil
		},
	}
	svc := newTestService(newMemStore(), nil, fake)

	rr := doRequest(t, svc, http.MethodGet, "/custom-map?center=-33.87,151.21&zoom=15", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "image/png" {
		t.Fatalf("unexpected content type %q", got)
	}
	if received.Get("zoom") != "15" {
		t.Fatalf("expected zoom forwarded, got %v", received)
	}
	if rr.Body.Len() != 4 {
		t.Fatalf("expected image bytes passed through, got %d bytes", rr.Body.Len())
	}
}
