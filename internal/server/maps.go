package server

import (
	"errors"
	"net/http"

	"github.com/zvz23/valuation-app-sub001/internal/maps"
)

type geocodeParams struct {
	Address string `form:"address"`
}

func (s *Service) handleGeocode(w http.ResponseWriter, r *http.Request) {
	var params geocodeParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	if params.Address == "" {
		s.respondError(w, http.StatusBadRequest, "Address is required")
		return
	}

	result, err := s.maps.Geocode(r.Context(), params.Address)
	if err != nil {
		s.respondMapsError(w, err, "Geocoding")
		return
	}

	s.respondJSON(w, http.StatusOK, result)
}

type placesParams struct {
	Input string `form:"input"`
}

func (s *Service) handlePlaces(w http.ResponseWriter, r *http.Request) {
	var params placesParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	if params.Input == "" {
		s.respondError(w, http.StatusBadRequest, "Input is required")
		return
	}

	predictions, err := s.maps.PlaceAutocomplete(r.Context(), params.Input)
	if err != nil {
		s.respondMapsError(w, err, "Place lookup")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"predictions": predictions})
}

type distanceMatrixParams struct {
	Origins      string `form:"origins"`
	Destinations string `form:"destinations"`
}

func (s *Service) handleDistanceMatrix(w http.ResponseWriter, r *http.Request) {
	var params distanceMatrixParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	if params.Origins == "" || params.Destinations == "" {
		s.respondError(w, http.StatusBadRequest, "Origins and destinations are required")
		return
	}

	result, err := s.maps.DistanceMatrix(r.Context(), params.Origins, params.Destinations)
	if err != nil {
		s.respondMapsError(w, err, "Distance lookup")
		return
	}

	s.respondJSON(w, http.StatusOK, result)
}

func (s *Service) handleCustomMap(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("center") == "" && query.Get("markers") == "" {
		s.respondError(w, http.StatusBadRequest, "Center or markers is required")
		return
	}

	image, contentType, err := s.maps.StaticMap(r.Context(), query)
	if err != nil {
		s.respondMapsError(w, err, "Map rendering")
		return
	}

	if contentType == "" {
		contentType = "image/png"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(image); err != nil {
		s.logger.WithError(err).Error("failed to write map image")
	}
}

// respondMapsError translates upstream conditions into their distinct
// status codes: quota 429, denial 403, timeout 408, anything else 500.
func (s *Service) respondMapsError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, maps.ErrQuotaExceeded):
		s.respondError(w, http.StatusTooManyRequests, operation+" quota exceeded")
	case errors.Is(err, maps.ErrRequestDenied):
		s.respondError(w, http.StatusForbidden, operation+" request was denied")
	case errors.Is(err, maps.ErrTimeout):
		s.respondError(w, http.StatusRequestTimeout, operation+" request timed out")
	case errors.Is(err, maps.ErrNoResults):
		s.respondError(w, http.StatusNotFound, operation+" returned no results")
	default:
		s.logger.WithError(err).Error("mapping provider call failed")
		s.respondError(w, http.StatusInternalServerError, operation+" failed")
	}
}
