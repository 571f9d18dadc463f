package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/zvz23/valuation-app-sub001/internal/utils"
	"github.com/zvz23/valuation-app-sub001/internal/valuation"
	"github.com/zvz23/valuation-app-sub001/pkg/types"

	"github.com/alexedwards/flow"
)

func (s *Service) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.records.Records(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list records")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, records)
}

func (s *Service) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id := flow.Param(r.Context(), "id")

	record, err := s.records.Record(r.Context(), id)
	if err != nil {
		if errors.Is(err, types.ErrRecordNotFound) {
			s.respondError(w, http.StatusNotFound, "record not found")
			return
		}
		s.logger.WithError(err).Error("failed to fetch record")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, record)
}

func (s *Service) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var sections map[string]json.RawMessage
	if err := decodeBody(r, &sections); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	valuation.StripNullSections(sections)

	if err := valuation.ValidateSections(sections); err != nil {
		s.respondValidationError(w, err)
		return
	}

	columns, err := sectionColumns(sections)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := s.records.UpsertRecord(r.Context(), utils.NanoID(), columns)
	if err != nil {
		s.logger.WithError(err).Error("failed to create record")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusCreated, record)
}

// handleUpdateRecord accepts either a JSON body of sections or a
// multipart form carrying a "data" JSON field plus file parts named by
// photo category. Sections are validated before any side effect; file
// parts are uploaded, merged against the currently stored photos, and
// the result is upserted (creating the record when absent).
func (s *Service) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := flow.Param(r.Context(), "id")

	sections, files, err := decodeUpdatePayload(r, s.config.MaxUploadBytes)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	valuation.StripNullSections(sections)

	if err := valuation.ValidateSections(sections); err != nil {
		s.respondValidationError(w, err)
		return
	}

	columns, err := sectionColumns(sections)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if len(files) > 0 {
		uploaded, err := s.uploadAttachments(r, id, files)
		if err != nil {
			s.logger.WithError(err).Error("attachment upload failed")
			s.respondError(w, http.StatusBadGateway, "failed to store attachment")
			return
		}

		// Re-read the stored photos immediately before merging. The
		// read-merge-write sequence is not atomic; concurrent writers
		// to the same category can lose updates.
		current := types.Photos{}
		existing, err := s.records.Record(r.Context(), id)
		if err != nil && !errors.Is(err, types.ErrRecordNotFound) {
			s.logger.WithError(err).Error("failed to read record before photo merge")
			s.internalServerError(w)
			return
		}
		if existing != nil {
			current = existing.Photos
		}

		columns["photos"] = valuation.MergePhotos(current, uploaded)
	}

	record, err := s.records.UpsertRecord(r.Context(), id, columns)
	if err != nil {
		s.logger.WithError(err).Error("failed to upsert record")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, record)
}

func (s *Service) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	s.deleteRecord(w, r, flow.Param(r.Context(), "id"))
}

func (s *Service) handleDeleteRecordByQuery(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		s.respondError(w, http.StatusBadRequest, "id query parameter is required")
		return
	}

	s.deleteRecord(w, r, id)
}

func (s *Service) deleteRecord(w http.ResponseWriter, r *http.Request, id string) {
	err := s.records.DeleteRecord(r.Context(), id)
	if err != nil {
		if errors.Is(err, types.ErrRecordNotFound) {
			s.respondError(w, http.StatusNotFound, "record not found")
			return
		}
		s.logger.WithError(err).Error("failed to delete record")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func (s *Service) handleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	id := flow.Param(r.Context(), "id")

	var body struct {
		PhotoType string `json:"photoType"`
		PhotoURL  string `json:"photoUrl"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if body.PhotoType == "" || body.PhotoURL == "" {
		s.respondError(w, http.StatusBadRequest, "photoType and photoUrl are required")
		return
	}

	if !types.ValidPhotoCategory(body.PhotoType) {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown photo category %q", body.PhotoType))
		return
	}

	record, err := s.records.Record(r.Context(), id)
	if err != nil {
		if errors.Is(err, types.ErrRecordNotFound) {
			s.respondError(w, http.StatusNotFound, "record not found")
			return
		}
		s.logger.WithError(err).Error("failed to fetch record")
		s.internalServerError(w)
		return
	}

	updated, remaining, err := valuation.RemovePhoto(record.Photos, body.PhotoType, body.PhotoURL)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "photo not found in category")
		return
	}

	if err := s.records.UpdatePhotos(r.Context(), id, updated); err != nil {
		if errors.Is(err, types.ErrRecordNotFound) {
			s.respondError(w, http.StatusNotFound, "record not found")
			return
		}
		s.logger.WithError(err).Error("failed to persist photo removal")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"remainingPhotos": remaining})
}

func (s *Service) respondValidationError(w http.ResponseWriter, err error) {
	var sectionErr *types.SectionValidationError
	if errors.As(err, &sectionErr) {
		s.respondJSON(w, http.StatusBadRequest, map[string]any{
			"error":   sectionErr.Message,
			"section": sectionErr.Section,
		})
		return
	}
	s.respondError(w, http.StatusBadRequest, err.Error())
}

// decodeUpdatePayload splits a PUT body into its section map and, for
// multipart requests, the file parts grouped by photo category.
func decodeUpdatePayload(r *http.Request, maxUploadBytes int64) (map[string]json.RawMessage, map[string][]*multipart.FileHeader, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if !strings.HasPrefix(mediaType, "multipart/") {
		var sections map[string]json.RawMessage
		if err := decodeBody(r, &sections); err != nil {
			return nil, nil, err
		}
		return sections, nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, nil, fmt.Errorf("invalid multipart payload")
	}

	sections := map[string]json.RawMessage{}
	if data := r.FormValue("data"); data != "" {
		if err := json.Unmarshal([]byte(data), &sections); err != nil {
			return nil, nil, fmt.Errorf("data field is not a valid JSON section map")
		}
	}

	files := map[string][]*multipart.FileHeader{}
	for field, headers := range r.MultipartForm.File {
		if !types.ValidPhotoCategory(field) {
			return nil, nil, fmt.Errorf("unknown photo category %q", field)
		}
		files[field] = headers
	}

	return sections, files, nil
}

// uploadAttachments sends every file part to the upload collaborator,
// one category at a time. Any single failure aborts the whole update so
// no partial upload is ever merged.
func (s *Service) uploadAttachments(r *http.Request, id string, files map[string][]*multipart.FileHeader) (types.Photos, error) {
	uploaded := types.Photos{}

	for _, category := range types.PhotoCategories {
		headers, ok := files[category]
		if !ok {
			continue
		}

		for _, header := range headers {
			file, err := header.Open()
			if err != nil {
				return nil, fmt.Errorf("open %s part: %w", category, err)
			}

			contentType := header.Header.Get("Content-Type")
			if contentType == "" {
				contentType = "application/octet-stream"
			}

			path := fmt.Sprintf("records/%s/%s/%s-%s", id, category, utils.NanoIDSize(10), header.Filename)

			url, err := s.uploader.UploadFile(r.Context(), path, file, contentType)
			file.Close()
			if err != nil {
				return nil, fmt.Errorf("upload %s part: %w", category, err)
			}

			uploaded[category] = append(uploaded[category], url)
		}
	}

	return uploaded, nil
}

// sectionColumns maps payload keys to storage columns. The photos
// section is decoded here so the store receives a typed mapping; unknown
// keys are dropped.
func sectionColumns(sections map[string]json.RawMessage) (map[string]any, error) {
	columns := map[string]any{}

	for name, raw := range sections {
		if name == valuation.SectionPhotos {
			var photos types.Photos
			if err := json.Unmarshal(raw, &photos); err != nil {
				return nil, fmt.Errorf("photos section is not a category to URL-list mapping")
			}
			columns["photos"] = photos
			continue
		}

		column, ok := valuation.SectionColumn(name)
		if !ok {
			continue
		}
		columns[column] = raw
	}

	return columns, nil
}
