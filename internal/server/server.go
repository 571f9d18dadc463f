package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/zvz23/valuation-app-sub001/internal/maps"
	"github.com/zvz23/valuation-app-sub001/internal/storage"
	"github.com/zvz23/valuation-app-sub001/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

// RecordStore is the persistence contract the handlers require. The
// pgx-backed repository satisfies it in production; tests substitute a
// fake.
type RecordStore interface {
	Ping(ctx context.Context) error
	Record(ctx context.Context, id string) (*types.ValuationRecord, error)
	Records(ctx context.Context) ([]*types.ValuationRecord, error)
	UpsertRecord(ctx context.Context, id string, sections map[string]any) (*types.ValuationRecord, error)
	UpdatePhotos(ctx context.Context, id string, photos types.Photos) error
	DeleteRecord(ctx context.Context, id string) error
}

// MapsAPI is the outbound mapping-provider contract.
type MapsAPI interface {
	Geocode(ctx context.Context, address string) (*maps.GeocodeResult, error)
	PlaceAutocomplete(ctx context.Context, input string) ([]maps.PlacePrediction, error)
	DistanceMatrix(ctx context.Context, origins, destinations string) (*maps.DistanceResult, error)
	StaticMap(ctx context.Context, params url.Values) ([]byte, string, error)
}

type Service struct {
	logger   *logrus.Logger
	config   *types.Config
	records  RecordStore
	uploader storage.Uploader
	maps     MapsAPI

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	records RecordStore,
	uploader storage.Uploader,
	mapsClient MapsAPI,
) *Service {
	mux := flow.New()

	s := &Service{
		logger:   logger,
		config:   config,
		records:  records,
		uploader: uploader,
		maps:     mapsClient,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/records", s.handleListRecords, http.MethodGet)
	r.HandleFunc("/records", s.handleCreateRecord, http.MethodPost)
	r.HandleFunc("/records", s.handleDeleteRecordByQuery, http.MethodDelete)
	r.HandleFunc("/records/:id", s.handleGetRecord, http.MethodGet)
	r.HandleFunc("/records/:id", s.handleUpdateRecord, http.MethodPut)
	r.HandleFunc("/records/:id", s.handleDeleteRecord, http.MethodDelete)
	r.HandleFunc("/records/:id/photos", s.handleDeletePhoto, http.MethodDelete)

	r.HandleFunc("/geocode", s.handleGeocode, http.MethodGet)
	r.HandleFunc("/places", s.handlePlaces, http.MethodGet)
	r.HandleFunc("/distance-matrix", s.handleDistanceMatrix, http.MethodGet)
	r.HandleFunc("/custom-map", s.handleCustomMap, http.MethodGet)
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.records.Ping(ctx); err != nil {
		s.logger.WithError(err).Error("health check failed")
		s.respondJSON(w, http.StatusServiceUnavailable, map[string]any{
			"ok":       false,
			"database": "unreachable",
		})
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}
