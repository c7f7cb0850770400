package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/housing-budget/internal/cache"
	"github.com/iwvelando/housing-budget/internal/config"
	"github.com/iwvelando/housing-budget/internal/planner"
	"github.com/iwvelando/housing-budget/internal/reference"
	"github.com/iwvelando/housing-budget/pkg/constants"
	"github.com/iwvelando/housing-budget/pkg/output"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request ID on requests and responses.
const RequestIDHeader = "X-Request-ID"

// CacheHeader reports whether a plan was served from the cache.
const CacheHeader = "X-Cache"

type requestIDKey struct{}

type handler struct {
	logger        *zap.Logger
	catalog       reference.Catalog
	catalogHash   uint64
	plans         cache.Cache
	maxUploadSize int64
	version       string
}

// Options configure the handler.
type Options struct {
	Catalog       reference.Catalog
	Cache         cache.Cache // nil disables caching
	MaxUploadSize int64
	Version       string
}

// NewHandler constructs the HTTP handler that serves the planning API.
func NewHandler(logger *zap.Logger, opts Options) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.MaxUploadSize <= 0 {
		opts.MaxUploadSize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	if err := opts.Catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	hash, err := cache.Fingerprint(opts.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint catalog: %w", err)
	}

	h := &handler{
		logger:        logger,
		catalog:       opts.Catalog,
		catalogHash:   hash,
		plans:         opts.Cache,
		maxUploadSize: opts.MaxUploadSize,
		version:       trimmedVersion,
	}

	mux := http.NewServeMux()

	// Single household plan
	mux.HandleFunc("/api/plan", h.handlePlan)

	// Batch of households uploaded as a YAML configuration file
	mux.HandleFunc("/api/batch", h.handleBatch)

	// Reference data
	mux.HandleFunc("/api/cities", h.handleCities)
	mux.HandleFunc("/api/catalog", h.handleCatalog)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return h.withRequestID(mux), nil
}

func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

func (h *handler) log(r *http.Request) *zap.Logger {
	return h.logger.With(zap.String("requestId", requestID(r)))
}

type planResponse struct {
	RequestID string          `json:"requestId"`
	Cached    bool            `json:"cached"`
	Duration  string          `json:"duration"`
	Result    json.RawMessage `json:"result"`
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePlan"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	var household config.Household
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&household); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode household: %v", err), op)
		return
	}

	profile, err := household.Profile()
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	key, keyErr := cache.Key("plan", profile, h.catalogHash)
	if keyErr != nil {
		h.log(r).Warn("failed to build cache key", zap.String("op", op), zap.Error(keyErr))
	}
	if cached, ok := h.cachedPlan(r, key); ok {
		w.Header().Set(CacheHeader, "hit")
		h.writeJSON(w, http.StatusOK, planResponse{
			RequestID: requestID(r),
			Cached:    true,
			Duration:  time.Since(start).String(),
			Result:    cached,
		})
		return
	}

	result, err := planner.Plan(h.log(r), h.catalog, profile)
	if err != nil {
		h.respondErrorWithOp(w, r, statusFor(err), err.Error(), op)
		return
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to encode plan: %v", err), op)
		return
	}
	h.storePlan(r, key, encoded)

	elapsed := time.Since(start)
	h.log(r).Info("plan computed",
		zap.String("op", op),
		zap.String("city", result.City),
		zap.String("financing", string(result.Budget.Option)),
		zap.Duration("duration", elapsed),
	)

	w.Header().Set(CacheHeader, "miss")
	h.writeJSON(w, http.StatusOK, planResponse{
		RequestID: requestID(r),
		Duration:  elapsed.String(),
		Result:    encoded,
	})
}

func (h *handler) cachedPlan(r *http.Request, key string) ([]byte, bool) {
	if h.plans == nil || key == "" {
		return nil, false
	}
	value, ok, err := h.plans.Get(r.Context(), key)
	if err != nil {
		h.log(r).Warn("plan cache lookup failed",
			zap.String("op", "server.cachedPlan"),
			zap.Error(err),
		)
		return nil, false
	}
	return value, ok
}

func (h *handler) storePlan(r *http.Request, key string, value []byte) {
	if h.plans == nil || key == "" {
		return
	}
	if err := h.plans.Set(r.Context(), key, value); err != nil {
		h.log(r).Warn("plan cache store failed",
			zap.String("op", "server.storePlan"),
			zap.Error(err),
		)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, reference.ErrUnknownCity):
		return http.StatusNotFound
	case errors.Is(err, planner.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type batchResponse struct {
	RequestID string      `json:"requestId"`
	Plans     []batchPlan `json:"plans"`
	CSV       string      `json:"csv"`
	Warnings  []string    `json:"warnings,omitempty"`
	Duration  string      `json:"duration"`
}

type batchPlan struct {
	Household string          `json:"household"`
	Result    *planner.Result `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
}

func (h *handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleBatch"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.log(r).Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
		return
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	response := batchResponse{
		RequestID: requestID(r),
		Warnings:  cfg.ValidateConfiguration(),
		Plans:     []batchPlan{},
	}
	var computed []planner.Result
	for _, household := range cfg.ActiveHouseholds() {
		entry := batchPlan{Household: household.Name}
		profile, err := household.Profile()
		if err == nil {
			var result planner.Result
			result, err = planner.Plan(h.log(r), h.catalog, profile)
			if err == nil {
				entry.Result = &result
				computed = append(computed, result)
			}
		}
		if err != nil {
			entry.Error = err.Error()
		}
		response.Plans = append(response.Plans, entry)
	}
	response.CSV = output.CsvString(computed)
	response.Duration = time.Since(start).String()

	h.log(r).Info("batch computed",
		zap.String("op", op),
		zap.Int("households", len(response.Plans)),
		zap.Int("planned", len(computed)),
		zap.Duration("duration", time.Since(start)),
	)

	h.writeJSON(w, http.StatusOK, response)
}

type citySummary struct {
	Name             string   `json:"name"`
	ArabicName       string   `json:"arabicName,omitempty"`
	AveragePrice     float64  `json:"averagePrice"`
	AverageRent      float64  `json:"averageRent"`
	PricePerSqm      float64  `json:"pricePerSqm"`
	InflationRatePct float64  `json:"inflationRatePct"`
	Regions          []string `json:"regions,omitempty"`
	Districts        []string `json:"districts"`
}

func (h *handler) handleCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	cities := make([]citySummary, 0, len(h.catalog.Cities))
	for _, city := range h.catalog.Cities {
		districts := make([]string, 0, len(city.Districts))
		for _, d := range city.Districts {
			districts = append(districts, d.Name)
		}
		cities = append(cities, citySummary{
			Name:             city.Name,
			ArabicName:       city.ArabicName,
			AveragePrice:     city.AveragePrice,
			AverageRent:      city.AverageRent,
			PricePerSqm:      city.PricePerSqm,
			InflationRatePct: city.InflationRatePct,
			Regions:          city.Regions,
			Districts:        districts,
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"cities": cities,
	})
}

func (h *handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var buf bytes.Buffer
	if err := reference.EncodeCatalog(&buf, h.catalog); err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to encode catalog: %v", err), "server.handleCatalog")
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.log(r).Error("failed to write catalog", zap.Error(err))
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.log(r).Error("plan request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg, "requestId": requestID(r)})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
