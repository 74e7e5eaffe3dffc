package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"sellerflow/internal/excel"
	"sellerflow/internal/locale"
	"sellerflow/internal/metrics"
	"sellerflow/internal/report"
	"sellerflow/internal/service"
	"sellerflow/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	maxUploadSize   = 32 << 20
	reportErrorText = "Error generating report"
)

type Handler struct {
	svc    *service.Service
	logger *zap.Logger
}

func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger.Named("handler")}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// writeServiceError maps domain errors to status codes. Anything unknown is
// logged and answered with 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, notFound string) {
	var unsupported *locale.UnsupportedError
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, store.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case store.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": store.FieldErrors(err),
		})
	case metrics.IsValidationError(err), errors.Is(err, excel.ErrInvalidFile), errors.As(err, &unsupported):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// writeReportError answers document failures with the generic report error
// plus the underlying detail.
func (h *Handler) writeReportError(w http.ResponseWriter, err error, notFound string) {
	status := http.StatusInternalServerError
	if _, ok := report.AsGenerationError(err); ok {
		status = http.StatusUnprocessableEntity
	} else {
		switch {
		case report.IsTooLarge(err):
			status = http.StatusRequestEntityTooLarge
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, notFound)
			return
		case metrics.IsValidationError(err):
			status = http.StatusBadRequest
		}
	}
	h.logger.Error("document generation failed", zap.Int("status", status), zap.Error(err))
	writeJSON(w, status, map[string]any{"error": reportErrorText, "detail": err.Error()})
}

func writeFile(w http.ResponseWriter, file report.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}

func writeList[T any](w http.ResponseWriter, items []T) {
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

// pathParam returns a decoded URL parameter; order ids carry a "#" that
// clients send as %23.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return strings.TrimSpace(decoded)
	}
	return strings.TrimSpace(raw)
}

func parseRequiredFloat(raw, name string) (float64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return parsed, nil
}

func parseOptionalBool(raw, name string) (*bool, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false", name)
	}
	return &parsed, nil
}

func orderFilter(query url.Values) (store.OrderFilter, error) {
	filter := store.OrderFilter{
		Marketplace: strings.TrimSpace(query.Get("marketplace")),
		Status:      strings.TrimSpace(query.Get("status")),
		DateWindow:  strings.TrimSpace(query.Get("date_window")),
		Search:      strings.TrimSpace(query.Get("search")),
	}
	if filter.DateWindow != "" && !store.ValidDateWindow(filter.DateWindow) {
		return filter, fmt.Errorf("date_window must be one of %s", strings.Join(store.DateWindows, ", "))
	}
	return filter, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
