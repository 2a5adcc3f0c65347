package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/JerelRocktaschel/jumpshot/internal/http/middleware"
	"github.com/JerelRocktaschel/jumpshot/internal/logging"
	"github.com/JerelRocktaschel/jumpshot/internal/providers"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Error codes returned in the "code" field of error bodies.
const (
	codeInvalidParameter = "invalid_parameter"
	codeNoData           = "no_data"
	codeUnavailable      = "upstream_unavailable"
	codeRejected         = "upstream_rejected"
	codeDecode           = "upstream_malformed"
	codeShuttingDown     = "shutting_down"
	codeInternal         = "internal"
)

type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := jsonAPI.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeImage(w http.ResponseWriter, img []byte, logger *slog.Logger) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img); err != nil {
		logging.Error(logger, "failed to write image", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	writeJSON(w, status, errorBody{Error: message, Code: code, RequestID: reqID}, logger)
}

// classify maps a provider failure to the gateway status and error code. Upstream
// rejections and malformed payloads are the NBA host's fault, so both are 502.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, providers.ErrInvalidParameter):
		return http.StatusBadRequest, codeInvalidParameter
	case errors.Is(err, providers.ErrNoData):
		return http.StatusNotFound, codeNoData
	case errors.Is(err, providers.ErrTransportUnavailable):
		return http.StatusServiceUnavailable, codeUnavailable
	case errors.Is(err, providers.ErrDecode):
		return http.StatusBadGateway, codeDecode
	case errors.Is(err, providers.ErrAuthentication),
		errors.Is(err, providers.ErrBadRequest),
		errors.Is(err, providers.ErrOutdatedRequest),
		errors.Is(err, providers.ErrFailedRequest):
		return http.StatusBadGateway, codeRejected
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
