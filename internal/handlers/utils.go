package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"fdalabel-api/internal/api"
	"fdalabel-api/internal/config"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: ", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, traceID string, message string) {
	writeJsonResponse(w, httpCode, api.ErrorResponse{
		Code:    httpCode,
		Message: message,
		TraceID: traceID,
	})
}

func traceFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		return traceID
	}
	return ""
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logRH.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true
	}
}
