package http

import (
	"encoding/json"
	nethttp "net/http"
)

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError emits the uniform error envelope. The request ID stays in the
// X-Request-ID header; the body never carries more than the error key.
func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) writeRaw(w nethttp.ResponseWriter, payload json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(nethttp.StatusOK)
	if _, err := w.Write(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}
