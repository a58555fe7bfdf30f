package proxy

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Handler forwards any request under its path prefix to the upstream API
// and mirrors the upstream's status, body and content type back unchanged.
// It exists so browsers talk to a same-origin endpoint instead of the
// upstream's real address; payloads are never transformed.
type Handler struct {
	upstreamBase string
	prefix       string
	client       *http.Client
}

// NewHandler creates a forwarding handler. upstreamBase is the upstream API
// root; prefix is the local path prefix stripped before forwarding, e.g.
// "/api/proxy".
func NewHandler(upstreamBase, prefix string) *Handler {
	return &Handler{
		upstreamBase: strings.TrimRight(upstreamBase, "/"),
		prefix:       strings.TrimRight(prefix, "/"),
		client:       &http.Client{},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.upstreamBase == "" {
		writeError(w, http.StatusInternalServerError, "API base URL is not configured.")
		return
	}

	var body io.Reader
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		body = r.Body
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, h.buildUpstreamURL(r), body)
	if err != nil {
		writeError(w, http.StatusBadGateway, "invalid upstream request")
		return
	}

	// Only these two request headers cross the boundary.
	if auth := r.Header.Get("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		writeError(w, http.StatusBadGateway, "upstream request failed")
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}

// buildUpstreamURL strips the local prefix and reattaches the original
// query string.
func (h *Handler) buildUpstreamURL(r *http.Request) string {
	path := strings.TrimPrefix(r.URL.Path, h.prefix)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if r.URL.RawQuery != "" {
		return h.upstreamBase + path + "?" + r.URL.RawQuery
	}
	return h.upstreamBase + path
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
