package api

import (
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ameese/reading-log/internal/metrics"
	"github.com/ameese/reading-log/internal/render"
	"github.com/ameese/reading-log/internal/store"
)

const (
	defaultLimit = 5
	maxLimit     = 20

	listCacheControl    = "s-maxage=60, max-age=60"
	faviconCacheControl = "s-maxage=86400, max-age=86400"
)

// itemsHandler serves every reading-log route.
type itemsHandler struct {
	items   *store.ItemStore
	site    render.Config
	favicon []byte
}

// parseLimit reads the limit query parameter: default 5, floored, clamped to
// [1, 20]. Unparseable values fall back to the default.
func parseLimit(query url.Values) int {
	raw := query.Get("limit")
	if raw == "" {
		return defaultLimit
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return defaultLimit
	}
	if parsed < 1 {
		return 1
	}
	if parsed > maxLimit {
		return maxLimit
	}
	return int(math.Floor(parsed))
}

// List returns the item collection as pretty-printed JSON.
// GET /reading
func (h *itemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.items.List(r.Context(), parseLimit(r.URL.Query()))
	metrics.RendersTotal.WithLabelValues("json").Inc()
	writeJSON(w, http.StatusOK, items)
}

// Markdown returns the collection as a markdown bullet list.
// GET /reading/markdown
func (h *itemsHandler) Markdown(w http.ResponseWriter, r *http.Request) {
	items := h.items.List(r.Context(), parseLimit(r.URL.Query()))
	metrics.RendersTotal.WithLabelValues("markdown").Inc()
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Cache-Control", listCacheControl)
	w.Write([]byte(render.Markdown(items)))
}

// RSS returns the collection as an RSS 2.0 feed.
// GET /reading/rss
func (h *itemsHandler) RSS(w http.ResponseWriter, r *http.Request) {
	items := h.items.List(r.Context(), parseLimit(r.URL.Query()))
	metrics.RendersTotal.WithLabelValues("rss").Inc()
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", listCacheControl)
	w.Write([]byte(render.RSS(items, h.site, time.Now())))
}

// Page returns the standalone HTML reading page.
// GET /, /reading/page, /reading/html
func (h *itemsHandler) Page(w http.ResponseWriter, r *http.Request) {
	items := h.items.List(r.Context(), parseLimit(r.URL.Query()))
	page, err := render.HTML(items, h.site)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	metrics.RendersTotal.WithLabelValues("html").Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", listCacheControl)
	w.Write([]byte(page))
}

// Favicon serves the embedded icon bytes.
// GET /favicon.ico, /favicon.png
func (h *itemsHandler) Favicon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", faviconCacheControl)
	w.Write(h.favicon)
}

// Add appends an item to the collection. Runs behind the token middleware.
// POST /reading/add
func (h *itemsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	item, err := req.item(time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing title or url")
		return
	}

	if err := h.items.Add(r.Context(), item); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	metrics.ItemsAddedTotal.Inc()
	writeJSON(w, http.StatusCreated, addItemResponse{OK: true, Item: item})
}
