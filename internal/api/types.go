package api

import (
	"errors"
	"time"

	"github.com/ameese/reading-log/internal/reading"
)

// errMissingField is the single validation failure the add endpoint reports.
var errMissingField = errors.New("missing title or url")

// addItemRequest models the add payload. The fields are deliberately
// any-typed: a payload where title is a number is a valid JSON body with a
// missing title, not a malformed request.
type addItemRequest struct {
	Title   any `json:"title"`
	URL     any `json:"url"`
	AddedAt any `json:"added_at"`
	ID      any `json:"id"`
}

// addItemResponse is the 201 body for a successful add.
type addItemResponse struct {
	OK   bool         `json:"ok"`
	Item reading.Item `json:"item"`
}

// item validates the payload and builds the normalized item to persist.
// Title and url are required; added_at falls back to now and id to the
// canonical url.
func (req addItemRequest) item(now time.Time) (reading.Item, error) {
	title := reading.NormalizeText(asString(req.Title))
	itemURL := reading.NormalizeURL(asString(req.URL))
	if title == "" || itemURL == "" {
		return reading.Item{}, errMissingField
	}

	addedAt := reading.NormalizeISO(asString(req.AddedAt))
	if addedAt == "" {
		addedAt = now.UTC().Format(reading.ISOFormat)
	}

	id := asString(req.ID)
	if id == "" {
		id = itemURL
	}

	return reading.Item{
		ID:      id,
		Title:   title,
		URL:     itemURL,
		AddedAt: addedAt,
	}, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
