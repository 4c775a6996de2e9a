package api

import (
	"net/url"
	"testing"
	"time"
)

func TestParseLimit(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 5},
		{"0", 1},
		{"-3", 1},
		{"999", 20},
		{"abc", 5},
		{"3.7", 3},
		{"20.5", 20},
		{"7", 7},
		{"NaN", 5},
		{"Inf", 5},
		{"1e300", 20},
	}
	for _, c := range cases {
		q := url.Values{}
		if c.raw != "" {
			q.Set("limit", c.raw)
		}
		if got := parseLimit(q); got != c.want {
			t.Errorf("parseLimit(%q) = %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestAddItemRequest_Defaults(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	req := addItemRequest{Title: "  A   Title ", URL: "https://Example.com/x"}
	item, err := req.item(now)
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	if item.Title != "A Title" {
		t.Errorf("title = %q", item.Title)
	}
	if item.URL != "https://example.com/x" {
		t.Errorf("url = %q", item.URL)
	}
	if item.ID != item.URL {
		t.Errorf("id = %q, want the url", item.ID)
	}
	if item.AddedAt != "2024-06-01T12:00:00.000Z" {
		t.Errorf("added_at = %q, want now", item.AddedAt)
	}
}

func TestAddItemRequest_ExplicitFields(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	req := addItemRequest{
		Title:   "T",
		URL:     "https://example.com/x",
		AddedAt: "2023-02-03T04:05:06Z",
		ID:      "custom-id",
	}
	item, err := req.item(now)
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	if item.ID != "custom-id" {
		t.Errorf("id = %q", item.ID)
	}
	if item.AddedAt != "2023-02-03T04:05:06.000Z" {
		t.Errorf("added_at = %q", item.AddedAt)
	}

	// Invalid added_at falls back to now; non-string id falls back to url.
	req.AddedAt = "whenever"
	req.ID = 7
	item, err = req.item(now)
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	if item.AddedAt != "2024-06-01T12:00:00.000Z" {
		t.Errorf("added_at = %q, want now", item.AddedAt)
	}
	if item.ID != "https://example.com/x" {
		t.Errorf("id = %q, want the url", item.ID)
	}
}

func TestAddItemRequest_MissingFields(t *testing.T) {
	now := time.Now()
	cases := []addItemRequest{
		{},
		{Title: "T"},
		{URL: "https://example.com/"},
		{Title: 42, URL: "https://example.com/"},
		{Title: "T", URL: "nope"},
	}
	for i, req := range cases {
		if _, err := req.item(now); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
