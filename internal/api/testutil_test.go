package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/ameese/reading-log/internal/api"
	"github.com/ameese/reading-log/internal/auth"
	"github.com/ameese/reading-log/internal/reading"
	"github.com/ameese/reading-log/internal/render"
	"github.com/ameese/reading-log/internal/store"
	"github.com/ameese/reading-log/internal/testutil"
)

const testToken = "test-token"

// testEnv holds the router and store needed for endpoint tests.
type testEnv struct {
	Router http.Handler
	Items  *store.ItemStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full router with a real store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	kv, err := store.NewSQLKV(testutil.NewTestDB(t), "sqlite3")
	if err != nil {
		t.Fatalf("new kv: %v", err)
	}
	items := store.NewItemStore(kv)

	router := api.NewRouter(api.Deps{
		Items: items,
		Auth:  auth.NewTokenMiddleware(testToken),
		Site:  render.Config{SiteTitle: "Test Reads", SiteURL: "https://reads.example.com"},
	})

	return &testEnv{Router: router, Items: items}
}

// seedItem writes one item straight through the store.
func seedItem(t *testing.T, env *testEnv, title, url, addedAt string) {
	t.Helper()
	err := env.Items.Add(context.Background(), reading.Item{
		ID:      url,
		Title:   title,
		URL:     url,
		AddedAt: addedAt,
	})
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
}

// authRequest adds the test Bearer token to the request.
func authRequest(r *http.Request) *http.Request {
	r.Header.Set("Authorization", "Bearer "+testToken)
	return r
}
