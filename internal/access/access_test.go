package access

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/blogs/internal/domain"
)

func TestHasAccess(t *testing.T) {
	alice := &domain.Identity{UserID: 1, Username: "alice"}

	cases := []struct {
		name     string
		current  *domain.Identity
		scope    Scope
		expected bool
	}{
		{"owner", alice, ResourceOwner{"alice"}, true},
		{"other owner", alice, ResourceOwner{"bob"}, false},
		{"case mismatch", alice, ResourceOwner{"Alice"}, false},
		{"unscoped authenticated", alice, Unscoped{}, true},
		{"unauthenticated owner scope", nil, ResourceOwner{"alice"}, false},
		{"unauthenticated unscoped", nil, Unscoped{}, false},
		{"nil scope", alice, nil, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := HasAccess(c.current, c.scope); got != c.expected {
				t.Errorf("expected %v, got %v", c.expected, got)
			}
		})
	}
}

func TestPathOwner(t *testing.T) {
	cases := []struct {
		name     string
		username string
		expected Scope
	}{
		{"username present", "alice", ResourceOwner{"alice"}},
		{"username absent", "", Unscoped{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			rctx := chi.NewRouteContext()
			if c.username != "" {
				rctx.URLParams.Add("username", c.username)
			}
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

			if diff := cmp.Diff(c.expected, PathOwner("username")(r)); diff != "" {
				t.Error(diff)
			}
		})
	}
}
