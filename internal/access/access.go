// Package access decides whether an authenticated identity may mutate a resource.
//
// Every route declares the scope it operates in. A ResourceOwner scope names the username a resource
// transitively belongs to, taken from the request path; an Unscoped route only requires that somebody is
// logged in.
package access

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sidereusnuntius/blogs/internal/domain"
)

type Scope interface {
	scope()
}

// ResourceOwner restricts access to the user whose username equals Username.
type ResourceOwner struct {
	Username string
}

// Unscoped admits any authenticated user.
type Unscoped struct{}

func (ResourceOwner) scope() {}
func (Unscoped) scope()      {}

// Resolver derives the scope that applies to a request.
type Resolver func(r *http.Request) Scope

// HasAccess reports whether current may act within scope. A nil identity never has access. Usernames are
// compared exactly, so "Alice" and "alice" are different owners.
func HasAccess(current *domain.Identity, scope Scope) bool {
	if current == nil {
		return false
	}

	switch s := scope.(type) {
	case ResourceOwner:
		return current.Username == s.Username
	case Unscoped:
		return true
	default:
		return false
	}
}

// ScopeOf returns ResourceOwner when username is not empty and Unscoped otherwise.
func ScopeOf(username string) Scope {
	if username == "" {
		return Unscoped{}
	}
	return ResourceOwner{Username: username}
}

// PathOwner returns a resolver that reads the owner's username from the chi URL parameter param.
func PathOwner(param string) Resolver {
	return func(r *http.Request) Scope {
		return ScopeOf(chi.URLParam(r, param))
	}
}

// Anyone is the resolver for routes that carry no owner in their path.
func Anyone(*http.Request) Scope {
	return Unscoped{}
}
