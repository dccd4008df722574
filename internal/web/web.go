package web

import (
	"github.com/alexedwards/scs"
	"github.com/sidereusnuntius/blogs/internal/config"
	"github.com/sidereusnuntius/blogs/internal/service"
)

const (
	LoginRoute    = "/login/"
	LogoutRoute   = "/logout/"
	RegisterRoute = "/register/"
)

// MaxMemory is the part of a multipart body kept in memory; the rest is spooled to temporary files.
const MaxMemory = 1 << 20

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}
