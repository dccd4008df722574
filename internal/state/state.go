package state

import (
	"github.com/sidereusnuntius/blogs/internal/config"
	"github.com/sidereusnuntius/blogs/internal/db"
	"github.com/sidereusnuntius/blogs/internal/queue"
	"github.com/sidereusnuntius/blogs/internal/storage"
)

// State bundles the long lived dependencies built at startup.
type State struct {
	Config  config.Configuration
	DB      db.DB
	Storage storage.Storage
	Queue   queue.FileQueue
}
