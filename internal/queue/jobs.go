package queue

import (
	"time"

	"github.com/mikestefanello/backlite"
)

const (
	RemoveFileQueue = "RemoveFile"
)

// RemoveFileJob deletes one stored file whose database row no longer exists.
type RemoveFileJob struct {
	Key string
}

func (j RemoveFileJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        RemoveFileQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     30 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: true,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}
