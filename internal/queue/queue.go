package queue

import (
	"context"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blogs/internal/storage"
)

//go:generate mockgen -destination=../mocks/queue.go -package=mocks . FileQueue

// FileQueue schedules background work on stored files.
type FileQueue interface {
	// RemoveFiles enqueues the deletion of every key. Empty keys are ignored.
	RemoveFiles(ctx context.Context, keys ...string) error
}

type fileQueueImpl struct {
	store  storage.Storage
	queues *backlite.Client
}

// New registers the file queues on blClient and starts its workers, which stop when ctx is cancelled.
func New(ctx context.Context, store storage.Storage, blClient *backlite.Client) FileQueue {
	q := &fileQueueImpl{
		store:  store,
		queues: blClient,
	}
	q.register()
	q.queues.Start(ctx)
	log.Info().Msg("started task queue")
	return q
}

func (q *fileQueueImpl) RemoveFiles(ctx context.Context, keys ...string) error {
	tasks := make([]backlite.Task, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		tasks = append(tasks, RemoveFileJob{Key: k})
	}
	if len(tasks) == 0 {
		return nil
	}

	log.Debug().Strs("keys", keys).Msg("enqueuing file removal")
	_, err := q.queues.Add(tasks...).Ctx(ctx).Save()
	return err
}
