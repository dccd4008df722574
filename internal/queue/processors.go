package queue

import (
	"context"
	"errors"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blogs/internal/storage"
)

func (q *fileQueueImpl) register() {
	removeQueue := backlite.NewQueue[RemoveFileJob](removeFile(q.store))
	q.queues.Register(removeQueue)
}

// removeFile deletes the job's file. A file that is already gone counts as removed, so retries are harmless.
func removeFile(store storage.Storage) func(context.Context, RemoveFileJob) error {
	return func(ctx context.Context, task RemoveFileJob) error {
		log.Debug().Str("key", task.Key).Msg("removing file")
		err := store.Delete(task.Key)
		if errors.Is(err, storage.ErrNotExist) {
			log.Debug().Str("key", task.Key).Msg("file already removed")
			return nil
		}
		if err != nil {
			log.Error().Err(err).Str("key", task.Key).Msg("failed to remove file")
		}
		return err
	}
}
