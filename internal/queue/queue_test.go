package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/mikestefanello/backlite"
	"github.com/sidereusnuntius/blogs/internal/config"
	"github.com/sidereusnuntius/blogs/internal/initialization"
	"github.com/sidereusnuntius/blogs/internal/mocks"
	"github.com/sidereusnuntius/blogs/internal/storage"
	"go.uber.org/mock/gomock"
)

var ctx = context.Background()

func TestRemoveFile(t *testing.T) {
	cases := []struct {
		name      string
		deleteErr error
		expectErr bool
	}{
		{name: "Removed"},
		{name: "AlreadyGone", deleteErr: storage.ErrNotExist},
		{name: "BackendFailure", deleteErr: storage.ErrInternal, expectErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockStorage(ctrl)
			store.EXPECT().Delete("files/abc/a.png").Return(c.deleteErr).Times(1)

			err := removeFile(store)(ctx, RemoveFileJob{Key: "files/abc/a.png"})
			if c.expectErr != (err != nil) {
				t.Errorf("expected error: %v, got %v", c.expectErr, err)
			}
			if c.expectErr && !errors.Is(err, c.deleteErr) {
				t.Errorf("expected %v, got %v", c.deleteErr, err)
			}
		})
	}
}

func TestRemoveFilesEnqueuesOneTaskPerKey(t *testing.T) {
	d, err := initialization.OpenDB("file:queuetest?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	client, err := initialization.InitQueue(&config.Configuration{QueueWorkers: 1}, d)
	if err != nil {
		t.Fatal(err)
	}

	ctrl := gomock.NewController(t)
	q := &fileQueueImpl{store: mocks.NewMockStorage(ctrl), queues: client}
	q.register()

	if err = q.RemoveFiles(ctx, "files/1/a", "", "files/2/b"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	var count int
	err = d.QueryRow(`SELECT COUNT(*) FROM backlite_tasks WHERE queue = ?`, RemoveFileQueue).Scan(&count)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("expected 2 tasks, got %d", count)
	}
}

func TestRemoveFilesWithoutKeys(t *testing.T) {
	q := &fileQueueImpl{}
	if err := q.RemoveFiles(ctx, "", ""); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestJobConfig(t *testing.T) {
	var task backlite.Task = RemoveFileJob{}
	cfg := task.Config()
	if cfg.Name != RemoveFileQueue || cfg.MaxAttempts < 2 {
		t.Errorf("unexpected queue config: %+v", cfg)
	}
}
