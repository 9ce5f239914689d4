package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	apperr "github.com/driftpro/logoexport/pkg/errors"
)

// defaultDebounce batches the burst of events editors emit on save.
const defaultDebounce = 200 * time.Millisecond

// watchFile calls onChange after path is written, created, or replaced, once
// events have been quiet for debounce. It returns when ctx ends or onChange
// returns an error.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename keep triggering events.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func() error) error {
	logger := loggerFromContext(ctx)

	abs, err := filepath.Abs(path)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidPath, err, "resolve %s", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, err, "create watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return apperr.Filesystem(err, "watch %s", filepath.Dir(abs))
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("watch event", "op", event.Op.String(), "path", event.Name)
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)

		case <-timer.C:
			if err := onChange(); err != nil {
				return err
			}
		}
	}
}
