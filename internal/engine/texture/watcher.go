package texture

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefolio/internal/logger"
)

// Watcher reports changes to face images in a directory. Bursts of events
// collapse into a single pending notification.
type Watcher struct {
	w       *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
	log     *zap.Logger
}

// Watch starts watching dir.
func Watch(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	watcher := &Watcher{
		w:       w,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
		log:     logger.Named("texture"),
	}
	go watcher.run()
	return watcher, nil
}

// Changes delivers a value after one or more face images changed.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !IsFaceImage(filepath.Base(ev.Name)) || ev.Op == fsnotify.Chmod {
				continue
			}
			w.log.Debug("face image changed", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}
