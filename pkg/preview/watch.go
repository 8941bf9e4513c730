package preview

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vango-dev/forms/internal/errors"
	"github.com/vango-dev/forms/pkg/schema"
)

// reloadDelay coalesces the bursts of events editors produce on save.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the definition at path whenever it changes, until ctx is
// cancelled. The directory is watched rather than the file so that
// editors replacing the file by rename are followed. A definition that
// fails to load is logged and the previous one stays in service.
func (s *Server) Watch(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return err
	}

	go func() {
		defer func() { _ = w.Close() }()

		var timer *time.Timer
		fire := make(chan struct{}, 1)
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer == nil {
					timer = time.AfterFunc(reloadDelay, func() {
						select {
						case fire <- struct{}{}:
						default:
						}
					})
				} else {
					timer.Reset(reloadDelay)
				}
			case <-fire:
				s.reload(abs)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warn("watch error", "error", err)
			}
		}
	}()

	s.logger.Info("watching definition", "path", abs)
	return nil
}

func (s *Server) reload(path string) {
	def, err := schema.Load(path)
	if err != nil {
		s.metrics.RecordReload(false)
		coded := errors.All(err)
		if len(coded) == 0 {
			s.logger.Error("definition reload failed", "error", err)
		}
		for _, fe := range coded {
			s.logger.Error("definition reload failed", "code", fe.Code, "error", fe.Error())
		}
		return
	}
	s.metrics.RecordReload(true)
	s.SetDefinition(def)
}
