// Package watch reports changes to a set of files, coalescing bursts of
// filesystem events into a single callback.
//
// Parent directories are watched rather than the files themselves so that
// editors which save by writing a temporary file and renaming it over the
// original keep being observed.
package watch

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/argx/errors"
	"github.com/teranos/argx/sym"
)

// DefaultDebounce is the quiet period before a batch of changes is delivered.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc receives the sorted, de-duplicated paths that changed.
type ChangeFunc func(paths []string)

// Watcher watches files for changes and triggers a debounced callback
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange ChangeFunc
	debounce time.Duration
	logger   *zap.SugaredLogger

	mu      sync.Mutex
	files   map[string]struct{}
	dirs    map[string]struct{}
	pending map[string]struct{}
	timer   *time.Timer

	fireMu sync.Mutex // callbacks never overlap
}

// New creates a watcher. debounce <= 0 uses DefaultDebounce; a nil logger
// discards output.
func New(onChange ChangeFunc, debounce time.Duration, logger *zap.SugaredLogger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Watcher{
		watcher:  fw,
		onChange: onChange,
		debounce: debounce,
		logger:   logger.Named("watch"),
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
		pending:  make(map[string]struct{}),
	}, nil
}

// Add starts watching path. The file's directory must exist.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "resolve %s", path)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.dirs[dir]; !ok {
		if err := w.watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch directory %s", dir)
		}
		w.dirs[dir] = struct{}{}
	}
	w.files[abs] = struct{}{}

	w.logger.Debugw("Watching file", "file", abs, "symbol", sym.Watch)
	return nil
}

// Run delivers change batches until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event.Op) || isScratchFile(event.Name) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if !w.watching(abs) {
				continue
			}

			w.logger.Debugw("Detected change",
				"file", abs,
				"op", event.Op.String())
			w.schedule(abs)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("Watcher error", "error", err)
		}
	}
}

// Close stops the watcher and any pending callback.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

func (w *Watcher) watching(abs string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.files[abs]
	return ok
}

// schedule debounces rapid changes into one callback
func (w *Watcher) schedule(abs string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[abs] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	clear(w.pending)
	w.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	slices.Sort(paths)

	w.fireMu.Lock()
	defer w.fireMu.Unlock()
	w.onChange(paths)
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}

// isScratchFile matches config backups and editor swap files.
func isScratchFile(path string) bool {
	base := filepath.Base(path)
	for _, suffix := range []string{".back1", ".back2", ".back3", "~", ".swp", ".swx", ".tmp"} {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return strings.HasPrefix(base, ".#")
}
