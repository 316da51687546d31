package prefabs

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// TuningReloader re-reads the tuning file whenever it changes on disk.
// Poll is meant to be called once per frame from the frame goroutine.
type TuningReloader struct {
	watcher *Watcher
	target  string
}

// NewTuningReloader watches path, or the disk override of the shipped
// tuning file when path is empty. The file's directory must exist.
func NewTuningReloader(path string) (*TuningReloader, error) {
	target := path
	if target == "" {
		target = DiskPath(TuningFile)
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, err
	}
	w, err := NewWatcher(filepath.Dir(abs))
	if err != nil {
		return nil, err
	}
	return &TuningReloader{watcher: w, target: abs}, nil
}

// Poll returns a freshly loaded tuning if the watched file changed since the
// previous call. The watched file is always read from disk: a file that is
// missing, fails to load or fails to validate is logged and skipped so the
// running game keeps its last good constants.
func (r *TuningReloader) Poll() (*TuningSpec, bool) {
	changed := false
	for {
		select {
		case name, ok := <-r.watcher.Events:
			if !ok {
				return nil, false
			}
			if r.matches(name) {
				changed = true
			}
			continue
		case err, ok := <-r.watcher.Errors:
			if ok {
				log.Printf("[tuning] watch error: %v", err)
			}
			continue
		default:
		}
		break
	}
	if !changed {
		return nil, false
	}

	data, err := os.ReadFile(r.target)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[tuning] %s is gone, keeping current tuning", r.target)
		return nil, false
	}
	if err != nil {
		log.Printf("[tuning] reload rejected: %v", err)
		return nil, false
	}
	spec, err := ParseTuning(data)
	if err != nil {
		log.Printf("[tuning] reload rejected: %v", err)
		return nil, false
	}
	log.Printf("[tuning] reloaded %s", r.target)
	return spec, true
}

func (r *TuningReloader) Close() error {
	return r.watcher.Close()
}

func (r *TuningReloader) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == r.target
}
