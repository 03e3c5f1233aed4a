package logging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// weeklyFile appends to advisor-<ISO week>.log, starts a numbered
// continuation file when the size cap would be exceeded, and prunes files
// older than the retention window once a day. Safe for concurrent writers.
type weeklyFile struct {
	dir   string
	limit int64 // zero disables the size cap
	keep  time.Duration
	stop  context.CancelFunc

	mu   sync.Mutex
	file *os.File
	week string
	seq  int
	size int64
}

func newWeeklyFile(dir string, retentionWeeks int, maxSize int64) *weeklyFile {
	ctx, cancel := context.WithCancel(context.Background())
	w := &weeklyFile{
		dir:   dir,
		limit: maxSize,
		keep:  time.Duration(retentionWeeks) * 7 * 24 * time.Hour,
		stop:  cancel,
	}
	go w.pruneLoop(ctx)
	return w
}

func isoWeek(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func (w *weeklyFile) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	week := isoWeek(time.Now())
	if w.file == nil || week != w.week || (w.limit > 0 && w.size+int64(len(p)) > w.limit) {
		if err := w.roll(week); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

// roll opens the next file for week: the base file on a week change, the next
// numbered continuation within the same week. Appends across restarts.
func (w *weeklyFile) roll(week string) error {
	if w.file != nil {
		w.file.Close()
	}

	if week != w.week {
		w.week = week
		w.seq = 0
	} else {
		w.seq++
	}

	name := fmt.Sprintf("advisor-%s.log", week)
	if w.seq > 0 {
		name = fmt.Sprintf("advisor-%s_%02d.log", week, w.seq)
	}
	path := filepath.Join(w.dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	w.file = file
	w.size = 0
	if info, err := file.Stat(); err == nil {
		w.size = info.Size()
	}
	return nil
}

func (w *weeklyFile) pruneLoop(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.prune()
		}
	}
}

// prune removes advisor log files whose modification time is past retention.
// Other files in the directory are left alone.
func (w *weeklyFile) prune() {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-w.keep)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "advisor-") || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(w.dir, entry.Name()))
		}
	}
}

// Close stops the prune loop and closes the current file.
func (w *weeklyFile) Close() error {
	w.stop()

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file != nil {
		err := w.file.Close()
		w.file = nil
		return err
	}
	return nil
}
