// Package upload simulates document extraction for uploaded files.
//
// Files are never read. Each submission becomes a record in processing
// state which a background task completes with canned data after a fixed
// delay. Tasks are cancellable and the board cancels all of them on Close,
// so no completion can land after teardown.
package upload

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jansuvidha/models"
	"jansuvidha/utils"
)

const (
	DefaultDelay    = 3 * time.Second
	DefaultMaxBytes = 50 << 20
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
	ErrNoFiles         = errors.New("no files submitted")
	ErrClosed          = errors.New("upload board closed")
	ErrNotFound        = errors.New("upload not found")
)

// AcceptedExtensions are the file extensions the upload form takes.
var AcceptedExtensions = []string{".pdf", ".xlsx", ".xls"}

// FileInfo is what the board knows about a submitted file.
type FileInfo struct {
	Name string
	Size int64
}

// Result is delivered once per task: the completed record, or the reason
// the task stopped early.
type Result struct {
	File models.UploadedFile
	Err  error
}

// Task is the pending processing of one uploaded file.
type Task struct {
	ID     string
	cancel context.CancelFunc
	done   chan Result
}

// Done delivers the task's single result.
func (t *Task) Done() <-chan Result {
	return t.done
}

// Cancel stops the task; its record is marked as failed.
func (t *Task) Cancel() {
	t.cancel()
}

type Option func(*Board)

func WithDelay(d time.Duration) Option {
	return func(b *Board) { b.delay = d }
}

func WithMaxBytes(n int64) Option {
	return func(b *Board) { b.maxBytes = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(b *Board) { b.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// Board holds the uploaded files, newest first.
type Board struct {
	delay    time.Duration
	maxBytes int64
	log      *zap.Logger
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	files  []models.UploadedFile
	tasks  map[string]*Task
	closed bool
}

func NewBoard(seed []models.UploadedFile, opts ...Option) *Board {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Board{
		delay:    DefaultDelay,
		maxBytes: DefaultMaxBytes,
		log:      zap.NewNop(),
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
		tasks:    make(map[string]*Task),
	}
	for _, opt := range opts {
		opt(b)
	}
	for _, f := range seed {
		b.files = append(b.files, f.Clone())
	}
	return b
}

// Accepted reports whether name carries one of the accepted extensions.
func Accepted(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, ok := range AcceptedExtensions {
		if ext == ok {
			return true
		}
	}
	return false
}

// Submit records every file in processing state and starts its task. All
// files are checked first; a rejected file leaves the board untouched.
func (b *Board) Submit(files []FileInfo) ([]*Task, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	for _, f := range files {
		if !Accepted(f.Name) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, f.Name)
		}
		if b.maxBytes > 0 && f.Size > b.maxBytes {
			return nil, fmt.Errorf("%w: %s is %s", ErrTooLarge, f.Name, utils.FormatFileSize(f.Size))
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrClosed
	}

	tasks := make([]*Task, 0, len(files))
	for _, f := range files {
		rec := models.UploadedFile{
			ID:         uuid.NewString(),
			Name:       f.Name,
			Size:       utils.FormatFileSize(f.Size),
			Type:       fileType(f.Name),
			UploadDate: b.now().Format("2006-01-02"),
			Status:     models.UploadProcessing,
		}
		b.files = append([]models.UploadedFile{rec}, b.files...)

		ctx, cancel := context.WithCancel(b.ctx)
		task := &Task{ID: rec.ID, cancel: cancel, done: make(chan Result, 1)}
		b.tasks[rec.ID] = task
		tasks = append(tasks, task)

		b.wg.Add(1)
		go b.process(ctx, task, rec.Name)

		b.log.Info("Upload accepted",
			zap.String("id", rec.ID),
			zap.String("name", rec.Name),
			zap.String("size", rec.Size))
	}
	return tasks, nil
}

func (b *Board) process(ctx context.Context, task *Task, name string) {
	defer b.wg.Done()
	defer task.cancel()

	timer := time.NewTimer(b.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		task.done <- Result{Err: b.abandon(task.ID)}
		return
	case <-timer.C:
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.tasks, task.ID)

	// Close may have raced the timer.
	if b.closed {
		task.done <- Result{Err: ErrClosed}
		return
	}

	for i := range b.files {
		if b.files[i].ID != task.ID {
			continue
		}
		b.files[i].Status = models.UploadCompleted
		b.files[i].Summary = completedSummary
		b.files[i].ExtractedData = ExtractedRows(name)
		b.log.Info("Upload processed", zap.String("id", task.ID), zap.String("name", name))
		task.done <- Result{File: b.files[i].Clone()}
		return
	}
	task.done <- Result{Err: fmt.Errorf("%w: %s", ErrNotFound, task.ID)}
}

// abandon handles a task stopped before its delay elapsed. After Close the
// record is left alone; a single cancelled task marks its record as failed.
func (b *Board) abandon(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.tasks, id)

	if b.closed {
		return ErrClosed
	}
	for i := range b.files {
		if b.files[i].ID == id {
			b.files[i].Status = models.UploadError
			b.files[i].Summary = "Processing cancelled."
			break
		}
	}
	b.log.Warn("Upload cancelled", zap.String("id", id))
	return context.Canceled
}

// Files returns a snapshot of every record, newest first.
func (b *Board) Files() []models.UploadedFile {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.UploadedFile, len(b.files))
	for i, f := range b.files {
		out[i] = f.Clone()
	}
	return out
}

// Get returns one record by id.
func (b *Board) Get(id string) (models.UploadedFile, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, f := range b.files {
		if f.ID == id {
			return f.Clone(), nil
		}
	}
	return models.UploadedFile{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Pending reports how many tasks have not finished.
func (b *Board) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.tasks)
}

// Close cancels every pending task and waits for them to stop.
func (b *Board) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	pending := len(b.tasks)
	b.mu.Unlock()

	b.cancel()
	b.wg.Wait()
	if pending > 0 {
		b.log.Info("Upload board closed", zap.Int("cancelled", pending))
	}
	return nil
}

func fileType(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "Unknown"
	}
	return strings.ToUpper(ext)
}
