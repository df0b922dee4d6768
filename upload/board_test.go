package upload

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"jansuvidha/data"
	"jansuvidha/models"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
}

func wait(t *testing.T, task *Task) Result {
	t.Helper()
	select {
	case res := <-task.Done():
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("task did not finish")
		return Result{}
	}
}

func TestSubmitCompletes(t *testing.T) {
	defer goleak.VerifyNone(t)

	board := NewBoard(data.Load().SeedUploads(), WithDelay(50*time.Millisecond), WithClock(fixedClock))
	defer board.Close()

	tasks, err := board.Submit([]FileInfo{{Name: "health_q2.pdf", Size: 2411725}})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	rec, err := board.Get(tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.UploadProcessing, rec.Status)
	assert.Equal(t, "2.3 MB", rec.Size)
	assert.Equal(t, "PDF", rec.Type)
	assert.Equal(t, "2024-03-15", rec.UploadDate)
	assert.Equal(t, rec.ID, board.Files()[0].ID)

	res := wait(t, tasks[0])
	require.NoError(t, res.Err)
	assert.Equal(t, models.UploadCompleted, res.File.Status)
	assert.Equal(t, completedSummary, res.File.Summary)
	require.Len(t, res.File.ExtractedData, 3)
	assert.Equal(t, "Hospitals", res.File.ExtractedData[0]["parameter"])

	stored, err := board.Get(tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, res.File, stored)
	assert.Equal(t, 0, board.Pending())
}

func TestSubmitOrdersNewestFirst(t *testing.T) {
	defer goleak.VerifyNone(t)

	board := NewBoard(data.Load().SeedUploads(), WithDelay(time.Hour))
	defer board.Close()

	_, err := board.Submit([]FileInfo{{Name: "a.xlsx", Size: 10}})
	require.NoError(t, err)
	_, err = board.Submit([]FileInfo{{Name: "b.XLS", Size: 10}})
	require.NoError(t, err)

	files := board.Files()
	require.Len(t, files, 4)
	assert.Equal(t, "b.XLS", files[0].Name)
	assert.Equal(t, "XLS", files[0].Type)
	assert.Equal(t, "a.xlsx", files[1].Name)
	assert.Equal(t, 2, board.Pending())
}

func TestSubmitRejects(t *testing.T) {
	board := NewBoard(nil, WithDelay(time.Hour), WithMaxBytes(1024))
	defer board.Close()

	_, err := board.Submit(nil)
	assert.ErrorIs(t, err, ErrNoFiles)

	_, err = board.Submit([]FileInfo{{Name: "ok.pdf", Size: 1}, {Name: "notes.docx", Size: 1}})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = board.Submit([]FileInfo{{Name: "big.pdf", Size: 2048}})
	assert.ErrorIs(t, err, ErrTooLarge)

	assert.Empty(t, board.Files())
	assert.Equal(t, 0, board.Pending())
}

func TestCloseBeforeDelay(t *testing.T) {
	defer goleak.VerifyNone(t)

	board := NewBoard(nil, WithDelay(time.Hour))
	tasks, err := board.Submit([]FileInfo{{Name: "education_report.pdf", Size: 100}, {Name: "misc.xlsx", Size: 100}})
	require.NoError(t, err)

	require.NoError(t, board.Close())

	for _, task := range tasks {
		res := wait(t, task)
		assert.ErrorIs(t, res.Err, ErrClosed)
		rec, err := board.Get(task.ID)
		require.NoError(t, err)
		assert.Equal(t, models.UploadProcessing, rec.Status)
		assert.Empty(t, rec.ExtractedData)
	}

	_, err = board.Submit([]FileInfo{{Name: "late.pdf", Size: 1}})
	assert.ErrorIs(t, err, ErrClosed)
	require.NoError(t, board.Close())
}

func TestCancelTask(t *testing.T) {
	defer goleak.VerifyNone(t)

	board := NewBoard(nil, WithDelay(time.Hour))
	defer board.Close()

	tasks, err := board.Submit([]FileInfo{{Name: "health.pdf", Size: 1}})
	require.NoError(t, err)
	tasks[0].Cancel()

	res := wait(t, tasks[0])
	assert.ErrorIs(t, res.Err, context.Canceled)
	rec, err := board.Get(tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.UploadError, rec.Status)
}

func TestExtractedRows(t *testing.T) {
	assert.Len(t, ExtractedRows("District_HEALTH_2024.pdf"), 3)
	edu := ExtractedRows("education.xlsx")
	require.Len(t, edu, 3)
	assert.Contains(t, edu[0], "enrollment")
	assert.Len(t, ExtractedRows("budget.pdf"), 2)
}

func TestGetMissing(t *testing.T) {
	board := NewBoard(nil)
	defer board.Close()
	_, err := board.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccepted(t *testing.T) {
	assert.True(t, Accepted("Report.PDF"))
	assert.True(t, Accepted("data.xls"))
	assert.False(t, Accepted("data.csv"))
	assert.False(t, Accepted("pdf"))
}
