package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mouse-blink/jsonfmt/internal/adapter"
	adaptermocks "github.com/mouse-blink/jsonfmt/internal/adapter/mocks"
	m "github.com/mouse-blink/jsonfmt/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const canonicalSample = "{\n  \"a\" : 2,\n  \"b\" : 1,\n  \"url\" : \"https://example.com\"\n}\n"

type eventRecorder struct {
	events []m.Event
}

func (r *eventRecorder) emit(event m.Event) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) kinds() []m.EventKind {
	kinds := make([]m.EventKind, 0, len(r.events))
	for _, event := range r.events {
		kinds = append(kinds, event.Kind)
	}

	return kinds
}

func (r *eventRecorder) paths() []m.Path {
	paths := make([]m.Path, 0, len(r.events))
	for _, event := range r.events {
		paths = append(paths, event.Path)
	}

	return paths
}

func writeFile(t *testing.T, path, content string) m.Path {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.Path(path)
}

func readFile(t *testing.T, path m.Path) string {
	t.Helper()

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)

	return string(data)
}

func examplePath(elem ...string) string {
	return filepath.Join(append([]string{"..", "..", "examples"}, elem...)...)
}

func TestOrchestrator_Fix_RewritesInPlace(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, filepath.Join(root, "config.json"), `{"b":1,"a":2,"url":"https://example.com"}`)

	rec := &eventRecorder{}
	orch := NewOrchestrator(adapter.NewLocalSourceFSAdapter())

	result, err := orch.Format(context.Background(), []m.Path{path}, FormatOptions{
		Mode:       m.ModeFix,
		WorkingDir: m.Path(root),
	}, rec.emit)
	require.NoError(t, err)

	assert.Equal(t, canonicalSample, readFile(t, path))
	assert.Equal(t, m.Result{Mode: m.ModeFix, Processed: 1, Changed: 1}, result)
	require.Len(t, rec.events, 1)
	assert.Equal(t, m.Formatted(path, "", true), rec.events[0])
}

func TestOrchestrator_Audit(t *testing.T) {
	t.Run("reports non canonical file without touching it", func(t *testing.T) {
		root := t.TempDir()
		original := `{"b":1,"a":2}`
		path := writeFile(t, filepath.Join(root, "config.json"), original)

		rec := &eventRecorder{}
		orch := NewOrchestrator(adapter.NewLocalSourceFSAdapter())

		result, err := orch.Format(context.Background(), []m.Path{path}, FormatOptions{Mode: m.ModeAudit}, rec.emit)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Changed)
		assert.Equal(t, 0, result.Errors)
		assert.Equal(t, original, readFile(t, path))
		assert.Equal(t, []m.Event{m.WouldChange(path)}, rec.events)
	})

	t.Run("canonical file is unchanged", func(t *testing.T) {
		root := t.TempDir()
		path := writeFile(t, filepath.Join(root, "config.json"), canonicalSample)

		rec := &eventRecorder{}
		orch := NewOrchestrator(adapter.NewLocalSourceFSAdapter())

		result, err := orch.Format(context.Background(), []m.Path{path}, FormatOptions{Mode: m.ModeAudit}, rec.emit)
		require.NoError(t, err)

		assert.Equal(t, 0, result.Changed)
		assert.Equal(t, 1, result.Unchanged())
		assert.Equal(t, []m.Event{m.Unchanged(path)}, rec.events)
	})

	t.Run("audit ignores write-to", func(t *testing.T) {
		root := t.TempDir()
		outside := writeFile(t, filepath.Join(t.TempDir(), "x.json"), "{}")

		rec := &eventRecorder{}
		orch := NewOrchestrator(adapter.NewLocalSourceFSAdapter())

		result, err := orch.Format(context.Background(), []m.Path{outside}, FormatOptions{
			Mode:       m.ModeAudit,
			WriteTo:    m.Path(filepath.Join(root, "out")),
			WorkingDir: m.Path(root),
		}, rec.emit)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Changed)
		assert.NoDirExists(t, filepath.Join(root, "out"))
	})
}

func TestOrchestrator_BatchResilience(t *testing.T) {
	root := t.TempDir()
	broken := writeFile(t, filepath.Join(root, "broken.json"), "not json")
	valid := writeFile(t, filepath.Join(root, "valid.json"), `{"b":1,"a":2,"url":"https://example.com"}`)
	missing := m.Path(filepath.Join(root, "missing.json"))

	rec := &eventRecorder{}
	orch := NewOrchestrator(adapter.NewLocalSourceFSAdapter())

	result, err := orch.Format(context.Background(), []m.Path{broken, missing, valid}, FormatOptions{
		Mode:       m.ModeFix,
		WorkingDir: m.Path(root),
	}, rec.emit)
	require.NoError(t, err)

	assert.Equal(t, m.Result{Mode: m.ModeFix, Processed: 3, Changed: 1, Errors: 2}, result)
	assert.Equal(t, []m.EventKind{m.EventError, m.EventError, m.EventFormatted}, rec.kinds())
	assert.Equal(t, []m.Path{broken, missing, valid}, rec.paths())

	assert.ErrorIs(t, rec.events[0].Err, m.ErrParse)
	assert.ErrorIs(t, rec.events[1].Err, m.ErrIO)
	assert.ErrorIs(t, rec.events[1].Err, os.ErrNotExist)

	assert.Equal(t, "not json", readFile(t, broken))
	assert.Equal(t, canonicalSample, readFile(t, valid))
}

func TestOrchestrator_Fix_CanonicalFileNotCounted(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, filepath.Join(root, "config.json"), canonicalSample)

	rec := &eventRecorder{}
	orch := NewOrchestrator(adapter.NewLocalSourceFSAdapter())

	result, err := orch.Format(context.Background(), []m.Path{path}, FormatOptions{Mode: m.ModeFix}, rec.emit)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Changed)
	assert.Equal(t, []m.Event{m.Formatted(path, "", false)}, rec.events)
	assert.Equal(t, canonicalSample, readFile(t, path))
}

func TestOrchestrator_Fix_Mirror(t *testing.T) {
	t.Run("writes beneath root and leaves source untouched", func(t *testing.T) {
		root := t.TempDir()
		out := filepath.Join(t.TempDir(), "out")
		original := `{"b":1,"a":2,"url":"https:\/\/example.com"}`
		path := writeFile(t, filepath.Join(root, "nested", "deep", "config.json"), original)

		rec := &eventRecorder{}
		orch := NewOrchestrator(adapter.NewLocalSourceFSAdapter())

		result, err := orch.Format(context.Background(), []m.Path{path}, FormatOptions{
			Mode:       m.ModeFix,
			WriteTo:    m.Path(out),
			WorkingDir: m.Path(root),
		}, rec.emit)
		require.NoError(t, err)

		destination := m.Path(filepath.Join(out, "nested", "deep", "config.json"))

		assert.Equal(t, 1, result.Changed)
		assert.Equal(t, original, readFile(t, path))
		assert.Equal(t, canonicalSample, readFile(t, destination))
		assert.Equal(t, []m.Event{m.Formatted(path, destination, true)}, rec.events)
	})

	t.Run("source outside working dir aborts before any write", func(t *testing.T) {
		root := t.TempDir()
		out := filepath.Join(t.TempDir(), "out")
		inside := writeFile(t, filepath.Join(root, "inside.json"), `{"b":1}`)
		outside := writeFile(t, filepath.Join(t.TempDir(), "outside.json"), `{"b":1}`)

		rec := &eventRecorder{}
		orch := NewOrchestrator(adapter.NewLocalSourceFSAdapter())

		result, err := orch.Format(context.Background(), []m.Path{inside, outside}, FormatOptions{
			Mode:       m.ModeFix,
			WriteTo:    m.Path(out),
			WorkingDir: m.Path(root),
		}, rec.emit)
		require.Error(t, err)

		assert.ErrorIs(t, err, m.ErrOutsideWorkingDir)
		assert.True(t, m.IsFatal(err))
		assert.Equal(t, 0, result.Processed)
		assert.Empty(t, rec.events)
		assert.NoDirExists(t, out)
		assert.Equal(t, `{"b":1}`, readFile(t, inside))
	})

	t.Run("directory creation failure is a write error", func(t *testing.T) {
		fs := adaptermocks.NewMockSourceFSAdapter(t)
		source := m.Path(filepath.Join(string(filepath.Separator), "work", "a.json"))
		dirErr := errors.New("read-only filesystem")

		fs.EXPECT().ReadFile(source).Return([]byte(`{}`), nil)
		fs.EXPECT().MkdirAll(m.Path(filepath.Join(string(filepath.Separator), "out"))).Return(dirErr)

		rec := &eventRecorder{}

		result, err := NewOrchestrator(fs).Format(context.Background(), []m.Path{source}, FormatOptions{
			Mode:       m.ModeFix,
			WriteTo:    m.Path(filepath.Join(string(filepath.Separator), "out")),
			WorkingDir: m.Path(filepath.Join(string(filepath.Separator), "work")),
		}, rec.emit)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Errors)
		require.Len(t, rec.events, 1)
		assert.ErrorIs(t, rec.events[0].Err, m.ErrWrite)
		assert.ErrorIs(t, rec.events[0].Err, dirErr)
	})
}

func TestOrchestrator_Fix_WriteFailure(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	first := m.Path("/work/first.json")
	second := m.Path("/work/second.json")
	writeErr := errors.New("disk full")

	fs.EXPECT().ReadFile(first).Return([]byte(`{"b":1,"a":2}`), nil)
	fs.EXPECT().ReadFile(second).Return([]byte(`[]`), nil)
	fs.EXPECT().WriteFileAtomic(first, mock.Anything).Return(writeErr)
	fs.EXPECT().WriteFileAtomic(second, []byte("[]\n")).Return(nil)

	rec := &eventRecorder{}

	result, err := NewOrchestrator(fs).Format(context.Background(), []m.Path{first, second}, FormatOptions{Mode: m.ModeFix}, rec.emit)
	require.NoError(t, err)

	assert.Equal(t, m.Result{Mode: m.ModeFix, Processed: 2, Changed: 1, Errors: 1}, result)
	require.Len(t, rec.events, 2)
	assert.Equal(t, m.EventError, rec.events[0].Kind)
	assert.ErrorIs(t, rec.events[0].Err, m.ErrWrite)
	assert.ErrorIs(t, rec.events[0].Err, writeErr)
	assert.Equal(t, m.Formatted(second, "", true), rec.events[1])
}

func TestOrchestrator_Parallel_PreservesOrder(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)

	paths := make([]m.Path, 0, 12)
	for i := range 12 {
		paths = append(paths, m.Path(filepath.Join("/work", string(rune('a'+i))+".json")))
	}

	var inFlight, maxInFlight atomic.Int32

	fs.EXPECT().ReadFile(mock.Anything).RunAndReturn(func(path m.Path) ([]byte, error) {
		current := inFlight.Add(1)
		defer inFlight.Add(-1)

		for {
			seen := maxInFlight.Load()
			if current <= seen || maxInFlight.CompareAndSwap(seen, current) {
				break
			}
		}

		// later paths finish first
		delay := time.Duration(len(paths)-int(path[len("/work/")]-'a')) * time.Millisecond
		time.Sleep(delay)

		if path == paths[5] {
			return []byte("broken"), nil
		}

		return []byte(`{"k":1}`), nil
	})

	rec := &eventRecorder{}

	result, err := NewOrchestrator(fs).Format(context.Background(), paths, FormatOptions{Mode: m.ModeAudit, Jobs: 4}, rec.emit)
	require.NoError(t, err)

	assert.Equal(t, paths, rec.paths())
	assert.Equal(t, m.Result{Mode: m.ModeAudit, Processed: 12, Changed: 11, Errors: 1}, result)
	assert.LessOrEqual(t, maxInFlight.Load(), int32(4))
	assert.Equal(t, m.EventError, rec.events[5].Kind)
}

func TestOrchestrator_Cancellation(t *testing.T) {
	t.Run("cancelled before start processes nothing", func(t *testing.T) {
		fs := adaptermocks.NewMockSourceFSAdapter(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		rec := &eventRecorder{}

		result, err := NewOrchestrator(fs).Format(ctx, []m.Path{"/work/a.json"}, FormatOptions{Mode: m.ModeAudit}, rec.emit)
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, m.IsFatal(err))
		assert.Equal(t, 0, result.Processed)
		assert.Empty(t, rec.events)
	})

	t.Run("cancelled mid batch returns partial result", func(t *testing.T) {
		fs := adaptermocks.NewMockSourceFSAdapter(t)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		fs.EXPECT().ReadFile(m.Path("/work/a.json")).Return([]byte(`{}`), nil)
		fs.EXPECT().ReadFile(m.Path("/work/b.json")).RunAndReturn(func(m.Path) ([]byte, error) {
			cancel()
			return []byte(`{"x":1}`), nil
		})

		rec := &eventRecorder{}

		result, err := NewOrchestrator(fs).Format(ctx, []m.Path{"/work/a.json", "/work/b.json", "/work/c.json"}, FormatOptions{Mode: m.ModeAudit}, rec.emit)
		require.ErrorIs(t, err, context.Canceled)

		assert.Equal(t, m.Result{Mode: m.ModeAudit, Processed: 2, Changed: 2}, result)
		assert.Equal(t, []m.Path{"/work/a.json", "/work/b.json"}, rec.paths())
	})

	t.Run("parallel cancellation only reports dispatched paths", func(t *testing.T) {
		fs := adaptermocks.NewMockSourceFSAdapter(t)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		fs.EXPECT().ReadFile(mock.Anything).RunAndReturn(func(path m.Path) ([]byte, error) {
			if path == "/work/a.json" {
				cancel()
			} else {
				<-ctx.Done()
			}

			return []byte("{}\n"), nil
		}).Maybe()

		paths := []m.Path{"/work/a.json", "/work/b.json", "/work/c.json", "/work/d.json", "/work/e.json", "/work/f.json"}
		rec := &eventRecorder{}

		result, err := NewOrchestrator(fs).Format(ctx, paths, FormatOptions{Mode: m.ModeAudit, Jobs: 2}, rec.emit)
		require.ErrorIs(t, err, context.Canceled)

		assert.Equal(t, result.Processed, len(rec.events))
		assert.Less(t, result.Processed, len(paths))
		assert.Equal(t, paths[:len(rec.events)], rec.paths())
	})
}

func TestOrchestrator_NilEmit(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, filepath.Join(root, "a.json"), "{}")

	result, err := NewOrchestrator(adapter.NewLocalSourceFSAdapter()).Format(context.Background(), []m.Path{path}, FormatOptions{Mode: m.ModeAudit}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Changed)
}

func TestOrchestrator_Examples(t *testing.T) {
	root := t.TempDir()

	settings := writeFile(t, filepath.Join(root, "settings.json"), readExample(t, "basic", "settings.json"))
	canonical := writeFile(t, filepath.Join(root, "canonical.json"), readExample(t, "basic", "canonical.json"))
	invalid := writeFile(t, filepath.Join(root, "invalid.json"), readExample(t, "invalid", "trailing-comma.json"))

	rec := &eventRecorder{}

	result, err := NewOrchestrator(adapter.NewLocalSourceFSAdapter()).Format(context.Background(), []m.Path{settings, canonical, invalid}, FormatOptions{Mode: m.ModeAudit, Jobs: 2}, rec.emit)
	require.NoError(t, err)

	assert.Equal(t, []m.EventKind{m.EventWouldChange, m.EventUnchanged, m.EventError}, rec.kinds())
	assert.Equal(t, m.Result{Mode: m.ModeAudit, Processed: 3, Changed: 1, Errors: 1}, result)
}
