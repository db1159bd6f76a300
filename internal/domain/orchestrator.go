package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/jsonfmt/internal/adapter"
	m "github.com/mouse-blink/jsonfmt/internal/model"
)

// FormatOptions controls a single Format run.
type FormatOptions struct {
	Mode m.Mode
	// WriteTo is the mirror root for fix mode. Empty rewrites sources in place.
	WriteTo    m.Path
	WorkingDir m.Path
	// Jobs is the number of paths processed concurrently. Values below 2 run
	// sequentially.
	Jobs int
}

// Orchestrator drives the per-path pipeline: read, canonicalize, compare and,
// in fix mode, write. Events are delivered to emit once per attempted path, in
// the order of paths, and never concurrently.
type Orchestrator interface {
	Format(ctx context.Context, paths []m.Path, opts FormatOptions, emit func(m.Event)) (m.Result, error)
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem adapter.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter) Orchestrator {
	return &orchestrator{fsAdapter: fsAdapter}
}

// Format processes paths and returns the aggregate result. Per-path failures
// are reported as events and counted, never returned. The returned error is
// either a configuration error raised before any file is touched or the
// context error when the run was interrupted; in the latter case the partial
// result is returned alongside it.
func (o *orchestrator) Format(ctx context.Context, paths []m.Path, opts FormatOptions, emit func(m.Event)) (m.Result, error) {
	result := m.Result{Mode: opts.Mode}

	if emit == nil {
		emit = func(m.Event) {}
	}

	requests, err := o.plan(paths, opts)
	if err != nil {
		return result, err
	}

	if opts.Jobs < 2 || len(requests) < 2 {
		return o.runSequential(ctx, requests, &result, emit)
	}

	return o.runParallel(ctx, requests, opts.Jobs, &result, emit)
}

// plan resolves every destination up front so a path that cannot be mirrored
// aborts the run before anything is written.
func (o *orchestrator) plan(paths []m.Path, opts FormatOptions) ([]m.Request, error) {
	root := m.Path("")
	if opts.Mode == m.ModeFix {
		root = opts.WriteTo
	}

	requests := make([]m.Request, 0, len(paths))

	for _, path := range paths {
		destination, err := ResolveDestination(path, root, opts.WorkingDir)
		if err != nil {
			return nil, err
		}

		requests = append(requests, m.Request{
			Source:      path,
			Mode:        opts.Mode,
			Root:        root,
			Destination: destination,
			WorkingDir:  opts.WorkingDir,
		})
	}

	return requests, nil
}

func (o *orchestrator) runSequential(ctx context.Context, requests []m.Request, result *m.Result, emit func(m.Event)) (m.Result, error) {
	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			return *result, err
		}

		event := o.process(req)
		result.Record(event)
		emit(event)
	}

	return *result, nil
}

func (o *orchestrator) runParallel(ctx context.Context, requests []m.Request, jobs int, result *m.Result, emit func(m.Event)) (m.Result, error) {
	seq := newSequencer(result, emit)

	var g errgroup.Group

	g.SetLimit(jobs)

	dispatched := 0

	for i, req := range requests {
		// Dispatch stops at the first cancelled check so the attempted paths
		// always form a prefix and the sequencer never waits on a gap.
		if ctx.Err() != nil {
			break
		}

		dispatched++

		g.Go(func() error {
			seq.complete(i, o.process(req))
			return nil
		})
	}

	_ = g.Wait()

	if dispatched < len(requests) {
		return *result, ctx.Err()
	}

	return *result, nil
}

func (o *orchestrator) process(req m.Request) m.Event {
	data, err := o.fsAdapter.ReadFile(req.Source)
	if err != nil {
		return m.Failed(req.Source, m.NewIOError(fmt.Sprintf("cannot read %s", req.Source), err))
	}

	canonical, err := Canonicalize(data)
	if err != nil {
		return m.Failed(req.Source, err)
	}

	changed := WouldChange(data, canonical)

	if req.Mode == m.ModeAudit {
		if changed {
			return m.WouldChange(req.Source)
		}

		return m.Unchanged(req.Source)
	}

	destination := m.Path("")

	if req.Mirrored() {
		destination = req.Destination

		if err := o.fsAdapter.MkdirAll(destination.Dir()); err != nil {
			return m.Failed(req.Source, m.NewWriteError(fmt.Sprintf("cannot create directory for %s", destination), err))
		}
	}

	if err := o.fsAdapter.WriteFileAtomic(req.Destination, canonical); err != nil {
		if !errors.Is(err, m.ErrWrite) {
			err = m.NewWriteError(fmt.Sprintf("cannot write %s", req.Destination), err)
		}

		return m.Failed(req.Source, err)
	}

	return m.Formatted(req.Source, destination, changed)
}

// sequencer releases events strictly in index order regardless of the order
// in which workers finish.
type sequencer struct {
	mu      sync.Mutex
	next    int
	pending map[int]m.Event
	result  *m.Result
	emit    func(m.Event)
}

func newSequencer(result *m.Result, emit func(m.Event)) *sequencer {
	return &sequencer{
		pending: make(map[int]m.Event),
		result:  result,
		emit:    emit,
	}
}

func (s *sequencer) complete(index int, event m.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[index] = event

	for {
		ready, ok := s.pending[s.next]
		if !ok {
			return
		}

		delete(s.pending, s.next)
		s.result.Record(ready)
		s.emit(ready)
		s.next++
	}
}
