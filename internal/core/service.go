package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sheetcheck/sheetcheck/internal/store"
	"github.com/sheetcheck/sheetcheck/internal/validate"
)

// RunTimeout is the maximum duration for a validation run.
var RunTimeout = 10 * time.Minute

// ResultRetention is how long finished runs stay queryable in memory.
var ResultRetention = 5 * time.Minute

// Service drives validation runs for registered sheet definitions.
type Service struct {
	history *store.RunStore // nil disables run history
	limiter *RunLimiter

	mu   sync.RWMutex
	runs map[string]*activeRun
}

type activeRun struct {
	ID       string
	SheetKey string
	FileName string
	Monitor  *validate.Monitor
	Cancel   context.CancelFunc

	Progress RunProgress
	Result   *RunResult
	Done     chan struct{}

	Listeners  []chan RunProgress
	ListenerMu sync.Mutex
}

// NewService creates a Service. history may be nil, in which case finished
// runs are kept in memory only.
func NewService(history *store.RunStore, maxConcurrent int, maxWait time.Duration) *Service {
	return &Service{
		history: history,
		limiter: NewRunLimiter(maxConcurrent, maxWait),
		runs:    make(map[string]*activeRun),
	}
}

// ListSheets returns the client-facing descriptions of all registered
// sheet definitions.
func (s *Service) ListSheets() []SheetInfo {
	defs := All()
	infos := make([]SheetInfo, len(defs))
	for i, def := range defs {
		infos[i] = def.Info()
	}
	return infos
}

// StartRun begins an asynchronous validation run and returns its ID
// immediately. Use SubscribeProgress for updates and GetResult for the
// outcome.
func (s *Service) StartRun(ctx context.Context, sheetKey, fileName string, fileData []byte) (string, error) {
	def, ok := Get(sheetKey)
	if !ok {
		return "", fmt.Errorf("unknown sheet: %s", sheetKey)
	}

	if err := s.limiter.Acquire(ctx); err != nil {
		return "", err
	}

	runID := uuid.New().String()
	runCtx, cancel := context.WithTimeout(context.Background(), RunTimeout)

	run := &activeRun{
		ID:       runID,
		SheetKey: sheetKey,
		FileName: fileName,
		Monitor:  validate.NewMonitor(),
		Cancel:   cancel,
		Progress: RunProgress{
			RunID:    runID,
			SheetKey: sheetKey,
			FileName: fileName,
			Phase:    PhaseStarting,
		},
		Done: make(chan struct{}),
	}

	s.mu.Lock()
	s.runs[runID] = run
	s.mu.Unlock()

	go func() {
		defer s.limiter.Release()
		s.process(runCtx, run, def, fileData)
	}()

	return runID, nil
}

// process executes one validation run on its own goroutine.
func (s *Service) process(ctx context.Context, run *activeRun, def SheetDefinition, fileData []byte) {
	startTime := time.Now()
	logger := slog.With("run_id", run.ID, "sheet", run.SheetKey)

	defer func() {
		run.Cancel()
		run.closeListeners()
		close(run.Done)
		s.cleanup(run.ID, ResultRetention)
	}()

	run.setPhase(PhaseValidating)
	run.notifyProgress()

	runner := &validate.Runner{
		Schema:  def.Schema,
		Groups:  def.UniqueGroups,
		Monitor: run.Monitor,
		OnStep: func(u validate.ProgressUpdate) {
			// The run context doubles as a deadline: treat expiry like a
			// cancellation request so a stuck consumer cannot pin the run.
			if ctx.Err() != nil {
				run.Monitor.Cancel()
			}
			run.updateProgress(u)
			run.notifyProgress()
		},
	}

	res, err := runner.RunFile(fileData)
	result := &RunResult{
		RunID:    run.ID,
		SheetKey: run.SheetKey,
		FileName: run.FileName,
		Duration: time.Since(startTime),
	}

	switch {
	case err == nil:
		result.RowCount = len(res.Processed)
		result.Errors = res.Errors
		result.Processed = res.Processed
		run.setPhase(PhaseComplete)
		logger.Info("validation run complete",
			"rows", result.RowCount,
			"errors", len(result.Errors),
			"duration_ms", result.Duration.Milliseconds(),
		)

	case validate.IsCancelled(err):
		var c *validate.Cancelled
		errors.As(err, &c)
		result.Cancelled = true
		result.Errors = c.Errors
		run.setPhase(PhaseCancelled)
		logger.Info("validation run cancelled", "errors_so_far", len(c.Errors))

	default:
		result.Error = err.Error()
		run.setPhase(PhaseFailed)
		run.setError(err.Error())
		logger.Error("validation run failed", "error", err)
	}

	run.notifyProgress()
	run.Result = result

	s.record(result, startTime)
}

// record writes the finished run to the history store, if one is
// configured.
func (s *Service) record(result *RunResult, startedAt time.Time) {
	if s.history == nil {
		return
	}

	status := string(PhaseComplete)
	switch {
	case result.Cancelled:
		status = string(PhaseCancelled)
	case result.Error != "":
		status = string(PhaseFailed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.history.Save(ctx, store.RunRecord{
		ID:         result.RunID,
		SheetKey:   result.SheetKey,
		FileName:   result.FileName,
		Status:     status,
		RowCount:   result.RowCount,
		ErrorCount: len(result.Errors),
		Cancelled:  result.Cancelled,
		Errors:     result.Errors,
		StartedAt:  startedAt,
		DurationMs: result.Duration.Milliseconds(),
	})
	if err != nil {
		slog.Error("failed to record run history", "run_id", result.RunID, "error", err)
	}
}

// SubscribeProgress returns a channel that receives progress updates.
// The channel is closed when the run completes.
func (s *Service) SubscribeProgress(runID string) (<-chan RunProgress, error) {
	run, err := s.get(runID)
	if err != nil {
		return nil, err
	}

	ch := make(chan RunProgress, 16)

	run.ListenerMu.Lock()
	run.Listeners = append(run.Listeners, ch)
	// Send current progress immediately
	select {
	case ch <- run.Progress:
	default:
	}
	run.ListenerMu.Unlock()

	return ch, nil
}

// CancelRun requests cooperative cancellation of an in-progress run. The
// engine finishes its current row, then stops carrying the findings made
// so far.
func (s *Service) CancelRun(runID string) error {
	run, err := s.get(runID)
	if err != nil {
		return err
	}

	run.Monitor.Cancel()
	return nil
}

// GetResult returns the result of a run, blocking until it completes.
func (s *Service) GetResult(runID string) (*RunResult, error) {
	run, err := s.get(runID)
	if err != nil {
		return nil, err
	}

	<-run.Done
	return run.Result, nil
}

// GetProgress returns the current progress without blocking.
func (s *Service) GetProgress(runID string) (RunProgress, error) {
	run, err := s.get(runID)
	if err != nil {
		return RunProgress{}, err
	}

	run.ListenerMu.Lock()
	p := run.Progress
	run.ListenerMu.Unlock()
	return p, nil
}

// History returns recent persisted runs for a sheet key (empty key for
// all sheets). Returns nil when no history store is configured.
func (s *Service) History(ctx context.Context, sheetKey string, limit int) ([]store.RunRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.List(ctx, sheetKey, limit)
}

// ActiveRuns returns the number of runs currently holding a limiter slot.
func (s *Service) ActiveRuns() int {
	return s.limiter.Active()
}

// WaitForRuns blocks until all active runs complete or the context is
// done. Used during graceful shutdown.
func (s *Service) WaitForRuns(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}

func (s *Service) get(runID string) (*activeRun, error) {
	s.mu.RLock()
	run, ok := s.runs[runID]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("run not found: %s", runID)
	}
	return run, nil
}

// cleanup evicts a finished run from memory after a delay, giving late
// clients a window to fetch the result.
func (s *Service) cleanup(runID string, delay time.Duration) {
	time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.runs, runID)
		s.mu.Unlock()
	})
}

func (r *activeRun) setPhase(phase RunPhase) {
	r.ListenerMu.Lock()
	r.Progress.Phase = phase
	r.ListenerMu.Unlock()
}

func (r *activeRun) setError(msg string) {
	r.ListenerMu.Lock()
	r.Progress.Error = msg
	r.ListenerMu.Unlock()
}

func (r *activeRun) updateProgress(u validate.ProgressUpdate) {
	r.ListenerMu.Lock()
	r.Progress.Percent = u.Percent
	r.Progress.CompletedSteps = u.CompletedSteps
	r.Progress.TotalSteps = u.TotalSteps
	r.Progress.ErrorCount = u.ErrorCount
	r.ListenerMu.Unlock()
}

// notifyProgress sends the current snapshot to all listeners without
// blocking; a slow listener misses intermediate updates.
func (r *activeRun) notifyProgress() {
	r.ListenerMu.Lock()
	p := r.Progress
	for _, ch := range r.Listeners {
		select {
		case ch <- p:
		default:
		}
	}
	r.ListenerMu.Unlock()
}

func (r *activeRun) closeListeners() {
	r.ListenerMu.Lock()
	for _, ch := range r.Listeners {
		close(ch)
	}
	r.Listeners = nil
	r.ListenerMu.Unlock()
}
