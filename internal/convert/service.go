package convert

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ytget/image-converter/internal/model"
)

// RunIDPrefix is prepended to every run ID
const RunIDPrefix = "convert-"

// Service converts image files. Only one run may be active at a time.
type Service struct {
	mu       sync.RWMutex
	state    model.RunState
	progress model.Progress
	onUpdate func(model.Progress) // callback for UI updates
}

// NewService creates a new conversion service
func NewService() *Service {
	return &Service{
		state:    model.RunStateIdle,
		progress: idleProgress(model.RunStateIdle),
	}
}

// SetUpdateCallback sets the callback function for progress updates. The
// callback runs on the conversion goroutine.
func (s *Service) SetUpdateCallback(callback func(model.Progress)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Progress returns the latest progress snapshot
func (s *Service) Progress() model.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress
}

// IsRunning reports whether a conversion is in progress
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsActive()
}

// Convert runs a conversion and blocks until it has finished
func (s *Service) Convert(req model.ConversionRequest) (*model.ConversionRun, error) {
	run, err := s.begin(req)
	if err != nil {
		return nil, err
	}

	err = s.execute(run)
	s.finish(run, err)
	if err != nil {
		return run, err
	}
	return run, nil
}

// Start runs a conversion in the background. onDone, if set, is called
// once the run has finished and progress has been reset; the returned run
// must not be read before then.
func (s *Service) Start(req model.ConversionRequest, onDone func(*model.ConversionRun)) (*model.ConversionRun, error) {
	run, err := s.begin(req)
	if err != nil {
		return nil, err
	}

	go func() {
		err := s.execute(run)
		s.finish(run, err)
		if onDone != nil {
			onDone(run)
		}
	}()

	return run, nil
}

// begin validates the request and claims the single-flight guard
func (s *Service) begin(req model.ConversionRequest) (*model.ConversionRun, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.state.IsActive() {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.state = model.RunStateRunning
	s.mu.Unlock()

	run := &model.ConversionRun{
		ID: generateRunID(),
		Request: model.ConversionRequest{
			Files:       append([]string(nil), req.Files...),
			Format:      req.Format,
			Combine:     req.Combine,
			Destination: req.Destination,
		},
		State:     model.RunStateRunning,
		StartedAt: time.Now(),
	}

	log.Printf("Conversion %s started: %d file(s) to %s (combine=%v)",
		run.ID, len(run.Request.Files), run.Request.Format, run.Request.IsCombined())
	return run, nil
}

// execute performs the conversion work for a claimed run
func (s *Service) execute(run *model.ConversionRun) error {
	req := run.Request
	total := len(req.Files)

	var (
		outputs []string
		err     error
	)
	if req.IsCombined() {
		s.publish(model.Progress{Current: 0, Total: total, Phase: model.PhaseCombining})
		outputs, err = s.combine(req.Files, req.Destination)
	} else {
		outputs, err = s.convertEach(req.Files, req.Format, req.Destination)
	}
	run.Outputs = outputs
	if err != nil {
		return err
	}

	s.publish(model.Progress{Current: total, Total: total, Phase: model.PhaseCompleted, State: model.RunStateCompleted})
	return nil
}

// finish records the outcome, resets progress and releases the guard
func (s *Service) finish(run *model.ConversionRun, err error) {
	run.FinishedAt = time.Now()
	if err != nil {
		run.State = model.RunStateFailed
		run.LastError = err.Error()
		log.Printf("Conversion %s failed after %v: %v", run.ID, run.Duration(), err)
	} else {
		run.State = model.RunStateCompleted
		log.Printf("Conversion %s completed in %v: %d output(s)", run.ID, run.Duration(), len(run.Outputs))
	}

	// Reset before releasing the guard; the next run's first snapshot must win
	s.publish(idleProgress(run.State))

	s.mu.Lock()
	s.state = run.State
	s.mu.Unlock()
}

// publish stores a progress snapshot and notifies the subscriber. Status
// text is derived from the phase and an unset state means running.
func (s *Service) publish(p model.Progress) {
	if p.State == "" {
		p.State = model.RunStateRunning
	}
	if p.Status == "" {
		p.Status = model.StatusText(p.Phase, p.Current, p.Total)
	}

	s.mu.Lock()
	s.progress = p
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(p)
	}
}

func idleProgress(state model.RunState) model.Progress {
	return model.Progress{
		Phase:  model.PhaseIdle,
		Status: model.StatusText(model.PhaseIdle, 0, 0),
		State:  state,
	}
}

func validate(req model.ConversionRequest) error {
	if len(req.Files) == 0 {
		return ErrNoFiles
	}
	if req.Destination == "" {
		return ErrNoDestination
	}
	if !req.Format.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, req.Format)
	}
	return nil
}

// generateRunID generates a unique run ID using UUID v7 for time ordering
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
