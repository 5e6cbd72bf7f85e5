package model

// RunState represents the lifecycle state of a conversion run
type RunState string

const (
	// RunStateIdle means no conversion has run yet
	RunStateIdle RunState = "Idle"

	// RunStateRunning means a conversion is in progress
	RunStateRunning RunState = "Running"

	// RunStateCompleted means the last run finished successfully
	RunStateCompleted RunState = "Completed"

	// RunStateFailed means the last run stopped on an error
	RunStateFailed RunState = "Failed"
)

// String returns the string representation of RunState
func (rs RunState) String() string {
	return string(rs)
}

// IsActive returns true if a run is in progress
func (rs RunState) IsActive() bool {
	return rs == RunStateRunning
}

// IsFinished returns true if the state is terminal (completed or failed)
func (rs RunState) IsFinished() bool {
	return rs == RunStateCompleted || rs == RunStateFailed
}

// Phase describes what the pipeline is currently doing, used for status text
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseCombining  Phase = "combining"
	PhaseConverting Phase = "converting"
	PhaseCompleted  Phase = "completed"
)
