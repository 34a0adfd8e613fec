package types

import "sync"

// outcome of a single run, also served by the status endpoint
type RunStatus struct {
	Name       string `json:"name"`
	Command    string `json:"command"`
	Ok         bool   `json:"ok"`
	ExitCode   int    `json:"exit_code"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// snapshot of the sweep progress
type StatusSnapshot struct {
	TotalRuns   int         `json:"total_runs"`
	CurrentRun  int         `json:"current_run"` // 1-based, 0 before the first run starts
	CurrentName string      `json:"current_name,omitempty"`
	Done        bool        `json:"done"`
	Completed   []RunStatus `json:"completed"`
}

// Status tracks sweep progress, safe to read while the sweep runs
type Status struct {
	lock *sync.Mutex

	totalRuns   int
	currentRun  int
	currentName string
	done        bool
	completed   []RunStatus
}

func NewStatus(totalRuns int) *Status {
	return &Status{
		lock:      new(sync.Mutex),
		totalRuns: totalRuns,
		completed: make([]RunStatus, 0),
	}
}

func (s *Status) StartRun(index int, name string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.currentRun = index
	s.currentName = name
}

func (s *Status) FinishRun(r RunStatus) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.completed = append(s.completed, r)
	s.currentName = ""
}

func (s *Status) Finish() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.done = true
}

func (s *Status) Snapshot() StatusSnapshot {
	s.lock.Lock()
	defer s.lock.Unlock()
	out := StatusSnapshot{
		TotalRuns:   s.totalRuns,
		CurrentRun:  s.currentRun,
		CurrentName: s.currentName,
		Done:        s.done,
		Completed:   make([]RunStatus, len(s.completed)),
	}
	copy(out.Completed, s.completed)
	return out
}
