package types

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/wy/pgsweep/util"
)

// SweepConfig contains the configuration for a sweep
type SweepConfig struct {
	PythonBinary string // interpreter used to run the trainer
	ScriptPath   string // path to the trainer script
	WorkingDir   string // working directory of the trainer
	SavePath     string // path to store run logs and the config dump
	DryRun       bool   // print the invocations without executing
	RecordLogs   bool   // write captured stdout/stderr of each run to files
}

// Sweep dispatches a fixed ordered list of trainer runs, one at a time.
// Each run blocks until its process exits. A failing run is recorded and
// the sweep moves on to the next one, there is no retry and no abort.
type Sweep struct {
	Runs []*RunConfig

	config   *SweepConfig
	launcher *Launcher
	status   *Status
}

// NewSweep creates a sweep instance
func NewSweep(config *SweepConfig) *Sweep {
	if config.SavePath == "" {
		config.SavePath = "results"
	}
	os.MkdirAll(config.SavePath, 0777)
	if config.RecordLogs {
		logsFolder := path.Join(config.SavePath, "logs")
		if _, err := os.Stat(logsFolder); err != nil {
			os.MkdirAll(logsFolder, os.ModePerm)
		}
	}

	return &Sweep{
		Runs:   make([]*RunConfig, 0),
		config: config,
		launcher: NewLauncher(&LauncherConfig{
			PythonBinary: config.PythonBinary,
			ScriptPath:   config.ScriptPath,
			WorkingDir:   config.WorkingDir,
		}),
		status: nil,
	}
}

// Add runs to the sweep
func (s *Sweep) AddRun(run *RunConfig) {
	s.Runs = append(s.Runs, run)
}

// Status returns the progress tracker, allocated on first use
func (s *Sweep) Status() *Status {
	if s.status == nil {
		s.status = NewStatus(len(s.Runs))
	}
	return s.status
}

// record the configuration of the sweep
func (s *Sweep) recordConfig() {
	cfg := s.config
	f, err := os.Create(path.Join(cfg.SavePath, "sweep_config.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	out := make(map[string]interface{})
	out["python"] = s.launcher.config.PythonBinary
	out["script"] = s.launcher.config.ScriptPath
	out["dry_run"] = cfg.DryRun
	out["record_logs"] = cfg.RecordLogs

	runs := make([][]string, 0)
	for _, r := range s.Runs {
		runs = append(runs, r.Args())
	}
	out["runs"] = runs

	bs, err := json.Marshal(out)
	if err != nil {
		panic(err)
	}
	f.Write(bs)
}

func (s *Sweep) recordRunLogs(index int, run *RunConfig) {
	stdout, stderr := s.launcher.GetLogs()
	prefix := run.ExpName + "_" + strconv.Itoa(index)
	util.WriteToFile(path.Join(s.config.SavePath, "logs", prefix+"_stdout.log"), stdout)
	util.WriteToFile(path.Join(s.config.SavePath, "logs", prefix+"_stderr.log"), stderr)
}

// Run the sweep for all the configured runs. The returned results are in
// run order, one per run, regardless of individual failures.
func (s *Sweep) Run(ctx context.Context) []RunStatus {
	s.recordConfig() // store configuration details to a file

	status := s.Status()
	results := make([]RunStatus, 0, len(s.Runs))

	longestNameLen := 0
	for _, r := range s.Runs {
		if len(r.ExpName) > longestNameLen {
			longestNameLen = len(r.ExpName)
		}
	}

	for i, run := range s.Runs { // index - run in the ordered list of runs
		select {
		case <-ctx.Done():
			status.Finish()
			return results
		default:
		}

		status.StartRun(i+1, run.ExpName)
		command := s.launcher.CommandLine(run)
		fmt.Printf("Run %d/%d: %*s", i+1, len(s.Runs), longestNameLen, run.ExpName)

		if s.config.DryRun {
			fmt.Printf(" (dry run)\n  %s\n", command)
			result := RunStatus{Name: run.ExpName, Command: command, Ok: true, ExitCode: 0}
			results = append(results, result)
			status.FinishRun(result)
			continue
		}

		start := time.Now()
		exitCode, err := s.launcher.Run(ctx, run)
		duration := time.Since(start)

		result := RunStatus{
			Name:       run.ExpName,
			Command:    command,
			Ok:         err == nil,
			ExitCode:   exitCode,
			DurationMs: duration.Milliseconds(),
		}
		if err != nil {
			result.Error = err.Error()
			fmt.Printf(" failed [%s]\n  %s\n", duration.Round(time.Millisecond), err)
		} else {
			fmt.Printf(" ok [%s]\n", duration.Round(time.Millisecond))
		}

		if s.config.RecordLogs {
			s.recordRunLogs(i+1, run)
		}

		results = append(results, result)
		status.FinishRun(result)
	}

	status.Finish()
	return results
}
