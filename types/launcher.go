package types

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// configuration of the trainer process launcher
type LauncherConfig struct {
	PythonBinary string // interpreter used to run the trainer
	ScriptPath   string // path to the trainer script
	WorkingDir   string // working directory of the trainer, "" inherits ours
}

func (c *LauncherConfig) SetDefaults() {
	if c.PythonBinary == "" {
		c.PythonBinary = "python"
	}
	if c.ScriptPath == "" {
		c.ScriptPath = "train_pg.py"
	}
}

func (c *LauncherConfig) Copy() *LauncherConfig {
	return &LauncherConfig{
		PythonBinary: c.PythonBinary,
		ScriptPath:   c.ScriptPath,
		WorkingDir:   c.WorkingDir,
	}
}

// Launcher runs one trainer process at a time and keeps the output of the
// last run
type Launcher struct {
	config  *LauncherConfig
	process *exec.Cmd

	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func NewLauncher(config *LauncherConfig) *Launcher {
	config.SetDefaults()
	return &Launcher{
		config:  config,
		process: nil,
		stdout:  nil,
		stderr:  nil,
	}
}

func (l *Launcher) create(ctx context.Context, run *RunConfig) {
	trainerArgs := append([]string{l.config.ScriptPath}, run.Args()...)

	l.process = exec.CommandContext(ctx, l.config.PythonBinary, trainerArgs...)
	if l.config.WorkingDir != "" {
		l.process.Dir = l.config.WorkingDir
	}

	l.stdout = new(bytes.Buffer)
	l.stderr = new(bytes.Buffer)
	l.process.Stdout = l.stdout
	l.process.Stderr = l.stderr
}

// CommandLine renders the full invocation for the given run, used by dry
// runs and the sweep summary
func (l *Launcher) CommandLine(run *RunConfig) string {
	parts := append([]string{l.config.PythonBinary, l.config.ScriptPath}, run.Args()...)
	return strings.Join(parts, " ")
}

// Run launches the trainer for the given run configuration and blocks until
// the process exits. Returns the exit code of the process, or -1 when the
// process could not be started or was killed.
func (l *Launcher) Run(ctx context.Context, run *RunConfig) (int, error) {
	if l.process != nil {
		return -1, errors.New("(types:launcher.go:Launcher:Run:1): trainer already running")
	}

	l.create(ctx, run)
	start := time.Now()
	err := l.process.Run()
	duration := time.Since(start)

	exitCode := -1
	if l.process.ProcessState != nil {
		exitCode = l.process.ProcessState.ExitCode()
	}
	l.process = nil

	if err != nil {
		return exitCode, fmt.Errorf("trainer run %s failed after %s (types:launcher.go:Launcher:Run:2):\n%s", run.ExpName, duration.Round(time.Millisecond), err)
	}
	return exitCode, nil
}

func (l *Launcher) GetLogs() (string, string) {
	if l.stdout == nil || l.stderr == nil {
		return "", ""
	}
	return l.stdout.String(), l.stderr.String()
}
