// Package spawner manages bot subprocesses for repeated-match runs.
package spawner

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// stopGrace is how long a process gets between interrupt and kill.
const stopGrace = 5 * time.Second

// Spec defines one bot process to spawn.
type Spec struct {
	Command string
	Args    []string
	Env     []string
}

// Spawner starts and supervises bot processes.
type Spawner struct {
	mu        sync.Mutex
	processes []*Process
	logger    *log.Logger
	clock     quartz.Clock
}

// New creates a spawner. A nil clock uses the real one; tests inject a
// mock.
func New(logger *log.Logger, clock quartz.Clock) *Spawner {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Spawner{logger: logger, clock: clock}
}

// Spawn starts one process and tracks it.
func (s *Spawner) Spawn(spec Spec) (*Process, error) {
	cmd := exec.Command(spec.Command, spec.Args...)
	if len(spec.Env) > 0 {
		cmd.Env = spec.Env
	}
	proc := &Process{cmd: cmd, clock: s.clock, logger: s.logger}
	cmd.Stdout = &proc.stdout
	cmd.Stderr = &proc.stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", spec.Command, err)
	}
	s.logger.Debug("spawned process", "command", spec.Command, "pid", cmd.Process.Pid)

	s.mu.Lock()
	s.processes = append(s.processes, proc)
	s.mu.Unlock()
	return proc, nil
}

// StopAll interrupts every tracked process and kills the stragglers.
func (s *Spawner) StopAll() {
	s.mu.Lock()
	procs := make([]*Process, len(s.processes))
	copy(procs, s.processes)
	s.processes = nil
	s.mu.Unlock()

	for _, proc := range procs {
		proc.Stop()
	}
}

// Process is one spawned bot.
type Process struct {
	cmd    *exec.Cmd
	stdout bytes.Buffer
	stderr bytes.Buffer
	clock  quartz.Clock
	logger *log.Logger

	waitOnce sync.Once
	waitErr  error
}

// Wait blocks until the process exits.
func (p *Process) Wait() error {
	p.waitOnce.Do(func() {
		p.waitErr = p.cmd.Wait()
	})
	return p.waitErr
}

// Stop interrupts the process, waits up to stopGrace, then kills it.
func (p *Process) Stop() {
	if p.cmd.Process == nil {
		return
	}
	if p.cmd.ProcessState != nil {
		return
	}
	_ = p.cmd.Process.Signal(os.Interrupt)

	done := make(chan struct{})
	go func() {
		p.Wait()
		close(done)
	}()

	timer := p.clock.NewTimer(stopGrace)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		p.logger.Warn("process did not exit, killing", "pid", p.cmd.Process.Pid)
		_ = p.cmd.Process.Kill()
		<-done
	}
}

// Stdout returns what the process wrote to standard output so far.
func (p *Process) Stdout() string {
	return p.stdout.String()
}

// Stderr returns what the process wrote to standard error so far.
func (p *Process) Stderr() string {
	return p.stderr.String()
}
