// Package supervisor runs the backend server as a child process for the
// desktop shell. It is one-shot: it starts the server once, reports when it
// is ready and stops it on request. A crashed server is not restarted.
package supervisor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/finstatements/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ErrAlreadyRunning is returned by Start while a child process is alive
var ErrAlreadyRunning = errors.New("server process already running")

// ExitError reports a server that exited before it became ready
type ExitError struct {
	Err error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return "server process exited before it was ready"
	}
	return "server process exited before it was ready: " + e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// Options configure a Supervisor
type Options struct {
	Binary       string
	Args         []string
	Dir          string
	Port         int
	Env          []string // extra KEY=VALUE pairs on top of the current environment
	ReadyTimeout time.Duration
	StopGrace    time.Duration
	ReadyMarkers []string
	Output       io.Writer // receives the child's stdout and stderr; nil discards
}

// OptionsFromConfig maps the supervisor section of the configuration
func OptionsFromConfig(cfg config.SupervisorConfig) Options {
	return Options{
		Binary:       cfg.ServerBinary,
		Args:         cfg.ServerArgs,
		Port:         cfg.Port,
		ReadyTimeout: cfg.ReadyTimeout,
		StopGrace:    cfg.StopGrace,
		ReadyMarkers: cfg.ReadyMarkers,
	}
}

// Supervisor owns at most one server child process
type Supervisor struct {
	opts   Options
	logger *zap.Logger

	mu      sync.Mutex
	cmd     *exec.Cmd
	done    chan struct{}
	exitErr error
}

// New creates a Supervisor. Zero timeouts default to five seconds and an
// empty marker list to "listening" and "started".
func New(opts Options, logger *zap.Logger) *Supervisor {
	if opts.ReadyTimeout <= 0 {
		opts.ReadyTimeout = 5 * time.Second
	}
	if opts.StopGrace <= 0 {
		opts.StopGrace = 5 * time.Second
	}
	if len(opts.ReadyMarkers) == 0 {
		opts.ReadyMarkers = []string{"listening", "started"}
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	return &Supervisor{opts: opts, logger: logger}
}

// Port is the port the server is told to listen on
func (s *Supervisor) Port() int {
	return s.opts.Port
}

// Start launches the server with PORT set and waits until a ready marker
// appears on its stdout. If the ready timeout passes while the process is
// still alive the server is assumed to be up. A process that exits first
// yields an *ExitError.
func (s *Supervisor) Start(ctx context.Context) (int, error) {
	s.mu.Lock()
	if s.cmd != nil {
		s.mu.Unlock()
		return 0, ErrAlreadyRunning
	}

	cmd := exec.Command(s.opts.Binary, s.opts.Args...)
	cmd.Dir = s.opts.Dir
	cmd.Env = append(os.Environ(), s.opts.Env...)
	cmd.Env = append(cmd.Env, "PORT="+strconv.Itoa(s.opts.Port))
	cmd.Stderr = s.opts.Output
	// A grandchild inheriting stdout keeps the pipe open after the server
	// exits; WaitDelay bounds how long Wait waits for it.
	stdout, stdoutW := io.Pipe()
	cmd.Stdout = stdoutW
	cmd.WaitDelay = s.opts.StopGrace

	s.logger.Info("Starting server process",
		zap.String("binary", s.opts.Binary),
		zap.Strings("args", s.opts.Args),
		zap.Int("port", s.opts.Port))
	if err := cmd.Start(); err != nil {
		s.mu.Unlock()
		_ = stdoutW.Close()
		return 0, fmt.Errorf("failed to start server process: %w", err)
	}

	ready := make(chan struct{})
	done := make(chan struct{})
	s.cmd, s.done, s.exitErr = cmd, done, nil
	s.mu.Unlock()

	forwarded := make(chan struct{})
	go s.forward(stdout, ready, forwarded)
	go s.reap(cmd, stdoutW, forwarded, done)

	timer := time.NewTimer(s.opts.ReadyTimeout)
	defer timer.Stop()

	select {
	case <-ready:
		s.logger.Info("Server process ready", zap.Int("port", s.opts.Port))
		return s.opts.Port, nil
	case <-done:
		return 0, &ExitError{Err: s.exitError()}
	case <-timer.C:
		s.logger.Warn("No ready marker from server process, assuming it started",
			zap.Duration("timeout", s.opts.ReadyTimeout))
		return s.opts.Port, nil
	case <-ctx.Done():
		_ = s.Stop(context.Background())
		return 0, ctx.Err()
	}
}

// forward copies stdout lines to the output and signals the first ready marker
func (s *Supervisor) forward(stdout io.Reader, ready, forwarded chan struct{}) {
	defer close(forwarded)
	var once sync.Once
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		_, _ = fmt.Fprintln(s.opts.Output, line)
		if s.isReadyLine(line) {
			once.Do(func() { close(ready) })
		}
	}
	// drain so a long line cannot block the child's writes
	_, _ = io.Copy(io.Discard, stdout)
}

// reap waits for the process, independently of its stdout
func (s *Supervisor) reap(cmd *exec.Cmd, stdoutW *io.PipeWriter, forwarded, done chan struct{}) {
	err := cmd.Wait()
	_ = stdoutW.Close()
	<-forwarded

	s.mu.Lock()
	s.exitErr = err
	if s.cmd == cmd {
		s.cmd = nil
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("Server process exited", zap.Error(err))
	} else {
		s.logger.Info("Server process exited")
	}
	close(done)
}

func (s *Supervisor) isReadyLine(line string) bool {
	line = strings.ToLower(line)
	for _, marker := range s.opts.ReadyMarkers {
		if strings.Contains(line, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

func (s *Supervisor) exitError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exitErr
}

// Running reports whether a child process is alive
func (s *Supervisor) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cmd != nil
}

// Done is closed when the current child process exits. It is nil before the
// first Start.
func (s *Supervisor) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Stop asks the server to terminate and kills it if it is still alive after
// the grace period. Stopping a supervisor with no child is a no-op.
func (s *Supervisor) Stop(ctx context.Context) error {
	s.mu.Lock()
	cmd, done := s.cmd, s.done
	s.mu.Unlock()
	if cmd == nil {
		return nil
	}

	s.logger.Info("Stopping server process", zap.Int("pid", cmd.Process.Pid))
	if err := terminate(cmd.Process); err != nil && !errors.Is(err, os.ErrProcessDone) {
		s.logger.Warn("Failed to signal server process", zap.Error(err))
	}

	grace := time.NewTimer(s.opts.StopGrace)
	defer grace.Stop()

	select {
	case <-done:
		return nil
	case <-grace.C:
		s.logger.Warn("Server process did not exit in time, killing it",
			zap.Duration("grace", s.opts.StopGrace))
	case <-ctx.Done():
	}

	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to kill server process: %w", err)
	}
	<-done
	return ctx.Err()
}

// terminate requests a graceful shutdown. Windows has no SIGTERM delivery,
// so the process is killed there.
func terminate(p *os.Process) error {
	if runtime.GOOS == "windows" {
		return p.Kill()
	}
	return p.Signal(syscall.SIGTERM)
}
