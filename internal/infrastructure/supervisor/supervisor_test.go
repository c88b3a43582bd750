package supervisor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const helperEnv = "SUPERVISOR_TEST_HELPER"

// TestHelperProcess is not a real test. It is the child process the
// supervisor tests spawn, selected by the helper environment variable.
func TestHelperProcess(t *testing.T) {
	mode := os.Getenv(helperEnv)
	if mode == "" {
		return
	}
	defer os.Exit(0)

	switch mode {
	case "ready":
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGTERM)
		fmt.Println("booting")
		fmt.Printf("Server LISTENING on port %s\n", os.Getenv("PORT"))
		<-sigs
		fmt.Println("shutting down")
	case "silent":
		time.Sleep(time.Minute)
	case "crash":
		fmt.Fprintln(os.Stderr, "config error")
		os.Exit(3)
	case "orphan":
		grandchild := exec.Command("sleep", "10")
		grandchild.Stdout = os.Stdout
		if err := grandchild.Start(); err != nil {
			os.Exit(4)
		}
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGTERM)
		fmt.Println("server started")
		<-sigs
	case "stubborn":
		signal.Ignore(syscall.SIGTERM)
		fmt.Println("server started")
		time.Sleep(time.Minute)
	}
}

// syncBuffer collects child output written from the watch goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newHelper(t *testing.T, mode string, out *syncBuffer) *Supervisor {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("signal based helper does not run on windows")
	}
	s := New(Options{
		Binary:       os.Args[0],
		Args:         []string{"-test.run=TestHelperProcess"},
		Port:         3100,
		Env:          []string{helperEnv + "=" + mode},
		ReadyTimeout: 300 * time.Millisecond,
		StopGrace:    300 * time.Millisecond,
		Output:       out,
	}, zap.NewNop())
	t.Cleanup(func() { _ = s.Stop(context.Background()) })
	return s
}

func TestSupervisor_ReadyMarker(t *testing.T) {
	out := &syncBuffer{}
	s := newHelper(t, "ready", out)

	port, err := s.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3100, port)
	assert.True(t, s.Running())
	assert.Contains(t, out.String(), "port 3100")

	_, err = s.Start(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, s.Stop(context.Background()))
	assert.False(t, s.Running())
	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("shutting down"))
	}, time.Second, 10*time.Millisecond)
}

func TestSupervisor_AssumesReadyAfterTimeout(t *testing.T) {
	s := newHelper(t, "silent", &syncBuffer{})

	start := time.Now()
	port, err := s.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3100, port)
	assert.GreaterOrEqual(t, time.Since(start), 300*time.Millisecond)
	assert.True(t, s.Running())
}

func TestSupervisor_ExitBeforeReady(t *testing.T) {
	out := &syncBuffer{}
	s := newHelper(t, "crash", out)

	_, err := s.Start(context.Background())
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "got %v", err)
	assert.Contains(t, err.Error(), "exit status 3")
	assert.Contains(t, out.String(), "config error")
	assert.False(t, s.Running())
}

func TestSupervisor_KillsAfterGrace(t *testing.T) {
	s := newHelper(t, "stubborn", &syncBuffer{})

	_, err := s.Start(context.Background())
	require.NoError(t, err)

	start := time.Now()
	require.NoError(t, s.Stop(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 300*time.Millisecond)
	assert.False(t, s.Running())

	select {
	case <-s.Done():
	default:
		t.Fatal("done channel not closed after stop")
	}
}

func TestSupervisor_StopWithGrandchildHoldingStdout(t *testing.T) {
	s := newHelper(t, "orphan", &syncBuffer{})

	_, err := s.Start(context.Background())
	require.NoError(t, err)

	stopped := make(chan error, 1)
	go func() { stopped <- s.Stop(context.Background()) }()

	select {
	case err := <-stopped:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("stop blocked on the inherited stdout pipe")
	}
	assert.False(t, s.Running())
}

func TestSupervisor_StopWithoutChild(t *testing.T) {
	s := New(Options{Binary: "unused"}, zap.NewNop())
	assert.NoError(t, s.Stop(context.Background()))
	assert.Nil(t, s.Done())
}

func TestSupervisor_StartMissingBinary(t *testing.T) {
	s := New(Options{Binary: "/nonexistent/finstatements-server"}, zap.NewNop())
	_, err := s.Start(context.Background())
	assert.Error(t, err)
	assert.False(t, s.Running())
}

func TestSupervisor_Defaults(t *testing.T) {
	s := New(Options{}, zap.NewNop())
	assert.Equal(t, 5*time.Second, s.opts.ReadyTimeout)
	assert.Equal(t, 5*time.Second, s.opts.StopGrace)
	assert.True(t, s.isReadyLine("HTTP server Listening on :3000"))
	assert.True(t, s.isReadyLine("server started"))
	assert.False(t, s.isReadyLine("connecting to database"))
}
