package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewPeriodicRunner_InvalidConfig(t *testing.T) {
	run := func(context.Context) error { return nil }

	for name, job := range map[string]Job{
		"no name":     {Interval: time.Second, Run: run},
		"no action":   {Name: "purge", Interval: time.Second},
		"no interval": {Name: "purge", Run: run},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewPeriodicRunner(job, nil)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestPeriodicRunner_RunsOnStartAndOnTicks(t *testing.T) {
	var calls atomic.Int32
	r, err := NewPeriodicRunner(Job{
		Name:       "purge",
		Interval:   10 * time.Millisecond,
		RunOnStart: true,
		Run: func(context.Context) error {
			calls.Add(1)
			return nil
		},
	}, zap.NewNop())
	require.NoError(t, err)

	r.Start(context.Background())
	r.Start(context.Background())
	assert.True(t, r.IsRunning())

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	require.NoError(t, r.Stop(context.Background()))
	assert.False(t, r.IsRunning())
	require.NoError(t, r.Stop(context.Background()))

	stopped := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())

	at, lastErr := r.LastRun()
	assert.False(t, at.IsZero())
	assert.NoError(t, lastErr)
}

func TestPeriodicRunner_LogsFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	boom := errors.New("boom")

	r, err := NewPeriodicRunner(Job{
		Name:       "purge",
		Interval:   time.Hour,
		RunOnStart: true,
		Run:        func(context.Context) error { return boom },
	}, zap.New(core))
	require.NoError(t, err)

	r.Start(context.Background())
	require.Eventually(t, func() bool { return logs.FilterMessage("Periodic job failed").Len() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, r.Stop(context.Background()))

	_, lastErr := r.LastRun()
	assert.ErrorIs(t, lastErr, boom)
}

func TestPeriodicRunner_StopHonoursContext(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	r, err := NewPeriodicRunner(Job{
		Name:       "slow",
		Interval:   time.Hour,
		RunOnStart: true,
		Run: func(context.Context) error {
			close(started)
			<-release
			return nil
		},
	}, nil)
	require.NoError(t, err)

	r.Start(context.Background())
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.Stop(ctx), context.DeadlineExceeded)

	close(release)
}
