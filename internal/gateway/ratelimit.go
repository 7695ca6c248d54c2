package gateway

import (
	"context"
	"sync"
	"time"
)

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SleepFunc blocks for the duration or returns early with the context error.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RateLimiter admits at most quota requests per trailing window. Admission
// times are recorded atomically with the admission decision, so concurrent
// callers can never jointly exceed the quota. A caller that is cancelled
// while waiting leaves no trace in the window.
type RateLimiter struct {
	mutex  sync.Mutex
	quota  int
	window time.Duration
	clock  Clock
	sleep  SleepFunc
	sent   []time.Time
}

// NewRateLimiter creates a limiter admitting quota requests per window.
func NewRateLimiter(quota int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		quota:  quota,
		window: window,
		clock:  realClock{},
		sleep:  sleepContext,
	}
}

// SetClock overrides the time source, for tests.
func (l *RateLimiter) SetClock(clock Clock) {
	l.clock = clock
}

// SetSleep overrides the wait primitive, for tests.
func (l *RateLimiter) SetSleep(sleep SleepFunc) {
	l.sleep = sleep
}

// Admit blocks until a slot is free in the trailing window, then records the
// admission. It returns the context error when cancelled while waiting.
func (l *RateLimiter) Admit(ctx context.Context) error {
	if l.quota <= 0 {
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		wait, admitted := l.tryAdmit()
		if admitted {
			return nil
		}

		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// tryAdmit atomically prunes expired admissions and either records a new one
// or reports how long until the oldest admission leaves the window.
func (l *RateLimiter) tryAdmit() (time.Duration, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := l.clock.Now()
	cutoff := now.Add(-l.window)

	kept := 0
	for kept < len(l.sent) && !l.sent[kept].After(cutoff) {
		kept++
	}

	l.sent = l.sent[kept:]

	if len(l.sent) < l.quota {
		l.sent = append(l.sent, now)

		return 0, true
	}

	return l.sent[0].Add(l.window).Sub(now), false
}

// Used reports how many admissions currently occupy the window.
func (l *RateLimiter) Used() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	cutoff := l.clock.Now().Add(-l.window)

	used := 0

	for _, at := range l.sent {
		if at.After(cutoff) {
			used++
		}
	}

	return used
}
