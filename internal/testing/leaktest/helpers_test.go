package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	started := make(chan struct{})
	go func() {
		close(started)
		<-done
	}()
	<-started

	checker.Check(1)
	close(done)
}

func TestGoroutineChecker_WaitsForExitingGoroutines(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		for i := 0; i < 10; i++ {
			go time.Sleep(20 * time.Millisecond)
		}
	})
}

func TestVerify(t *testing.T) {
	Verify(t)

	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
		}()
	}
	wg.Wait()
}

func TestSettle_TimesOut(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	target := runtime.NumGoroutine() - 1
	n, ok := settle(target, 30*time.Millisecond)
	assert.False(t, ok)
	assert.Greater(t, n, target)
}
