package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 500 * time.Millisecond
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker records the goroutine count before a test body runs and
// fails the test if the count has not returned to within a tolerance of it
// once the body is done. Worker pools and storage drains are checked with it.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check polls until at most tolerance extra goroutines remain or the settle
// timeout passes.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.before+tolerance, settleTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// settle waits for the goroutine count to drop to target and returns the
// last observed count.
func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}
