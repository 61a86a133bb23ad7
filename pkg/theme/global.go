package theme

import "sync"

var (
	globalMu    sync.RWMutex
	globalOnce  sync.Once
	globalTheme *Theme
)

// Get returns the process-wide theme, creating it from Default on first
// use. The returned value must be treated as read-only; use Set to change
// it.
func Get() *Theme {
	globalOnce.Do(func() {
		globalMu.Lock()
		defer globalMu.Unlock()
		if globalTheme == nil {
			globalTheme = Default()
		}
	})
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalTheme
}

// Set replaces the process-wide theme. Passing nil restores Default.
// Elements pick the new theme up on their next draw; callers refresh the
// view themselves.
func Set(t *Theme) {
	globalOnce.Do(func() {})
	globalMu.Lock()
	defer globalMu.Unlock()
	if t == nil {
		t = Default()
	}
	globalTheme = t.Copy()
}
