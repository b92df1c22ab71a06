package services

import (
	"sync"
	"sync/atomic"
)

// ScriptCheckout wraps the third-party checkout script's readiness in an
// explicit state holder instead of an ambient global: the script is loaded
// once, the readiness flag flips on success, and the orchestrator consumes
// the flag before every payment attempt. Attempts made before the script is
// ready are rejected, not queued.
type ScriptCheckout struct {
	loadOnce sync.Once
	ready    atomic.Bool
	open     func(session CheckoutSession) error
}

// NewScriptCheckout builds a gateway around the widget's open callback.
func NewScriptCheckout(open func(session CheckoutSession) error) *ScriptCheckout {
	return &ScriptCheckout{open: open}
}

// Load runs the script loader exactly once and marks the gateway ready on
// success. Subsequent calls are no-ops regardless of outcome.
func (c *ScriptCheckout) Load(load func() error) {
	c.loadOnce.Do(func() {
		if load == nil {
			return
		}
		if err := load(); err == nil {
			c.ready.Store(true)
		}
	})
}

// Ready reports whether the checkout script finished loading.
func (c *ScriptCheckout) Ready() bool {
	return c.ready.Load()
}

// Open displays the checkout overlay for the given session.
func (c *ScriptCheckout) Open(session CheckoutSession) error {
	if !c.ready.Load() {
		return ErrCheckoutNotReady
	}
	return c.open(session)
}
