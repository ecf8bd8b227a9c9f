// SPDX-License-Identifier: EPL-2.0

package device

import (
	"sync"
	"sync/atomic"

	"github.com/ik5/audmix/audio"
)

// gate admits callbacks without ever blocking them and lets shut wait
// until the one in flight, if any, has returned.
type gate struct {
	mu     sync.RWMutex
	closed bool
}

// enter reports whether a callback may run. A true result must be paired
// with leave.
func (g *gate) enter() bool {
	if !g.mu.TryRLock() {
		return false
	}
	if g.closed {
		g.mu.RUnlock()
		return false
	}
	return true
}

func (g *gate) leave() { g.mu.RUnlock() }

// shut blocks until no callback is running and refuses all later ones.
func (g *gate) shut() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
}

// core is the state and callback plumbing every backend shares.
type core struct {
	format audio.Format
	usage  Usage
	cb     Callback
	state  atomic.Int32
	gate   gate
}

func newCore(format audio.Format, usage Usage, cb Callback) *core {
	c := &core{format: format, usage: usage, cb: cb}
	c.state.Store(int32(StateOpen))
	return c
}

func (c *core) State() State         { return State(c.state.Load()) }
func (c *core) Format() audio.Format { return c.format }
func (c *core) setState(s State)     { c.state.Store(int32(s)) }

// render runs one period. Outside Starting and Started the buffer is
// silenced without invoking the callback.
func (c *core) render(out []float32, frames int) Result {
	if !c.gate.enter() {
		clear(out)
		return Continue
	}
	defer c.gate.leave()

	switch c.State() {
	case StateStarting:
		c.state.CompareAndSwap(int32(StateStarting), int32(StateStarted))
	case StateStarted:
	default:
		clear(out)
		return Continue
	}

	if c.cb(out, frames) == Stop {
		c.state.CompareAndSwap(int32(StateStarted), int32(StatePaused))
		return Stop
	}

	return Continue
}

// shut moves the stream to Closing, waits out the callback, then Closed.
func (c *core) shut() {
	c.setState(StateClosing)
	c.gate.shut()
	c.setState(StateClosed)
}
