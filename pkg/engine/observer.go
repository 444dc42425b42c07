package engine

import "slices"

// Listener receives a state snapshot after every mutating call (roll, select,
// reset). Listeners carry no game semantics; the engine calls them
// synchronously on the mutating goroutine and never waits on anything.
type Listener interface {
	StateChanged(Snapshot)
}

// Subscribe registers a listener. Registering the same listener twice is a
// no-op.
func (g *Game) Subscribe(l Listener) {
	if l == nil || slices.Contains(g.listeners, l) {
		return
	}
	g.listeners = append(g.listeners, l)
}

// Unsubscribe removes a previously registered listener.
func (g *Game) Unsubscribe(l Listener) {
	for i, existing := range g.listeners {
		if existing == l {
			g.listeners = slices.Delete(g.listeners, i, i+1)
			return
		}
	}
}

func (g *Game) publish() {
	if len(g.listeners) == 0 {
		return
	}
	snap := g.Snapshot()
	for _, l := range g.listeners {
		l.StateChanged(snap)
	}
}
