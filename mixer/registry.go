// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"
)

// snapshot is an immutable view of the registry. The render path only
// ever reads the latest published snapshot.
type snapshot struct {
	players map[string]*Player
	mix     []Renderable
}

var emptySnapshot = &snapshot{players: map[string]*Player{}}

// registry maps ids to players. Writers serialize on mu, copy the current
// snapshot, modify the copy and publish it, so readers never wait.
type registry struct {
	mu   sync.Mutex
	snap atomic.Pointer[snapshot]
}

func newRegistry() *registry {
	r := &registry{}
	r.snap.Store(emptySnapshot)
	return r
}

// renderables returns the players to mix for the current period.
func (r *registry) renderables() []Renderable {
	return r.snap.Load().mix
}

func (r *registry) get(id string) (*Player, bool) {
	p, ok := r.snap.Load().players[id]
	return p, ok
}

func (r *registry) len() int {
	return len(r.snap.Load().players)
}

// ids returns the registered ids in sorted order.
func (r *registry) ids() []string {
	players := r.snap.Load().players

	ids := make([]string, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// add registers p under id. It reports false, changing nothing, if the id
// is taken.
func (r *registry) add(id string, p *Player) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.snap.Load()
	if _, taken := cur.players[id]; taken {
		return false
	}

	next := maps.Clone(cur.players)
	next[id] = p

	r.publish(next)
	return true
}

// remove drops the given ids and returns those that were present.
func (r *registry) remove(ids ...string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.snap.Load()

	var removed []string
	next := maps.Clone(cur.players)
	for _, id := range ids {
		if _, ok := next[id]; ok {
			delete(next, id)
			removed = append(removed, id)
		}
	}

	if len(removed) > 0 {
		r.publish(next)
	}
	return removed
}

// retain keeps only the players for which keep reports true and returns
// the ids that were dropped.
func (r *registry) retain(keep func(*Player) bool) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.snap.Load()

	var dropped []string
	next := make(map[string]*Player, len(cur.players))
	for k, v := range cur.players {
		if keep(v) {
			next[k] = v
			continue
		}
		dropped = append(dropped, k)
	}

	if len(dropped) > 0 {
		slices.Sort(dropped)
		r.publish(next)
	}
	return dropped
}

// clear drops every player and returns how many there were.
func (r *registry) clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.snap.Load().players)
	r.snap.Store(emptySnapshot)

	return n
}

// publish must be called with mu held.
func (r *registry) publish(players map[string]*Player) {
	mix := make([]Renderable, 0, len(players))
	for _, p := range players {
		mix = append(mix, p)
	}

	r.snap.Store(&snapshot{players: players, mix: mix})
}
