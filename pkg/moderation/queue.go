package moderation

import (
	"sort"
	"strings"
	"sync"
	"time"
)

type ActionKind string

const ActionGrantVoice ActionKind = "grant_voice"

type Origin string

const (
	OriginJoin Origin = "join"
	OriginMute Origin = "mute"
)

// Action is a pending privilege change for one channel member: grant voice at
// DueAt. Origin records why the grant was scheduled, a mute origin marks the
// member as currently muted.
type Action struct {
	Nick    string
	Channel string
	Kind    ActionKind
	Origin  Origin
	DueAt   time.Time
}

type actionKey struct {
	channel string
	nick    string
}

func newActionKey(nick, channel string) actionKey {
	return actionKey{channel: strings.ToLower(channel), nick: strings.ToLower(nick)}
}

// ActionQueue holds at most one pending action per (nick, channel) pair.
// All operations take the queue lock; the sweep flow and the event flow can
// call in concurrently.
type ActionQueue struct {
	mu      sync.Mutex
	entries map[actionKey]*Action
	paused  bool
}

func NewActionQueue() *ActionQueue {
	return &ActionQueue{
		entries: make(map[actionKey]*Action),
	}
}

// Schedule inserts or replaces the entry for (nick, channel). Last write
// wins; an earlier due time for the same pair is discarded.
func (q *ActionQueue) Schedule(nick, channel string, dueAt time.Time, origin Origin) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries[newActionKey(nick, channel)] = &Action{
		Nick:    nick,
		Channel: channel,
		Kind:    ActionGrantVoice,
		Origin:  origin,
		DueAt:   dueAt,
	}
}

func (q *ActionQueue) Cancel(nick, channel string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	delete(q.entries, newActionKey(nick, channel))
}

// CancelAll removes the nick's entries in every channel. Used on QUIT.
func (q *ActionQueue) CancelAll(nick string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := strings.ToLower(nick)
	for key := range q.entries {
		if key.nick == n {
			delete(q.entries, key)
		}
	}
}

// Sweep removes and returns every entry due at or before now, oldest first.
// Each entry is returned exactly once. Returns nothing while the queue is
// paused.
func (q *ActionQueue) Sweep(now time.Time) []*Action {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.paused {
		return nil
	}

	due := make([]*Action, 0)
	for key, action := range q.entries {
		if !action.DueAt.After(now) {
			due = append(due, action)
			delete(q.entries, key)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		return due[i].DueAt.Before(due[j].DueAt)
	})

	return due
}

func (q *ActionQueue) Count() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.entries)
}

// Clear empties the queue and returns the number of dropped entries.
func (q *ActionQueue) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.entries)
	q.entries = make(map[actionKey]*Action)
	return n
}

// Pause stops Sweep from promoting entries until Resume. Bulk mode changes
// pause the queue so their batched transport calls don't race the sweep.
func (q *ActionQueue) Pause() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.paused = true
}

func (q *ActionQueue) Resume() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.paused = false
}

func (q *ActionQueue) Paused() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.paused
}

// IsMuted reports whether the nick has a pending mute restoration in the
// channel.
func (q *ActionQueue) IsMuted(nick, channel string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	action, ok := q.entries[newActionKey(nick, channel)]
	return ok && action.Origin == OriginMute
}
