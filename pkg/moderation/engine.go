package moderation

import (
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"sentinel/pkg/api/irc"
	"sentinel/pkg/log"
	"sentinel/pkg/models"
)

// VoteMuteDuration is how long a vote-escalated mute lasts before voice is
// restored.
const VoteMuteDuration = 30 * time.Minute

type VoteStatus int

const (
	VoteRejectedSelf VoteStatus = iota
	VoteRejectedMuted
	VoteRejectedDuplicate
	VoteAccepted
	VoteResolved
)

type VoteResult struct {
	Status    VoteStatus
	Count     int
	Threshold int
}

// PersistFunc saves the moderation settings after a mutating command.
// Persistence failures are logged and otherwise ignored.
type PersistFunc func(*models.ModerationSettings) error

// Engine owns the four pieces of mutable moderation state: the settings, the
// pending-action queue, the open mute polls and the rate gate. Command
// handlers and the sweep flow go through it; there is no other shared state.
type Engine struct {
	clock   clockwork.Clock
	botNick string
	persist PersistFunc

	mu       sync.Mutex
	settings *models.ModerationSettings

	queue *ActionQueue
	polls *PollBook
	gate  *Gate
}

func NewEngine(clock clockwork.Clock, botNick string, settings *models.ModerationSettings, persist PersistFunc) *Engine {
	return &Engine{
		clock:    clock,
		botNick:  botNick,
		persist:  persist,
		settings: settings,
		queue:    NewActionQueue(),
		polls:    NewPollBook(),
		gate:     NewGate(clock),
	}
}

// Permit authorizes one inbound command through the trust and rate gate.
func (e *Engine) Permit(mask *irc.Mask) (TrustLevel, bool) {
	return e.gate.Permit(mask, e.TrustedMasks())
}

func (e *Engine) TrustedMasks() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	masks := make([]string, len(e.settings.TrustedMasks))
	copy(masks, e.settings.TrustedMasks)
	return masks
}

func (e *Engine) AutoVoiceEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.settings.AutoVoice
}

// ToggleAutoVoice flips auto-voicing and returns the new value. Re-enabling
// also resumes a queue paused by a bulk command.
func (e *Engine) ToggleAutoVoice() bool {
	e.mu.Lock()
	e.settings.AutoVoice = !e.settings.AutoVoice
	enabled := e.settings.AutoVoice
	e.mu.Unlock()

	if enabled {
		e.queue.Resume()
	}

	e.persistSettings()
	return enabled
}

func (e *Engine) WaitSeconds() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.settings.WaitSeconds
}

// SetWaitSeconds updates the voice cooldown and drops every queued entry,
// returning the dropped count. Already-queued members are not rescheduled.
func (e *Engine) SetWaitSeconds(seconds int) int {
	e.mu.Lock()
	e.settings.WaitSeconds = seconds
	e.mu.Unlock()

	dropped := e.queue.Clear()
	e.persistSettings()
	return dropped
}

func (e *Engine) VoteThreshold() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.settings.VoteThreshold
}

func (e *Engine) SetVoteThreshold(threshold int) {
	e.mu.Lock()
	e.settings.VoteThreshold = threshold
	e.mu.Unlock()

	e.persistSettings()
}

func (e *Engine) Channels() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	channels := make([]string, len(e.settings.Channels))
	copy(channels, e.settings.Channels)
	return channels
}

func (e *Engine) AddChannel(channel string) {
	e.mu.Lock()
	found := false
	for _, c := range e.settings.Channels {
		if strings.EqualFold(c, channel) {
			found = true
			break
		}
	}
	if !found {
		e.settings.Channels = append(e.settings.Channels, channel)
	}
	e.mu.Unlock()

	e.persistSettings()
}

func (e *Engine) RemoveChannel(channel string) {
	e.mu.Lock()
	channels := make([]string, 0, len(e.settings.Channels))
	for _, c := range e.settings.Channels {
		if !strings.EqualFold(c, channel) {
			channels = append(channels, c)
		}
	}
	e.settings.Channels = channels
	e.mu.Unlock()

	e.persistSettings()
}

// ScheduleVoice queues a voice grant for a new arrival, due after the
// configured wait time.
func (e *Engine) ScheduleVoice(nick, channel string) {
	due := e.clock.Now().Add(time.Duration(e.WaitSeconds()) * time.Second)
	e.queue.Schedule(nick, channel, due, OriginJoin)
}

// ScheduleRestore queues the voice restoration that ends a mute.
func (e *Engine) ScheduleRestore(nick, channel string, duration time.Duration) {
	e.queue.Schedule(nick, channel, e.clock.Now().Add(duration), OriginMute)
}

func (e *Engine) CancelPending(nick, channel string) {
	e.queue.Cancel(nick, channel)
}

func (e *Engine) CancelPendingEverywhere(nick string) {
	e.queue.CancelAll(nick)
}

// SweepDue removes and returns every entry due by now.
func (e *Engine) SweepDue() []*Action {
	return e.queue.Sweep(e.clock.Now())
}

func (e *Engine) PendingCount() int {
	return e.queue.Count()
}

func (e *Engine) ClearPending() int {
	return e.queue.Clear()
}

func (e *Engine) PauseSweep() {
	e.queue.Pause()
}

func (e *Engine) ResumeSweep() {
	e.queue.Resume()
}

func (e *Engine) IsMuted(nick, channel string) bool {
	return e.queue.IsMuted(nick, channel)
}

// CastVote processes one mute ballot against the target. When the vote
// resolves the poll, the restoration is scheduled here; the caller performs
// the transport side effects (devoice, notices). The poll deletion and the
// queue scheduling are two separate steps under two locks; the window between
// them is accepted.
func (e *Engine) CastVote(target, channel, voterID string) VoteResult {
	threshold := e.VoteThreshold()

	if strings.EqualFold(target, e.botNick) {
		return VoteResult{Status: VoteRejectedSelf, Threshold: threshold}
	}

	if e.queue.IsMuted(target, channel) {
		return VoteResult{Status: VoteRejectedMuted, Threshold: threshold}
	}

	outcome, count := e.polls.Cast(target, voterID, threshold, e.clock.Now())
	switch outcome {
	case VoteDuplicate:
		return VoteResult{Status: VoteRejectedDuplicate, Count: count, Threshold: threshold}
	case VoteThresholdReached:
		e.queue.Schedule(target, channel, e.clock.Now().Add(VoteMuteDuration), OriginMute)
		return VoteResult{Status: VoteResolved, Count: count, Threshold: threshold}
	}

	return VoteResult{Status: VoteAccepted, Count: count, Threshold: threshold}
}

func (e *Engine) persistSettings() {
	if e.persist == nil {
		return
	}

	e.mu.Lock()
	e.settings.UpdatedAt = e.clock.Now()
	snapshot := *e.settings
	e.mu.Unlock()

	if err := e.persist(&snapshot); err != nil {
		log.Logger().Errorf(nil, "error persisting moderation settings, %s", err)
	}
}
