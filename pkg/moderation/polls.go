package moderation

import (
	"strings"
	"sync"
	"time"
)

const pollWindow = 10 * time.Minute

type VoteOutcome int

const (
	VoteDuplicate VoteOutcome = iota
	VoteRecorded
	VoteThresholdReached
)

// Poll is an open ballot to mute one target. Voters are deduplicated by
// their network host identifier, not by nickname.
type Poll struct {
	Target    string
	Count     int
	ExpiresAt time.Time
	voters    map[string]bool
}

// PollBook holds at most one open poll per target. Polls are never deleted on
// expiry alone; an expired poll is reset by the next vote and removed only
// when it resolves.
type PollBook struct {
	mu    sync.Mutex
	polls map[string]*Poll
}

func NewPollBook() *PollBook {
	return &PollBook{
		polls: make(map[string]*Poll),
	}
}

// Cast records a vote against the target. A vote landing exactly at the
// expiry instant counts as expired: the stale count is discarded before the
// vote is applied. Reaching the threshold deletes the poll, so a later vote
// starts fresh.
func (pb *PollBook) Cast(target, voterID string, threshold int, now time.Time) (VoteOutcome, int) {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	key := strings.ToLower(target)
	voter := strings.ToLower(voterID)

	poll := pb.polls[key]
	if poll == nil {
		poll = &Poll{Target: target, voters: make(map[string]bool)}
		pb.polls[key] = poll
	} else if !now.Before(poll.ExpiresAt) {
		poll.Count = 0
		poll.voters = make(map[string]bool)
	}

	if poll.voters[voter] {
		return VoteDuplicate, poll.Count
	}

	poll.voters[voter] = true
	poll.Count++
	poll.ExpiresAt = now.Add(pollWindow)

	if poll.Count >= threshold {
		delete(pb.polls, key)
		return VoteThresholdReached, poll.Count
	}

	return VoteRecorded, poll.Count
}

// Open returns the open poll for the target, or nil. Expired polls are still
// returned; they are superseded on the next vote.
func (pb *PollBook) Open(target string) *Poll {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	return pb.polls[strings.ToLower(target)]
}
