package moderation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollBookCastRecordsVotes(t *testing.T) {
	pb := NewPollBook()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	outcome, count := pb.Cast("troll", "host-a", 3, now)
	assert.Equal(t, VoteRecorded, outcome)
	assert.Equal(t, 1, count)

	outcome, count = pb.Cast("troll", "host-b", 3, now)
	assert.Equal(t, VoteRecorded, outcome)
	assert.Equal(t, 2, count)
}

func TestPollBookCastDeduplicatesByHost(t *testing.T) {
	pb := NewPollBook()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	pb.Cast("troll", "host-a", 3, now)

	outcome, count := pb.Cast("troll", "HOST-A", 3, now.Add(time.Minute))
	assert.Equal(t, VoteDuplicate, outcome)
	assert.Equal(t, 1, count)
}

func TestPollBookCastThresholdDeletesPoll(t *testing.T) {
	pb := NewPollBook()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	pb.Cast("troll", "host-a", 2, now)

	outcome, count := pb.Cast("troll", "host-b", 2, now)
	assert.Equal(t, VoteThresholdReached, outcome)
	assert.Equal(t, 2, count)
	assert.Nil(t, pb.Open("troll"))

	outcome, count = pb.Cast("troll", "host-a", 2, now.Add(time.Minute))
	assert.Equal(t, VoteRecorded, outcome)
	assert.Equal(t, 1, count, "a resolved poll should not leak votes into the next one")
}

func TestPollBookCastExpiryResetsCount(t *testing.T) {
	pb := NewPollBook()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	pb.Cast("troll", "host-a", 3, now)
	pb.Cast("troll", "host-b", 3, now.Add(time.Minute))

	outcome, count := pb.Cast("troll", "host-c", 3, now.Add(time.Minute).Add(pollWindow))
	assert.Equal(t, VoteRecorded, outcome)
	assert.Equal(t, 1, count, "a vote at the expiry instant starts a fresh count")
}

func TestPollBookCastExpiryIsRolling(t *testing.T) {
	pb := NewPollBook()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	pb.Cast("troll", "host-a", 3, now)
	pb.Cast("troll", "host-b", 3, now.Add(9*time.Minute))

	// 9 minutes after the second vote, 18 after the first. The window rolls
	// from the most recent vote, so the count survives.
	outcome, count := pb.Cast("troll", "host-c", 4, now.Add(18*time.Minute))
	assert.Equal(t, VoteRecorded, outcome)
	assert.Equal(t, 3, count)
}

func TestPollBookCastExpiredVoterMayVoteAgain(t *testing.T) {
	pb := NewPollBook()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	pb.Cast("troll", "host-a", 3, now)

	outcome, count := pb.Cast("troll", "host-a", 3, now.Add(pollWindow+time.Second))
	assert.Equal(t, VoteRecorded, outcome)
	assert.Equal(t, 1, count)
}

func TestPollBookTargetIsCaseInsensitive(t *testing.T) {
	pb := NewPollBook()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	pb.Cast("Troll", "host-a", 3, now)

	outcome, count := pb.Cast("troll", "host-b", 3, now)
	assert.Equal(t, VoteRecorded, outcome)
	assert.Equal(t, 2, count)

	require.NotNil(t, pb.Open("TROLL"))
}
