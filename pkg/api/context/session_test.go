package context

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionAddMemberStripsStatusPrefixes(t *testing.T) {
	s := NewSession()

	s.AddMember("#lobby", "@alice")
	s.AddMember("#lobby", "+bob")
	s.AddMember("#lobby", "%carol")

	assert.True(t, s.IsMember("#lobby", "alice"))
	assert.True(t, s.IsMember("#lobby", "bob"))
	assert.True(t, s.IsMember("#lobby", "carol"))
}

func TestSessionMembershipIsCaseInsensitive(t *testing.T) {
	s := NewSession()

	s.AddMember("#Lobby", "Alice")

	assert.True(t, s.IsMember("#lobby", "alice"))
	assert.True(t, s.IsMember("#LOBBY", "ALICE"))

	s.RemoveMember("#lobby", "ALICE")
	assert.False(t, s.IsMember("#Lobby", "Alice"))
}

func TestSessionMembersSorted(t *testing.T) {
	s := NewSession()

	s.AddMember("#lobby", "carol")
	s.AddMember("#lobby", "alice")
	s.AddMember("#lobby", "bob")

	assert.Equal(t, []string{"alice", "bob", "carol"}, s.Members("#lobby"))
	assert.Empty(t, s.Members("#ops"))
}

func TestSessionRemoveMemberEverywhere(t *testing.T) {
	s := NewSession()

	s.AddMember("#lobby", "alice")
	s.AddMember("#ops", "alice")
	s.AddMember("#lobby", "bob")

	channels := s.RemoveMemberEverywhere("Alice")
	assert.ElementsMatch(t, []string{"#lobby", "#ops"}, channels)
	assert.False(t, s.IsMember("#lobby", "alice"))
	assert.True(t, s.IsMember("#lobby", "bob"))
}

func TestSessionClearChannel(t *testing.T) {
	s := NewSession()

	s.AddMember("#lobby", "alice")
	s.ClearChannel("#Lobby")

	assert.False(t, s.IsMember("#lobby", "alice"))
	assert.Empty(t, s.Members("#lobby"))
}
