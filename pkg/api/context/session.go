package context

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Session tracks process-local state that is rebuilt on every connection:
// uptime and the channel membership roster. The roster is fed from JOIN,
// PART, QUIT, KICK and NAMES transport events. Nick changes are not
// tracked; a rename looks like a new member.
type Session struct {
	StartedAt time.Time

	mu      sync.Mutex
	members map[string]map[string]string
}

func NewSession() *Session {
	return &Session{
		StartedAt: time.Now(),
		members:   make(map[string]map[string]string),
	}
}

func (s *Session) AddMember(channel, nick string) {
	nick = strings.TrimLeft(nick, "@%+")
	if len(nick) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch := strings.ToLower(channel)
	if s.members[ch] == nil {
		s.members[ch] = make(map[string]string)
	}
	s.members[ch][strings.ToLower(nick)] = nick
}

func (s *Session) RemoveMember(channel, nick string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.members[strings.ToLower(channel)], strings.ToLower(nick))
}

// RemoveMemberEverywhere handles QUIT, which carries no channel.
func (s *Session) RemoveMemberEverywhere(nick string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	channels := make([]string, 0)
	for ch, nicks := range s.members {
		if _, ok := nicks[strings.ToLower(nick)]; ok {
			delete(nicks, strings.ToLower(nick))
			channels = append(channels, ch)
		}
	}
	return channels
}

func (s *Session) IsMember(channel, nick string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.members[strings.ToLower(channel)][strings.ToLower(nick)]
	return ok
}

func (s *Session) Members(channel string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	nicks := make([]string, 0, len(s.members[strings.ToLower(channel)]))
	for _, nick := range s.members[strings.ToLower(channel)] {
		nicks = append(nicks, nick)
	}
	sort.Strings(nicks)
	return nicks
}

func (s *Session) ClearChannel(channel string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.members, strings.ToLower(channel))
}
