package moderation

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"sentinel/pkg/api/irc"
)

type TrustLevel int

const (
	Untrusted TrustLevel = iota
	Trusted
)

const untrustedMinInterval = 3 * time.Second

// Gate classifies a command sender against the trusted-mask list and enforces
// a global minimum interval between untrusted commands. The interval is
// measured from the last accepted command of any trust level. The zero
// timestamp guarantees the first command is always accepted.
type Gate struct {
	clock clockwork.Clock

	mu           sync.Mutex
	lastAccepted time.Time
}

func NewGate(clock clockwork.Clock) *Gate {
	return &Gate{clock: clock}
}

// Permit returns the sender's trust level and whether the command may run.
// Rejected commands are dropped silently and do not advance the timestamp.
func (g *Gate) Permit(mask *irc.Mask, trustedMasks []string) (TrustLevel, bool) {
	level := Untrusted
	for _, pattern := range trustedMasks {
		if mask.Matches(pattern) {
			level = Trusted
			break
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	if level == Untrusted && now.Sub(g.lastAccepted) < untrustedMinInterval {
		return level, false
	}

	g.lastAccepted = now
	return level, true
}
