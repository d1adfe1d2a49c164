package moderation

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"sentinel/pkg/api/irc"
)

var trustedMasks = []string{"op!*@services.example.net", "admin!*@*"}

func untrustedMask(nick string) *irc.Mask {
	return &irc.Mask{Nick: nick, UserID: "user", Host: "host.example.net"}
}

func TestGateFirstCommandAlwaysAccepted(t *testing.T) {
	g := NewGate(clockwork.NewFakeClock())

	level, ok := g.Permit(untrustedMask("guest"), trustedMasks)
	assert.Equal(t, Untrusted, level)
	assert.True(t, ok)
}

func TestGateUntrustedRateLimited(t *testing.T) {
	clock := clockwork.NewFakeClock()
	g := NewGate(clock)

	_, ok := g.Permit(untrustedMask("guest"), trustedMasks)
	assert.True(t, ok)

	clock.Advance(untrustedMinInterval - time.Millisecond)
	_, ok = g.Permit(untrustedMask("other"), trustedMasks)
	assert.False(t, ok, "the interval is global, not per sender")

	clock.Advance(time.Millisecond)
	_, ok = g.Permit(untrustedMask("other"), trustedMasks)
	assert.True(t, ok)
}

func TestGateTrustedBypassesRateLimit(t *testing.T) {
	clock := clockwork.NewFakeClock()
	g := NewGate(clock)

	_, ok := g.Permit(untrustedMask("guest"), trustedMasks)
	assert.True(t, ok)

	level, ok := g.Permit(&irc.Mask{Nick: "op", UserID: "op", Host: "services.example.net"}, trustedMasks)
	assert.Equal(t, Trusted, level)
	assert.True(t, ok)
}

func TestGateTrustedCommandAdvancesWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	g := NewGate(clock)

	_, ok := g.Permit(untrustedMask("guest"), trustedMasks)
	assert.True(t, ok)

	clock.Advance(2 * time.Second)
	_, ok = g.Permit(&irc.Mask{Nick: "admin", UserID: "a", Host: "anywhere"}, trustedMasks)
	assert.True(t, ok)

	// 2.5s after the last untrusted command but only 500ms after the
	// trusted one. Accepted commands of any trust level reset the window.
	clock.Advance(500 * time.Millisecond)
	_, ok = g.Permit(untrustedMask("guest"), trustedMasks)
	assert.False(t, ok)
}

func TestGateRejectionDoesNotAdvanceWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	g := NewGate(clock)

	_, ok := g.Permit(untrustedMask("guest"), trustedMasks)
	assert.True(t, ok)

	clock.Advance(2 * time.Second)
	_, ok = g.Permit(untrustedMask("guest"), trustedMasks)
	assert.False(t, ok)

	clock.Advance(time.Second)
	_, ok = g.Permit(untrustedMask("guest"), trustedMasks)
	assert.True(t, ok, "3s after the last accepted command")
}

func TestGateTrustMatchingUsesFullMask(t *testing.T) {
	g := NewGate(clockwork.NewFakeClock())

	level, _ := g.Permit(&irc.Mask{Nick: "op", UserID: "x", Host: "elsewhere.example.net"}, trustedMasks)
	assert.Equal(t, Untrusted, level, "nick alone should not grant trust")
}
