package events

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/models"
	"sentinel/pkg/moderation"
)

type fakeIRC struct {
	mu       sync.Mutex
	messages []string
	notices  []string
	modes    []string
	joined   []string
	parted   []string
	opsAsked []string
}

func (f *fakeIRC) Connect(cfg *config.Config, onReady func()) error { return nil }
func (f *fakeIRC) Listen(ech chan *irc.Event)                       {}
func (f *fakeIRC) Disconnect()                                      {}

func (f *fakeIRC) Join(channel string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.joined = append(f.joined, channel)
}

func (f *fakeIRC) Part(channel string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.parted = append(f.parted, channel)
}

func (f *fakeIRC) SendMessage(target, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, fmt.Sprintf("%s %s", target, message))
}

func (f *fakeIRC) SendMessages(target string, messages []string) {
	for _, m := range messages {
		f.SendMessage(target, m)
	}
}

func (f *fakeIRC) SendNotice(nick, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, fmt.Sprintf("%s %s", nick, message))
}

func (f *fakeIRC) Mode(channel string, modes ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modes = append(f.modes, fmt.Sprintf("%s %v", channel, modes))
}

func (f *fakeIRC) Voice(channel, nick string) {
	f.Mode(channel, "+v", nick)
}

func (f *fakeIRC) Devoice(channel, nick string) {
	f.Mode(channel, "-v", nick)
}

func (f *fakeIRC) RequestOp(channel, nick string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opsAsked = append(f.opsAsked, fmt.Sprintf("%s %s", channel, nick))
}

func testConfig() *config.Config {
	return &config.Config{
		IRC: config.IRCConfig{
			Nick:     "sentinel",
			ChanServ: config.ChanServConfig{Recipient: "ChanServ", OpCommand: "OP %s %s"},
			Channels: []string{"#lobby"},
		},
		Commands: config.CommandsConfig{Prefix: "!"},
	}
}

type fixture struct {
	handler Handler
	ctx     context.Context
	irc     *fakeIRC
	mod     *moderation.Engine
	clock   clockwork.FakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log.InitializeConsoleLogger()

	cfg := testConfig()
	ctx := context.NewContext()
	clock := clockwork.NewFakeClock()
	settings := models.NewModerationSettings(20, 3, []string{"op!*@services.example.net"}, cfg.IRC.Channels, true)
	mod := moderation.NewEngine(clock, cfg.IRC.Nick, settings, nil)
	fake := &fakeIRC{}

	return &fixture{
		handler: NewHandler(ctx, cfg, fake, mod, nil),
		ctx:     ctx,
		irc:     fake,
		mod:     mod,
		clock:   clock,
	}
}

func channelMessage(from, channel, message string) *irc.Event {
	return &irc.Event{
		Code:      irc.CodePrivateMessage,
		From:      from,
		Source:    fmt.Sprintf("%s!user@%s.example.net", from, from),
		Arguments: []string{channel, message},
	}
}

func trustedMessage(channel, message string) *irc.Event {
	return &irc.Event{
		Code:      irc.CodePrivateMessage,
		From:      "op",
		Source:    "op!op@services.example.net",
		Arguments: []string{channel, message},
	}
}

func TestHandleMessageDispatchesCommand(t *testing.T) {
	f := newFixture(t)

	f.handler.Handle(channelMessage("alice", "#lobby", "!ping"))

	require.Len(t, f.irc.messages, 1)
	assert.Equal(t, "#lobby alice: Pong!", f.irc.messages[0])
}

func TestHandleMessageIgnoresUnprefixedChatter(t *testing.T) {
	f := newFixture(t)

	f.handler.Handle(channelMessage("alice", "#lobby", "ping"))
	f.handler.Handle(channelMessage("alice", "#lobby", "hello there"))

	assert.Empty(t, f.irc.messages)
}

func TestHandleMessageUnknownCommandSilentlyIgnored(t *testing.T) {
	f := newFixture(t)

	f.handler.Handle(channelMessage("alice", "#lobby", "!frobnicate"))

	assert.Empty(t, f.irc.messages)
}

func TestHandleMessageUnknownCommandConsumesRateWindow(t *testing.T) {
	f := newFixture(t)

	f.handler.Handle(channelMessage("alice", "#lobby", "!frobnicate"))
	f.clock.Advance(time.Second)
	f.handler.Handle(channelMessage("alice", "#lobby", "!ping"))

	assert.Empty(t, f.irc.messages, "second command inside the rate window is dropped")

	f.clock.Advance(3 * time.Second)
	f.handler.Handle(channelMessage("alice", "#lobby", "!ping"))
	assert.Len(t, f.irc.messages, 1)
}

func TestHandleMessageUnauthorizedTrustedCommandIgnored(t *testing.T) {
	f := newFixture(t)
	f.ctx.Session().AddMember("#lobby", "troll")

	f.handler.Handle(channelMessage("alice", "#lobby", "!mute troll 5"))

	assert.Empty(t, f.irc.messages)
	assert.Empty(t, f.irc.modes)
	assert.False(t, f.mod.IsMuted("troll", "#lobby"))
}

func TestHandleMessageTrustedCommandExecutes(t *testing.T) {
	f := newFixture(t)
	f.ctx.Session().AddMember("#lobby", "troll")

	f.handler.Handle(trustedMessage("#lobby", "!mute troll 5"))

	require.Len(t, f.irc.modes, 1)
	assert.Equal(t, "#lobby [-v troll]", f.irc.modes[0])
	assert.True(t, f.mod.IsMuted("troll", "#lobby"))
}

func TestHandleJoinSchedulesVoice(t *testing.T) {
	f := newFixture(t)

	f.handler.Handle(&irc.Event{
		Code:      irc.CodeJoin,
		From:      "alice",
		Source:    "alice!user@host.example.net",
		Arguments: []string{"#lobby"},
	})

	assert.True(t, f.ctx.Session().IsMember("#lobby", "alice"))
	assert.Equal(t, 1, f.mod.PendingCount())

	f.clock.Advance(20 * time.Second)
	due := f.mod.SweepDue()
	require.Len(t, due, 1)
	assert.Equal(t, "alice", due[0].Nick)
}

func TestHandleJoinWithAutoVoiceDisabled(t *testing.T) {
	f := newFixture(t)
	f.mod.ToggleAutoVoice()

	f.handler.Handle(&irc.Event{
		Code:      irc.CodeJoin,
		From:      "alice",
		Source:    "alice!user@host.example.net",
		Arguments: []string{"#lobby"},
	})

	assert.True(t, f.ctx.Session().IsMember("#lobby", "alice"))
	assert.Equal(t, 0, f.mod.PendingCount())
}

func TestHandlePartCancelsPending(t *testing.T) {
	f := newFixture(t)
	f.ctx.Session().AddMember("#lobby", "alice")
	f.mod.ScheduleVoice("alice", "#lobby")

	f.handler.Handle(&irc.Event{
		Code:      irc.CodePart,
		From:      "alice",
		Source:    "alice!user@host.example.net",
		Arguments: []string{"#lobby"},
	})

	assert.False(t, f.ctx.Session().IsMember("#lobby", "alice"))
	assert.Equal(t, 0, f.mod.PendingCount())
}

func TestHandleQuitCancelsPendingEverywhere(t *testing.T) {
	f := newFixture(t)
	f.ctx.Session().AddMember("#lobby", "alice")
	f.ctx.Session().AddMember("#ops", "alice")
	f.mod.ScheduleVoice("alice", "#lobby")
	f.mod.ScheduleVoice("alice", "#ops")

	f.handler.Handle(&irc.Event{
		Code:   irc.CodeQuit,
		From:   "alice",
		Source: "alice!user@host.example.net",
	})

	assert.False(t, f.ctx.Session().IsMember("#lobby", "alice"))
	assert.False(t, f.ctx.Session().IsMember("#ops", "alice"))
	assert.Equal(t, 0, f.mod.PendingCount())
}

func TestHandleKickOfMemberCancelsPending(t *testing.T) {
	f := newFixture(t)
	f.ctx.Session().AddMember("#lobby", "alice")
	f.mod.ScheduleVoice("alice", "#lobby")

	f.handler.Handle(&irc.Event{
		Code:      irc.CodeKick,
		From:      "op",
		Arguments: []string{"#lobby", "alice", "bye"},
	})

	assert.False(t, f.ctx.Session().IsMember("#lobby", "alice"))
	assert.Equal(t, 0, f.mod.PendingCount())
	assert.Empty(t, f.irc.joined)
}

func TestHandleKickOfBotRejoins(t *testing.T) {
	f := newFixture(t)
	f.ctx.Session().AddMember("#lobby", "alice")

	f.handler.Handle(&irc.Event{
		Code:      irc.CodeKick,
		From:      "op",
		Arguments: []string{"#lobby", "sentinel", "bye"},
	})

	assert.Equal(t, []string{"#lobby"}, f.irc.joined)
	assert.False(t, f.ctx.Session().IsMember("#lobby", "alice"), "roster is rebuilt from NAMES on rejoin")
}

func TestHandleModeDeopRequestsOp(t *testing.T) {
	f := newFixture(t)

	f.handler.Handle(&irc.Event{
		Code:      irc.CodeMode,
		From:      "op",
		Arguments: []string{"#lobby", "-o", "sentinel"},
	})

	assert.Equal(t, []string{"#lobby sentinel"}, f.irc.opsAsked)
}

func TestHandleModeOtherChangesIgnored(t *testing.T) {
	f := newFixture(t)

	f.handler.Handle(&irc.Event{
		Code:      irc.CodeMode,
		From:      "op",
		Arguments: []string{"#lobby", "+o", "sentinel"},
	})
	f.handler.Handle(&irc.Event{
		Code:      irc.CodeMode,
		From:      "op",
		Arguments: []string{"#lobby", "-o", "alice"},
	})

	assert.Empty(t, f.irc.opsAsked)
}

func TestHandleNamesReplySeedsRoster(t *testing.T) {
	f := newFixture(t)

	f.handler.Handle(&irc.Event{
		Code:      irc.CodeNamesReply,
		From:      "irc.example.net",
		Arguments: []string{"sentinel", "=", "#lobby", "@op +alice bob sentinel"},
	})

	assert.True(t, f.ctx.Session().IsMember("#lobby", "op"))
	assert.True(t, f.ctx.Session().IsMember("#lobby", "alice"))
	assert.True(t, f.ctx.Session().IsMember("#lobby", "bob"))
	assert.False(t, f.ctx.Session().IsMember("#lobby", "sentinel"), "the bot is not part of its own roster")
}

func TestVoteMuteFlowThroughHandler(t *testing.T) {
	f := newFixture(t)
	f.ctx.Session().AddMember("#lobby", "troll")

	voters := []string{"alice", "bob", "carol"}
	for i, voter := range voters {
		f.clock.Advance(5 * time.Second)
		f.handler.Handle(channelMessage(voter, "#lobby", "!votemute troll"))

		if i < len(voters)-1 {
			assert.False(t, f.mod.IsMuted("troll", "#lobby"))
		}
	}

	assert.True(t, f.mod.IsMuted("troll", "#lobby"))
	assert.Contains(t, f.irc.modes, "#lobby [-v troll]")
	require.Len(t, f.irc.notices, 1)
	assert.Equal(t, "troll You have been muted for 30 minutes by channel vote.", f.irc.notices[0])
}
