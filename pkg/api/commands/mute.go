package commands

import (
	"strconv"
	"time"

	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/api/style"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

const MuteCommandName = "mute"

// MuteCommand revokes a member's voice immediately and schedules its
// restoration through the pending-action queue.
type MuteCommand struct {
	*commandStub
}

func NewMuteCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine) Command {
	return &MuteCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
	}
}

func (c *MuteCommand) Name() string {
	return MuteCommandName
}

func (c *MuteCommand) Description() string {
	return "Mutes the specified user for the specified number of minutes."
}

func (c *MuteCommand) Triggers() []string {
	return []string{"mute"}
}

func (c *MuteCommand) Usages() []string {
	return []string{"%s <nick> <minutes>"}
}

func (c *MuteCommand) AllowedInPrivateMessages() bool {
	return false
}

func (c *MuteCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 2)
}

func (c *MuteCommand) Execute(e *irc.Event) {
	tokens := Tokens(e.Message())
	channel := e.ReplyTarget()
	nick := tokens[1]

	logger := log.Logger()
	logger.Infof(e, "⚡ %s [%s/%s] %s %s", c.Name(), e.From, channel, nick, tokens[2])

	minutes, err := strconv.Atoi(tokens[2])
	if err != nil || minutes < 1 {
		c.Replyf(e, "Invalid duration, mute duration must be a whole number of minutes of at least 1.")
		return
	}

	if !c.ctx.Session().IsMember(channel, nick) {
		c.Replyf(e, "%s is not in %s.", style.Bold(nick), channel)
		return
	}

	c.irc.Devoice(channel, nick)
	c.mod.ScheduleRestore(nick, channel, time.Duration(minutes)*time.Minute)

	logger.Infof(e, "muted %s in %s for %d minutes", nick, channel, minutes)
	c.Replyf(e, "Muted %s for %d minutes.", style.Bold(nick), minutes)
}
