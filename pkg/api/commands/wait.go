package commands

import (
	"strconv"

	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

const WaitCommandName = "wait"

// WaitCommand sets the voice cooldown and drops everyone currently queued.
// Queued members are not rescheduled under the new wait time.
type WaitCommand struct {
	*commandStub
}

func NewWaitCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine) Command {
	return &WaitCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
	}
}

func (c *WaitCommand) Name() string {
	return WaitCommandName
}

func (c *WaitCommand) Description() string {
	return "Sets the number of seconds a new arrival waits before being voiced."
}

func (c *WaitCommand) Triggers() []string {
	return []string{"wait"}
}

func (c *WaitCommand) Usages() []string {
	return []string{"%s <seconds>"}
}

func (c *WaitCommand) AllowedInPrivateMessages() bool {
	return false
}

func (c *WaitCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValidQuiet(c, e, 1)
}

func (c *WaitCommand) Execute(e *irc.Event) {
	tokens := Tokens(e.Message())

	seconds, err := strconv.Atoi(tokens[1])
	if err != nil || seconds < 0 {
		return
	}

	dropped := c.mod.SetWaitSeconds(seconds)

	log.Logger().Infof(e, "⚡ %s [%s/%s] %d seconds, dropped %d", c.Name(), e.From, e.ReplyTarget(), seconds, dropped)
	c.Replyf(e, "Wait time set to %d seconds. Dropped %d users from the queue.", seconds, dropped)
}
