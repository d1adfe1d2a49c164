package commands

import (
	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/moderation"
)

const PingCommandName = "ping"

type PingCommand struct {
	*commandStub
}

func NewPingCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine) Command {
	return &PingCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, false),
	}
}

func (c *PingCommand) Name() string {
	return PingCommandName
}

func (c *PingCommand) Description() string {
	return "Verifies the bot is alive."
}

func (c *PingCommand) Triggers() []string {
	return []string{"ping"}
}

func (c *PingCommand) Usages() []string {
	return []string{"%s"}
}

func (c *PingCommand) AllowedInPrivateMessages() bool {
	return true
}

func (c *PingCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 0)
}

func (c *PingCommand) Execute(e *irc.Event) {
	c.Replyf(e, "Pong!")
}
