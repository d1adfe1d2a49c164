package commands

import (
	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

const PartCommandName = "part"

type PartCommand struct {
	*commandStub
}

func NewPartCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine) Command {
	return &PartCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
	}
}

func (c *PartCommand) Name() string {
	return PartCommandName
}

func (c *PartCommand) Description() string {
	return "Leaves the current channel and removes it from the channel list."
}

func (c *PartCommand) Triggers() []string {
	return []string{"part"}
}

func (c *PartCommand) Usages() []string {
	return []string{"%s"}
}

func (c *PartCommand) AllowedInPrivateMessages() bool {
	return false
}

func (c *PartCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 0)
}

func (c *PartCommand) Execute(e *irc.Event) {
	channel := e.ReplyTarget()

	log.Logger().Infof(e, "⚡ %s [%s/%s]", c.Name(), e.From, channel)

	c.irc.Part(channel)
	c.mod.RemoveChannel(channel)
	c.ctx.Session().ClearChannel(channel)
}
