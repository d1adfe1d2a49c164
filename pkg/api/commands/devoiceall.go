package commands

import (
	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

const DevoiceAllCommandName = "devoiceall"

type DevoiceAllCommand struct {
	*commandStub
}

func NewDevoiceAllCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine) Command {
	return &DevoiceAllCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
	}
}

func (c *DevoiceAllCommand) Name() string {
	return DevoiceAllCommandName
}

func (c *DevoiceAllCommand) Description() string {
	return "Devoices every member of the current channel."
}

func (c *DevoiceAllCommand) Triggers() []string {
	return []string{"devoiceall"}
}

func (c *DevoiceAllCommand) Usages() []string {
	return []string{"%s"}
}

func (c *DevoiceAllCommand) AllowedInPrivateMessages() bool {
	return false
}

func (c *DevoiceAllCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 0)
}

func (c *DevoiceAllCommand) Execute(e *irc.Event) {
	channel := e.ReplyTarget()

	log.Logger().Infof(e, "⚡ %s [%s/%s]", c.Name(), e.From, channel)

	c.mod.PauseSweep()
	c.mod.ClearPending()

	changeModeInBatches(c.irc, c.ctx.Session().Members(channel), channel, "-")
}
