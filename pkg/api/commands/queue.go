package commands

import (
	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/moderation"
)

const QueueCommandName = "queue"

type QueueCommand struct {
	*commandStub
}

func NewQueueCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine) Command {
	return &QueueCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
	}
}

func (c *QueueCommand) Name() string {
	return QueueCommandName
}

func (c *QueueCommand) Description() string {
	return "Reports the number of users awaiting a privilege change."
}

func (c *QueueCommand) Triggers() []string {
	return []string{"queue"}
}

func (c *QueueCommand) Usages() []string {
	return []string{"%s"}
}

func (c *QueueCommand) AllowedInPrivateMessages() bool {
	return true
}

func (c *QueueCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 0)
}

func (c *QueueCommand) Execute(e *irc.Event) {
	count := c.mod.PendingCount()

	label := "users"
	if count == 1 {
		label = "user"
	}

	c.Replyf(e, "%d %s in the queue.", count, label)
}
