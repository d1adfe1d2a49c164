package commands

import (
	"os"
	"time"

	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

const RestartCommandName = "restart"

// RestartCommand disconnects and exits. The process supervisor is expected
// to bring the bot back up.
type RestartCommand struct {
	*commandStub
}

func NewRestartCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine) Command {
	return &RestartCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
	}
}

func (c *RestartCommand) Name() string {
	return RestartCommandName
}

func (c *RestartCommand) Description() string {
	return "Disconnects from the server and restarts the bot."
}

func (c *RestartCommand) Triggers() []string {
	return []string{"restart"}
}

func (c *RestartCommand) Usages() []string {
	return []string{"%s"}
}

func (c *RestartCommand) AllowedInPrivateMessages() bool {
	return true
}

func (c *RestartCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 0)
}

func (c *RestartCommand) Execute(e *irc.Event) {
	log.Logger().Infof(e, "⚡ %s [%s/%s]", c.Name(), e.From, e.ReplyTarget())

	c.Replyf(e, "Restarting.")

	go func() {
		time.Sleep(1 * time.Second)
		c.irc.Disconnect()
		os.Exit(0)
	}()
}
