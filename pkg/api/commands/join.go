package commands

import (
	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

const JoinCommandName = "join"

type JoinCommand struct {
	*commandStub
}

func NewJoinCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine) Command {
	return &JoinCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
	}
}

func (c *JoinCommand) Name() string {
	return JoinCommandName
}

func (c *JoinCommand) Description() string {
	return "Joins the specified channel and adds it to the channel list."
}

func (c *JoinCommand) Triggers() []string {
	return []string{"join"}
}

func (c *JoinCommand) Usages() []string {
	return []string{"%s <channel>"}
}

func (c *JoinCommand) AllowedInPrivateMessages() bool {
	return true
}

func (c *JoinCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 1)
}

func (c *JoinCommand) Execute(e *irc.Event) {
	tokens := Tokens(e.Message())
	channel := tokens[1]

	if !irc.IsChannel(channel) {
		c.Replyf(e, "%s is not a channel.", channel)
		return
	}

	log.Logger().Infof(e, "⚡ %s [%s/%s] %s", c.Name(), e.From, e.ReplyTarget(), channel)

	c.irc.Join(channel)
	c.mod.AddChannel(channel)
}
