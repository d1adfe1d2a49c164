package commands

import (
	"strconv"

	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

const VoteLimitCommandName = "votelimit"

type VoteLimitCommand struct {
	*commandStub
}

func NewVoteLimitCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine) Command {
	return &VoteLimitCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
	}
}

func (c *VoteLimitCommand) Name() string {
	return VoteLimitCommandName
}

func (c *VoteLimitCommand) Description() string {
	return "Sets the number of votes required to mute a user."
}

func (c *VoteLimitCommand) Triggers() []string {
	return []string{"votelimit"}
}

func (c *VoteLimitCommand) Usages() []string {
	return []string{"%s <votes>"}
}

func (c *VoteLimitCommand) AllowedInPrivateMessages() bool {
	return false
}

func (c *VoteLimitCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValidQuiet(c, e, 1)
}

func (c *VoteLimitCommand) Execute(e *irc.Event) {
	tokens := Tokens(e.Message())

	threshold, err := strconv.Atoi(tokens[1])
	if err != nil || threshold < 1 {
		return
	}

	c.mod.SetVoteThreshold(threshold)

	log.Logger().Infof(e, "⚡ %s [%s/%s] %d", c.Name(), e.From, e.ReplyTarget(), threshold)
	c.Replyf(e, "Vote limit set to %d.", threshold)
}
