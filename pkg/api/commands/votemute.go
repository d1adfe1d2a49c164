package commands

import (
	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/api/style"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

const VoteMuteCommandName = "votemute"

// VoteMuteCommand casts one ballot to mute the target. Votes are
// deduplicated by the voter's host, and a resolved poll mutes the target for
// 30 minutes.
type VoteMuteCommand struct {
	*commandStub
}

func NewVoteMuteCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine) Command {
	return &VoteMuteCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, false),
	}
}

func (c *VoteMuteCommand) Name() string {
	return VoteMuteCommandName
}

func (c *VoteMuteCommand) Description() string {
	return "Votes to mute the specified user for 30 minutes."
}

func (c *VoteMuteCommand) Triggers() []string {
	return []string{"votemute"}
}

func (c *VoteMuteCommand) Usages() []string {
	return []string{"%s <nick>"}
}

func (c *VoteMuteCommand) AllowedInPrivateMessages() bool {
	return false
}

func (c *VoteMuteCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 1)
}

func (c *VoteMuteCommand) Execute(e *irc.Event) {
	tokens := Tokens(e.Message())
	channel := e.ReplyTarget()
	nick := tokens[1]

	logger := log.Logger()
	logger.Infof(e, "⚡ %s [%s/%s] %s", c.Name(), e.From, channel, nick)

	if !c.ctx.Session().IsMember(channel, nick) {
		c.Replyf(e, "%s is not in %s.", style.Bold(nick), channel)
		return
	}

	result := c.mod.CastVote(nick, channel, e.Mask().Host)

	switch result.Status {
	case moderation.VoteRejectedSelf:
		c.Replyf(e, "Nice try.")
	case moderation.VoteRejectedMuted:
		c.Replyf(e, "%s is already muted.", style.Bold(nick))
	case moderation.VoteRejectedDuplicate:
		c.Replyf(e, "You have already voted to mute %s.", style.Bold(nick))
	case moderation.VoteAccepted:
		c.Replyf(e, "Vote recorded, %d of %d needed to mute %s.", result.Count, result.Threshold, style.Bold(nick))
	case moderation.VoteResolved:
		c.irc.Devoice(channel, nick)
		c.irc.SendNotice(nick, "You have been muted for 30 minutes by channel vote.")

		logger.Infof(e, "vote-muted %s in %s with %d votes", nick, channel, result.Count)
		c.Replyf(e, "Vote passed, %s is muted for 30 minutes.", style.Bold(nick))
	}
}
