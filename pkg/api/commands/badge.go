package commands

import (
	"time"

	"sentinel/pkg/api/context"
	"sentinel/pkg/api/feed"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/api/style"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

const BadgeCommandName = "badge"

// BadgeCommand records a newly earned badge in the feed document.
type BadgeCommand struct {
	*commandStub
	feed feed.Service
}

func NewBadgeCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine, fs feed.Service) Command {
	return &BadgeCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
		feed:        fs,
	}
}

func (c *BadgeCommand) Name() string {
	return BadgeCommandName
}

func (c *BadgeCommand) Description() string {
	return "Records a newly earned badge."
}

func (c *BadgeCommand) Triggers() []string {
	return []string{"badge"}
}

func (c *BadgeCommand) Usages() []string {
	return []string{"%s <name>"}
}

func (c *BadgeCommand) AllowedInPrivateMessages() bool {
	return true
}

func (c *BadgeCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 1)
}

func (c *BadgeCommand) Execute(e *irc.Event) {
	tokens := Tokens(e.Message())
	name := tokens[1]

	logger := log.Logger()
	logger.Infof(e, "⚡ %s [%s/%s] %s", c.Name(), e.From, e.ReplyTarget(), name)

	doc, err := c.feed.Fetch()
	if err != nil {
		logger.Errorf(e, "error fetching feed document, %s", err)
		c.Replyf(e, "Unable to update the feed right now.")
		return
	}

	if !doc.AddBadge(name) {
		c.Replyf(e, "The %s badge has already been earned.", style.Bold(name))
		return
	}

	doc.AddUpdate("badge", "Badge earned", name, time.Now())

	if err = c.feed.Store(doc, e.From); err != nil {
		logger.Errorf(e, "error storing feed document, %s", err)
		c.Replyf(e, "Unable to update the feed right now.")
		return
	}

	c.Replyf(e, "Recorded the %s badge.", style.Bold(name))
}
