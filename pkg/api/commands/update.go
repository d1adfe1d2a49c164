package commands

import (
	"strings"
	"time"

	"sentinel/pkg/api/context"
	"sentinel/pkg/api/feed"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/api/style"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

const UpdateCommandName = "update"

// UpdateCommand appends an entry to the feed document's running update log.
type UpdateCommand struct {
	*commandStub
	feed feed.Service
}

func NewUpdateCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine, fs feed.Service) Command {
	return &UpdateCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
		feed:        fs,
	}
}

func (c *UpdateCommand) Name() string {
	return UpdateCommandName
}

func (c *UpdateCommand) Description() string {
	return "Appends an update entry to the feed."
}

func (c *UpdateCommand) Triggers() []string {
	return []string{"update"}
}

func (c *UpdateCommand) Usages() []string {
	return []string{"%s <category> <title> [description]"}
}

func (c *UpdateCommand) AllowedInPrivateMessages() bool {
	return true
}

func (c *UpdateCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 2)
}

func (c *UpdateCommand) Execute(e *irc.Event) {
	tokens := Tokens(e.Message())
	category := tokens[1]
	title := tokens[2]
	description := strings.Join(tokens[3:], " ")

	logger := log.Logger()
	logger.Infof(e, "⚡ %s [%s/%s] %s: %s", c.Name(), e.From, e.ReplyTarget(), category, title)

	doc, err := c.feed.Fetch()
	if err != nil {
		logger.Errorf(e, "error fetching feed document, %s", err)
		c.Replyf(e, "Unable to update the feed right now.")
		return
	}

	doc.AddUpdate(category, title, description, time.Now())

	if err = c.feed.Store(doc, e.From); err != nil {
		logger.Errorf(e, "error storing feed document, %s", err)
		c.Replyf(e, "Unable to update the feed right now.")
		return
	}

	c.Replyf(e, "Posted update %s.", style.Bold(title))
}
