package commands

import (
	"strconv"

	"sentinel/pkg/api/context"
	"sentinel/pkg/api/feed"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/api/style"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

const ItemCommandName = "item"

// ItemCommand sets the count of an inventory item in the feed document. A
// count of zero removes the item.
type ItemCommand struct {
	*commandStub
	feed feed.Service
}

func NewItemCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine, fs feed.Service) Command {
	return &ItemCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
		feed:        fs,
	}
}

func (c *ItemCommand) Name() string {
	return ItemCommandName
}

func (c *ItemCommand) Description() string {
	return "Sets the inventory count of the specified item."
}

func (c *ItemCommand) Triggers() []string {
	return []string{"item"}
}

func (c *ItemCommand) Usages() []string {
	return []string{"%s <name> <count>"}
}

func (c *ItemCommand) AllowedInPrivateMessages() bool {
	return true
}

func (c *ItemCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 2)
}

func (c *ItemCommand) Execute(e *irc.Event) {
	tokens := Tokens(e.Message())
	name := tokens[1]

	logger := log.Logger()
	logger.Infof(e, "⚡ %s [%s/%s] %s %s", c.Name(), e.From, e.ReplyTarget(), name, tokens[2])

	count, err := strconv.Atoi(tokens[2])
	if err != nil || count < 0 {
		c.Replyf(e, "Invalid count, must be a whole number of at least 0.")
		return
	}

	doc, err := c.feed.Fetch()
	if err != nil {
		logger.Errorf(e, "error fetching feed document, %s", err)
		c.Replyf(e, "Unable to update the feed right now.")
		return
	}

	doc.SetItem(name, count)

	if err = c.feed.Store(doc, e.From); err != nil {
		logger.Errorf(e, "error storing feed document, %s", err)
		c.Replyf(e, "Unable to update the feed right now.")
		return
	}

	if count == 0 {
		c.Replyf(e, "Removed %s from the inventory.", style.Bold(name))
		return
	}

	c.Replyf(e, "Set %s to %d.", style.Bold(name), count)
}
