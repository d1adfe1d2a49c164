package firestore

import (
	"fmt"
	"time"

	"sentinel/pkg/models"
)

const pathFeed = "feed"

func (fs *Firestore) feedPath() string {
	return fmt.Sprintf("%s/%s/%s/current", pathModerators, fs.cfg.IRC.Nick, pathFeed)
}

func (fs *Firestore) feedRevisionPath(version int) string {
	return fmt.Sprintf("%s/%s/%s/v%d", pathModerators, fs.cfg.IRC.Nick, pathFeed, version)
}

// FeedDocument returns the latest feed document, or a fresh one when none has
// been stored yet.
func (fs *Firestore) FeedDocument() (*models.FeedDocument, error) {
	doc, err := get[models.FeedDocument](fs.ctx, fs.client, fs.feedPath())
	if err != nil {
		return nil, err
	}

	if doc == nil {
		return models.NewFeedDocument(), nil
	}

	return doc, nil
}

type feedRevision struct {
	Document    *models.FeedDocument `firestore:"document"`
	Attribution string               `firestore:"attribution"`
	StoredAt    time.Time            `firestore:"stored_at"`
}

// SaveFeedDocument writes the document as the current version and keeps an
// attributed revision per version number.
func (fs *Firestore) SaveFeedDocument(doc *models.FeedDocument, attribution string) error {
	if err := set(fs.ctx, fs.client, fs.feedPath(), doc); err != nil {
		return err
	}

	return set(fs.ctx, fs.client, fs.feedRevisionPath(doc.Version), &feedRevision{
		Document:    doc,
		Attribution: attribution,
		StoredAt:    time.Now(),
	})
}
