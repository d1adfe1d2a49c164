package feed

import (
	"sentinel/pkg/firestore"
	"sentinel/pkg/log"
	"sentinel/pkg/models"
	"sentinel/pkg/queue"
)

// Service is the feed-document collaborator: fetch the latest document,
// store a mutated one. Storing publishes the new snapshot upstream
// asynchronously so command replies never wait on it.
type Service interface {
	Fetch() (*models.FeedDocument, error)
	Store(doc *models.FeedDocument, attribution string) error
}

func NewService() Service {
	return &service{}
}

type service struct{}

func (s *service) Fetch() (*models.FeedDocument, error) {
	return firestore.Get().FeedDocument()
}

func (s *service) Store(doc *models.FeedDocument, attribution string) error {
	doc.Version++

	if err := firestore.Get().SaveFeedDocument(doc, attribution); err != nil {
		return err
	}

	go func() {
		if err := queue.Get().PublishFeed(doc, attribution); err != nil {
			log.Logger().Errorf(nil, "error publishing feed document, %s", err)
		}
	}()

	return nil
}
