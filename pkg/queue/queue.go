package queue

import (
	"cloud.google.com/go/pubsub"
	"context"
	"fmt"
	"google.golang.org/api/option"

	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/models"
)

var instance Queue

// Queue publishes feed document snapshots upstream. Publishing is
// fire-and-forget; a mutating command never waits on it.
type Queue interface {
	PublishFeed(doc *models.FeedDocument, attribution string) error
	Close() error
}

func Get() Queue {
	if instance == nil {
		panic("queue is not initialized")
	}

	return instance
}

func Initialize(ctx context.Context, cfg *config.Config) (Queue, error) {
	if instance != nil {
		return instance, nil
	}

	client, err := pubsub.NewClient(ctx, cfg.GoogleCloud.ProjectID, option.WithCredentialsFile(cfg.GoogleCloud.ServiceAccountFilename))
	if err != nil {
		return nil, fmt.Errorf("error creating pubsub client, %s", err)
	}

	topic := client.Topic(cfg.Feed.Topic)
	if topic == nil {
		return nil, fmt.Errorf("invalid topic, %s", cfg.Feed.Topic)
	}

	instance = &queue{
		ctx:    ctx,
		cfg:    cfg,
		client: client,
		topic:  topic,
	}

	return instance, nil
}

type queue struct {
	ctx    context.Context
	cfg    *config.Config
	client *pubsub.Client
	topic  *pubsub.Topic
}

func (q *queue) Close() error {
	q.topic.Stop()
	return q.client.Close()
}

func (q *queue) PublishFeed(doc *models.FeedDocument, attribution string) error {
	logger := log.Logger()

	data, err := doc.Serialize()
	if err != nil {
		return fmt.Errorf("error serializing feed document, %s", err)
	}

	_ = q.topic.Publish(q.ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"attribution": attribution,
		},
	})

	logger.Debugf(nil, "published feed v%d (%s)", doc.Version, attribution)

	return nil
}
