package firestore

import (
	"cloud.google.com/go/firestore"
	"context"
	"fmt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func get[T any](ctx context.Context, client *firestore.Client, documentPath string) (*T, error) {
	dr := client.Doc(documentPath)
	if dr == nil {
		return nil, fmt.Errorf("invalid document path, %s", documentPath)
	}

	ds, err := dr.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting document, %s", err)
	}

	t := new(T)
	if err = ds.DataTo(t); err != nil {
		return nil, fmt.Errorf("error unmarshaling document, %s", err)
	}

	return t, nil
}

func set[T any](ctx context.Context, client *firestore.Client, documentPath string, t *T) error {
	dr := client.Doc(documentPath)
	if dr == nil {
		return fmt.Errorf("invalid document path, %s", documentPath)
	}

	if _, err := dr.Set(ctx, t); err != nil {
		return fmt.Errorf("error setting document, %s", err)
	}

	return nil
}
