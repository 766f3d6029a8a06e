// Package db constructs the document store client. The client is built
// here and passed to whoever needs it; nothing in this package keeps a
// module-level handle.
package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// InitMongo connects to the document store at uri and verifies the
// connection with a ping bounded by ctx. The caller owns the returned
// client and must Disconnect it on shutdown.
func InitMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}
