package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ivlev/salesreel/internal/config"
	"github.com/ivlev/salesreel/internal/dataset"
)

// Mongo reads one document per record from a collection, lowest sales first.
// A connection is opened per Load; reloads are rare and user driven.
type Mongo struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

func NewMongo(uri, database, collection string, timeout time.Duration) *Mongo {
	return &Mongo{URI: uri, Database: database, Collection: collection, Timeout: timeout}
}

func (m *Mongo) Name() string { return config.ProviderMongo }

func (m *Mongo) Load(ctx context.Context) ([]dataset.SalesRecord, error) {
	if m.URI == "" {
		return nil, loadError(m.Name(), errors.New("empty mongo uri"))
	}
	if m.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Timeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.URI))
	if err != nil {
		return nil, loadError(m.Name(), fmt.Errorf("connect: %w", err))
	}
	defer client.Disconnect(context.Background())

	filter, opts := recordsQuery()
	cur, err := client.Database(m.Database).Collection(m.Collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, loadError(m.Name(), fmt.Errorf("find %s.%s: %w", m.Database, m.Collection, err))
	}
	var records []dataset.SalesRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, loadError(m.Name(), fmt.Errorf("decode: %w", err))
	}
	if err := dataset.ValidateAll(records); err != nil {
		return nil, loadError(m.Name(), err)
	}
	return records, nil
}

func recordsQuery() (bson.D, *options.FindOptions) {
	opts := options.Find().
		SetSort(bson.D{{Key: "naSales", Value: 1}}).
		SetProjection(bson.D{{Key: "_id", Value: 0}})
	return bson.D{}, opts
}
