// Package mongo stores the catalog and the credentials in MongoDB using the
// collection layout of the myFlix database ("movies", "users").
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	moviesCollection = "movies"
	usersCollection  = "users"
)

type Storage struct {
	client *mongo.Client
	movies *mongo.Collection
	users  *mongo.Collection
}

func New(ctx context.Context, uri, database string) (*Storage, error) {
	const op = "mongo.New"
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	db := client.Database(database)
	return &Storage{
		client: client,
		movies: db.Collection(moviesCollection),
		users:  db.Collection(usersCollection),
	}, nil
}

// Migrate creates the unique username index the credential store relies on
// for duplicate detection, plus lookup indexes for the catalog.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "mongo.Storage.Migrate"
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "Username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err = s.movies.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "Title", Value: 1}}},
		{Keys: bson.D{{Key: "Genre.Name", Value: 1}}},
		{Keys: bson.D{{Key: "Director.Name", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.client.Disconnect(context.Background())
}
