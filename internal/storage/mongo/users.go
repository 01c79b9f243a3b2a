package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"myflix/proj/internal/domain/fields"
	"myflix/proj/internal/domain/models"
	"myflix/proj/internal/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type userDocument struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Username string        `bson:"Username"`
	Password string        `bson:"Password"`
	Email    string        `bson:"Email"`
	Birthday *time.Time    `bson:"Birthday,omitempty"`
	// Movie ids are ObjectIDs when they parse as such, plain strings otherwise.
	FavoriteMovies []any `bson:"FavoriteMovies"`
}

func (d *userDocument) toDomain() *models.User {
	user := &models.User{
		ID:               d.ID.Hex(),
		Username:         d.Username,
		PasswordHash:     d.Password,
		Email:            d.Email,
		FavoriteMovieIDs: make([]string, 0, len(d.FavoriteMovies)),
	}
	for _, id := range d.FavoriteMovies {
		switch v := id.(type) {
		case bson.ObjectID:
			user.FavoriteMovieIDs = append(user.FavoriteMovieIDs, v.Hex())
		case string:
			user.FavoriteMovieIDs = append(user.FavoriteMovieIDs, v)
		default:
			user.FavoriteMovieIDs = append(user.FavoriteMovieIDs, fmt.Sprint(v))
		}
	}
	if d.Birthday != nil {
		y, m, day := d.Birthday.Date()
		user.Birthday = fields.NewDate(y, m, day)
	}
	return user
}

func birthdayValue(d *fields.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

func movieRef(movieID string) any {
	if oid, err := bson.ObjectIDFromHex(movieID); err == nil {
		return oid
	}
	return movieID
}

func byUsername(username string) bson.D {
	return bson.D{{Key: "Username", Value: username}}
}

func (s *Storage) GetUser(ctx context.Context, username string) (*models.User, error) {
	var doc userDocument
	if err := s.users.FindOne(ctx, byUsername(username)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "Username", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(docs))
	for i := range docs {
		users = append(users, *docs[i].toDomain())
	}
	return users, nil
}

func (s *Storage) InsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	doc := userDocument{
		ID:             bson.NewObjectID(),
		Username:       user.Username,
		Password:       user.PasswordHash,
		Email:          user.Email,
		Birthday:       birthdayValue(user.Birthday),
		FavoriteMovies: []any{},
	}
	if _, err := s.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, storage.ErrConflict
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (s *Storage) findOneAndUpdate(ctx context.Context, username string, update bson.D) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDocument
	err := s.users.FindOneAndUpdate(ctx, byUsername(username), update, opts).Decode(&doc)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, storage.ErrNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, storage.ErrConflict
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (s *Storage) UpdateUser(ctx context.Context, username string, user *models.User) (*models.User, error) {
	return s.findOneAndUpdate(ctx, username, bson.D{{Key: "$set", Value: bson.D{
		{Key: "Username", Value: user.Username},
		{Key: "Password", Value: user.PasswordHash},
		{Key: "Email", Value: user.Email},
		{Key: "Birthday", Value: birthdayValue(user.Birthday)},
	}}})
}

func (s *Storage) DeleteUser(ctx context.Context, username string) error {
	res, err := s.users.DeleteOne(ctx, byUsername(username))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Storage) AddFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	return s.findOneAndUpdate(ctx, username, bson.D{
		{Key: "$push", Value: bson.D{{Key: "FavoriteMovies", Value: movieRef(movieID)}}},
	})
}

func (s *Storage) RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	return s.findOneAndUpdate(ctx, username, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "FavoriteMovies", Value: bson.D{
			{Key: "$in", Value: bson.A{movieRef(movieID), movieID}},
		}}}},
	})
}
