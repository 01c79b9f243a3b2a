package mongo

import (
	"context"
	"errors"

	"myflix/proj/internal/domain/filters"
	"myflix/proj/internal/domain/models"
	"myflix/proj/internal/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type genreDocument struct {
	Name        string `bson:"Name"`
	Description string `bson:"Description"`
}

type directorDocument struct {
	Name string `bson:"Name"`
	Bio  string `bson:"Bio"`
}

type movieDocument struct {
	ID          bson.ObjectID    `bson:"_id,omitempty"`
	Title       string           `bson:"Title"`
	Description string           `bson:"Description"`
	Genre       genreDocument    `bson:"Genre"`
	Director    directorDocument `bson:"Director"`
	ImagePath   string           `bson:"ImagePath,omitempty"`
	Featured    bool             `bson:"Featured"`
}

func (d *movieDocument) toDomain() models.Movie {
	return models.Movie{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Genre:       models.Genre{Name: d.Genre.Name, Description: d.Genre.Description},
		Director:    models.Director{Name: d.Director.Name, Bio: d.Director.Bio},
		ImagePath:   d.ImagePath,
		Featured:    d.Featured,
	}
}

var movieSortFields = map[string]string{
	"id":       "_id",
	"title":    "Title",
	"featured": "Featured",
}

func (s *Storage) ListMovies(ctx context.Context, f filters.MovieFilters) ([]models.Movie, error) {
	filter := bson.D{}
	if f.Featured != nil {
		filter = append(filter, bson.E{Key: "Featured", Value: *f.Featured})
	}
	if f.Genre != "" {
		filter = append(filter, bson.E{Key: "Genre.Name", Value: f.Genre})
	}
	if f.Director != "" {
		filter = append(filter, bson.E{Key: "Director.Name", Value: f.Director})
	}
	sortDoc := bson.D{{Key: "_id", Value: 1}}
	if f.IsSorted() {
		direction := 1
		if f.SortDirection() == filters.DescSort {
			direction = -1
		}
		sortDoc = bson.D{{Key: movieSortFields[f.SortColumn()], Value: direction}, {Key: "_id", Value: 1}}
	}
	cursor, err := s.movies.Find(ctx, filter, options.Find().SetSort(sortDoc))
	if err != nil {
		return nil, err
	}
	var docs []movieDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	movies := make([]models.Movie, 0, len(docs))
	for i := range docs {
		movies = append(movies, docs[i].toDomain())
	}
	return movies, nil
}

func (s *Storage) findMovie(ctx context.Context, key, value string) (*models.Movie, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "Title", Value: 1}, {Key: "_id", Value: 1}})
	var doc movieDocument
	err := s.movies.FindOne(ctx, bson.D{{Key: key, Value: value}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	movie := doc.toDomain()
	return &movie, nil
}

func (s *Storage) GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return s.findMovie(ctx, "Title", title)
}

func (s *Storage) GetMovieByGenre(ctx context.Context, name string) (*models.Movie, error) {
	return s.findMovie(ctx, "Genre.Name", name)
}

func (s *Storage) GetMovieByDirector(ctx context.Context, name string) (*models.Movie, error) {
	return s.findMovie(ctx, "Director.Name", name)
}
