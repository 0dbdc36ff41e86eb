package store

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thinkful-ei20/noteful-app-v3-cam/models"
)

// NoteFilter narrows a note listing. SearchTerm is matched case-insensitively
// against title and content; FolderID, when set, must match exactly.
type NoteFilter struct {
	SearchTerm string
	FolderID   *primitive.ObjectID
}

// NoteUpdate carries the caller-supplied fields of a partial update. Nil
// fields are left untouched.
type NoteUpdate struct {
	Title    *string
	Content  *string
	FolderID *primitive.ObjectID
}

type NoteStore interface {
	List(ctx context.Context, filter NoteFilter) ([]models.Note, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Note, error)
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	Update(ctx context.Context, id primitive.ObjectID, update NoteUpdate) (*models.Note, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoNoteStore struct {
	collection *mongo.Collection
}

func NewNoteStore(collection *mongo.Collection) NoteStore {
	return &mongoNoteStore{collection: collection}
}

// noteListQuery builds the find filter. The search term is quoted so it is
// matched as a literal substring, not a regular expression.
func noteListQuery(filter NoteFilter) bson.M {
	query := bson.M{}
	if filter.SearchTerm != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.SearchTerm), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": re}},
			bson.M{"content": bson.M{"$regex": re}},
		}
	}
	if filter.FolderID != nil {
		query["folderId"] = *filter.FolderID
	}
	return query
}

func (s *mongoNoteStore) List(ctx context.Context, filter NoteFilter) ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, noteListQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []models.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *mongoNoteStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Note, error) {
	var note models.Note
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *mongoNoteStore) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	now := time.Now().UTC()
	note.ID = primitive.NewObjectID()
	note.CreatedAt = now
	note.UpdatedAt = now

	if _, err := s.collection.InsertOne(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *mongoNoteStore) Update(ctx context.Context, id primitive.ObjectID, update NoteUpdate) (*models.Note, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.FolderID != nil {
		set["folderId"] = *update.FolderID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note models.Note
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *mongoNoteStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
