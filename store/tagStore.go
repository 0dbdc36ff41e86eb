package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thinkful-ei20/noteful-app-v3-cam/models"
)

type TagStore interface {
	List(ctx context.Context, searchTerm string) ([]models.Tag, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) (*models.Tag, error)
	SetName(ctx context.Context, id primitive.ObjectID, name string) (*models.Tag, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoTagStore struct {
	collection *mongo.Collection
}

func NewTagStore(collection *mongo.Collection) TagStore {
	return &mongoTagStore{collection: collection}
}

func (s *mongoTagStore) List(ctx context.Context, searchTerm string) ([]models.Tag, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := s.collection.Find(ctx, nameListQuery(searchTerm), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tags := []models.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *mongoTagStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Tag, error) {
	var tag models.Tag
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tag)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *mongoTagStore) Create(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	now := time.Now().UTC()
	tag.ID = primitive.NewObjectID()
	tag.CreatedAt = now
	tag.UpdatedAt = now

	_, err := s.collection.InsertOne(ctx, tag)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *mongoTagStore) SetName(ctx context.Context, id primitive.ObjectID, name string) (*models.Tag, error) {
	set := bson.M{"name": name, "updatedAt": time.Now().UTC()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tag models.Tag
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&tag)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateName
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *mongoTagStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
