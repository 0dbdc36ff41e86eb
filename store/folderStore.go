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

type FolderStore interface {
	List(ctx context.Context, searchTerm string) ([]models.Folder, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Folder, error)
	Create(ctx context.Context, folder *models.Folder) (*models.Folder, error)
	SetName(ctx context.Context, id primitive.ObjectID, name string) (*models.Folder, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoFolderStore struct {
	collection *mongo.Collection
}

func NewFolderStore(collection *mongo.Collection) FolderStore {
	return &mongoFolderStore{collection: collection}
}

func nameListQuery(searchTerm string) bson.M {
	query := bson.M{}
	if searchTerm != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(searchTerm), Options: "i"}
		query["name"] = bson.M{"$regex": re}
	}
	return query
}

func (s *mongoFolderStore) List(ctx context.Context, searchTerm string) ([]models.Folder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := s.collection.Find(ctx, nameListQuery(searchTerm), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	folders := []models.Folder{}
	if err := cursor.All(ctx, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (s *mongoFolderStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Folder, error) {
	var folder models.Folder
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&folder)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (s *mongoFolderStore) Create(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	now := time.Now().UTC()
	folder.ID = primitive.NewObjectID()
	folder.CreatedAt = now
	folder.UpdatedAt = now

	_, err := s.collection.InsertOne(ctx, folder)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, err
	}
	return folder, nil
}

func (s *mongoFolderStore) SetName(ctx context.Context, id primitive.ObjectID, name string) (*models.Folder, error) {
	set := bson.M{"name": name, "updatedAt": time.Now().UTC()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var folder models.Folder
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&folder)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateName
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (s *mongoFolderStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
