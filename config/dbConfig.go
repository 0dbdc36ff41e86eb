package database

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPort     = "8080"
	defaultMongoURI = "mongodb://localhost/noteful"

	databaseName = "noteful"
)

// LoadEnv loads environment variables from the .env file, if one exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}
}

// Port returns the HTTP listen port.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return defaultPort
}

// MongoURI returns the connection string for the document store.
func MongoURI() string {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri
	}
	return defaultMongoURI
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(MongoURI()))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Info().Msg("connected to MongoDB")
	return client, nil
}

// OpenCollection returns a handle to a named collection.
func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database(databaseName).Collection(collectionName)
}

// EnsureIndexes creates the unique name indexes the folder and tag
// collections rely on for duplicate rejection.
func EnsureIndexes(ctx context.Context, client *mongo.Client) error {
	unique := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, name := range []string{"folders", "tags"} {
		if _, err := OpenCollection(client, name).Indexes().CreateOne(ctx, unique); err != nil {
			return err
		}
	}
	return nil
}
