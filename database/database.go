// database.go - Handles the MongoDB connection and index setup

package database // Declares the package name

import ( // Import required packages
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"          // BSON document builders
	"go.mongodb.org/mongo-driver/mongo"         // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options" // Connection options
	"go.mongodb.org/mongo-driver/mongo/readpref" // Read preference for ping
)

// Connect opens the MongoDB connection, verifies it with a ping and
// bootstraps the unique indexes the application relies on. The server
// must not start serving requests unless this succeeds.
func Connect(uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri)) // Connect to MongoDB
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil { // Verify the connection
		return nil, err
	}

	db := client.Database(dbName)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// ensureIndexes creates the unique indexes backing the duplicate
// email/username checks at registration.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}
