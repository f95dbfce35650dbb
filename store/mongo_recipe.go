// mongo_recipe.go - MongoDB implementation of RecipeStore

package store // Declares the package name

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"           // BSON document builders
	"go.mongodb.org/mongo-driver/bson/primitive" // MongoDB ObjectID type
	"go.mongodb.org/mongo-driver/mongo"          // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options"  // Query options

	"recipenest/models" // Document models
)

// MongoRecipeStore stores recipes in the "recipes" collection.
type MongoRecipeStore struct {
	coll *mongo.Collection
}

func NewMongoRecipeStore(db *mongo.Database) *MongoRecipeStore {
	return &MongoRecipeStore{coll: db.Collection("recipes")}
}

func (s *MongoRecipeStore) Create(ctx context.Context, recipe *models.Recipe) error {
	now := time.Now().UTC()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, recipe)
	if err != nil {
		return err
	}
	recipe.ID = res.InsertedID.(primitive.ObjectID) // Record the generated _id
	return nil
}

func (s *MongoRecipeStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *MongoRecipeStore) FindVisible(ctx context.Context, callerID *primitive.ObjectID) ([]models.Recipe, error) {
	return s.findAll(ctx, visibilityFilter(callerID))
}

func (s *MongoRecipeStore) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Recipe, error) {
	return s.findAll(ctx, bson.M{"user": ownerID}) // All of the owner's recipes, public or not
}

func (s *MongoRecipeStore) Search(ctx context.Context, callerID *primitive.ObjectID, q string, maxPrepTime *int) ([]models.Recipe, error) {
	return s.findAll(ctx, searchFilter(callerID, q, maxPrepTime))
}

// findAll runs a filter and decodes every match, in store-native order.
func (s *MongoRecipeStore) findAll(ctx context.Context, filter bson.M) ([]models.Recipe, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recipes := []models.Recipe{} // Empty slice, not nil, so handlers serialize []
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *MongoRecipeStore) Update(ctx context.Context, id primitive.ObjectID, patch RecipeUpdate) (*models.Recipe, error) {
	set := bson.M{"updatedAt": time.Now().UTC()} // Partial replacement via $set
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Ingredients != nil {
		set["ingredients"] = patch.Ingredients
	}
	if patch.Steps != nil {
		set["steps"] = patch.Steps
	}
	if patch.CoverImage != nil {
		set["coverImage"] = *patch.CoverImage
	}
	if patch.PrepTime != nil {
		set["prepTime"] = *patch.PrepTime
	}
	if patch.Servings != nil {
		set["servings"] = *patch.Servings
	}
	if patch.IsPublic != nil {
		set["isPublic"] = *patch.IsPublic
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After) // Return the document AFTER the update
	var updated models.Recipe
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (s *MongoRecipeStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
