// recipe.go - Defines the Recipe document stored in MongoDB

package models // Declares the package name

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive" // MongoDB ObjectID type
)

// Ingredient is one entry of a recipe's ingredient list.
// Quantity stays a free-form string ("1L", "2 cups", "a pinch").
type Ingredient struct {
	Name     string `bson:"name" json:"name" binding:"required"`
	Quantity string `bson:"quantity" json:"quantity" binding:"required"`
}

type Recipe struct { // Recipe struct represents a recipe document
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"` // Unique recipe ID (Mongo _id)
	User        primitive.ObjectID `bson:"user" json:"user"`        // Owner, fixed at creation
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Ingredients []Ingredient       `bson:"ingredients" json:"ingredients"` // Non-empty at creation
	Steps       []string           `bson:"steps" json:"steps"`             // Ordered, non-empty at creation
	CoverImage  string             `bson:"coverImage,omitempty" json:"coverImage"` // Server-relative path or empty
	PrepTime    int                `bson:"prepTime" json:"prepTime"`               // Preparation time in minutes
	Servings    int                `bson:"servings" json:"servings"`
	IsPublic    bool               `bson:"isPublic" json:"isPublic"` // Private by default
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
