// store.go - Store interfaces and sentinel errors
// Handlers depend on these interfaces, never on the Mongo driver directly,
// so the DB handle is an injected dependency rather than a package global.

package store // Declares the package name

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive" // MongoDB ObjectID type

	"recipenest/models" // Document models
)

var (
	ErrNotFound  = errors.New("store: document not found")       // Lookup missed
	ErrDuplicate = errors.New("store: duplicate unique field")   // Unique index violation
)

// UserStore persists and looks up user documents.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// RecipeUpdate is a partial patch for a recipe. Nil fields are left
// untouched. Owner and ID are deliberately absent: ownership is fixed
// at creation.
type RecipeUpdate struct {
	Title       *string
	Description *string
	Ingredients []models.Ingredient
	Steps       []string
	CoverImage  *string
	PrepTime    *int
	Servings    *int
	IsPublic    *bool
}

// RecipeStore persists and queries recipe documents.
// callerID is nil for anonymous callers.
type RecipeStore interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error)
	FindVisible(ctx context.Context, callerID *primitive.ObjectID) ([]models.Recipe, error)
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Recipe, error)
	Search(ctx context.Context, callerID *primitive.ObjectID, q string, maxPrepTime *int) ([]models.Recipe, error)
	Update(ctx context.Context, id primitive.ObjectID, patch RecipeUpdate) (*models.Recipe, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
