// fakes_test.go - In-memory store fakes for handler tests
// These implement the store interfaces over plain maps so the handler
// suite runs without a mongod. Lookups return copies, matching the
// driver's decode-into-fresh-struct behavior.

package handlers

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipenest/models"
	"recipenest/store"
)

// --- fakeUserStore ---

type fakeUserStore struct {
	users map[primitive.ObjectID]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return store.ErrDuplicate // Mirrors the unique indexes
		}
	}
	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return &user, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := user
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

// --- fakeRecipeStore ---

type fakeRecipeStore struct {
	recipes map[primitive.ObjectID]models.Recipe
	order   []primitive.ObjectID // Insertion order, for deterministic listings
}

func newFakeRecipeStore() *fakeRecipeStore {
	return &fakeRecipeStore{recipes: make(map[primitive.ObjectID]models.Recipe)}
}

func (f *fakeRecipeStore) Create(ctx context.Context, recipe *models.Recipe) error {
	recipe.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now
	f.recipes[recipe.ID] = *recipe
	f.order = append(f.order, recipe.ID)
	return nil
}

func (f *fakeRecipeStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	if recipe, ok := f.recipes[id]; ok {
		return &recipe, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeRecipeStore) FindVisible(ctx context.Context, callerID *primitive.ObjectID) ([]models.Recipe, error) {
	return f.filter(func(r models.Recipe) bool {
		return r.IsPublic || (callerID != nil && r.User == *callerID)
	}), nil
}

func (f *fakeRecipeStore) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Recipe, error) {
	return f.filter(func(r models.Recipe) bool { return r.User == ownerID }), nil
}

func (f *fakeRecipeStore) Search(ctx context.Context, callerID *primitive.ObjectID, q string, maxPrepTime *int) ([]models.Recipe, error) {
	needle := strings.ToLower(q)
	return f.filter(func(r models.Recipe) bool {
		if !r.IsPublic && (callerID == nil || r.User != *callerID) {
			return false
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(r.Title), needle) &&
			!strings.Contains(strings.ToLower(r.Description), needle) {
			return false
		}
		if maxPrepTime != nil && r.PrepTime > *maxPrepTime {
			return false
		}
		return true
	}), nil
}

func (f *fakeRecipeStore) Update(ctx context.Context, id primitive.ObjectID, patch store.RecipeUpdate) (*models.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Title != nil {
		recipe.Title = *patch.Title
	}
	if patch.Description != nil {
		recipe.Description = *patch.Description
	}
	if patch.Ingredients != nil {
		recipe.Ingredients = patch.Ingredients
	}
	if patch.Steps != nil {
		recipe.Steps = patch.Steps
	}
	if patch.CoverImage != nil {
		recipe.CoverImage = *patch.CoverImage
	}
	if patch.PrepTime != nil {
		recipe.PrepTime = *patch.PrepTime
	}
	if patch.Servings != nil {
		recipe.Servings = *patch.Servings
	}
	if patch.IsPublic != nil {
		recipe.IsPublic = *patch.IsPublic
	}
	recipe.UpdatedAt = time.Now().UTC()
	f.recipes[id] = recipe
	return &recipe, nil
}

func (f *fakeRecipeStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.recipes[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.recipes, id)
	return nil
}

func (f *fakeRecipeStore) filter(keep func(models.Recipe) bool) []models.Recipe {
	matched := []models.Recipe{}
	for _, id := range f.order {
		if recipe, ok := f.recipes[id]; ok && keep(recipe) {
			matched = append(matched, recipe)
		}
	}
	return matched
}
