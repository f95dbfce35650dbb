// recipe.go - Recipe CRUD and search handlers
// Create/Update accept multipart forms: scalar fields arrive as form
// values, ingredients/steps as JSON-encoded strings (decoded and
// validated here, at the boundary), and the cover image as a file part.

package handlers // Declares the package name

import ( // Import required packages
	"encoding/json" // Decoding ingredients/steps submitted as strings
	"errors"
	"net/http" // HTTP status codes
	"strconv"  // Numeric form/query coercion

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipenest/middleware" // Caller identity access
	"recipenest/models"     // Recipe model
	"recipenest/policy"     // Read/write access policy
	"recipenest/store"      // Recipe persistence
	"recipenest/uploads"    // Cover image storage
)

// RecipeHandler carries the dependencies of the recipe endpoints.
type RecipeHandler struct {
	Recipes   store.RecipeStore
	UploadDir string // Directory cover images are stored in
}

func NewRecipeHandler(recipes store.RecipeStore, uploadDir string) *RecipeHandler {
	return &RecipeHandler{Recipes: recipes, UploadDir: uploadDir}
}

// Create - POST /api/recipes (auth required, multipart)
func (h *RecipeHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok { // RequireAuth guards this route; treat a missing caller as a broken token
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}

	// STEP 1: Validate required scalar fields BEFORE contacting the store
	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || description == "" || c.PostForm("prepTime") == "" || c.PostForm("servings") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, description, preparation time and servings are required"})
		return
	}
	prepTime, err := strconv.Atoi(c.PostForm("prepTime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prepTime must be a number"})
		return
	}
	servings, err := strconv.Atoi(c.PostForm("servings"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "servings must be a number"})
		return
	}
	isPublic, _ := strconv.ParseBool(c.PostForm("isPublic")) // Absent or malformed means private

	// STEP 2: Decode the JSON-encoded lists
	ingredients, err := decodeIngredients(c.PostForm("ingredients"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	steps, err := decodeSteps(c.PostForm("steps"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// STEP 3: Store the cover image, if one was uploaded
	coverImage := ""
	if file, err := c.FormFile("coverImage"); err == nil {
		path, err := uploads.Save(file, h.UploadDir)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Bad type or too large
			return
		}
		coverImage = path
	}

	// STEP 4: Persist, attaching the caller as owner
	recipe := models.Recipe{
		User:        user.ID,
		Title:       title,
		Description: description,
		Ingredients: ingredients,
		Steps:       steps,
		CoverImage:  coverImage,
		PrepTime:    prepTime,
		Servings:    servings,
		IsPublic:    isPublic,
	}
	if err := h.Recipes.Create(c.Request.Context(), &recipe); err != nil {
		logrus.WithError(err).Error("recipe create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	logrus.WithFields(logrus.Fields{"recipe_id": recipe.ID.Hex(), "user_id": user.ID.Hex()}).Info("recipe created")
	c.JSON(http.StatusCreated, gin.H{"message": "recipe created successfully", "recipe": recipe})
}

// List - GET /api/recipes (optional auth)
// Returns every recipe visible to the caller: public ones, plus the
// caller's own when authenticated.
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.Recipes.FindVisible(c.Request.Context(), callerID(c))
	if err != nil {
		logrus.WithError(err).Error("recipe list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// Mine - GET /api/recipes/my-recipes (auth required)
// Returns all of the caller's recipes regardless of visibility.
func (h *RecipeHandler) Mine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}
	recipes, err := h.Recipes.FindByOwner(c.Request.Context(), user.ID)
	if err != nil {
		logrus.WithError(err).Error("my-recipes list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// Search - GET /api/recipes/search?q=&prepTime= (optional auth)
// q matches title or description case-insensitively; prepTime caps the
// preparation time. A non-numeric prepTime is rejected with 400.
func (h *RecipeHandler) Search(c *gin.Context) {
	var maxPrepTime *int
	if raw := c.Query("prepTime"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "prepTime must be a number"})
			return
		}
		maxPrepTime = &n
	}

	recipes, err := h.Recipes.Search(c.Request.Context(), callerID(c), c.Query("q"), maxPrepTime)
	if err != nil {
		logrus.WithError(err).Error("recipe search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// Get - GET /api/recipes/:id (optional auth)
// Private recipes of other users answer 404, same as missing ones, so
// their existence is never leaked.
func (h *RecipeHandler) Get(c *gin.Context) {
	recipe := h.loadRecipe(c)
	if recipe == nil {
		return
	}
	user, authed := middleware.CurrentUser(c)
	var caller primitive.ObjectID
	if authed {
		caller = user.ID
	}
	if !policy.CanRead(recipe, caller, authed) {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"}) // Hide private recipes
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// Update - PUT /api/recipes/:id (auth required, multipart optional)
// Partial field replacement: only fields present in the form are
// patched. A new cover image replaces (and best-effort deletes) the
// previous file.
func (h *RecipeHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}
	recipe := h.loadRecipe(c)
	if recipe == nil {
		return
	}
	if !policy.CanWrite(recipe, user.ID, true) { // Owner only; 401 mirrors the original API contract
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	// STEP 1: Collect the patch from whichever fields were submitted
	var patch store.RecipeUpdate
	if title, ok := c.GetPostForm("title"); ok {
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}
		patch.Title = &title
	}
	if description, ok := c.GetPostForm("description"); ok {
		if description == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
			return
		}
		patch.Description = &description
	}
	if raw, ok := c.GetPostForm("prepTime"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "prepTime must be a number"})
			return
		}
		patch.PrepTime = &n
	}
	if raw, ok := c.GetPostForm("servings"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "servings must be a number"})
			return
		}
		patch.Servings = &n
	}
	if raw, ok := c.GetPostForm("isPublic"); ok {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "isPublic must be true or false"})
			return
		}
		patch.IsPublic = &b
	}
	if raw, ok := c.GetPostForm("ingredients"); ok {
		ingredients, err := decodeIngredients(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		patch.Ingredients = ingredients
	}
	if raw, ok := c.GetPostForm("steps"); ok {
		steps, err := decodeSteps(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		patch.Steps = steps
	}

	// STEP 2: Swap the cover image if a new one was uploaded
	if file, err := c.FormFile("coverImage"); err == nil {
		path, err := uploads.Save(file, h.UploadDir)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		uploads.Remove(h.UploadDir, recipe.CoverImage) // Best-effort: old file, logged if it fails
		patch.CoverImage = &path
	}

	// STEP 3: Apply the patch
	updated, err := h.Recipes.Update(c.Request.Context(), recipe.ID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) { // Deleted between load and patch
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		logrus.WithError(err).Error("recipe update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	logrus.WithFields(logrus.Fields{"recipe_id": updated.ID.Hex(), "user_id": user.ID.Hex()}).Info("recipe updated")
	c.JSON(http.StatusOK, gin.H{"message": "recipe updated successfully", "recipe": updated})
}

// Delete - DELETE /api/recipes/:id (auth required)
// Removes the cover image file best-effort, then the document.
func (h *RecipeHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}
	recipe := h.loadRecipe(c)
	if recipe == nil {
		return
	}
	if !policy.CanWrite(recipe, user.ID, true) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	uploads.Remove(h.UploadDir, recipe.CoverImage) // Best-effort image cleanup

	if err := h.Recipes.Delete(c.Request.Context(), recipe.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		logrus.WithError(err).Error("recipe delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	logrus.WithFields(logrus.Fields{"recipe_id": recipe.ID.Hex(), "user_id": user.ID.Hex()}).Info("recipe deleted")
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted successfully", "id": recipe.ID.Hex()})
}

// --- Private helpers ---

// loadRecipe resolves the :id path parameter, writing the error
// response itself when the lookup fails. A malformed ID answers 404
// like a missing document. Returns nil when a response was written.
func (h *RecipeHandler) loadRecipe(c *gin.Context) *models.Recipe {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return nil
	}
	recipe, err := h.Recipes.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return nil
		}
		logrus.WithError(err).Error("recipe lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return nil
	}
	return recipe
}

// callerID returns the caller's ID for store queries, nil when anonymous.
func callerID(c *gin.Context) *primitive.ObjectID {
	if user, ok := middleware.CurrentUser(c); ok {
		id := user.ID
		return &id
	}
	return nil
}

// decodeIngredients parses the JSON-encoded ingredients list submitted
// with a multipart form and enforces the creation invariants: at least
// one ingredient, each with a name and a quantity.
func decodeIngredients(raw string) ([]models.Ingredient, error) {
	if raw == "" {
		return nil, errors.New("at least one ingredient is required")
	}
	var ingredients []models.Ingredient
	if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
		return nil, errors.New("ingredients must be a JSON array of {name, quantity}")
	}
	if len(ingredients) == 0 {
		return nil, errors.New("at least one ingredient is required")
	}
	for _, ing := range ingredients {
		if ing.Name == "" || ing.Quantity == "" {
			return nil, errors.New("every ingredient needs a name and a quantity")
		}
	}
	return ingredients, nil
}

// decodeSteps parses the JSON-encoded steps list. Order is preserved
// and significant.
func decodeSteps(raw string) ([]string, error) {
	if raw == "" {
		return nil, errors.New("at least one step is required")
	}
	var steps []string
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		return nil, errors.New("steps must be a JSON array of strings")
	}
	if len(steps) == 0 {
		return nil, errors.New("at least one step is required")
	}
	for _, step := range steps {
		if step == "" {
			return nil, errors.New("steps cannot be empty")
		}
	}
	return steps, nil
}
