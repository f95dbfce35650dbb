// policy.go - Pure access policy for recipes
// Read access: public recipes, or the owner's own.
// Write access: the owner only. Public grants no write access.

package policy // Declares the package name

import (
	"go.mongodb.org/mongo-driver/bson/primitive" // MongoDB ObjectID type

	"recipenest/models" // Recipe model
)

// CanRead reports whether the caller may see the recipe.
// authed is false for anonymous callers; callerID is ignored then.
func CanRead(recipe *models.Recipe, callerID primitive.ObjectID, authed bool) bool {
	if recipe.IsPublic {
		return true
	}
	return authed && recipe.User == callerID
}

// CanWrite reports whether the caller may mutate or delete the recipe.
func CanWrite(recipe *models.Recipe, callerID primitive.ObjectID, authed bool) bool {
	return authed && recipe.User == callerID
}
