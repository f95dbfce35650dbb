// auth.go - JWT authentication middleware
// This file implements the two auth guards for the API
//
// RequireAuth (mandatory):
// 1. Extract JWT token from Authorization header
// 2. Validate token signature and expiration
// 3. Load the user named by the token claims
// 4. Store the user in context for handlers
// 5. Abort with 401 on any failure
//
// OptionalAuth:
// Same resolution steps, but every failure (missing header, malformed
// token, bad signature, expired token, unknown user) falls through to
// the handler as an anonymous caller instead of aborting.

package middleware // Declares the package name

import (
	"errors"
	"net/http" // HTTP status codes
	"strings"  // String operations (for header parsing)

	"github.com/gin-gonic/gin"     // Gin web framework (for middleware)
	"github.com/golang-jwt/jwt/v5" // JWT library (for token validation)
	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipenest/models" // User model
	"recipenest/store"  // User lookups
)

const userKey = "user" // Context key for the resolved caller

// RequireAuth - Returns a Gin middleware that rejects requests without
// a valid bearer token. On success the resolved user (password cleared)
// is stored in the Gin context.
func RequireAuth(users store.UserStore, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveUser(c, users, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"}) // Return 401 Unauthorized
			return
		}
		c.Set(userKey, user) // Store caller in Gin context
		c.Next()             // Continue to next handler (authentication successful)
	}
}

// OptionalAuth - Returns a Gin middleware that resolves a caller
// identity when a valid bearer token is present and proceeds
// anonymously otherwise. It never aborts the request.
func OptionalAuth(users store.UserStore, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := resolveUser(c, users, jwtSecret); err == nil {
			c.Set(userKey, user) // Store caller in Gin context
		}
		c.Next() // Continue either way
	}
}

// CurrentUser - Fetches the caller stored by RequireAuth/OptionalAuth.
// The second return is false for anonymous requests.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// resolveUser does the shared token-to-user resolution for both guards.
func resolveUser(c *gin.Context, users store.UserStore, jwtSecret string) (*models.User, error) {
	// STEP 1: Extract Authorization header
	// Look for the standard "Bearer token" format in HTTP headers
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
		return nil, errors.New("missing bearer token")
	}

	// STEP 2: Parse JWT token
	// Remove "Bearer " prefix and validate the JWT token
	tokenStr := strings.TrimPrefix(header, "Bearer ")
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil // Provide secret key for validation
	})
	if err != nil || !token.Valid { // Invalid signature or expired
		return nil, errors.New("invalid token")
	}

	// STEP 3: Extract user ID from token claims
	// The token payload carries the user's hex ObjectID under "user_id"
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	idHex, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("user ID not found in token")
	}
	userID, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, errors.New("invalid user ID format")
	}

	// STEP 4: Load the user so handlers get the full identity
	user, err := users.FindByID(c.Request.Context(), userID)
	if err != nil {
		return nil, errors.New("user not found")
	}
	user.Password = "" // Never carry the hash into request context
	return user, nil
}
