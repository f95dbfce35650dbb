// user.go - Handles user registration and login

package handlers // Declares the package name

import ( // Import required packages
	"errors"
	"net/http" // HTTP status codes
	"time"     // For token expiration

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/sirupsen/logrus"   // Structured logging
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt" // Password hashing

	"recipenest/models" // User model
	"recipenest/store"  // User persistence
)

// Token lifetimes differ on purpose: a fresh registration gets a short
// session, a deliberate login a longer one.
const (
	registerTokenTTL = 72 * time.Hour  // 3 days
	loginTokenTTL    = 168 * time.Hour // 7 days
)

// UserHandler carries the dependencies of the auth endpoints.
type UserHandler struct {
	Users     store.UserStore
	JWTSecret string
}

func NewUserHandler(users store.UserStore, jwtSecret string) *UserHandler {
	return &UserHandler{Users: users, JWTSecret: jwtSecret}
}

type RegisterInput struct { // Struct for registration input
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required"`    // Email (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

// Register - Handler for user registration
// Validates the identity fields, rejects duplicate email/username with
// 409, hashes the password and returns the public fields plus a token.
func (h *UserHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": "please fill in all fields"}) // Return error if invalid
		return
	}

	// STEP 1: Reject duplicate email or username up front
	ctx := c.Request.Context()
	if _, err := h.Users.FindByEmail(ctx, input.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Error("register: email lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	if _, err := h.Users.FindByUsername(ctx, input.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Error("register: username lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	// STEP 2: Hash the password before anything is persisted
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("register: password hashing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	// STEP 3: Persist the user
	user := models.User{
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hash),
	}
	if err := h.Users.Create(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) { // Unique index backstop for the pre-checks
			c.JSON(http.StatusConflict, gin.H{"error": "email or username already exists"})
			return
		}
		logrus.WithError(err).Error("register: user insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	// STEP 4: Issue a signed token and return the public fields
	token, err := h.issueToken(user.ID, registerTokenTTL)
	if err != nil {
		logrus.WithError(err).Error("register: token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "username": user.Username}).Info("user registered")
	c.JSON(http.StatusCreated, gin.H{
		"id":        user.ID.Hex(),
		"firstname": user.Firstname,
		"lastname":  user.Lastname,
		"username":  user.Username,
		"email":     user.Email,
		"token":     token,
	})
}

// Login - Handler for user login
// A missing user and a wrong password return the same generic 401 so
// the response never reveals which one it was.
func (h *UserHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), input.Email) // Find user by email
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logrus.WithError(err).Error("login: email lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil { // Check password
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect email or password"})
		return
	}

	token, err := h.issueToken(user.ID, loginTokenTTL)
	if err != nil {
		logrus.WithError(err).Error("login: token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	logrus.WithField("user_id", user.ID.Hex()).Info("user logged in")
	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID.Hex(),
		"firstname": user.Firstname,
		"lastname":  user.Lastname,
		"username":  user.Username,
		"email":     user.Email,
		"token":     token,
	})
}

// issueToken signs an HS256 token carrying the user's hex ObjectID.
func (h *UserHandler) issueToken(userID primitive.ObjectID, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{ // Create JWT token
		"user_id": userID.Hex(),              // Add user ID to token
		"exp":     time.Now().Add(ttl).Unix(), // Set expiration
		"iat":     time.Now().Unix(),
	})
	return token.SignedString([]byte(h.JWTSecret)) // Sign token
}
