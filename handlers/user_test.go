// user_test.go - Automated tests for user registration and login handlers
// Run with: go test ./...

package handlers

import (
	"bytes"             // For building request bodies
	"encoding/json"     // For encoding/decoding JSON
	"net/http"          // HTTP status codes
	"net/http/httptest" // HTTP test helpers
	"testing"           // Go's testing package

	"github.com/gin-gonic/gin"           // Gin web framework
	"github.com/stretchr/testify/assert" // For assertions
)

const testSecret = "test-secret"

// setupUserRouter returns a Gin engine with the auth routes backed by
// an in-memory user store.
func setupUserRouter() (*gin.Engine, *fakeUserStore) {
	users := newFakeUserStore()
	h := NewUserHandler(users, testSecret)
	r := gin.Default()
	r.POST("/api/users/register", h.Register) // Register endpoint
	r.POST("/api/users/login", h.Login)       // Login endpoint
	return r, users
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload) // Encode input as JSON
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func registerPayload() RegisterInput {
	return RegisterInput{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "testpass",
	}
}

// TestRegisterAndLogin walks the happy path: register, then log in
// with the same credentials.
func TestRegisterAndLogin(t *testing.T) {
	router, _ := setupUserRouter()

	// --- Test registration ---
	w := postJSON(router, "/api/users/register", registerPayload())
	assert.Equal(t, 201, w.Code)

	var created map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created["id"])
	assert.NotEmpty(t, created["token"]) // Token issued on registration
	assert.Equal(t, "ada", created["username"])
	assert.NotContains(t, w.Body.String(), "testpass") // Never echo the password

	// --- Test login ---
	w = postJSON(router, "/api/users/login", LoginInput{Email: "ada@example.com", Password: "testpass"})
	assert.Equal(t, 200, w.Code)

	var logged map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	assert.NotEmpty(t, logged["token"])
	assert.Equal(t, created["id"], logged["id"])
}

// TestRegisterMissingFields verifies that every identity field is
// required.
func TestRegisterMissingFields(t *testing.T) {
	router, _ := setupUserRouter()

	payload := registerPayload()
	payload.Lastname = "" // Drop one required field
	w := postJSON(router, "/api/users/register", payload)
	assert.Equal(t, 400, w.Code)
}

// TestRegisterDuplicates verifies the 409 responses for duplicate
// email and duplicate username.
func TestRegisterDuplicates(t *testing.T) {
	router, _ := setupUserRouter()

	w := postJSON(router, "/api/users/register", registerPayload())
	assert.Equal(t, 201, w.Code)

	// Same email, different username
	payload := registerPayload()
	payload.Username = "ada2"
	w = postJSON(router, "/api/users/register", payload)
	assert.Equal(t, 409, w.Code)

	// Same username, different email
	payload = registerPayload()
	payload.Email = "ada2@example.com"
	w = postJSON(router, "/api/users/register", payload)
	assert.Equal(t, 409, w.Code)
}

// TestLoginFailureShape verifies that a wrong password and an unknown
// email produce the exact same response, so login errors never reveal
// whether the account exists.
func TestLoginFailureShape(t *testing.T) {
	router, _ := setupUserRouter()

	w := postJSON(router, "/api/users/register", registerPayload())
	assert.Equal(t, 201, w.Code)

	wrongPass := postJSON(router, "/api/users/login", LoginInput{Email: "ada@example.com", Password: "wrongpass"})
	unknownEmail := postJSON(router, "/api/users/login", LoginInput{Email: "nobody@example.com", Password: "testpass"})

	assert.Equal(t, 401, wrongPass.Code)
	assert.Equal(t, 401, unknownEmail.Code)
	assert.Equal(t, wrongPass.Body.String(), unknownEmail.Body.String()) // Identical shape
}
