// user.go - Defines the User document stored in MongoDB

package models // Declares the package name

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive" // MongoDB ObjectID type
)

type User struct { // User struct represents a user document
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"` // Unique user ID (Mongo _id)
	Firstname string             `bson:"firstname" json:"firstname"`
	Lastname  string             `bson:"lastname" json:"lastname"`
	Username  string             `bson:"username" json:"username"` // Must be unique (index)
	Email     string             `bson:"email" json:"email"`       // Must be unique (index)
	Password  string             `bson:"password" json:"-"`        // Bcrypt hash, never serialized
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
