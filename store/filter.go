// filter.go - Builds MongoDB query filters for recipe visibility and search

package store // Declares the package name

import (
	"go.mongodb.org/mongo-driver/bson"           // BSON document builders
	"go.mongodb.org/mongo-driver/bson/primitive" // MongoDB ObjectID type
)

// visibilityFilter returns the clause every recipe query must carry:
// public recipes, plus the caller's own recipes when authenticated.
func visibilityFilter(callerID *primitive.ObjectID) bson.M {
	if callerID == nil { // Anonymous caller: public recipes only
		return bson.M{"isPublic": true}
	}
	return bson.M{"$or": bson.A{ // Authenticated: public OR owned
		bson.M{"isPublic": true},
		bson.M{"user": *callerID},
	}}
}

// searchFilter conjoins the visibility clause with the optional search
// clauses. q matches title or description case-insensitively; maxPrepTime
// keeps recipes at or under the given preparation time.
func searchFilter(callerID *primitive.ObjectID, q string, maxPrepTime *int) bson.M {
	visibility := visibilityFilter(callerID)

	clauses := bson.A{} // Extra clauses beyond visibility
	if q != "" {
		regex := primitive.Regex{Pattern: q, Options: "i"} // Case-insensitive substring match
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
		}})
	}
	if maxPrepTime != nil {
		clauses = append(clauses, bson.M{"prepTime": bson.M{"$lte": *maxPrepTime}})
	}

	if len(clauses) == 0 { // No search clauses: visibility alone is the query
		return visibility
	}
	return bson.M{"$and": append(bson.A{visibility}, clauses...)}
}
