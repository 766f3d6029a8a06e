// Package ids translates between the store's native ObjectID and the plain
// string form used in requests and responses. Every externally supplied id
// goes through Parse before it is used in a lookup, so malformed input is
// rejected as a client error instead of surfacing as a lookup miss.
package ids

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrInvalidID is returned when a string is not the canonical textual form
// of an ObjectID. Distinct from models.ErrNotFound: a well-formed id that
// matches nothing is a miss, not a format error.
var ErrInvalidID = errors.New("invalid id")

// encodedLen is the canonical length of a hex-encoded 12-byte ObjectID.
const encodedLen = 24

// IsValid reports whether s is exactly the canonical wire form of an
// ObjectID: 24 characters of lowercase hex.
func IsValid(s string) bool {
	if len(s) != encodedLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Parse converts a wire string into an ObjectID. It fails with ErrInvalidID
// for anything IsValid rejects, including uppercase hex, which the driver
// would otherwise accept.
func Parse(s string) (bson.ObjectID, error) {
	if !IsValid(s) {
		return bson.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// ToWire returns the canonical string form of id. Parse(ToWire(id)) always
// yields id back.
func ToWire(id bson.ObjectID) string {
	return id.Hex()
}
