package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already taken")
)

const (
	// Key prefixes for different entity types
	UserKeyPrefix  = "user:"
	PostKeyPrefix  = "post:"
	EmailKeyPrefix = "user_email:"
)

func userKey(id uuid.UUID) []byte {
	return []byte(UserKeyPrefix + id.String())
}

func postKey(id uuid.UUID) []byte {
	return []byte(PostKeyPrefix + id.String())
}

func emailKey(email string) []byte {
	return []byte(EmailKeyPrefix + email)
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
