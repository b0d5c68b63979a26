package repositories

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"snapfeed/app/models"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create persists a new user and its email index entry. Returns
// ErrEmailTaken when another user already owns the email.
func (r *BadgerUserRepository) Create(user *models.User) error {
	user.BeforeCreate()

	data, err := marshalEntity(user)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		idxKey := emailKey(user.Email)
		if _, err := txn.Get(idxKey); err == nil {
			return ErrEmailTaken
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		if err := txn.Set(userKey(user.ID), data); err != nil {
			return err
		}
		return txn.Set(idxKey, []byte(user.ID.String()))
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user through the email index.
func (r *BadgerUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(email))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var id uuid.UUID
		if err := item.Value(func(val []byte) error {
			parsed, perr := uuid.Parse(string(val))
			if perr != nil {
				return perr
			}
			id = parsed
			return nil
		}); err != nil {
			return err
		}

		item, err = txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates an existing user
func (r *BadgerUserRepository) Update(user *models.User) error {
	data, err := marshalEntity(user)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := userKey(user.ID)
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}
