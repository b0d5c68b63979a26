package repositories

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// Open opens the Badger document store at path. An empty path opens a unique
// temporary directory, used for testing to ensure isolation.
func Open(path string) (*badger.DB, error) {
	isTest := false
	if path == "" {
		tempPath, err := os.MkdirTemp("", "snapfeed_test_db_")
		if err != nil {
			return nil, fmt.Errorf("error creating temp dir: %v", err)
		}
		path = tempPath
		isTest = true
	}

	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	if isTest {
		if err := db.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to drop all keys: %v", err)
		}
	}
	return db, nil
}
