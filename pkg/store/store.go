// Package store defines the permanent storage service.
package store

import (
	"fmt"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.hostline.sh/pkg/logutil"
	"src.hostline.sh/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

const bucketClip = "clip"

var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is the permanent storage backend for hostline.
type DBStore interface {
	storedefs.Store
	Close() error
}

var dbStoreOpenOptions = &bolt.Options{Timeout: time.Second}

type dbStore struct {
	db *bolt.DB
	wg sync.WaitGroup
}

// NewStore creates a new Store from the given file.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644, dbStoreOpenOptions)
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db: db}
	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	return st, err
}

// Close waits for all outstanding operations to finish, and closes the
// database.
func (s *dbStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.wg.Wait()
	return s.db.Close()
}
