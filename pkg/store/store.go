// Package store implements storage of the input history of echorepr, in a
// bolt database.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.echolib.dev/pkg/logutil"
	"src.echolib.dev/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

// DBStore is a Store backed by a database file. Its methods are safe for
// concurrent use, except that Close must not be called while other methods are
// running.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// Functions run once, in a single transaction, when a database is opened.
var initDB = map[string](func(*bolt.Tx) error){}

// Open opens the history database in the named file, creating it if it does
// not exist. It fails if another process holds the database for more than a
// second.
func Open(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history database %s: %w", dbname, err)
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
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the database.
func (s *dbStore) Close() error {
	return s.db.Close()
}
