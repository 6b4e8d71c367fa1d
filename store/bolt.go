package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
)

const recordsBucket = "records"

var errAlreadyRunning = errors.New(
	"is goaltime already running? Only one instance can be active at a time",
)

// Bolt is a BoltDB database client.
type Bolt struct {
	*bolt.DB
}

func (c *Bolt) Name() string {
	return "bolt"
}

func (c *Bolt) Get(key string) ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(recordsBucket)).Get([]byte(key))
		if b == nil {
			return ErrNotFound
		}

		// the slice is only valid for the lifetime of the transaction
		value = append([]byte(nil), b...)

		return nil
	})

	return value, err
}

func (c *Bolt) Put(key string, value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).Put([]byte(key), value)
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewBolt returns a wrapper to a BoltDB connection.
func NewBolt(dbPath string) (*Bolt, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the bucket for storing records if it does not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(recordsBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Bolt{
		db,
	}, nil
}
