package database

import (
	"encoding/json"
	"fmt"

	"github.com/bloops-games/improv/internal/byteutil"
	"github.com/bloops-games/improv/internal/database"
	"github.com/bloops-games/improv/internal/database/history/model"
	bolt "go.etcd.io/bbolt"
)

const prefix = "history"

var ErrNotFound = fmt.Errorf("not found")

func New(db *database.DB) *DB {
	return &DB{sDB: db}
}

type DB struct {
	sDB *database.DB
}

// userBucket names the per-user nested bucket.
func userBucket(userID int64) []byte {
	return byteutil.EncodeInt64ToBytes(userID)
}

func (db *DB) Add(e model.Entry) error {
	bytes, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	key, err := e.ID.MarshalBinary()
	if err != nil {
		return fmt.Errorf("uuid binary: %w", err)
	}

	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists([]byte(prefix))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}

		b, err := root.CreateBucketIfNotExists(userBucket(e.UserID))
		if err != nil {
			return fmt.Errorf("create user bucket: %w", err)
		}

		if err := b.Put(key, bytes); err != nil {
			return fmt.Errorf("put to bucket error: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	return nil
}

func (db *DB) FetchByUserID(userID int64) ([]model.Entry, error) {
	var entries []model.Entry

	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		root := tx.Bucket([]byte(prefix))
		if root == nil {
			return ErrNotFound
		}

		b := root.Bucket(userBucket(userID))
		if b == nil {
			return ErrNotFound
		}

		return b.ForEach(func(k, v []byte) error {
			var e model.Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("json unmarshal error, %w", err)
			}
			entries = append(entries, e)
			return nil
		})
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %w", err)
	}

	return entries, nil
}

func (db *DB) FetchProfileStat(userID int64) (model.ProfileStat, error) {
	var stat model.ProfileStat

	entries, err := db.FetchByUserID(userID)
	if err != nil {
		return stat, fmt.Errorf("fetch by userID: %w", err)
	}

	for _, e := range entries {
		stat.Scenes++
		if e.Twist != "" {
			stat.Twists++
		}

		if e.Expired {
			stat.Completed++
		}

		stat.Performed += e.Performed
		if e.Performed > stat.LongestScene {
			stat.LongestScene = e.Performed
		}

		if e.CreatedAt.After(stat.LastPlayedAt) {
			stat.LastPlayedAt = e.CreatedAt
			stat.LastLocation = e.Location
		}
	}

	return stat, nil
}
