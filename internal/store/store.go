// Package store persists saved titles in a local bbolt database.
package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmcdole/vidda/internal/observe"
)

var bucketSavedTitles = []byte("saved_titles")

// TitleStore holds the saved titles. An empty path keeps everything in memory.
type TitleStore struct {
	db     *bolt.DB
	logger *slog.Logger
	now    func() time.Time

	mu  sync.RWMutex // protects mem
	mem map[int][]byte

	// writeMu orders each write with its publish, so watchers end on the last commit.
	writeMu sync.Mutex

	snapshot *observe.Value[[]SavedTitle]
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewTitleStore opens (or creates) the database at path.
func NewTitleStore(path string, logger *slog.Logger) (*TitleStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &TitleStore{
		logger:   logger,
		now:      time.Now,
		snapshot: observe.NewValue[[]SavedTitle](nil),
		ctx:      ctx,
		cancel:   cancel,
	}

	if path == "" {
		s.mem = make(map[int][]byte)
		return s, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSavedTitles)
		return err
	})
	if err != nil {
		db.Close()
		cancel()
		return nil, err
	}
	s.db = db

	if err := s.publish(); err != nil {
		db.Close()
		cancel()
		return nil, err
	}
	return s, nil
}

// Close releases the database and closes every Watch channel.
func (s *TitleStore) Close() error {
	s.cancel()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func key(id int) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(id))
	return k
}

// All returns every saved title ordered by display title.
func (s *TitleStore) All() ([]SavedTitle, error) {
	var out []SavedTitle
	err := s.each(func(v []byte) error {
		var rec SavedTitle
		if err := json.Unmarshal(v, &rec); err != nil {
			return fmt.Errorf("failed to decode saved title: %w", err)
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByDisplayTitle(out)
	return out, nil
}

// Get returns the title with id, or false if it is not saved.
func (s *TitleStore) Get(id int) (SavedTitle, bool, error) {
	data, err := s.get(id)
	if err != nil || data == nil {
		return SavedTitle{}, false, err
	}
	var rec SavedTitle
	if err := json.Unmarshal(data, &rec); err != nil {
		return SavedTitle{}, false, fmt.Errorf("failed to decode saved title %d: %w", id, err)
	}
	return rec, true, nil
}

// Put inserts rec, replacing any existing record with the same id.
// SavedAt is refreshed on every insert.
func (s *TitleStore) Put(rec SavedTitle) error {
	return s.PutAll([]SavedTitle{rec})
}

// PutAll inserts every record in a single transaction.
func (s *TitleStore) PutAll(recs []SavedTitle) error {
	if len(recs) == 0 {
		return nil
	}
	stamp := s.now().UnixMilli()
	encoded := make(map[int][]byte, len(recs))
	for _, rec := range recs {
		rec.SavedAt = stamp
		if rec.MediaType == "" {
			rec.MediaType = "movie"
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode saved title %d: %w", rec.ID, err)
		}
		encoded[rec.ID] = data
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	err := s.update(func(b *bolt.Bucket) error {
		for id, data := range encoded {
			if err := b.Put(key(id), data); err != nil {
				return err
			}
		}
		return nil
	}, func(m map[int][]byte) {
		for id, data := range encoded {
			m[id] = data
		}
	})
	if err != nil {
		return fmt.Errorf("failed to save titles: %w", err)
	}
	return s.publish()
}

// Delete removes the title with id. Deleting an absent id is not an error.
func (s *TitleStore) Delete(id int) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	err := s.update(func(b *bolt.Bucket) error {
		return b.Delete(key(id))
	}, func(m map[int][]byte) {
		delete(m, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete title %d: %w", id, err)
	}
	return s.publish()
}

// DeleteAll removes every saved title.
func (s *TitleStore) DeleteAll() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	err := s.update(func(b *bolt.Bucket) error {
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return err
			}
		}
		return nil
	}, func(m map[int][]byte) {
		clear(m)
	})
	if err != nil {
		return fmt.Errorf("failed to clear saved titles: %w", err)
	}
	return s.publish()
}

// Exists reports whether id is saved.
func (s *TitleStore) Exists(id int) (bool, error) {
	data, err := s.get(id)
	return data != nil, err
}

// Count returns the number of saved titles.
func (s *TitleStore) Count() (int, error) {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return len(s.mem), nil
	}
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(bucketSavedTitles).Stats().KeyN
		return nil
	})
	return n, err
}

// Watch yields the current ordered list and then a fresh list after every write.
// The channel closes when ctx ends or the store is closed.
func (s *TitleStore) Watch(ctx context.Context) <-chan []SavedTitle {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.ctx, cancel)
	context.AfterFunc(ctx, func() { stop() })
	return s.snapshot.Subscribe(ctx)
}

// publish re-reads the full list and pushes it to watchers.
func (s *TitleStore) publish() error {
	all, err := s.All()
	if err != nil {
		s.logger.Warn("failed to refresh saved titles", "error", err)
		return err
	}
	s.snapshot.Set(all)
	return nil
}

// === backend helpers ===

func (s *TitleStore) get(id int) ([]byte, error) {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.mem[id], nil
	}
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSavedTitles).Get(key(id)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	return data, err
}

func (s *TitleStore) each(fn func(v []byte) error) error {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		for _, v := range s.mem {
			if err := fn(v); err != nil {
				return err
			}
		}
		return nil
	}
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSavedTitles).ForEach(func(_, v []byte) error {
			return fn(v)
		})
	})
}

func (s *TitleStore) update(disk func(b *bolt.Bucket) error, mem func(m map[int][]byte)) error {
	if s.db == nil {
		s.mu.Lock()
		mem(s.mem)
		s.mu.Unlock()
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return disk(tx.Bucket(bucketSavedTitles))
	})
}

// sortByDisplayTitle orders case-insensitively using Unicode collation, id breaking ties.
func sortByDisplayTitle(recs []SavedTitle) {
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(recs, func(i, j int) bool {
		if r := c.CompareString(recs[i].DisplayTitle(), recs[j].DisplayTitle()); r != 0 {
			return r < 0
		}
		return recs[i].ID < recs[j].ID
	})
}
