package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"laxmimall-server/models"
)

// ErrNotFound is returned when a record or table key does not exist.
var ErrNotFound = errors.New("record not found")

// Document is the whole persisted state: one field per table, loaded
// wholesale at startup and rewritten wholesale after each mutation.
type Document struct {
	HomeBanners       []models.Banner                  `json:"homeBanners"`
	AboutContent      []models.AboutContent            `json:"aboutContent"`
	DiscoverProducts  []models.DiscoverProduct         `json:"discoverProducts"`
	Categories        []models.Category                `json:"categories"`
	Testimonials      []models.Testimonial             `json:"testimonials"`
	Team              []models.TeamMember              `json:"team"`
	TopRatingProducts map[string][]models.RatedProduct `json:"topRatingProducts"`
	Blogs             models.Blogs                     `json:"blogs"`
	InnerBlog         []models.BlogPost                `json:"innerBlog"`
	Products          []models.Product                 `json:"products"`
	ProductDetails    []models.ProductDetail           `json:"productDetails"`
	CartItems         []models.CartItem                `json:"cartItems"`
	WishlistItems     []models.WishlistItem            `json:"wishlistItems"`
	Users             []models.User                    `json:"users"`
}

// Store wraps the document with a mutex so that concurrent requests see a
// serialized sequence of read-modify-write cycles. The original mock had
// no such guard and could drop one of two simultaneous updates; the lock
// strengthens that without changing single-threaded behavior.
type Store struct {
	mu   sync.Mutex
	path string
	doc  *Document
}

var Database *Store

// Open loads the document from path and keeps the path for later flushes.
func Open(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	doc := &Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}

	Database = &Store{path: path, doc: doc}
	return Database, nil
}

// NewMemStore builds a store with no backing file. Flush is a no-op, which
// makes it suitable for tests.
func NewMemStore(doc *Document) *Store {
	if doc == nil {
		doc = &Document{}
	}
	return &Store{doc: doc}
}

// View runs fn with read access to the document. fn must not retain or
// mutate what it is given.
func (s *Store) View(fn func(doc *Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// Update runs fn under the write lock and flushes before returning, so the
// durability contract observable to clients stays write-then-ack. If fn
// returns an error nothing is flushed.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.doc); err != nil {
		return err
	}
	return s.flushLocked()
}

// Flush persists the current document.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

// Close flushes and releases the store.
func (s *Store) Close() error {
	return s.Flush()
}

func (s *Store) flushLocked() error {
	if s.path == "" {
		return nil
	}

	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	// Write to a sibling temp file and rename so a crash mid-write never
	// leaves a truncated document behind.
	tmp := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
