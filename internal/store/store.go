// Package store persists content items and their field values in SQLite.
// Field values are kept as the JSON their field type produced.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrNotFound is returned when an item does not exist.
var ErrNotFound = errors.New("store: item not found")

// Item is a piece of content built from a declared template.
type Item struct {
	ID        string
	Template  string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FieldValue is the persisted value of one field of an item.
type FieldValue struct {
	FieldID    string
	Raw        json.RawMessage
	SearchText string
}

// Store is a SQLite backed item repository. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating when needed) the database at path and applies the
// schema. Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("store: database path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases shared and serialises
	// writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enable foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}

	return &Store{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateItem inserts a new item for template.
func (s *Store) CreateItem(ctx context.Context, template, title string) (Item, error) {
	template = strings.TrimSpace(template)
	if template == "" {
		return Item{}, fmt.Errorf("store: template is required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = template
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Item{}, fmt.Errorf("store: generate id: %w", err)
	}
	now := s.now()
	item := Item{ID: id.String(), Template: template, Title: title, CreatedAt: now, UpdatedAt: now}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO items (item_id, template, title, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		item.ID, item.Template, item.Title, formatTime(now), formatTime(now),
	)
	if err != nil {
		return Item{}, fmt.Errorf("store: insert item: %w", err)
	}
	return item, nil
}

// Item returns the item with id or ErrNotFound.
func (s *Store) Item(ctx context.Context, id string) (Item, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT item_id, template, title, created_at, updated_at FROM items WHERE item_id = ?", id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, ErrNotFound
	}
	if err != nil {
		return Item{}, fmt.Errorf("store: get item %s: %w", id, err)
	}
	return item, nil
}

// Items lists every item, oldest first.
func (s *Store) Items(ctx context.Context) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT item_id, template, title, created_at, updated_at FROM items ORDER BY created_at, item_id")
	if err != nil {
		return nil, fmt.Errorf("store: list items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list items: %w", err)
	}
	return items, nil
}

// SaveFields replaces the given field values of item id in one transaction.
// Fields not listed keep their previous value.
func (s *Store) SaveFields(ctx context.Context, id string, values []FieldValue) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	now := formatTime(s.now())
	res, err := tx.ExecContext(ctx, "UPDATE items SET updated_at = ? WHERE item_id = ?", now, id)
	if err != nil {
		return fmt.Errorf("store: touch item %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	for _, value := range values {
		if !json.Valid(value.Raw) {
			return fmt.Errorf("store: field %q: value is not valid JSON", value.FieldID)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO field_values (item_id, field_id, raw, search_text, updated_at)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT (item_id, field_id) DO UPDATE SET
			   raw = excluded.raw,
			   search_text = excluded.search_text,
			   updated_at = excluded.updated_at`,
			id, value.FieldID, string(value.Raw), value.SearchText, now,
		)
		if err != nil {
			return fmt.Errorf("store: save field %q of %s: %w", value.FieldID, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

// Fields returns the stored field values of item id keyed by field id.
func (s *Store) Fields(ctx context.Context, id string) (map[string]FieldValue, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT field_id, raw, search_text FROM field_values WHERE item_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("store: load fields of %s: %w", id, err)
	}
	defer rows.Close()

	out := make(map[string]FieldValue)
	for rows.Next() {
		var (
			value FieldValue
			raw   string
		)
		if err := rows.Scan(&value.FieldID, &raw, &value.SearchText); err != nil {
			return nil, fmt.Errorf("store: scan field: %w", err)
		}
		value.Raw = json.RawMessage(raw)
		out[value.FieldID] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: load fields of %s: %w", id, err)
	}
	return out, nil
}

// DeleteItem removes item id and its field values.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE item_id = ?", id)
	if err != nil {
		return fmt.Errorf("store: delete item %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (Item, error) {
	var (
		item               Item
		created, updated string
	)
	if err := row.Scan(&item.ID, &item.Template, &item.Title, &created, &updated); err != nil {
		return Item{}, err
	}
	var err error
	if item.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return Item{}, fmt.Errorf("parse created_at: %w", err)
	}
	if item.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return Item{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return item, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
