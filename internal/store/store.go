// Package store persists the strings submitted through the string endpoints.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/pkg/errors"
	dbutil "github/chapool/go-transfer/internal/util/db"
)

var ErrNotFound = errors.New("string not found")

type StringRecord struct {
	ID        int64     `boil:"id"`
	Value     string    `boil:"value"`
	CreatedAt time.Time `boil:"created_at"`
}

type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Create stores value and returns the stored record.
func (s *Service) Create(ctx context.Context, value string) (*StringRecord, error) {
	var rec StringRecord

	err := dbutil.WithTransaction(ctx, s.db, func(exec boil.ContextExecutor) error {
		return queries.Raw(
			"INSERT INTO strings (value) VALUES ($1) RETURNING id, value, created_at",
			value,
		).Bind(ctx, exec, &rec)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert string")
	}

	return &rec, nil
}

// List returns all stored strings in insertion order. A non-blank search
// restricts the result to values containing every whitespace separated term.
func (s *Service) List(ctx context.Context, search string) ([]*StringRecord, error) {
	mods := []qm.QueryMod{
		qm.Select("id", "value", "created_at"),
		qm.From("strings"),
	}
	mods = append(mods, dbutil.ILikeSearch(search, "strings", "value")...)
	mods = append(mods, qm.OrderBy("id ASC"))

	recs := []*StringRecord{}
	if err := NewQuery(mods...).Bind(ctx, s.db, &recs); err != nil {
		return nil, errors.Wrap(err, "failed to list strings")
	}

	return recs, nil
}

// Get returns the string with the given id or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*StringRecord, error) {
	var rec StringRecord

	err := NewQuery(
		qm.Select("id", "value", "created_at"),
		qm.From("strings"),
		qm.Where("id = ?", id),
	).Bind(ctx, s.db, &rec)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get string")
	}

	return &rec, nil
}
