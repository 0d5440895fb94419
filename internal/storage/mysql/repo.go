package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"karilike/internal/domain"
)

func valStr(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// Repo stores owner rating aggregates and listing submissions.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) GetAggregate(ctx context.Context, ownerKey string) (domain.Aggregate, error) {
	var a domain.Aggregate
	err := r.db.QueryRowContext(ctx, getAggregateSQL, ownerKey).Scan(&a.Avg, &a.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Aggregate{}, nil
	}
	return a, err
}

// SubmitRating applies stars under a row lock so concurrent ratings for the
// same owner are never lost. The row is created up front so the lock is a
// record lock rather than a gap lock. Only the aggregate is stored; the
// review text is dropped.
func (r *Repo) SubmitRating(ctx context.Context, ownerKey string, stars int, _ string) (domain.Aggregate, error) {
	if err := r.SeedAggregate(ctx, ownerKey, domain.Aggregate{}); err != nil {
		return domain.Aggregate{}, fmt.Errorf("ensure aggregate row: %w", err)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Aggregate{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var cur domain.Aggregate
	err = tx.QueryRowContext(ctx, lockAggregateSQL, ownerKey).Scan(&cur.Avg, &cur.Count)
	if err != nil {
		return domain.Aggregate{}, fmt.Errorf("lock aggregate: %w", err)
	}
	next, err := cur.Apply(stars)
	if err != nil {
		return domain.Aggregate{}, err
	}
	if _, err := tx.ExecContext(ctx, upsertAggregateSQL, ownerKey, next.Avg, next.Count); err != nil {
		return domain.Aggregate{}, fmt.Errorf("upsert aggregate: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return domain.Aggregate{}, err
	}
	return next, nil
}

func (r *Repo) SeedAggregate(ctx context.Context, ownerKey string, a domain.Aggregate) error {
	_, err := r.db.ExecContext(ctx, seedAggregateSQL, ownerKey, a.Avg, a.Count)
	return err
}

func (r *Repo) SubmitListing(ctx context.Context, s domain.Submission) error {
	amen, _ := json.Marshal(nonNil(s.Amenities))
	imgs, _ := json.Marshal(nonNil(s.Images))
	_, err := r.db.ExecContext(ctx, insertSubmissionSQL,
		s.ID,
		string(s.Intent),
		s.Category,
		s.Title,
		s.Price,
		s.Location,
		valStr(s.Description),
		string(amen),
		string(imgs),
		s.OwnerName,
		s.OwnerContact,
		valStr(s.OwnerID),
	)
	return err
}

// GetSubmission reads back a stored listing; used by review tooling.
func (r *Repo) GetSubmission(ctx context.Context, id string) (domain.Submission, error) {
	var (
		s          domain.Submission
		intent     string
		desc, own  sql.NullString
		amen, imgs []byte
	)
	err := r.db.QueryRowContext(ctx, getSubmissionSQL, id).Scan(
		&s.ID, &intent, &s.Category, &s.Title, &s.Price, &s.Location, &desc,
		&amen, &imgs, &s.OwnerName, &s.OwnerContact, &own,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Submission{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Submission{}, err
	}
	s.Intent = domain.ListingIntent(intent)
	s.Type = domain.Category(s.Category)
	s.Description = desc.String
	s.OwnerID = own.String
	_ = json.Unmarshal(amen, &s.Amenities)
	_ = json.Unmarshal(imgs, &s.Images)
	return s, nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
