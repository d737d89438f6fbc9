// Package lifecycle owns the active/inactive state of a job posting: the
// "currently open" predicate shared by the public queries and the sweep job,
// the pre-persistence normalization step, and slug assignment.
package lifecycle

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/model"
)

// createAttempts is how many times a create retries the suffix search after
// losing a slug race to a concurrent insert.
const createAttempts = 3

// IsCurrentlyOpen reports whether the posting accepts applications at the
// given time: active, and either no expiration or expiration in the future.
func IsCurrentlyOpen(posting *model.JobPosting, now time.Time) bool {
	if !posting.IsActive {
		return false
	}
	return posting.ExpirationDate == nil || posting.ExpirationDate.After(now)
}

// OpenScope is the query form of IsCurrentlyOpen, used by listing/detail
// queries so a stale is_active flag can never leak an expired posting.
func OpenScope(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"is_active = ? AND (expiration_date IS NULL OR expiration_date > ?)",
			true, now,
		)
	}
}

// NormalizeBeforeSave applies the write-time invariant: a posting whose
// expiration has passed must not stay active. It is pure and idempotent and
// must run before every store write, creates and updates alike.
func NormalizeBeforeSave(posting model.JobPosting, now time.Time) model.JobPosting {
	if posting.ExpirationDate != nil && !posting.ExpirationDate.After(now) {
		posting.IsActive = false
	}
	return posting
}

// CreatePosting persists a new posting after slug assignment and
// normalization. The suffix scan is a best-effort fast path: when a
// concurrent create wins the same slug, the unique index rejects the insert
// and the scan is retried with the slug cleared.
func CreatePosting(db *gorm.DB, posting *model.JobPosting, now time.Time) error {
	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		if err := AssignSlugIfAbsent(db, posting); err != nil {
			return err
		}
		*posting = NormalizeBeforeSave(*posting, now)

		err := db.Create(posting).Error
		if err == nil {
			return nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Lost the slug race, retry the suffix search.
			posting.Slug = ""
			lastErr = err
			continue
		}
		return err
	}
	return lastErr
}

// UpdatePosting persists changes to an existing posting through the same
// normalization step. The slug is left untouched unless it was never set.
func UpdatePosting(db *gorm.DB, posting *model.JobPosting, now time.Time) error {
	if err := AssignSlugIfAbsent(db, posting); err != nil {
		return err
	}
	*posting = NormalizeBeforeSave(*posting, now)
	return db.Save(posting).Error
}
