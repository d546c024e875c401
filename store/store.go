// Package store holds the data-access layer. Every read returns a value plus
// an ErrorKind instead of an error: storage failures are logged here and the
// caller gets a safe zero value with the kind telling it what happened.
// Mutations take a Principal and enforce authorization at this boundary.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"safarihub/cache"
	"safarihub/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindNotFound
	KindConflict
	KindForbidden
	KindTransient
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// Principal is the authenticated caller. Mutating functions check it
// themselves rather than trusting the HTTP layer to have gated the request.
type Principal struct {
	UserID uuid.UUID
	Role   models.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

type Store struct {
	db    *gorm.DB
	cache cache.Store
}

func New(db *gorm.DB, c cache.Store) *Store {
	return &Store{db: db, cache: c}
}

const cacheStale = 5 * time.Minute

func classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, gorm.ErrRecordNotFound):
		return KindNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return KindConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return KindConflict
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return KindTransient
	default:
		return KindUnknown
	}
}

// fail logs the failure and maps it to a kind. Reads never propagate the
// error itself past this point.
func fail(op string, err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	log.Printf("store: %s: %v", op, err)
	return classify(err)
}

// JSONList marshals a string list into a jsonb column value.
func JSONList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}
