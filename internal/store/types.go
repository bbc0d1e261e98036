package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned by Update and Remove when no row matches.
var ErrNotFound = errors.New("store: record not found")

// PersistenceError wraps a storage failure: a constraint violation, a lost
// connection or any other error reported by the driver.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Predicate narrows a query. Predicates are GORM scopes, so they compose with
// each other and are rendered by the dialect rather than by string building.
type Predicate = func(*gorm.DB) *gorm.DB

// ByID matches the villa with the given identifier.
func ByID(id int64) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

// ExcludeID drops the row with the given identifier.
func ExcludeID(id int64) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id <> ?", id)
	}
}

// NameEqualFold matches names case-insensitively.
func NameEqualFold(name string) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(name) = ?", strings.ToLower(name))
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// NameContains is a case-insensitive substring match on name. LIKE wildcards
// in term match literally.
func NameContains(term string) Predicate {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}
}

// OccupancyEquals matches villas sleeping exactly n guests.
func OccupancyEquals(n int) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("occupancy = ?", n)
	}
}

// ByVillaNo matches the villa number with the given key.
func ByVillaNo(no int64) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("villa_no = ?", no)
	}
}

// ByVillaID matches villa numbers belonging to one villa.
func ByVillaID(villaID int64) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("villa_id = ?", villaID)
	}
}
