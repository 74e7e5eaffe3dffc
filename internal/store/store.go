// Package store holds the in-memory entity collections. Each collection is a
// go-memdb table and hands out copies, so callers can treat list results as
// immutable snapshots.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-memdb"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

var validate = validator.New()

func validateInput(op string, v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// IsValidationError reports whether err came from input validation.
func IsValidationError(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}

// FieldErrors flattens validation errors to field -> failed rule.
func FieldErrors(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

const (
	itemsTable = "items"
	indexID    = "id"
	indexSeq   = "seq"
)

// record wraps a stored value. Seq is a zero-padded insertion counter, so
// walking the seq index yields insertion order.
type record[T any] struct {
	ID   string
	Seq  string
	Item T
}

var collectionSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		itemsTable: {
			Name: itemsTable,
			Indexes: map[string]*memdb.IndexSchema{
				indexID: {
					Name:    indexID,
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
				indexSeq: {
					Name:    indexSeq,
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Seq"},
				},
			},
		},
	},
}

// collection is one entity table. Records are never modified in place:
// writes insert a fresh record, so read transactions see stable snapshots.
type collection[T any] struct {
	db *memdb.MemDB
	// seq is only touched inside write transactions, which memdb serializes.
	seq uint64
}

func newCollection[T any]() *collection[T] {
	db, err := memdb.NewMemDB(collectionSchema)
	if err != nil {
		panic(fmt.Sprintf("store: invalid schema: %v", err))
	}
	return &collection[T]{db: db}
}

func (c *collection[T]) list(keep func(T) bool) []T {
	txn := c.db.Txn(false)
	defer txn.Abort()

	out := []T{}
	it, err := txn.Get(itemsTable, indexSeq)
	if err != nil {
		return out
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		item := obj.(*record[T]).Item
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	rec, err := first[T](txn, id)
	if err != nil || rec == nil {
		var zero T
		return zero, false
	}
	return rec.Item, true
}

func first[T any](txn *memdb.Txn, id string) (*record[T], error) {
	obj, err := txn.First(itemsTable, indexID, id)
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.(*record[T]), nil
}

func (c *collection[T]) put(txn *memdb.Txn, rec *record[T]) error {
	if rec.Seq == "" {
		c.seq++
		rec.Seq = fmt.Sprintf("%020d", c.seq)
	}
	if err := txn.Insert(itemsTable, rec); err != nil {
		return fmt.Errorf("store %q: %w", rec.ID, err)
	}
	return nil
}

func (c *collection[T]) insert(id string, item T) error {
	txn := c.db.Txn(true)
	defer txn.Abort()

	existing, err := first[T](txn, id)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%q: %w", id, ErrConflict)
	}
	if err := c.put(txn, &record[T]{ID: id, Item: item}); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// update applies fn to a copy and stores it only when fn succeeds.
func (c *collection[T]) update(id string, fn func(*T) error) (T, error) {
	var zero T
	txn := c.db.Txn(true)
	defer txn.Abort()

	rec, err := first[T](txn, id)
	if err != nil {
		return zero, err
	}
	if rec == nil {
		return zero, ErrNotFound
	}
	item := rec.Item
	if err := fn(&item); err != nil {
		return zero, err
	}
	if err := c.put(txn, &record[T]{ID: id, Seq: rec.Seq, Item: item}); err != nil {
		return zero, err
	}
	txn.Commit()
	return item, nil
}

// touch is update for background completions: a missing id is a no-op.
func (c *collection[T]) touch(id string, fn func(*T)) bool {
	_, err := c.update(id, func(item *T) error {
		fn(item)
		return nil
	})
	return err == nil
}

// upsert updates the item under id or inserts the result of create.
func (c *collection[T]) upsert(id string, create func() (T, error), apply func(*T) error) (bool, error) {
	txn := c.db.Txn(true)
	defer txn.Abort()

	rec, err := first[T](txn, id)
	if err != nil {
		return false, err
	}
	if rec != nil {
		item := rec.Item
		if err := apply(&item); err != nil {
			return false, err
		}
		if err := c.put(txn, &record[T]{ID: id, Seq: rec.Seq, Item: item}); err != nil {
			return false, err
		}
		txn.Commit()
		return false, nil
	}

	item, err := create()
	if err != nil {
		return false, err
	}
	if err := c.put(txn, &record[T]{ID: id, Item: item}); err != nil {
		return false, err
	}
	txn.Commit()
	return true, nil
}

func (c *collection[T]) remove(id string) error {
	txn := c.db.Txn(true)
	defer txn.Abort()

	rec, err := first[T](txn, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if err := txn.Delete(itemsTable, rec); err != nil {
		return fmt.Errorf("delete %q: %w", id, err)
	}
	txn.Commit()
	return nil
}

func (c *collection[T]) count() int {
	return len(c.list(nil))
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// matches treats "" and "all" as a wildcard.
func matches(value, filter string) bool {
	return filter == "" || filter == "all" || value == filter
}
