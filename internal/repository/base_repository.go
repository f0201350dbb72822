package repository

import (
	"context"
	"slices"
	"sync"

	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

// keyed is satisfied by pointers to stored entities. The table assigns the key
// on insert.
type keyed[T any] interface {
	*T
	Key() int64
	AssignKey(id int64)
}

// BaseRepository defines common operations shared by every entity type.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id int64, dest *T) error
	Update(ctx context.Context, id int64, apply func(*T) error, dest *T) error
	List(ctx context.Context) ([]T, error)
}

// table is a process-resident map of one entity type. Ids come from a
// per-table counter starting at 1 and are never reused.
type table[T any, P keyed[T]] struct {
	mu     sync.RWMutex
	next   int64
	rows   map[int64]T
	entity string
}

func newTable[T any, P keyed[T]](entity string) *table[T, P] {
	return &table[T, P]{next: 1, rows: make(map[int64]T), entity: entity}
}

func (t *table[T, P]) notFound() *appErr.AppError {
	return appErr.Newf(appErr.CodeNotFound, "%s not found", t.entity)
}

// insert stores a copy of obj under a fresh id. clash, when set, is evaluated
// against every stored row under the write lock; a hit aborts the insert with
// the returned error.
func (t *table[T, P]) insert(obj *T, clash func(candidate, existing *T) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if clash != nil {
		for _, row := range t.rows {
			if err := clash(obj, &row); err != nil {
				return err
			}
		}
	}

	P(obj).AssignKey(t.next)
	t.next++
	t.rows[P(obj).Key()] = *obj
	return nil
}

func (t *table[T, P]) get(id int64, dest *T) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return t.notFound()
	}
	*dest = row
	return nil
}

// update applies a shallow merge to a working copy, checks clash against the
// other rows and only then commits. The id cannot be changed by apply.
func (t *table[T, P]) update(id int64, apply func(*T) error, clash func(candidate, existing *T) error, dest *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return t.notFound()
	}
	if err := apply(&row); err != nil {
		return err
	}
	P(&row).AssignKey(id)

	if clash != nil {
		for otherID, other := range t.rows {
			if otherID == id {
				continue
			}
			if err := clash(&row, &other); err != nil {
				return err
			}
		}
	}

	t.rows[id] = row
	if dest != nil {
		*dest = row
	}
	return nil
}

func (t *table[T, P]) remove(id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return t.notFound()
	}
	delete(t.rows, id)
	return nil
}

// filter returns matching rows in ascending id order. A nil keep matches all.
func (t *table[T, P]) filter(keep func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		row := t.rows[id]
		if keep == nil || keep(&row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *table[T, P]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

type baseRepository[T any, P keyed[T]] struct {
	t *table[T, P]
}

func newBaseRepository[T any, P keyed[T]](entity string) baseRepository[T, P] {
	return baseRepository[T, P]{t: newTable[T, P](entity)}
}

func (r baseRepository[T, P]) Create(ctx context.Context, obj *T) error {
	return r.t.insert(obj, nil)
}

func (r baseRepository[T, P]) GetByID(ctx context.Context, id int64, dest *T) error {
	return r.t.get(id, dest)
}

func (r baseRepository[T, P]) Update(ctx context.Context, id int64, apply func(*T) error, dest *T) error {
	return r.t.update(id, apply, nil, dest)
}

func (r baseRepository[T, P]) List(ctx context.Context) ([]T, error) {
	return r.t.filter(nil), nil
}
