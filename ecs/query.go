package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

// Query wraps a View with a cache of the matching entities, in spawn order.
// The cache is rebuilt only when the number of entities in storage changes,
// so for a fixed entity set the requirement check happens once.
type Query[T any] struct {
	view        *View[T]
	storage     *Storage
	lastCount   int
	cachedIds   []EntityId
	matchLookup *intmap.Map[EntityId, struct{}]
}

// NewQuery creates a new Query bound to storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init initializes or re-initializes the Query with a storage.
// Called by the World during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.lastCount = -1
	q.cachedIds = nil
	q.matchLookup = nil
}

// Execute refreshes the cache if entities were spawned since the last call.
func (q *Query[T]) Execute() {
	if q.storage == nil {
		panic("Query used before Init")
	}
	if q.storage.Len() == q.lastCount {
		return
	}

	q.cachedIds = q.cachedIds[:0]
	q.matchLookup = intmap.New[EntityId, struct{}](q.storage.Len())
	for _, id := range q.storage.entities {
		if q.view.Matches(id) {
			q.cachedIds = append(q.cachedIds, id)
			q.matchLookup.Put(id, struct{}{})
		}
	}
	q.lastCount = q.storage.Len()
}

// Matches reports whether id satisfies the query's requirements
func (q *Query[T]) Matches(id EntityId) bool {
	q.Execute()
	return q.matchLookup.Has(id)
}

// Get resolves id through the query's view
func (q *Query[T]) Get(id EntityId) *T {
	if !q.Matches(id) {
		return nil
	}
	return q.view.Get(id)
}

// Len returns the number of matching entities
func (q *Query[T]) Len() int {
	q.Execute()
	return len(q.cachedIds)
}

// Requires returns the required component types
func (q *Query[T]) Requires() []reflect.Type {
	return q.view.Requires()
}

// Iter returns an iterator over entity IDs and component data.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	q.Execute()

	return func(yield func(EntityId, T) bool) {
		var result T
		for _, id := range q.cachedIds {
			if !q.view.Fill(id, &result) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over component data only.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range q.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}
