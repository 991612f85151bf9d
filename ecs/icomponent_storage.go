package ecs

// iComponentStorage is an interface for a type-erased component storage.
type iComponentStorage interface {
	Append(item any) int
	Get(index int) any
	Has(index int) bool
	Len() int
}
