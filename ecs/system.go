package ecs

import "reflect"

// System is a per-entity rule. The World calls Process once for every entity,
// in spawn order. A System may tag one View or Query field `ecs:"subject"`;
// entities that don't satisfy it are skipped (and counted) instead of being
// passed to Process.
type System interface {
	Process(frame *UpdateFrame, id EntityId)
}

// GlobalSystem is a per-frame rule. It may own state across frames.
type GlobalSystem interface {
	Execute(frame *UpdateFrame)
}

// requirementSet is implemented by *View[T] and *Query[T].
type requirementSet interface {
	Matches(id EntityId) bool
	Requires() []reflect.Type
}
