package ecs

import (
	"context"
	"reflect"
	"strings"
	"time"
)

type SystemKind string

const (
	KindGlobal SystemKind = "global"
	KindEntity SystemKind = "entity"
)

// WorldStats provides statistics about world execution.
type WorldStats struct {
	Frames          uint64
	SystemCount     int
	TotalExecutions int64
	// Systems lists global systems first, then per-entity systems, each in registration order.
	Systems []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Kind           SystemKind
	Requires       []string
	ExecutionCount int64
	Processed      int64
	Skipped        int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	kind           SystemKind
	requires       []string
	executionCount int64
	processed      int64
	skipped        int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *systemStatsInternal) record(duration time.Duration) {
	s.executionCount++
	s.lastDuration = duration
	s.totalDuration += duration
	if duration < s.minDuration {
		s.minDuration = duration
	}
	if duration > s.maxDuration {
		s.maxDuration = duration
	}
}

type registeredSystem struct {
	system  System
	subject requirementSet
	stats   *systemStatsInternal
}

type registeredGlobal struct {
	system GlobalSystem
	stats  *systemStatsInternal
}

// World owns a Storage and the ordered system lists, and advances the
// simulation one frame at a time.
type World struct {
	storage *Storage
	globals []registeredGlobal
	systems []registeredSystem
	tick    uint64
}

// NewWorld creates a new world over the given storage.
func NewWorld(storage *Storage) *World {
	return &World{
		storage: storage,
	}
}

// Storage returns the entity table
func (w *World) Storage() *Storage {
	return w.storage
}

// Tick returns the number of frames processed so far
func (w *World) Tick() uint64 {
	return w.tick
}

// Register appends a per-entity system and initializes its View, Query and Singleton fields.
func (w *World) Register(system System) {
	subject := w.initializeFields(system)
	stats := newSystemStats(system, KindEntity)
	if subject != nil {
		for _, typ := range subject.Requires() {
			stats.requires = append(stats.requires, typ.String())
		}
	}
	w.systems = append(w.systems, registeredSystem{
		system:  system,
		subject: subject,
		stats:   stats,
	})
}

// RegisterGlobal appends a per-frame system and initializes its View, Query and Singleton fields.
func (w *World) RegisterGlobal(system GlobalSystem) {
	w.initializeFields(system)
	w.globals = append(w.globals, registeredGlobal{
		system: system,
		stats:  newSystemStats(system, KindGlobal),
	})
}

func newSystemStats(system any, kind SystemKind) *systemStatsInternal {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return &systemStatsInternal{
		name:        systemType.Name(),
		kind:        kind,
		minDuration: time.Duration(1<<63 - 1),
	}
}

// initializeFields calls Init on every exported View, Query and Singleton
// field, and returns the field tagged `ecs:"subject"` if there is one.
func (w *World) initializeFields(system any) requirementSet {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	systemType := systemValue.Type()
	var subject requirementSet

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()
		if !strings.HasPrefix(typeName, "View[") &&
			!strings.HasPrefix(typeName, "Query[") &&
			!strings.HasPrefix(typeName, "Singleton[") {
			continue
		}

		initMethod := field.Addr().MethodByName("Init")
		if !initMethod.IsValid() {
			panic("Init method not found on field: " + fieldType.Name)
		}
		initMethod.Call([]reflect.Value{reflect.ValueOf(w.storage)})

		if fieldType.Tag.Get("ecs") == "subject" {
			if subject != nil {
				panic("system " + systemType.Name() + " declares more than one subject")
			}
			set, ok := field.Addr().Interface().(requirementSet)
			if !ok {
				panic("subject field " + fieldType.Name + " must be a View or Query")
			}
			subject = set
		}
	}

	return subject
}

// Process advances the world by one frame: every global system once, in
// registration order, then every per-entity system against every entity,
// in registration and spawn order.
func (w *World) Process(dt float64) {
	w.tick++
	frame := NewUpdateFrame(w.tick, dt, w.storage)

	for _, global := range w.globals {
		start := time.Now()
		global.system.Execute(frame)
		global.stats.record(time.Since(start))
	}

	for _, registered := range w.systems {
		start := time.Now()
		for _, id := range w.storage.entities {
			if registered.subject != nil && !registered.subject.Matches(id) {
				registered.stats.skipped++
				continue
			}
			registered.system.Process(frame, id)
			registered.stats.processed++
		}
		registered.stats.record(time.Since(start))
	}
}

// Run processes frames at the given interval until the context is cancelled.
func (w *World) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			w.Process(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (w *World) GetStats() *WorldStats {
	all := make([]*systemStatsInternal, 0, len(w.globals)+len(w.systems))
	for _, global := range w.globals {
		all = append(all, global.stats)
	}
	for _, registered := range w.systems {
		all = append(all, registered.stats)
	}

	stats := &WorldStats{
		Frames:      w.tick,
		SystemCount: len(all),
		Systems:     make([]SystemStats, len(all)),
	}

	for i, internal := range all {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			Kind:           internal.kind,
			Requires:       internal.requires,
			ExecutionCount: internal.executionCount,
			Processed:      internal.processed,
			Skipped:        internal.skipped,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		stats.TotalExecutions += internal.executionCount
	}

	return stats
}
