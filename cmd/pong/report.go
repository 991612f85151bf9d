package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/pong"
)

type Report struct {
	// Configuration
	FrameBudget int
	TickRate    int
	TargetScore int
	Realtime    bool

	// Results
	Frames        int
	TotalTime     time.Duration
	FrameTime     Stats
	LeftScore     int
	RightScore    int
	Winner        string
	Snapshot      pong.Snapshot
	World         *ecs.WorldStats
	Storage       ecs.StorageStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Pong Simulation Report

## Run
- **Frames:** {{.Frames}} of {{.FrameBudget}}
- **Tick Rate:** {{.TickRate}}{{if .Realtime}} (realtime){{end}}
- **Target Score:** {{if .TargetScore}}{{.TargetScore}}{{else}}none{{end}}
- **Total Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Score
- **Left:** {{.LeftScore}}
- **Right:** {{.RightScore}}
- **Winner:** {{if .Winner}}{{.Winner}}{{else}}none{{end}}
- **Ball:** ({{f3 .Snapshot.Ball.X}}, {{f3 .Snapshot.Ball.Y}}) velocity ({{f4 .Snapshot.Ball.VX}}, {{f4 .Snapshot.Ball.VY}})

## Systems
| System | Kind | Requires | Runs | Processed | Skipped | Avg |
|---|---|---|---|---|---|---|
{{- range .World.Systems}}
| {{.Name}} | {{.Kind}} | {{join .Requires}} | {{.ExecutionCount}} | {{.Processed}} | {{.Skipped}} | {{.AvgDuration}} |
{{- end}}

## Storage
- **Entities:** {{.Storage.TotalEntityCount}} in {{.Storage.ArchetypeCount}} archetypes
{{- range .Storage.ArchetypeBreakdown}}
  - {{printf "%08x" .ID}}: {{.EntityCount}} x [{{join .ComponentTypes}}]
{{- end}}
- **Singletons:** {{join .Storage.SingletonTypes}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"join": func(items []string) string {
			if len(items) == 0 {
				return "-"
			}
			return strings.Join(items, ", ")
		},
		"f3": func(v float64) string {
			return fmt.Sprintf("%.3f", v)
		},
		"f4": func(v float64) string {
			return fmt.Sprintf("%.4f", v)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	if err := tmpl.Execute(w, r); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
