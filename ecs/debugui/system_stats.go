package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

// SystemStatsPanel shows frame timing, per-system execution statistics and
// storage totals.
type SystemStatsPanel struct {
	frameHistory []float32
	frameIndex   int
}

func NewSystemStatsPanel(historyFrames int) SystemStatsPanel {
	if historyFrames <= 0 {
		historyFrames = 1
	}
	return SystemStatsPanel{
		frameHistory: make([]float32, historyFrames),
	}
}

// Record stores one frame time, in seconds, in the ring buffer.
func (ps *SystemStatsPanel) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % len(ps.frameHistory)
}

// AverageFrameMillis averages the recorded history.
func (ps *SystemStatsPanel) AverageFrameMillis() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(len(ps.frameHistory))
}

func (ps *SystemStatsPanel) Render(world *ecs.World, deltaTime float32) {
	ps.Record(deltaTime)

	if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	worldStats := world.GetStats()
	storageStats := world.Storage().CollectStats()

	imgui.Text(fmt.Sprintf("Frame %d, %d entities, %d archetypes, %d singletons",
		worldStats.Frames, storageStats.TotalEntityCount, storageStats.ArchetypeCount, storageStats.SingletonCount))

	avg := ps.AverageFrameMillis()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Requires")
		imgui.TableSetupColumn("Processed")
		imgui.TableSetupColumn("Skipped")
		imgui.TableSetupColumn("Avg")
		imgui.TableHeadersRow()

		for _, system := range worldStats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(system.Name)
			imgui.TableNextColumn()
			imgui.Text(string(system.Kind))
			imgui.TableNextColumn()
			imgui.Text(strings.Join(system.Requires, ", "))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", system.Processed))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", system.Skipped))
			imgui.TableNextColumn()
			imgui.Text(system.AvgDuration.String())
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, singletonType := range storageStats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}
