// Package debugui provides Dear ImGui inspector windows over an ecs.World:
// an entity browser, a component inspector with live editing, and a
// per-system statistics panel.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

// Inspector groups the debug windows for one world.
type Inspector struct {
	world      *ecs.World
	browser    EntityBrowser
	components ComponentInspector
	systems    SystemStatsPanel
}

// NewInspector creates an inspector for world. historyFrames sizes the frame-time plot.
func NewInspector(world *ecs.World, historyFrames int) *Inspector {
	return &Inspector{
		world:   world,
		browser: NewEntityBrowser(),
		systems: NewSystemStatsPanel(historyFrames),
	}
}

// Render draws every window. Call between the backend's BeginFrame and EndFrame.
func (i *Inspector) Render(deltaTime float32) {
	storage := i.world.Storage()
	i.browser.Render(storage)
	i.components.Render(storage, i.browser.Selected())
	i.systems.Render(i.world, deltaTime)
}

// Selected returns the entity chosen in the browser, if any.
func (i *Inspector) Selected() (ecs.EntityId, bool) {
	id := i.browser.Selected()
	return id, id != 0
}

// WantsKeyboard reports whether ImGui is consuming keyboard input this frame.
func WantsKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
