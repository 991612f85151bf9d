// Package ebiten hosts the debugui inspector inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/ecs/debugui"
)

// Overlay wraps the Ebiten Dear ImGui backend and an Inspector.
type Overlay struct {
	*ebitenbackend.EbitenBackend
	inspector *debugui.Inspector
}

// NewOverlay creates the backend window and binds it to inspector.
// The backend owns the Ebiten window, so call this before ebiten.RunGame.
func NewOverlay(inspector *debugui.Inspector, title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		EbitenBackend: backend,
		inspector:     inspector,
	}
}

// Update builds this frame's inspector windows.
func (o *Overlay) Update(deltaTime float32) {
	o.BeginFrame()
	o.inspector.Render(deltaTime)
	o.EndFrame()
}

// DrawOver draws the inspector on top of screen.
func (o *Overlay) DrawOver(screen *ebiten.Image) {
	o.Draw(screen)
}

// WantsKeyboard reports whether game input should be ignored this frame.
func (o *Overlay) WantsKeyboard() bool {
	return debugui.WantsKeyboard()
}
