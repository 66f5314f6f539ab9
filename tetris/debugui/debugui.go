// Package debugui provides Dear ImGui panels for inspecting a running game:
// scheduler timings, the board and the falling piece.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// InputState tracks whether Dear ImGui wants to consume mouse or keyboard
// input this frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders a list of panels each frame.
type Overlay struct {
	items []func()
	Input InputState
}

// NewOverlay creates an overlay rendering items in order.
func NewOverlay(items ...func()) *Overlay {
	return &Overlay{items: items}
}

// Add appends a panel.
func (o *Overlay) Add(item func()) {
	o.items = append(o.items, item)
}

// Len returns the number of registered panels.
func (o *Overlay) Len() int {
	return len(o.items)
}

// Render updates Input and renders all panels. It must be called between
// the backend's BeginFrame and EndFrame.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item()
	}
}
