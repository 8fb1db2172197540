package ui

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/richinsley/gltemplate/scene"
)

const panelTitle = "Program Values"

// Slider ranges for the panel.
const (
	offsetRange   = 2.0
	maxDimension  = 4.0
	maxSpeed      = 0.5
	minPanelFOV   = 1.0
	maxPanelFOV   = 45.0
	panelMargin   = 10.0
	hintFocused   = "Esc: release cursor   F1: hide panel"
	hintUnfocused = "Esc: capture cursor (WASD/Space/Shift to move)"
)

// buildPanel lays out the scene controls. It must run between imgui.NewFrame
// and imgui.Render.
func buildPanel(state *scene.State, frameTime float64) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: panelMargin, Y: panelMargin}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	if !imgui.Begin(panelTitle) {
		imgui.End()
		return
	}
	defer imgui.End()

	imgui.SliderFloat("x", &state.Offset[0], -offsetRange, offsetRange)
	imgui.SliderFloat("y", &state.Offset[1], -offsetRange, offsetRange)
	imgui.SliderFloat("dimension scalar", &state.DimensionScalar, 0, maxDimension)

	imgui.Separator()
	imgui.SliderFloat("camera speed", &state.Camera.Speed, 0, maxSpeed)
	imgui.SliderFloat("fov", &state.Camera.FOV, minPanelFOV, maxPanelFOV)

	imgui.Separator()
	for i := range state.Colors {
		imgui.ColorEdit4(fmt.Sprintf("color %d", i), &state.Colors[i])
	}

	imgui.Separator()
	pos, front := state.Camera.Position, state.Camera.Front
	imgui.Text(fmt.Sprintf("position  %.2f %.2f %.2f", pos[0], pos[1], pos[2]))
	imgui.Text(fmt.Sprintf("front     %.2f %.2f %.2f", front[0], front[1], front[2]))
	if frameTime > 0 {
		imgui.Text(fmt.Sprintf("%.3f ms/frame (%.1f FPS)", frameTime*1000, 1/frameTime))
	}

	if state.Focused {
		imgui.Text(hintFocused)
	} else {
		imgui.Text(hintUnfocused)
	}
}
