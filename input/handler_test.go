package input

import (
	"testing"

	"github.com/richinsley/gltemplate/scene"
)

func TestKeyMapsToMovement(t *testing.T) {
	tests := []struct {
		key  Key
		want scene.Movement
	}{
		{KeyW, scene.Movement{Front: true}},
		{KeyS, scene.Movement{Back: true}},
		{KeyA, scene.Movement{Left: true}},
		{KeyD, scene.Movement{Right: true}},
		{KeySpace, scene.Movement{Up: true}},
		{KeyLeftShift, scene.Movement{Down: true}},
		{KeyUnknown, scene.Movement{}},
	}
	for _, tt := range tests {
		s := scene.NewState(800, 600)
		h := NewHandler(s)
		h.Key(tt.key, true)
		if s.Movement != tt.want {
			t.Errorf("key %d pressed: movement = %+v, want %+v", tt.key, s.Movement, tt.want)
		}
		h.Key(tt.key, false)
		if s.Movement != (scene.Movement{}) {
			t.Errorf("key %d released: movement = %+v", tt.key, s.Movement)
		}
	}
}

func TestEscapeTogglesFocus(t *testing.T) {
	s := scene.NewState(800, 600)
	h := NewHandler(s)
	var notified []bool
	h.OnFocusChange = func(f bool) { notified = append(notified, f) }

	h.Key(KeyW, true)
	h.Key(KeyEscape, true)
	if s.Focused {
		t.Fatal("escape did not release focus")
	}
	if s.Movement != (scene.Movement{}) {
		t.Fatal("movement not cleared when focus released")
	}
	h.Key(KeyEscape, false)
	h.Key(KeyEscape, true)
	if !s.Focused {
		t.Fatal("escape did not restore focus")
	}
	if len(notified) != 2 || notified[0] || !notified[1] {
		t.Fatalf("notifications = %v", notified)
	}
}

func TestF1TogglesUI(t *testing.T) {
	s := scene.NewState(800, 600)
	h := NewHandler(s)
	h.Key(KeyF1, true)
	h.Key(KeyF1, false)
	if s.ShowUI {
		t.Fatal("F1 did not hide the UI")
	}
}

func TestCursorFirstSampleDoesNotMoveCamera(t *testing.T) {
	s := scene.NewState(800, 600)
	h := NewHandler(s)
	front := s.Camera.Front
	h.CursorPos(400, 300)
	if s.Camera.Front != front {
		t.Fatal("first cursor sample changed the camera")
	}
	h.CursorPos(450, 300)
	if s.Camera.Front == front {
		t.Fatal("cursor motion did not turn the camera")
	}
	if s.Camera.Yaw != -90+50*s.Camera.Sensitivity {
		t.Fatalf("yaw = %v", s.Camera.Yaw)
	}
}

func TestCursorIgnoredWhenUnfocused(t *testing.T) {
	s := scene.NewState(800, 600)
	h := NewHandler(s)
	h.ToggleFocus()
	front := s.Camera.Front
	h.CursorPos(0, 0)
	h.CursorPos(100, 100)
	h.Scroll(5)
	if s.Camera.Front != front || s.Camera.FOV != 45 {
		t.Fatal("camera changed while unfocused")
	}
}

func TestScrollZooms(t *testing.T) {
	s := scene.NewState(800, 600)
	h := NewHandler(s)
	h.Scroll(5)
	if s.Camera.FOV != 40 {
		t.Fatalf("fov = %v, want 40", s.Camera.FOV)
	}
}
