package scene

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	if l.BaseScale != 0.4 {
		t.Errorf("baseScale = %v, want 0.4", l.BaseScale)
	}
	if len(l.Objects) != 6 {
		t.Fatalf("len(objects) = %d, want 6", len(l.Objects))
	}
	spinner := l.Objects[5]
	if spinner.Name != "spinner" || spinner.Spin.Angle != 50 || spinner.Scale != [3]float32{5, 5, 5} {
		t.Errorf("spinner = %+v", spinner)
	}
}

func TestModelTranslateOnly(t *testing.T) {
	o := Object{Translate: [3]float32{0.2, 0, 0}}
	m := o.Model(0, 0.4)
	want := mgl32.Translate3D(0.2, 0, 0).Mul4(mgl32.Scale3D(0.4, 0.4, 0.4))
	if !near4x4(m, want, eps) {
		t.Fatalf("model = %v, want %v", m, want)
	}
	// origin of the object lands on its translation
	if p := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}); !near3(p.Vec3(), mgl32.Vec3{0.2, 0, 0}, eps) {
		t.Fatalf("origin maps to %v", p)
	}
}

func TestModelComposition(t *testing.T) {
	o := Object{
		Translate: [3]float32{-0.7, 0, 0.4},
		Rotate:    Rotation{Angle: 60, Axis: [3]float32{0.1, 0.5, 1}},
		Scale:     [3]float32{2, 2, 2},
	}
	axis := mgl32.Vec3{0.1, 0.5, 1}.Normalize()
	want := mgl32.Translate3D(-0.7, 0, 0.4).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(60), axis)).
		Mul4(mgl32.Scale3D(2, 2, 2)).
		Mul4(mgl32.Scale3D(0.4, 0.4, 0.4))
	if got := o.Model(0, 0.4); !near4x4(got, want, eps) {
		t.Fatalf("model = %v, want %v", got, want)
	}
}

func TestModelSpinDependsOnTime(t *testing.T) {
	o := Object{Spin: Rotation{Angle: 50, Axis: [3]float32{0.5, 1, 0}}}
	if o.Model(0, 1) == o.Model(1, 1) {
		t.Fatal("spin does not depend on time")
	}
	if !near4x4(o.Model(0, 1), mgl32.Ident4(), eps) {
		t.Fatal("spin at t=0 should be identity")
	}
}

func TestDecodeLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "baseScale: 1\nobjects: []\n"},
		{"bad color", "objects:\n  - translate: [0, 0, 0]\n    color: 7\n"},
		{"bad vector", "objects:\n  - translate: [0, 0]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeLayout(strings.NewReader(tt.doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestDecodeLayoutDefaultsBaseScale(t *testing.T) {
	l, err := DecodeLayout(strings.NewReader("objects:\n  - translate: [1, 2, 3]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if l.BaseScale != DefaultBaseScale {
		t.Fatalf("baseScale = %v, want %v", l.BaseScale, DefaultBaseScale)
	}
}

func TestDefaultLayoutIsValidated(t *testing.T) {
	l, err := DecodeLayout(bytes.NewReader(defaultLayout))
	if err != nil {
		t.Fatal(err)
	}
	if got := DefaultLayout(); len(got.Objects) != len(l.Objects) || got.BaseScale != l.BaseScale {
		t.Fatalf("DefaultLayout = %+v, want %+v", got, l)
	}
	for i, o := range l.Objects {
		if o.Color < 0 || o.Color >= ColorSlots {
			t.Errorf("object %d color slot %d", i, o.Color)
		}
	}
}

func TestLoadLayoutEmptyPathIsDefault(t *testing.T) {
	l, err := LoadLayout("")
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Objects) != len(DefaultLayout().Objects) {
		t.Fatal("empty path did not select the built-in layout")
	}
}

func TestStateColorAndAspect(t *testing.T) {
	s := NewState(1280, 720)
	s.Colors[2] = [4]float32{1, 0, 0, 1}
	if got := s.Color(6); got != (mgl32.Vec4{1, 0, 0, 1}) {
		t.Fatalf("Color(6) = %v", got)
	}
	if got := s.Aspect(); mgl32.Abs(got-1280.0/720.0) > eps {
		t.Fatalf("aspect = %v", got)
	}
	s.Height = 0
	if s.Aspect() != 1 {
		t.Fatal("degenerate window must give aspect 1")
	}
}
