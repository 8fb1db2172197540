package scene

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var defaultLayout []byte

// DefaultBaseScale is applied to every object when a layout omits baseScale.
const DefaultBaseScale = 0.4

// Rotation is an angle in degrees about an axis. A zero axis means no rotation.
type Rotation struct {
	Angle float32    `yaml:"angle"`
	Axis  [3]float32 `yaml:"axis"`
}

func (r Rotation) active() bool {
	return r.Angle != 0 && mgl32.Vec3(r.Axis).Len() > 0
}

// Object is one drawn cube.
type Object struct {
	Name      string     `yaml:"name"`
	Translate [3]float32 `yaml:"translate"`
	Rotate    Rotation   `yaml:"rotate"`
	// Spin is a rotation rate in degrees per second.
	Spin  Rotation   `yaml:"spin"`
	Scale [3]float32 `yaml:"scale"`
	Color int        `yaml:"color"`
}

// Layout is the list of objects drawn each frame.
type Layout struct {
	BaseScale float32  `yaml:"baseScale"`
	Objects   []Object `yaml:"objects"`
}

// Model returns translate * rotate * spin(t) * scale * baseScale for time t in seconds.
func (o *Object) Model(t, baseScale float32) mgl32.Mat4 {
	model := mgl32.Translate3D(o.Translate[0], o.Translate[1], o.Translate[2])
	if o.Rotate.active() {
		axis := mgl32.Vec3(o.Rotate.Axis).Normalize()
		model = model.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(o.Rotate.Angle), axis))
	}
	if o.Spin.active() {
		axis := mgl32.Vec3(o.Spin.Axis).Normalize()
		model = model.Mul4(mgl32.HomogRotate3D(t*mgl32.DegToRad(o.Spin.Angle), axis))
	}
	scale := o.Scale
	if scale == [3]float32{} {
		scale = [3]float32{1, 1, 1}
	}
	model = model.Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
	return model.Mul4(mgl32.Scale3D(baseScale, baseScale, baseScale))
}

// DecodeLayout parses a YAML layout.
func DecodeLayout(r io.Reader) (*Layout, error) {
	var l Layout
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("failed to decode scene layout: %w", err)
	}
	if len(l.Objects) == 0 {
		return nil, fmt.Errorf("scene layout has no objects")
	}
	if l.BaseScale == 0 {
		l.BaseScale = DefaultBaseScale
	}
	for i, o := range l.Objects {
		if o.Color < 0 || o.Color >= ColorSlots {
			return nil, fmt.Errorf("object %d (%s): color slot %d out of range", i, o.Name, o.Color)
		}
	}
	return &l, nil
}

// DefaultLayout returns the built-in cube layout.
func DefaultLayout() *Layout {
	l, err := DecodeLayout(bytes.NewReader(defaultLayout))
	if err != nil {
		panic(fmt.Sprintf("built-in scene layout is invalid: %v", err))
	}
	return l
}

// LoadLayout reads a layout file. An empty path selects the built-in layout.
func LoadLayout(path string) (*Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeLayout(f)
}
