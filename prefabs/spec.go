package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// unmarshalStrict rejects unknown keys so typos in hand-edited files fail
// loudly.
func unmarshalStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ScenerySpec configures the decorative props scattered around the field.
type ScenerySpec struct {
	Count       int        `yaml:"count"`
	Radius      float64    `yaml:"radius"`
	Clearance   float64    `yaml:"clearance"`
	MaxTries    int        `yaml:"max_tries"`
	RenderLayer int        `yaml:"render_layer"`
	Props       []PropSpec `yaml:"props"`
}

type PropSpec struct {
	Name      string     `yaml:"name"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Footprint float64    `yaml:"footprint"`
	Color     *YAMLColor `yaml:"color"`
	Weight    int        `yaml:"weight"`
}

func LoadScenerySpec() (*ScenerySpec, error) {
	spec, err := LoadSpec[ScenerySpec]("scenery.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
