package section

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// LoadFromFile loads a section definition from a YAML or JSON file
func LoadFromFile(path string) (*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var section Section
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &section)
	default:
		err = yaml.Unmarshal(data, &section)
	}
	if err != nil {
		return nil, err
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}

	return &section, nil
}

// Material builds the beam material from the transformed section.
// Rigidities are in N-mm² (EI) and N (EA, GA).
func (s *Section) Material() (*beam.Material, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	props := s.CalculateProperties()
	name := s.Name
	if name == "" {
		name = "section"
	}

	return beam.NewMaterial(name, map[string]float64{
		beam.PropEI: props.E * props.Itr,
		beam.PropEA: props.E * props.TransformedArea,
		beam.PropGA: props.G * props.Area,
	}), nil
}

// Rectangle returns a rectangular section of width b and height h (mm)
func Rectangle(name string, b, h, e float64) *Section {
	return &Section{
		Name: name,
		E:    e,
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: b, Y: 0},
			{X: b, Y: h},
			{X: 0, Y: h},
		},
	}
}
