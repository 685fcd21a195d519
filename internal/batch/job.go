package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Job is one beam to analyze
type Job struct {
	Name      string
	Condition string
	Load      float64 // kN/m
	Beam      *beam.Beam
}

// File is the YAML layout of a batch input file
type File struct {
	Materials []*beam.Material `yaml:"materials"`
	Beams     []Entry          `yaml:"beams"`
}

// Entry describes a job in a batch file. Material refers to an entry of
// File.Materials; EI defines an anonymous material instead.
type Entry struct {
	Name          string  `yaml:"name"`
	Condition     string  `yaml:"condition"`
	PrimarySpan   float64 `yaml:"span"`
	SecondarySpan float64 `yaml:"span2"`
	Load          float64 `yaml:"load"`
	Material      string  `yaml:"material"`
	EI            float64 `yaml:"ei"`
	Factor        float64 `yaml:"factor"`
}

// LoadFile reads batch jobs from a YAML file
func LoadFile(path string, defaultFactor float64) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, defaultFactor)
}

// Parse decodes batch jobs from YAML. Jobs without a factor get defaultFactor.
func Parse(data []byte, defaultFactor float64) ([]Job, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	materials := make(map[string]*beam.Material, len(f.Materials))
	for _, m := range f.Materials {
		if m == nil || m.Name == "" {
			return nil, fmt.Errorf("material without name")
		}
		materials[m.Name] = m
	}

	jobs := make([]Job, 0, len(f.Beams))
	for i, entry := range f.Beams {
		job, err := entry.Job(materials, defaultFactor)
		if err != nil {
			return nil, fmt.Errorf("beam %d: %w", i+1, err)
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// Job resolves the entry into a job
func (e Entry) Job(materials map[string]*beam.Material, defaultFactor float64) (Job, error) {
	var m *beam.Material
	switch {
	case e.Material != "":
		var ok bool
		if m, ok = materials[e.Material]; !ok {
			return Job{}, fmt.Errorf("unknown material %q", e.Material)
		}
	case e.EI > 0:
		m = beam.NewMaterial(fmt.Sprintf("EI=%g", e.EI), map[string]float64{beam.PropEI: e.EI})
	default:
		return Job{}, fmt.Errorf("no material or EI given")
	}

	b := beam.NewBeam(e.PrimarySpan, e.SecondarySpan, m)
	b.DeflectionFactor = defaultFactor
	if e.Factor != 0 {
		b.DeflectionFactor = e.Factor
	}

	name := e.Name
	if name == "" {
		name = fmt.Sprintf("%s %.2f+%.2f", e.Condition, e.PrimarySpan, e.SecondarySpan)
	}

	return Job{
		Name:      name,
		Condition: e.Condition,
		Load:      e.Load,
		Beam:      b,
	}, nil
}
