package beam

// Property keys understood by the analyzers
const (
	PropEI = "EI" // Flexural rigidity (N-mm²)
	PropEA = "EA" // Axial rigidity (N)
	PropGA = "GA" // Shear rigidity (N)
)

// Material is a named bundle of section and material properties.
// A Material is not modified after construction and may be shared by many beams.
type Material struct {
	Name       string             `json:"name" yaml:"name"`
	Properties map[string]float64 `json:"properties" yaml:"properties"`
}

// NewMaterial creates a material, copying the given properties
func NewMaterial(name string, properties map[string]float64) *Material {
	props := make(map[string]float64, len(properties))
	for k, v := range properties {
		props[k] = v
	}
	return &Material{
		Name:       name,
		Properties: props,
	}
}

// Property returns the value stored under key
func (m *Material) Property(key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m.Properties[key]
	return v, ok
}

// EI returns the flexural rigidity, or 0 when the material does not define it
func (m *Material) EI() float64 {
	v, _ := m.Property(PropEI)
	return v
}
