package path

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk YAML layout of a path table.
type tableFile struct {
	Stops []stopFile `yaml:"stops"`
}

type stopFile struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	LookAt   [3]float32 `yaml:"lookAt"`
}

// LoadTable reads a path table from a YAML file.
//
// Parameters:
//   - filePath: path to the YAML document
//
// Returns:
//   - Table: the validated table
//   - error: error if the file cannot be read, parsed, or fails validation
func LoadTable(filePath string) (Table, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read path table file: %w", err)
	}
	return ParseTable(data)
}

// ParseTable decodes a path table from YAML bytes.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - Table: the validated table
//   - error: error if parsing or validation fails
func ParseTable(data []byte) (Table, error) {
	var doc tableFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse path table YAML: %w", err)
	}

	stops := make([]Stop, len(doc.Stops))
	for i, s := range doc.Stops {
		stops[i] = Stop{
			Name:     s.Name,
			Position: mgl32.Vec3(s.Position),
			LookAt:   mgl32.Vec3(s.LookAt),
		}
	}

	t, err := NewTable(stops)
	if err != nil {
		return nil, fmt.Errorf("invalid path table: %w", err)
	}
	return t, nil
}
