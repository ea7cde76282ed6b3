package departureboard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/rmvtransport/pkg/rmv"
	"gopkg.in/yaml.v3"
)

// Preset is a named departure query stored in a presets file.
type Preset struct {
	Name      string   `yaml:"name"`
	Station   string   `yaml:"station"`
	Direction string   `yaml:"direction"`
	Products  []string `yaml:"products"`
	Max       int      `yaml:"max"`
}

func (p Preset) Query() rmv.DepartureQuery {
	return rmv.DepartureQuery{
		StationID:   p.Station,
		DirectionID: p.Direction,
		MaxJourneys: p.Max,
		Products:    p.Products,
	}
}

// LoadPresets reads every YAML document in path as a Preset.
func LoadPresets(path string) ([]Preset, error) {
	log.Debug().Str("path", path).Msg("Loading presets file")

	presetsYaml, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(presetsYaml))

	var presets []Preset
	for {
		var preset Preset
		err := decoder.Decode(&preset)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("presets file %s: %w", path, err)
		}

		if preset.Name == "" || preset.Station == "" {
			return nil, fmt.Errorf("presets file %s: preset needs a name and a station", path)
		}

		presets = append(presets, preset)
	}

	return presets, nil
}

func FindPreset(presets []Preset, name string) (Preset, error) {
	for _, preset := range presets {
		if preset.Name == name {
			return preset, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: unknown preset %s", rmv.InvalidArgumentError, name)
}
