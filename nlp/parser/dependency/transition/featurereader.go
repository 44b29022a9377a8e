package transition

import (
	"os"

	. "github.com/habeanf/nap/alg/transition"
	"gopkg.in/yaml.v2"
)

// ExtractorSetup configures the feature window sizes. A zero or omitted
// history window selects the plain WindowExtractor.
type ExtractorSetup struct {
	StackWindow   int `yaml:"stack window"`
	BufferWindow  int `yaml:"buffer window"`
	HistoryWindow int `yaml:"history window"`
}

func DefaultExtractorSetup() ExtractorSetup {
	return ExtractorSetup{StackWindow: 2, BufferWindow: 1}
}

// NumSlots is the fixed feature count the setup will produce.
func (s ExtractorSetup) NumSlots() int {
	return s.StackWindow + s.BufferWindow + s.HistoryWindow
}

// Extractor builds the configured feature extractor. dim and seed are used
// only by the history action vectors.
func (s ExtractorSetup) Extractor(dim int, seed int64) FeatureExtractor {
	if s.HistoryWindow > 0 {
		return NewHistoryWindowExtractor(s.StackWindow, s.BufferWindow, s.HistoryWindow, dim, seed)
	}
	return &WindowExtractor{StackN: s.StackWindow, BufferN: s.BufferWindow}
}

func LoadExtractorConf(conf []byte) (ExtractorSetup, error) {
	setup := DefaultExtractorSetup()
	if err := yaml.Unmarshal(conf, &setup); err != nil {
		return setup, err
	}
	return setup, nil
}

func LoadExtractorConfFile(filename string) (ExtractorSetup, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return DefaultExtractorSetup(), err
	}
	return LoadExtractorConf(data)
}
