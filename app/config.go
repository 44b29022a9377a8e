package app

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/habeanf/nap/alg/nn"
	"github.com/habeanf/nap/alg/search"
	"github.com/habeanf/nap/alg/transition"
	dep "github.com/habeanf/nap/nlp/parser/dependency/transition"
	"github.com/habeanf/nap/util"
	"github.com/habeanf/nap/util/conf"
)

var DEFAULT_CONF_DIRS = []string{".", "conf"}

// ModelConfig is the YAML surface describing a full decoding pipeline:
// representation width, seeded initialization, the vocabulary file, which
// embedder and combiner variants to build, and the feature window.
type ModelConfig struct {
	Dim      int    `yaml:"dim"`
	Seed     int64  `yaml:"seed"`
	Vocab    string `yaml:"vocab"`
	Embedder string `yaml:"embedder"`
	Combiner string `yaml:"combiner"`

	Extractor dep.ExtractorSetup `yaml:"extractor"`
}

func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Dim:       64,
		Seed:      1,
		Embedder:  "recurrent",
		Combiner:  "mlp",
		Extractor: dep.DefaultExtractorSetup(),
	}
}

func LoadModelConfig(filename string) (ModelConfig, error) {
	modelConf := DefaultModelConfig()
	located, found := util.LocateFile(filename, DEFAULT_CONF_DIRS)
	if !found {
		return modelConf, errors.Errorf("model configuration %s not found", filename)
	}
	data, err := os.ReadFile(located)
	if err != nil {
		return modelConf, errors.Wrapf(err, "reading model configuration %s", located)
	}
	if err := yaml.Unmarshal(data, &modelConf); err != nil {
		return modelConf, errors.Wrapf(err, "parsing model configuration %s", located)
	}
	return modelConf, nil
}

// NewParser assembles the decoding pipeline the configuration describes.
// All components are seeded from the same value, so a configuration names
// one reproducible parser.
func (m ModelConfig) NewParser() (*search.Deterministic, error) {
	if m.Dim <= 0 {
		return nil, errors.Errorf("model dimension must be positive, got %d", m.Dim)
	}
	vocabConf, err := conf.ReadFile(m.Vocab)
	if err != nil {
		return nil, errors.Wrap(err, "loading vocabulary")
	}
	vocab := util.NewVocabFromTokens(vocabConf.Values)
	lookup := nn.NewLookupEmbedder(vocab, m.Dim, m.Seed)

	var embedder transition.SequenceEmbedder
	switch m.Embedder {
	case "", "lookup":
		embedder = lookup
	case "recurrent":
		if m.Dim%2 != 0 {
			return nil, errors.Errorf("recurrent embedder needs an even dimension, got %d", m.Dim)
		}
		embedder = nn.NewRecurrentSequenceEmbedder(lookup, m.Dim, m.Seed)
	default:
		return nil, errors.Errorf("unknown embedder %q", m.Embedder)
	}

	var combiner transition.Combiner
	switch m.Combiner {
	case "", "mlp":
		combiner = nn.NewMLPCombiner(m.Dim, m.Seed)
	case "recurrent":
		combiner = nn.NewRecurrentCombiner(m.Dim, m.Seed)
	default:
		return nil, errors.Errorf("unknown combiner %q", m.Combiner)
	}

	transitionSystem := &dep.ArcStandard{}
	transitionSystem.AddDefaultOracle()
	return &search.Deterministic{
		TransFunc:     transitionSystem,
		FeatExtractor: m.Extractor.Extractor(m.Dim, m.Seed),
		Model:         nn.NewMLPActionModel(m.Extractor.NumSlots(), m.Dim, m.Seed),
		Embedder:      embedder,
		Combiner:      combiner,
		Base:          dep.NewVectorConfiguration(combiner),
		Logger:        Log,
	}, nil
}
