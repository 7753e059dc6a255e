// Package config loads training parameters from a YAML file and the environment
package config

import "strings"

import "github.com/knadh/koanf/parsers/yaml"
import "github.com/knadh/koanf/providers/env"
import "github.com/knadh/koanf/providers/structs"
import "github.com/knadh/koanf/v2"
import "github.com/pkg/errors"

import "github.com/neurlang/nnrun/logging"
import "github.com/neurlang/nnrun/model"
import "github.com/neurlang/nnrun/params"

// EnvPrefix prefixes environment variables overriding the file, e.g.
// NNRUN_ARCHITECTURE or NNRUN_HIDDEN_LAYERS=64,32.
const EnvPrefix = "NNRUN_"

// File is the on-disk form of the training parameters.
type File struct {
	Architecture string             `koanf:"architecture"`
	Split        map[string]float64 `koanf:"split"`
	LearningRate interface{}        `koanf:"learning_rate"`
	HiddenLayers []int              `koanf:"hidden_layers"`
}

// Default is the configuration written by a fresh init.
func Default() File {
	return File{
		Architecture: string(params.Feedforward),
		Split: map[string]float64{
			string(params.Training):   0.7,
			string(params.Validation): 0.15,
			string(params.Test):       0.15,
		},
		HiddenLayers: []int{64, 32},
	}
}

func readFile(provider koanf.Provider) (File, error) {
	k := koanf.New(".")
	parser := yaml.Parser()

	if err := k.Load(provider, parser); err != nil {
		return File{}, errors.Wrap(err, "loading config")
	}
	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return File{}, errors.Wrap(err, "loading env")
	}
	var file File
	if err := k.Unmarshal("", &file); err != nil {
		return File{}, errors.Wrap(err, "unmarshalling config")
	}
	return file, nil
}

// envValue maps NNRUN_FOO__BAR to foo.bar. List keys take comma separated
// values.
func envValue(key, value string) (string, interface{}) {
	key = strings.Replace(strings.ToLower(
		strings.TrimPrefix(key, EnvPrefix)), "__", ".", -1)
	if key != "hidden_layers" {
		return key, value
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

func writeFile(file File, writer WriteCloser) error {
	defer writer.Close()
	k := koanf.New(".")
	parser := yaml.Parser()
	err := k.Load(structs.Provider(file, "koanf"), nil)
	if err != nil {
		logging.Error("error loading config", logging.Config, "error", err)
		return err
	}
	output, err := k.Marshal(parser)
	if err != nil {
		logging.Error("error marshalling config", logging.Config, "error", err)
		return err
	}
	_, err = writer.Write(output)
	if err != nil {
		logging.Error("error writing config", logging.Config, "error", err)
		return err
	}
	return nil
}

// ToParams converts the file into parameters. The architecture, when set,
// must name a known strategy; hidden layers must be positive. A learning
// rate that is not a floating point number is ignored.
func (f File) ToParams() (*params.FeedforwardTrainingParams, error) {
	p := params.NewFeedforwardTrainingParams()
	if f.Architecture != "" {
		arch, err := model.ParseArchitecture(f.Architecture)
		if err != nil {
			return nil, err
		}
		p.Architecture = arch
	}
	for role, fraction := range f.Split {
		p.Split[params.Role(role)] = fraction
	}
	switch rate := f.LearningRate.(type) {
	case nil:
	case float64:
		p.WithLearningRate(rate)
	case float32:
		p.WithLearningRate(float64(rate))
	default:
		logging.Warn("Ignoring learning rate that is not a floating point number", logging.Config,
			"learning_rate", rate)
	}
	p.HiddenLayers = append(p.HiddenLayers, f.HiddenLayers...)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// FromParams converts parameters into their on-disk form.
func FromParams(p *params.FeedforwardTrainingParams) File {
	var f = File{
		Architecture: string(p.Architecture),
		Split:        make(map[string]float64, len(p.Split)),
		HiddenLayers: append([]int{}, p.HiddenLayers...),
	}
	for role, fraction := range p.Split {
		f.Split[string(role)] = fraction
	}
	if p.LearningRate != nil {
		f.LearningRate = *p.LearningRate
	}
	return f
}
