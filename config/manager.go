package config

import "github.com/pkg/errors"
import "log"
import "os"
import "sync"

import "github.com/knadh/koanf/providers/file"
import "github.com/knadh/koanf/v2"

import "github.com/neurlang/nnrun/logging"
import "github.com/neurlang/nnrun/params"

// ErrNotLoaded is returned by Params before any Load or SetParams.
var ErrNotLoaded = errors.New("config: nothing loaded")

// PathEnv names the environment variable holding the config path.
const PathEnv = "NNRUN_CONFIG_PATH"

// Manager loads and writes the configuration of a run.
type Manager struct {
	current        File
	params         *params.FeedforwardTrainingParams
	KoanProvider   koanf.Provider
	WriterProvider WriteCloserProvider
	mutex          sync.Mutex
}

type WriteCloserProvider interface {
	GetWriter() WriteCloser
}

type WriteCloser interface {
	Write([]byte) (int, error)
	Close() error
}

// DefaultPath returns the config path from NNRUN_CONFIG_PATH, or config.yaml.
func DefaultPath() string {
	configPath := os.Getenv(PathEnv)
	if configPath == "" {
		configPath = "config.yaml"
	}
	return configPath
}

// NewFileManager creates a manager reading and writing path.
func NewFileManager(path string) *Manager {
	return &Manager{
		KoanProvider:   file.Provider(path),
		WriterProvider: NewFileWriteCloserProvider(path),
	}
}

// LoadDefaultManager creates a manager for DefaultPath and loads it.
func LoadDefaultManager() (*Manager, error) {
	manager := NewFileManager(DefaultPath())
	if err := manager.Load(); err != nil {
		return nil, err
	}
	return manager, nil
}

func (cm *Manager) Load() error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	f, err := readFile(cm.KoanProvider)
	if err != nil {
		return err
	}
	p, err := f.ToParams()
	if err != nil {
		return err
	}
	cm.current = f
	cm.params = p
	logging.Debug("Loaded config", logging.Config, "architecture", f.Architecture)
	return nil
}

func (cm *Manager) Write() error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	return writeFile(cm.current, cm.WriterProvider.GetWriter())
}

// GetConfig returns a copy of the loaded file.
func (cm *Manager) GetConfig() File {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	f := cm.current
	f.Split = make(map[string]float64, len(cm.current.Split))
	for role, fraction := range cm.current.Split {
		f.Split[role] = fraction
	}
	f.HiddenLayers = append([]int{}, cm.current.HiddenLayers...)
	return f
}

// Params returns a copy of the parameters converted by the last Load or SetParams.
func (cm *Manager) Params() (*params.FeedforwardTrainingParams, error) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	if cm.params == nil {
		return nil, ErrNotLoaded
	}
	return cloneParams(cm.params), nil
}

// SetParams replaces the loaded file with p and writes it.
func (cm *Manager) SetParams(p *params.FeedforwardTrainingParams) error {
	cm.mutex.Lock()
	cm.current = FromParams(p)
	cm.params = cloneParams(p)
	cm.mutex.Unlock()
	logging.Info("Setting params", logging.Config, "architecture", p.Architecture)
	return cm.Write()
}

type FileWriteCloserProvider struct {
	path string
}

func NewFileWriteCloserProvider(path string) *FileWriteCloserProvider {
	return &FileWriteCloserProvider{path: path}
}

func (f *FileWriteCloserProvider) GetWriter() WriteCloser {
	file, err := os.OpenFile(f.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		log.Fatalf("error opening file at %s: %v", f.path, err)
	}
	return file
}

func cloneParams(p *params.FeedforwardTrainingParams) *params.FeedforwardTrainingParams {
	c := params.NewFeedforwardTrainingParams()
	c.Architecture = p.Architecture
	for role, fraction := range p.Split {
		c.Split[role] = fraction
	}
	if p.LearningRate != nil {
		c.WithLearningRate(*p.LearningRate)
	}
	c.HiddenLayers = append(c.HiddenLayers, p.HiddenLayers...)
	return c
}
