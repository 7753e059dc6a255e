package config_test

import "bytes"
import "log/slog"
import "os"
import "path/filepath"
import "strings"
import "sync"
import "testing"

import "github.com/knadh/koanf/providers/rawbytes"
import "github.com/stretchr/testify/require"

import "github.com/neurlang/nnrun/config"
import "github.com/neurlang/nnrun/model"
import "github.com/neurlang/nnrun/params"

var testYaml = `
architecture: feedforward_residual
split:
    training: 0.8
    validation: 0.1
    test: 0.1
learning_rate: 0.01
hidden_layers:
    - 64
    - 32
`

type CaptureWriterProvider struct {
	CapturedData string
}

func (c *CaptureWriterProvider) Write(data []byte) (int, error) {
	c.CapturedData += string(data)
	return len(data), nil
}

func (c *CaptureWriterProvider) Close() error {
	return nil
}

func (c *CaptureWriterProvider) GetWriter() config.WriteCloser {
	return c
}

func TestConfigLoad(t *testing.T) {
	testManager := &config.Manager{
		KoanProvider: rawbytes.Provider([]byte(testYaml)),
	}
	require.NoError(t, testManager.Load())

	p, err := testManager.Params()
	require.NoError(t, err)
	require.Equal(t, params.FeedforwardResidual, p.Architecture)
	require.Equal(t, params.Split{params.Training: 0.8, params.Validation: 0.1, params.Test: 0.1}, p.Split)
	require.NotNil(t, p.LearningRate)
	require.Equal(t, 0.01, *p.LearningRate)
	require.Equal(t, []int{64, 32}, p.HiddenLayers)
}

func TestConfigRoundTrip(t *testing.T) {
	writeCapture := &CaptureWriterProvider{}
	testManager := &config.Manager{
		KoanProvider:   rawbytes.Provider([]byte(testYaml)),
		WriterProvider: writeCapture,
	}
	require.NoError(t, testManager.Load())
	require.NoError(t, testManager.Write())

	t.Log(writeCapture.CapturedData)
	testManager2 := &config.Manager{
		KoanProvider: rawbytes.Provider([]byte(writeCapture.CapturedData)),
	}
	require.NoError(t, testManager2.Load())

	p1, err := testManager.Params()
	require.NoError(t, err)
	p2, err := testManager2.Params()
	require.NoError(t, err)
	require.Equal(t, p1.String(), p2.String())
}

func TestConfigUnknownArchitecture(t *testing.T) {
	testManager := &config.Manager{
		KoanProvider: rawbytes.Provider([]byte("architecture: transformer\n")),
	}
	err := testManager.Load()
	require.ErrorIs(t, err, model.ErrUnknownArchitecture)
}

func TestConfigBadHiddenLayer(t *testing.T) {
	testManager := &config.Manager{
		KoanProvider: rawbytes.Provider([]byte("architecture: feedforward\nhidden_layers: [4, 0]\n")),
	}
	require.ErrorIs(t, testManager.Load(), params.ErrNonPositiveLayer)
}

func TestConfigNonFloatLearningRate(t *testing.T) {
	for _, doc := range []string{
		"architecture: feedforward\nlearning_rate: 1\n",
		"architecture: feedforward\nlearning_rate: fast\n",
		"architecture: feedforward\n",
	} {
		testManager := &config.Manager{
			KoanProvider: rawbytes.Provider([]byte(doc)),
		}
		require.NoError(t, testManager.Load())
		p, err := testManager.Params()
		require.NoError(t, err)
		require.Nil(t, p.LearningRate, doc)
	}
}

func TestConfigEmptyArchitecture(t *testing.T) {
	testManager := &config.Manager{
		KoanProvider: rawbytes.Provider([]byte("hidden_layers: [3]\n")),
	}
	require.NoError(t, testManager.Load())
	p, err := testManager.Params()
	require.NoError(t, err)
	_, err = model.ResolveStrategy(p)
	require.ErrorIs(t, err, model.ErrUnknownArchitecture)
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("NNRUN_ARCHITECTURE", "feedforward")
	testManager := &config.Manager{
		KoanProvider: rawbytes.Provider([]byte(testYaml)),
	}
	require.NoError(t, testManager.Load())
	require.Equal(t, "feedforward", testManager.GetConfig().Architecture)
}

func TestConfigEnvHiddenLayers(t *testing.T) {
	t.Setenv("NNRUN_HIDDEN_LAYERS", "8, 4")
	testManager := &config.Manager{
		KoanProvider: rawbytes.Provider([]byte(testYaml)),
	}
	require.NoError(t, testManager.Load())
	p, err := testManager.Params()
	require.NoError(t, err)
	require.Equal(t, []int{8, 4}, p.HiddenLayers)
}

func TestConfigWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	defer slog.SetDefault(previous)
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	testManager := &config.Manager{
		KoanProvider: rawbytes.Provider([]byte("architecture: feedforward\nlearning_rate: 1\n")),
	}
	require.NoError(t, testManager.Load())
	for i := 0; i < 3; i++ {
		p, err := testManager.Params()
		require.NoError(t, err)
		require.Nil(t, p.LearningRate)
	}
	require.Equal(t, 1, strings.Count(buf.String(), "Ignoring learning rate"))
}

func TestParamsReturnsCopy(t *testing.T) {
	testManager := &config.Manager{
		KoanProvider: rawbytes.Provider([]byte(testYaml)),
	}
	require.NoError(t, testManager.Load())
	p, err := testManager.Params()
	require.NoError(t, err)
	p.HiddenLayers[0] = 1
	p.Split[params.Training] = 0
	*p.LearningRate = 1

	again, err := testManager.Params()
	require.NoError(t, err)
	require.Equal(t, []int{64, 32}, again.HiddenLayers)
	require.Equal(t, 0.8, again.Split[params.Training])
	require.Equal(t, 0.01, *again.LearningRate)
}

func TestParamsBeforeLoad(t *testing.T) {
	_, err := (&config.Manager{}).Params()
	require.ErrorIs(t, err, config.ErrNotLoaded)
}

type discardWriterProvider struct{}

func (discardWriterProvider) Write(data []byte) (int, error) {
	return len(data), nil
}

func (discardWriterProvider) Close() error {
	return nil
}

func (d discardWriterProvider) GetWriter() config.WriteCloser {
	return d
}

func TestGetConfigConcurrentWithSetParams(t *testing.T) {
	testManager := &config.Manager{
		KoanProvider:   rawbytes.Provider([]byte(testYaml)),
		WriterProvider: discardWriterProvider{},
	}
	require.NoError(t, testManager.Load())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			p := params.NewFeedforwardTrainingParams()
			p.Architecture = params.Feedforward
			p.HiddenLayers = []int{i + 1}
			if err := testManager.SetParams(p); err != nil {
				t.Error(err)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			f := testManager.GetConfig()
			f.HiddenLayers = append(f.HiddenLayers, 0)
			f.Split["training"] = 0
		}
	}()
	wg.Wait()

	f := testManager.GetConfig()
	require.Equal(t, "feedforward", f.Architecture)
	require.Equal(t, []int{100}, f.HiddenLayers)
}

func TestFileManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("architecture: feedforward\n"), 0644))

	m := config.NewFileManager(path)
	require.NoError(t, m.Load())

	p := params.NewFeedforwardTrainingParams()
	p.Architecture = params.FeedforwardResidual
	p.HiddenLayers = []int{16}
	p.WithLearningRate(0.05)
	require.NoError(t, m.SetParams(p))

	m2 := config.NewFileManager(path)
	require.NoError(t, m2.Load())
	p2, err := m2.Params()
	require.NoError(t, err)
	require.Equal(t, p.String(), p2.String())
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(config.PathEnv, "")
	require.Equal(t, "config.yaml", config.DefaultPath())
	t.Setenv(config.PathEnv, "/tmp/run.yaml")
	require.Equal(t, "/tmp/run.yaml", config.DefaultPath())
}

func TestDefaultIsValid(t *testing.T) {
	p, err := config.Default().ToParams()
	require.NoError(t, err)
	require.NoError(t, params.CheckSplit(p.Split))
	_, err = model.ResolveStrategy(p)
	require.NoError(t, err)
	back, err := config.FromParams(p).ToParams()
	require.NoError(t, err)
	require.Equal(t, p.String(), back.String())
}
