package params_test

import "strings"
import "testing"

import "github.com/neurlang/nnrun/params"
import "github.com/stretchr/testify/require"

func TestNewDefaults(t *testing.T) {
	r := params.NewRunParams()
	require.Equal(t, params.Architecture(""), r.Architecture)

	tp := params.NewTrainingParams()
	require.NotNil(t, tp.Split)
	require.Empty(t, tp.Split)
	require.Nil(t, tp.LearningRate)

	f := params.NewFeedforwardTrainingParams()
	require.NotNil(t, f.HiddenLayers)
	require.Empty(t, f.HiddenLayers)
	require.Empty(t, f.Split)
}

func TestDescribeRun(t *testing.T) {
	require.Equal(t, "Architecture:None", params.DescribeRun(params.NewRunParams()))
	require.Equal(t, "Architecture:feedforward", params.DescribeRun(&params.RunParams{Architecture: params.Feedforward}))
	require.Equal(t, "Architecture:None", params.DescribeRun(nil))
}

func TestDescribeTraining(t *testing.T) {
	tp := params.NewTrainingParams()
	tp.Architecture = params.FeedforwardResidual
	tp.Split[params.Test] = 0.1
	tp.Split[params.Training] = 0.7
	tp.Split[params.Validation] = 0.2
	tp.WithLearningRate(0.01)

	require.Equal(t, "Architecture:feedforward_residual\n"+
		"Split:{training:0.7, validation:0.2, test:0.1}\n"+
		"Learning rate:0.01", params.DescribeTraining(tp))
}

func TestDescribeSplitUnknownRolesSorted(t *testing.T) {
	tp := params.NewTrainingParams()
	tp.Split["zeta"] = 0.5
	tp.Split["alpha"] = 0.25
	tp.Split[params.Training] = 0.25
	require.Contains(t, tp.String(), "Split:{training:0.25, alpha:0.25, zeta:0.5}")
}

func TestDescribeFeedforwardOrder(t *testing.T) {
	f := params.NewFeedforwardTrainingParams()
	f.HiddenLayers = []int{64, 32}

	out := params.DescribeFeedforward(f)
	lines := strings.Split(out, "\n")
	require.Equal(t, []string{
		"Architecture:None",
		"Split:{}",
		"Learning rate:default",
		"Hidden layers:[64, 32]",
	}, lines)
	require.Equal(t, out, f.String())
}

func TestDescribeExtendsParent(t *testing.T) {
	f := params.NewFeedforwardTrainingParams()
	f.Architecture = params.Feedforward
	f.HiddenLayers = []int{8}

	require.True(t, strings.HasPrefix(params.DescribeFeedforward(f), params.DescribeTraining(&f.TrainingParams)))
	require.True(t, strings.HasPrefix(params.DescribeTraining(&f.TrainingParams), params.DescribeRun(f.R())))
}

func TestDescribeDeterministic(t *testing.T) {
	require.Equal(t, params.NewRunParams().String(), params.NewRunParams().String())
	require.Equal(t, params.NewTrainingParams().String(), params.NewTrainingParams().String())
	require.Equal(t, params.NewFeedforwardTrainingParams().String(), params.NewFeedforwardTrainingParams().String())
	require.Equal(t, params.NewFeedforwardTrainingParams().String(), params.DescribeFeedforward(new(params.FeedforwardTrainingParams)))
}

func TestR(t *testing.T) {
	f := params.NewFeedforwardTrainingParams()
	f.Architecture = params.Feedforward
	var p params.Params = f
	require.Same(t, &f.RunParams, p.R())
	require.Equal(t, params.Feedforward, p.R().Architecture)

	var nilff *params.FeedforwardTrainingParams
	require.Nil(t, nilff.R())
	var niltp *params.TrainingParams
	require.Nil(t, niltp.R())
}

func TestValidate(t *testing.T) {
	f := params.NewFeedforwardTrainingParams()
	require.NoError(t, f.Validate())

	f.HiddenLayers = []int{4, 0, 2}
	err := f.Validate()
	require.ErrorIs(t, err, params.ErrNonPositiveLayer)
	var le *params.LayerError
	require.ErrorAs(t, err, &le)
	require.Equal(t, 1, le.Index)
}

func TestCheckSplit(t *testing.T) {
	require.NoError(t, params.CheckSplit(nil))
	require.NoError(t, params.CheckSplit(params.Split{params.Training: 0.8}))
	require.NoError(t, params.CheckSplit(params.Split{params.Training: 0.7, params.Validation: 0.2, params.Test: 0.1}))
	require.ErrorIs(t, params.CheckSplit(params.Split{params.Training: 0.7, params.Validation: 0.2, params.Test: 0.2}), params.ErrSplitSum)
	require.ErrorIs(t, params.CheckSplit(params.Split{params.Training: -0.1}), params.ErrNegativeFraction)
}
