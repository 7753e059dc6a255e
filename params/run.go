package params

// Architecture is the discriminator selecting a model building strategy.
// The empty Architecture means the field was never set.
type Architecture string

const (
	Feedforward         Architecture = "feedforward"
	FeedforwardResidual Architecture = "feedforward_residual"
)

// Params is implemented by every parameter variant, giving access to the
// embedded RunParams.
type Params interface {
	R() *RunParams
}

// RunParams are the parameters common to every run.
type RunParams struct {
	Architecture Architecture
}

// NewRunParams creates RunParams with an absent architecture.
func NewRunParams() *RunParams {
	return new(RunParams)
}

// R returns r.
func (r *RunParams) R() *RunParams {
	return r
}

// DescribeRun renders the run parameters.
func DescribeRun(r *RunParams) string {
	var arch = "None"
	if r != nil && r.Architecture != "" {
		arch = string(r.Architecture)
	}
	return "Architecture:" + arch
}

func (r *RunParams) String() string {
	return DescribeRun(r)
}
