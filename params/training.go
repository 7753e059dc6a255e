package params

import "sort"
import "strconv"
import "strings"

// Role is the role a dataset part plays in training.
type Role string

const (
	Training   Role = "training"
	Validation Role = "validation"
	Test       Role = "test"
)

// Roles lists the dataset roles in the order they are described.
var Roles = [...]Role{Training, Validation, Test}

// Split maps a dataset role to the fraction of the dataset it receives.
// The fractions should sum up to 1, which is for the caller to ensure
// (see CheckSplit).
type Split map[Role]float64

// TrainingParams are the parameters of a training run.
type TrainingParams struct {
	RunParams

	Split Split

	// LearningRate overrides the optimizer default when not nil
	LearningRate *float64
}

// NewTrainingParams creates TrainingParams with an empty split and no
// learning rate override.
func NewTrainingParams() *TrainingParams {
	return &TrainingParams{Split: make(Split)}
}

// R returns the embedded RunParams, nil for a nil t.
func (t *TrainingParams) R() *RunParams {
	if t == nil {
		return nil
	}
	return &t.RunParams
}

// WithLearningRate sets the learning rate override and returns t.
func (t *TrainingParams) WithLearningRate(rate float64) *TrainingParams {
	t.LearningRate = &rate
	return t
}

// DescribeTraining renders the training parameters.
func DescribeTraining(t *TrainingParams) string {
	if t == nil {
		t = new(TrainingParams)
	}
	var b strings.Builder
	b.WriteString(DescribeRun(&t.RunParams))
	b.WriteString("\nSplit:")
	b.WriteString(formatSplit(t.Split))
	b.WriteString("\nLearning rate:")
	if t.LearningRate != nil {
		b.WriteString(formatFloat(*t.LearningRate))
	} else {
		b.WriteString("default")
	}
	return b.String()
}

func (t *TrainingParams) String() string {
	return DescribeTraining(t)
}

// formatSplit renders the known roles first, in their usual order, then
// any other keys sorted.
func formatSplit(s Split) string {
	var keys = make([]Role, 0, len(s))
	for _, role := range Roles {
		if _, ok := s[role]; ok {
			keys = append(keys, role)
		}
	}
	var extra []Role
	for role := range s {
		if !role.known() {
			extra = append(extra, role)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	keys = append(keys, extra...)

	var b strings.Builder
	b.WriteByte('{')
	for i, role := range keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(role))
		b.WriteByte(':')
		b.WriteString(formatFloat(s[role]))
	}
	b.WriteByte('}')
	return b.String()
}

func (r Role) known() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
