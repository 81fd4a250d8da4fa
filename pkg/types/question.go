// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BankVersion is the questionBankVersion written into every bank file.
const BankVersion = "V1.0"

// TestKind names which of the two question banks a source document feeds.
type TestKind string

const (
	TestSelf  TestKind = "self"
	TestLover TestKind = "lover"
)

// TestKinds lists the banks in output order.
var TestKinds = []TestKind{TestSelf, TestLover}

// Label returns the human-readable name used in progress output.
func (k TestKind) Label() string {
	switch k {
	case TestSelf:
		return "self-test"
	case TestLover:
		return "lover-test"
	}
	return string(k)
}

// Option is one labeled, scored answer choice. Score always equals OptionID.
type Option struct {
	OptionID      int    `json:"optionId" yaml:"optionId"`
	OptionContent string `json:"optionContent" yaml:"optionContent"`
	Score         int    `json:"score" yaml:"score"`
}

// OptionType selects one of the two fixed option sets.
type OptionType string

const (
	OptionAttitude  OptionType = "attitude"
	OptionFrequency OptionType = "frequency"
)

// The two option sets are ordered low-to-high intensity. They are arrays so
// that every question of a type shares one backing store.
var (
	attitudeOptions = [5]Option{
		{OptionID: 1, OptionContent: "非常不同意", Score: 1},
		{OptionID: 2, OptionContent: "不同意", Score: 2},
		{OptionID: 3, OptionContent: "中性", Score: 3},
		{OptionID: 4, OptionContent: "同意", Score: 4},
		{OptionID: 5, OptionContent: "非常同意", Score: 5},
	}
	frequencyOptions = [5]Option{
		{OptionID: 1, OptionContent: "从不", Score: 1},
		{OptionID: 2, OptionContent: "很少", Score: 2},
		{OptionID: 3, OptionContent: "有时", Score: 3},
		{OptionID: 4, OptionContent: "经常", Score: 4},
		{OptionID: 5, OptionContent: "总是", Score: 5},
	}
)

// Options returns the shared option set for t. Callers must not modify the
// returned slice. An unknown type returns nil.
func (t OptionType) Options() []Option {
	switch t {
	case OptionAttitude:
		return attitudeOptions[:]
	case OptionFrequency:
		return frequencyOptions[:]
	}
	return nil
}

// Valid reports whether t is one of the known option types.
func (t OptionType) Valid() bool {
	return t == OptionAttitude || t == OptionFrequency
}

// Dimension is one of the four psychological-trait categories.
type Dimension string

const (
	DimensionControl    Dimension = "控制欲望"
	DimensionJealousy   Dimension = "嫉妒强度"
	DimensionDependence Dimension = "情感依赖"
	DimensionInsecurity Dimension = "关系不安"
)

// dimensionRange maps an inclusive question ID range to its dimension.
type dimensionRange struct {
	dim        Dimension
	start, end int
}

var dimensionRanges = []dimensionRange{
	{DimensionControl, 1, 10},
	{DimensionJealousy, 11, 20},
	{DimensionDependence, 21, 30},
	{DimensionInsecurity, 31, 40},
}

// Dimensions lists the four dimensions in ID-range order.
func Dimensions() []Dimension {
	dims := make([]Dimension, len(dimensionRanges))
	for i, r := range dimensionRanges {
		dims[i] = r.dim
	}
	return dims
}

// DimensionForID returns the dimension whose range contains id. The ranges
// are tested in order and the first match wins. It returns false for IDs
// outside [1,40].
func DimensionForID(id int) (Dimension, bool) {
	for _, r := range dimensionRanges {
		if id >= r.start && id <= r.end {
			return r.dim, true
		}
	}
	return "", false
}

// Question is one survey item of a question bank.
type Question struct {
	QuestionID      int        `json:"questionId" yaml:"questionId"`
	Dimension       Dimension  `json:"dimension" yaml:"dimension"`
	QuestionContent string     `json:"questionContent" yaml:"questionContent"`
	OptionType      OptionType `json:"optionType" yaml:"optionType"`
	Options         []Option   `json:"options" yaml:"options"`
}

// NewQuestion builds a question whose dimension and options are derived from
// id and optionType. It returns false when id has no dimension.
func NewQuestion(id int, content string, optionType OptionType) (Question, bool) {
	dim, ok := DimensionForID(id)
	if !ok {
		return Question{}, false
	}
	return Question{
		QuestionID:      id,
		Dimension:       dim,
		QuestionContent: content,
		OptionType:      optionType,
		Options:         optionType.Options(),
	}, true
}

// QuestionBank is the complete output artifact.
type QuestionBank struct {
	Version            string     `json:"questionBankVersion" yaml:"questionBankVersion"`
	SelfTestQuestions  []Question `json:"selfTestQuestions" yaml:"selfTestQuestions"`
	LoverTestQuestions []Question `json:"loverTestQuestions" yaml:"loverTestQuestions"`
}

// Questions returns the question list for kind.
func (b QuestionBank) Questions(kind TestKind) []Question {
	switch kind {
	case TestSelf:
		return b.SelfTestQuestions
	case TestLover:
		return b.LoverTestQuestions
	}
	return nil
}

// WithQuestions returns a copy of b with kind's list replaced by qs.
func (b QuestionBank) WithQuestions(kind TestKind, qs []Question) QuestionBank {
	switch kind {
	case TestSelf:
		b.SelfTestQuestions = qs
	case TestLover:
		b.LoverTestQuestions = qs
	}
	return b
}
