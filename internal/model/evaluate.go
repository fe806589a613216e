package model

// Evaluation strategies recognized in a manifest's evaluate_strategy field.
const (
	StrategyScore  = "score"  // Deterministic confidence draw
	StrategyReview = "review" // LLM-backed structured review

	// DefaultStrategy applies when a manifest omits evaluate_strategy.
	DefaultStrategy = StrategyReview
)

// ConfidenceRange is the (lower, upper) credibility bounds a methodology
// grants a priori. Serialized as a two-element JSON array.
type ConfidenceRange [2]float64

// Low returns the lower bound
func (r ConfidenceRange) Low() float64 { return r[0] }

// High returns the upper bound
func (r ConfidenceRange) High() float64 { return r[1] }

// ScorerEvent is the flat record assembled from the MEASURE stage's
// numeric results. Immutable once built; consumed by both strategies.
type ScorerEvent struct {
	InitiativeID   string  `json:"initiative_id"`
	ModelType      string  `json:"model_type"`
	CIUpper        float64 `json:"ci_upper"`
	EffectEstimate float64 `json:"effect_estimate"`
	CILower        float64 `json:"ci_lower"`
	CostToScale    float64 `json:"cost_to_scale"`
	SampleSize     int     `json:"sample_size"`
}

// ScoreResult is the output of the deterministic score strategy.
// Captures the inputs alongside the draw as an audit trail.
type ScoreResult struct {
	InitiativeID    string          `json:"initiative_id"`
	Confidence      float64         `json:"confidence"`
	ConfidenceRange ConfidenceRange `json:"confidence_range"`
}

// Report kinds for the strategy-specific half of an EvaluateResult.
const (
	ReportKindScore  = "score"
	ReportKindReview = "review"
)

// Report is the tagged union carried by an EvaluateResult: a descriptive
// sentence for the score strategy, the full ReviewResult for the review
// strategy. Exactly one of Text/Review is populated, per Kind.
type Report struct {
	Kind   string        `json:"kind"`
	Text   string        `json:"text,omitempty"`
	Review *ReviewResult `json:"review,omitempty"`
}

// EvaluateResult is the strategy-agnostic output of the EVALUATE stage.
type EvaluateResult struct {
	InitiativeID    string          `json:"initiative_id"`
	Confidence      float64         `json:"confidence"`
	ConfidenceRange ConfidenceRange `json:"confidence_range"`
	Strategy        string          `json:"strategy"`
	Report          Report          `json:"report"`
}
