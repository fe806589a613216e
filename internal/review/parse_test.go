package review

import (
	"testing"
)

func TestParseDimensions_TextBlocks(t *testing.T) {
	response := `DIMENSION: randomization_integrity
SCORE: 0.9
JUSTIFICATION: Assignment was properly randomized.
Balance tables confirm comparability.

DIMENSION: statistical_inference
SCORE: 0.75
JUSTIFICATION: Standard errors clustered correctly.

OVERALL: 0.82`

	dims := ParseDimensions(response)
	if len(dims) != 2 {
		t.Fatalf("Expected 2 dimensions, got %d", len(dims))
	}

	if dims[0].Name != "randomization_integrity" || dims[0].Score != 0.9 {
		t.Errorf("Unexpected first dimension: %+v", dims[0])
	}
	// Multi-line justification runs to the next block
	if dims[0].Justification != "Assignment was properly randomized.\nBalance tables confirm comparability." {
		t.Errorf("Unexpected justification: %q", dims[0].Justification)
	}

	// Last justification stops at the OVERALL line
	if dims[1].Justification != "Standard errors clustered correctly." {
		t.Errorf("Unexpected last justification: %q", dims[1].Justification)
	}
}

func TestParseDimensions_ScoreClamping(t *testing.T) {
	response := `DIMENSION: too_high
SCORE: 1.5
JUSTIFICATION: x

DIMENSION: fine
SCORE: 0.5
JUSTIFICATION: y`

	dims := ParseDimensions(response)
	if len(dims) != 2 {
		t.Fatalf("Expected 2 dimensions, got %d", len(dims))
	}
	if dims[0].Score != 1.0 {
		t.Errorf("Expected 1.5 clamped to 1.0, got %v", dims[0].Score)
	}
	if dims[1].Score != 0.5 {
		t.Errorf("Expected 0.5 unchanged, got %v", dims[1].Score)
	}
}

func TestParseDimensions_UnparseableScoreIsZero(t *testing.T) {
	response := "DIMENSION: odd\nSCORE: 0.9.1\nJUSTIFICATION: malformed"

	dims := ParseDimensions(response)
	if len(dims) != 1 {
		t.Fatalf("Expected 1 dimension, got %d", len(dims))
	}
	if dims[0].Score != 0 {
		t.Errorf("Expected unparseable score to be 0, got %v", dims[0].Score)
	}
}

func TestParseDimensions_JSONFallback(t *testing.T) {
	response := `{"dimensions": [
		{"name": "rigor", "score": 0.8, "justification": "good"},
		{"name": "plausibility", "score": "0.6", "justification": "ok"}
	]}`

	dims := ParseDimensions(response)
	if len(dims) != 2 {
		t.Fatalf("Expected 2 dimensions, got %d", len(dims))
	}
	if dims[0].Name != "rigor" || dims[0].Score != 0.8 {
		t.Errorf("Unexpected first dimension: %+v", dims[0])
	}
	if dims[1].Score != 0.6 {
		t.Errorf("Expected string score coerced, got %v", dims[1].Score)
	}
}

func TestParseDimensions_JSONNegativeScoreClamped(t *testing.T) {
	response := `{"dimensions": [{"name": "rigor", "score": -0.2, "justification": "below floor"}]}`

	dims := ParseDimensions(response)
	if len(dims) != 1 {
		t.Fatalf("Expected 1 dimension, got %d", len(dims))
	}
	if dims[0].Score != 0.0 {
		t.Errorf("Expected -0.2 clamped to 0.0, got %v", dims[0].Score)
	}
}

func TestParseDimensions_TextBlocksPreferredOverJSON(t *testing.T) {
	response := `DIMENSION: rigor
SCORE: 0.9
JUSTIFICATION: from text

{"dimensions": [{"name": "json_dim", "score": 0.1, "justification": "ignored"}]}`

	dims := ParseDimensions(response)
	if len(dims) != 1 || dims[0].Name != "rigor" {
		t.Errorf("Expected text blocks to win over JSON, got %+v", dims)
	}
}

func TestParseDimensions_Nothing(t *testing.T) {
	if dims := ParseDimensions("nothing useful here"); len(dims) != 0 {
		t.Errorf("Expected no dimensions, got %+v", dims)
	}
}

func TestParseOverall_ExplicitLinePreferred(t *testing.T) {
	response := `DIMENSION: rigor
SCORE: 0.4
JUSTIFICATION: x

OVERALL: 0.9`

	dims := ParseDimensions(response)
	if overall := ParseOverall(response, dims); overall != 0.9 {
		t.Errorf("Expected explicit overall 0.9, got %v", overall)
	}
}

func TestParseOverall_MeanFallback(t *testing.T) {
	response := `DIMENSION: a
SCORE: 0.6
JUSTIFICATION: x

DIMENSION: b
SCORE: 0.8
JUSTIFICATION: y`

	dims := ParseDimensions(response)
	overall := ParseOverall(response, dims)
	if overall < 0.699 || overall > 0.701 {
		t.Errorf("Expected mean 0.7, got %v", overall)
	}
}

func TestParseOverall_NothingIsZero(t *testing.T) {
	if overall := ParseOverall("nothing", nil); overall != 0 {
		t.Errorf("Expected 0.0 for unparseable response, got %v", overall)
	}
}

func TestParseOverall_Clamped(t *testing.T) {
	if overall := ParseOverall("OVERALL: 1.8", nil); overall != 1.0 {
		t.Errorf("Expected overall clamped to 1.0, got %v", overall)
	}
}
