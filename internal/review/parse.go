// Package review runs structured LLM reviews of initiative artifacts and
// turns the responses into dimension scores.
package review

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/openimpact/impacteval/internal/model"
)

var (
	blockRe   = regexp.MustCompile(`DIMENSION:\s*(\S+)\s*\nSCORE:\s*([\d.]+)\s*\nJUSTIFICATION:\s*`)
	overallRe = regexp.MustCompile(`OVERALL:\s*([\d.]+)`)
)

// ParseDimensions extracts dimension blocks from a model response.
//
// The primary format is labeled text blocks:
//
//	DIMENSION: <name>
//	SCORE: <0.0-1.0>
//	JUSTIFICATION: <free text>
//
// A justification runs until the next DIMENSION block, an OVERALL line,
// or the end of the response. When no text blocks are present the
// response is tried as JSON with a top-level "dimensions" array.
// Scores are clamped to [0, 1]; unparseable scores become 0.
func ParseDimensions(response string) []model.ReviewDimension {
	matches := blockRe.FindAllStringSubmatchIndex(response, -1)
	if len(matches) == 0 {
		return parseJSONDimensions(response)
	}

	dims := make([]model.ReviewDimension, 0, len(matches))
	for i, m := range matches {
		name := response[m[2]:m[3]]
		score := parseScore(response[m[4]:m[5]])

		// Justification spans from the end of this block's labels to the
		// start of the next block or the OVERALL line.
		start := m[1]
		end := len(response)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		just := response[start:end]
		if idx := strings.Index(just, "\nOVERALL:"); idx >= 0 {
			just = just[:idx]
		}

		dims = append(dims, model.ReviewDimension{
			Name:          name,
			Score:         score,
			Justification: strings.TrimSpace(just),
		})
	}
	return dims
}

// ParseOverall extracts the overall score. An explicit OVERALL line wins;
// otherwise the mean of the dimension scores is used; with neither the
// result is 0.
func ParseOverall(response string, dims []model.ReviewDimension) float64 {
	if m := overallRe.FindStringSubmatch(response); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return clamp(v)
		}
	}
	if len(dims) == 0 {
		return 0
	}
	var sum float64
	for _, d := range dims {
		sum += d.Score
	}
	return clamp(sum / float64(len(dims)))
}

// jsonReview is the fallback shape for backends that answer in JSON
type jsonReview struct {
	Dimensions []struct {
		Name          string          `json:"name"`
		Score         json.RawMessage `json:"score"`
		Justification string          `json:"justification"`
	} `json:"dimensions"`
}

func parseJSONDimensions(response string) []model.ReviewDimension {
	text := strings.TrimSpace(response)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var parsed jsonReview
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil
	}

	dims := make([]model.ReviewDimension, 0, len(parsed.Dimensions))
	for _, d := range parsed.Dimensions {
		if d.Name == "" {
			continue
		}
		dims = append(dims, model.ReviewDimension{
			Name:          d.Name,
			Score:         parseScore(strings.Trim(string(d.Score), `"`)),
			Justification: strings.TrimSpace(d.Justification),
		})
	}
	if len(dims) == 0 {
		return nil
	}
	return dims
}

func parseScore(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return clamp(v)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
