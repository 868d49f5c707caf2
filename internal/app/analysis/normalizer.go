// Package analysis turns the language model's free-text reply into a
// structured AnalysisResult. Models are asked for JSON but routinely wrap it
// in markdown fences or prose, so extraction tries a fixed sequence of
// strategies and degrades to a fallback record rather than failing.
package analysis

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/parnika15-9/meeting-summarizer/internal/app/model"
)

// FallbackSummary is the deterministic placeholder used when the model reply
// cannot be parsed into the expected shape.
const FallbackSummary = model.FallbackSummary

var (
	taggedFence  = regexp.MustCompile("(?s)```json\\s*(.*?)```")
	genericFence = regexp.MustCompile("(?s)```\\s*(.*?)```")
)

// extractors are tried in order; the first match wins. The final strategy
// always matches, returning the reply verbatim.
var extractors = []func(string) (string, bool){
	func(reply string) (string, bool) { return firstGroup(taggedFence, reply) },
	func(reply string) (string, bool) { return firstGroup(genericFence, reply) },
	func(reply string) (string, bool) { return reply, true },
}

// Normalize parses the model reply into an AnalysisResult. It is total: any
// input, including empty or arbitrary prose, yields a result. On parse
// failure the fallback record carries the original reply in RawResponse.
func Normalize(reply string) model.AnalysisResult {
	for _, extract := range extractors {
		candidate, ok := extract(reply)
		if !ok {
			continue
		}
		if result, err := decode(candidate); err == nil {
			return result
		}
		// A fenced block that does not decode is not retried against later
		// strategies; the original behavior falls through to the degraded
		// record once the chosen extraction fails to parse.
		break
	}

	return model.AnalysisResult{
		Summary:     FallbackSummary,
		Decisions:   []string{},
		ActionItems: []string{},
		Topics:      []string{},
		RawResponse: reply,
	}
}

// errNotObject rejects JSON values that unmarshal cleanly into the result
// struct without being objects, such as a bare null.
var errNotObject = errors.New("candidate is not a JSON object")

func decode(candidate string) (model.AnalysisResult, error) {
	trimmed := strings.TrimSpace(candidate)
	if !strings.HasPrefix(trimmed, "{") {
		return model.AnalysisResult{}, errNotObject
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return model.AnalysisResult{}, err
	}

	// Missing list keys decode to nil; keep them as empty slices so the
	// persisted form is always a JSON array.
	if result.Decisions == nil {
		result.Decisions = []string{}
	}
	if result.ActionItems == nil {
		result.ActionItems = []string{}
	}
	if result.Topics == nil {
		result.Topics = []string{}
	}
	result.RawResponse = ""

	return result, nil
}

func firstGroup(re *regexp.Regexp, reply string) (string, bool) {
	m := re.FindStringSubmatch(reply)
	if m == nil {
		return "", false
	}
	return m[1], true
}
