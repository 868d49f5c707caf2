package model

// FallbackSummary is the placeholder summary carried by every degraded
// result. It, not RawResponse, is the fallback marker: a model that returns
// an empty reply produces a fallback record whose RawResponse is empty too.
const FallbackSummary = "Could not parse structured response"

// AnalysisResult is the structured outcome of running the language model over a
// meeting transcript. When the model reply could not be parsed, Summary carries
// FallbackSummary, the three lists are empty and RawResponse holds the
// unmodified reply; on a successful parse RawResponse is omitted.
type AnalysisResult struct {
	Summary     string   `json:"summary"`
	Decisions   []string `json:"decisions"`
	ActionItems []string `json:"action_items"`
	Topics      []string `json:"topics"`
	RawResponse string   `json:"raw_response,omitempty"`
}

// Fallback reports whether this result was produced by the degraded path.
func (a AnalysisResult) Fallback() bool {
	return a.Summary == FallbackSummary
}
