// Package ai implements the prompt construction and remote completion layer
// of the processing pipeline. The prompt builder is a pure mapping from
// (text, action) to a model prompt; the client (see client.go) exchanges that
// prompt with an OpenAI-style chat-completions endpoint.
package ai

import "strings"

// Canonical action names. Matching is case-insensitive on input; the stored
// record keeps whatever casing the caller supplied.
const (
	ActionSummarize = "SUMMARIZE"
	ActionRewrite   = "REWRITE"
	ActionExplain   = "EXPLAIN"
)

// BuildPrompt maps the submitted text and action to the prompt sent to the
// model. It is total: an unrecognized action falls back to the EXPLAIN
// template so the pipeline always produces some prompt. This fallback is a
// permissive default, not an error path.
func BuildPrompt(text, action string) string {
	switch strings.ToUpper(action) {
	case ActionSummarize:
		return "Summarize this text:\n" + text
	case ActionRewrite:
		return "Rewrite this professionally:\n" + text
	default:
		return "Explain this clearly:\n" + text
	}
}
