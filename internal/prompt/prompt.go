// Package prompt builds the user message sent to the chat endpoint.
package prompt

import "strings"

const (
	contextPreamble = "You are an assistant that *must* use the CONTEXT provided below.\n\n" +
		"CONTEXT:\n\"\"\"\n"

	noContextRules = "\n\nRules:\n" +
		"- If no context is provided, use your general knowledge to complete the task."

	contextRules = "\n\nRules:\n" +
		"- Base your answer ONLY on the context unless the task requires outside knowledge.\n" +
		"- If the context is unclear, say so and ask a clarifying question.\n" +
		"- Do not fabricate details not present in the context."
)

// Compose returns the instruction string for prompt. The context template
// is used only when piped has non-whitespace content, and piped is then
// embedded untrimmed.
func Compose(prompt, piped string) string {
	if strings.TrimSpace(piped) == "" {
		return "TASK:\n" + prompt + noContextRules
	}

	var b strings.Builder
	b.Grow(len(contextPreamble) + len(piped) + len(prompt) + len(contextRules) + 32)
	b.WriteString(contextPreamble)
	b.WriteString(piped)
	b.WriteString("\n\"\"\"\n\nTASK:\n")
	b.WriteString(prompt)
	b.WriteString(contextRules)
	return b.String()
}
