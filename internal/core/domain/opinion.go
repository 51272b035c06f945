package domain

// Opinion is one advisor's raw, unvalidated take on what to suggest.
// Opinions live only for the duration of a single synthesis run.
type Opinion struct {
	// Source identifies the advisor that produced the text: an agent name,
	// "fact-store", or the model name for direct analysis.
	Source string

	// Text is the opaque opinion body. It may be free text, markdown, or
	// JSON-ish output; the synthesis engine makes no assumptions about it.
	Text string

	// Simulated marks opinions fabricated by the placeholder collection
	// step rather than received from a live agent.
	Simulated bool
}
