package llm

import "time"

const (
	// maxPromptChars is the hard upper bound on the serialized prompt.
	maxPromptChars = 24000

	// patchClipReserve is held back when clipping a patch so the sections
	// after it still fit under maxPromptChars.
	patchClipReserve = 500

	geminiModelName = "gemini-1.5-flash"

	openRouterEndpoint     = "https://openrouter.ai/api/v1/chat/completions"
	openRouterTimeout      = 60 * time.Second
	openRouterTemperature  = 0.2
	openRouterSystemPrompt = "You are a precise, pragmatic code reviewer."

	// warnBodyLimit caps how much of an error response lands in the log.
	warnBodyLimit = 2000
)

const promptFraming = `You are a senior software engineer performing code review on a GitHub pull request.
Be concise but specific. Prioritize correctness, security, performance, readability, testing, and maintainability.
If everything looks good, respond with a short 'LGTM' style note and any nits.

Changes (unified diff excerpts):`

const promptClosing = "\n\nProvide a structured review with sections: Summary, Issues (with file:line when possible), Suggestions, Tests to Add, Risk, LGTM?"
