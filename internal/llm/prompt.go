package llm

import (
	"strings"

	"github.com/champ-ai/code-review/internal/github"
)

// BuildPrompt serializes changed files into a single review prompt of at
// most maxPromptChars. Construction is deterministic: the fixed framing
// block, then one section per file in input order, then the closing
// instruction. Each section is a header naming the file followed by its
// patch, clipped to the remaining budget; once a header itself no longer
// fits, the remaining files are omitted.
func BuildPrompt(files []github.ChangedFile) string {
	var b strings.Builder
	b.WriteString(promptFraming)

	for _, f := range files {
		name := f.Filename
		if name == "" {
			name = "unknown"
		}
		header := "\n\n--- " + name + " ---\n\n"

		// The closing instruction is appended unconditionally, so its
		// length stays reserved throughout.
		remaining := maxPromptChars - b.Len() - len(promptClosing)
		if len(header) > remaining {
			break
		}

		clip := remaining - len(header) - patchClipReserve
		if clip < 0 {
			clip = 0
		}
		patch := f.Patch
		if len(patch) > clip {
			patch = patch[:clip]
		}

		b.WriteString(header)
		b.WriteString(patch)
	}

	b.WriteString(promptClosing)
	return b.String()
}
