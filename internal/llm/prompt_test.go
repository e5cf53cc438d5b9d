package llm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/champ-ai/code-review/internal/github"
)

func TestBuildPromptSmallChange(t *testing.T) {
	files := []github.ChangedFile{
		{Filename: "cmd/main.go", Patch: "@@ -1 +1 @@\n-old\n+new"},
		{Filename: "README.md", Patch: "@@ -5 +5 @@\n+docs"},
	}

	got := BuildPrompt(files)

	want := promptFraming +
		"\n\n--- cmd/main.go ---\n\n" + "@@ -1 +1 @@\n-old\n+new" +
		"\n\n--- README.md ---\n\n" + "@@ -5 +5 @@\n+docs" +
		promptClosing
	assert.Equal(t, want, got)
}

func TestBuildPromptEmptyFileList(t *testing.T) {
	got := BuildPrompt(nil)

	assert.Equal(t, promptFraming+promptClosing, got)
}

func TestBuildPromptEmptyFilenameRendersUnknown(t *testing.T) {
	got := BuildPrompt([]github.ChangedFile{{Filename: "", Patch: "+x"}})

	assert.Contains(t, got, "--- unknown ---")
}

func TestBuildPromptNeverExceedsBudget(t *testing.T) {
	tests := []struct {
		name  string
		files []github.ChangedFile
	}{
		{
			name:  "one oversized patch",
			files: []github.ChangedFile{{Filename: "big.go", Patch: strings.Repeat("x", 100000)}},
		},
		{
			name: "many large patches",
			files: func() []github.ChangedFile {
				files := make([]github.ChangedFile, 80)
				for i := range files {
					files[i] = github.ChangedFile{
						Filename: fmt.Sprintf("pkg/gen/file_%02d.go", i),
						Patch:    strings.Repeat("y", 10000),
					}
				}
				return files
			}(),
		},
		{
			name: "many tiny files",
			files: func() []github.ChangedFile {
				files := make([]github.ChangedFile, 5000)
				for i := range files {
					files[i] = github.ChangedFile{
						Filename: fmt.Sprintf("f%04d.go", i),
						Patch:    "+1",
					}
				}
				return files
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPrompt(tt.files)

			assert.LessOrEqual(t, len(got), maxPromptChars)
			assert.True(t, strings.HasPrefix(got, promptFraming))
			assert.True(t, strings.HasSuffix(got, promptClosing))
		})
	}
}

func TestBuildPromptClipsLongPatch(t *testing.T) {
	got := BuildPrompt([]github.ChangedFile{{Filename: "big.go", Patch: strings.Repeat("x", 100000)}})

	// One clipped patch fills the budget up to the clip reserve.
	assert.Len(t, got, maxPromptChars-patchClipReserve)
	assert.True(t, strings.HasSuffix(got, promptClosing))
}

func TestBuildPromptOmitsFilesPastBudget(t *testing.T) {
	files := []github.ChangedFile{{Filename: "huge.go", Patch: strings.Repeat("x", 50000)}}
	for i := 0; i < 30; i++ {
		files = append(files, github.ChangedFile{
			Filename: fmt.Sprintf("tail-%02d.go", i),
			Patch:    "NEVER-INCLUDED",
		})
	}

	got := BuildPrompt(files)

	assert.LessOrEqual(t, len(got), maxPromptChars)
	// After the clipped patch only headers fit, so later files show up as
	// header-only sections until even a header is too long.
	assert.Contains(t, got, "--- tail-00.go ---")
	assert.NotContains(t, got, "NEVER-INCLUDED")
	assert.NotContains(t, got, "tail-29.go")
	assert.True(t, strings.HasSuffix(got, promptClosing))
}

func TestBuildPromptDeterministic(t *testing.T) {
	files := make([]github.ChangedFile, 40)
	for i := range files {
		files[i] = github.ChangedFile{
			Filename: fmt.Sprintf("internal/svc/handler_%d.go", i),
			Patch:    strings.Repeat("z", 1000),
		}
	}

	assert.Equal(t, BuildPrompt(files), BuildPrompt(files))
}
