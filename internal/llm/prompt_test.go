package llm

import (
	"strings"
	"testing"
)

func TestTruncateResumeText(t *testing.T) {
	short := strings.Repeat("a", MaxResumeChars)
	if got := TruncateResumeText(short); got != short {
		t.Fatal("text at the limit must not be truncated")
	}

	long := strings.Repeat("b", MaxResumeChars+500)
	got := TruncateResumeText(long)
	if len(got) != MaxResumeChars+len(truncationMarker) {
		t.Fatalf("truncated length = %d, want %d", len(got), MaxResumeChars+len(truncationMarker))
	}
	if !strings.HasSuffix(got, truncationMarker) {
		t.Fatal("truncated text must end with the marker")
	}
	if got[:MaxResumeChars] != long[:MaxResumeChars] {
		t.Fatal("truncation must keep the leading text intact")
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("x", PreviewChars*2)
	got := Preview(long)
	if got != long[:PreviewChars]+truncationMarker {
		t.Fatalf("preview = %q", got[:20]+"…")
	}

	// The original behavior appends the marker even to short text.
	if got := Preview("hi"); got != "hi"+truncationMarker {
		t.Fatalf("short preview = %q", got)
	}
}

func TestBuildAnalysisPromptEmbedsInputsAndSchema(t *testing.T) {
	prompt := BuildAnalysisPrompt("RESUME BODY", "Platform Engineer", "Build platforms.")

	for _, want := range []string{
		"RESUME BODY",
		"JOB TITLE: Platform Engineer",
		"Build platforms.",
		`"atsScore"`,
		`"keywordMatching"`,
		`"overallAssessment"`,
		"Return a JSON object ONLY",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}

	again := BuildAnalysisPrompt("RESUME BODY", "Platform Engineer", "Build platforms.")
	if prompt != again {
		t.Fatal("prompt must be deterministic in its inputs")
	}
}
