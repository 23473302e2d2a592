package llm

import "strings"

const (
	// MaxResumeChars bounds the resume text sent to the model. The full,
	// untruncated text is still what gets persisted.
	MaxResumeChars = 10000

	// PreviewChars is the length of the resume preview echoed in responses.
	PreviewChars = 300

	truncationMarker = "..."
)

const analysisSchema = `{
  "sections": {
    "skills": {
      "found": ["..."],
      "missing": ["..."],
      "analysis": "..."
    },
    "summary": {
      "present": true,
      "quality": "good",
      "analysis": "...",
      "suggestions": ["..."]
    },
    "experience": {
      "relevance": "high",
      "analysis": "...",
      "keyAchievements": ["..."],
      "suggestions": ["..."]
    }
  },
  "keywordMatching": {
    "matchedKeywords": ["..."],
    "missingKeywords": ["..."],
    "matchPercentage": 0,
    "analysis": "..."
  },
  "atsScore": {
    "score": 0,
    "breakdown": {
      "formatting": 0,
      "keywords": 0,
      "relevance": 0,
      "completeness": 0
    },
    "explanation": "..."
  },
  "positiveFeedback": ["..."],
  "improvements": [
    {
      "category": "...",
      "issue": "...",
      "suggestion": "...",
      "priority": "medium"
    }
  ],
  "overallAssessment": "..."
}`

// TruncateResumeText hard-truncates resume text beyond MaxResumeChars and
// appends an ellipsis marker. Shorter text is returned unchanged.
func TruncateResumeText(text string) string {
	if len(text) > MaxResumeChars {
		return text[:MaxResumeChars] + truncationMarker
	}
	return text
}

// Preview returns the short resume preview included in analyze responses.
func Preview(truncated string) string {
	if len(truncated) > PreviewChars {
		truncated = truncated[:PreviewChars]
	}
	return truncated + truncationMarker
}

// BuildAnalysisPrompt assembles the single instruction prompt sent to the
// model. It is deterministic in its inputs and embeds the target JSON schema
// verbatim. Callers are expected to pass already-truncated resume text.
func BuildAnalysisPrompt(resumeText, jobTitle, jobDescription string) string {
	var b strings.Builder
	b.WriteString("You are an expert resume analyzer and career advisor. Analyze the following resume against the provided job description and return a comprehensive analysis in JSON format.\n\n")
	b.WriteString("RESUME TEXT:\n")
	b.WriteString(resumeText)
	b.WriteString("\n\nJOB TITLE: ")
	b.WriteString(jobTitle)
	b.WriteString("\n\nJOB DESCRIPTION:\n")
	b.WriteString(jobDescription)
	b.WriteString("\n\nReturn a JSON object ONLY, with this structure:\n")
	b.WriteString(analysisSchema)
	b.WriteString("\n")
	return b.String()
}
