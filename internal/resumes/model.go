package resumes

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Resume captures one analysis request: its inputs, the full extracted text,
// and the model's output. Records are append-only; nothing updates or deletes
// them after creation.
type Resume struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	FileName       string          `json:"fileName"`
	FileURL        string          `json:"fileUrl"`
	FileType       string          `json:"fileType"`
	ExtractedText  string          `json:"extractedText"`
	JobTitle       string          `json:"jobTitle"`
	JobDescription string          `json:"jobDescription"`
	AIResponse     json.RawMessage `json:"aiResponse"`
	ATSScore       *float64        `json:"atsScore"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// AnalysisResult is the typed view over the model's JSON output. Every field
// is optional; the raw payload is stored and echoed as-is, this struct only
// drives coercion at the boundary (score derivation in particular).
type AnalysisResult struct {
	Sections          *Sections        `json:"sections,omitempty"`
	KeywordMatching   *KeywordMatching `json:"keywordMatching,omitempty"`
	ATSScore          *ATSScoreDetail  `json:"atsScore,omitempty"`
	PositiveFeedback  []string         `json:"positiveFeedback,omitempty"`
	Improvements      []Improvement    `json:"improvements,omitempty"`
	OverallAssessment string           `json:"overallAssessment,omitempty"`
}

type Sections struct {
	Skills     *SkillsSection     `json:"skills,omitempty"`
	Summary    *SummarySection    `json:"summary,omitempty"`
	Experience *ExperienceSection `json:"experience,omitempty"`
}

type SkillsSection struct {
	Found    []string `json:"found,omitempty"`
	Missing  []string `json:"missing,omitempty"`
	Analysis string   `json:"analysis,omitempty"`
}

type SummarySection struct {
	Present     bool     `json:"present,omitempty"`
	Quality     string   `json:"quality,omitempty"`
	Analysis    string   `json:"analysis,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type ExperienceSection struct {
	Relevance       string   `json:"relevance,omitempty"`
	Analysis        string   `json:"analysis,omitempty"`
	KeyAchievements []string `json:"keyAchievements,omitempty"`
	Suggestions     []string `json:"suggestions,omitempty"`
}

type KeywordMatching struct {
	MatchedKeywords []string `json:"matchedKeywords,omitempty"`
	MissingKeywords []string `json:"missingKeywords,omitempty"`
	MatchPercentage Score    `json:"matchPercentage,omitempty"`
	Analysis        string   `json:"analysis,omitempty"`
}

type ATSScoreDetail struct {
	Score       Score           `json:"score"`
	Breakdown   *ScoreBreakdown `json:"breakdown,omitempty"`
	Explanation string          `json:"explanation,omitempty"`
}

type ScoreBreakdown struct {
	Formatting   Score `json:"formatting"`
	Keywords     Score `json:"keywords"`
	Relevance    Score `json:"relevance"`
	Completeness Score `json:"completeness"`
}

type Improvement struct {
	Category   string `json:"category,omitempty"`
	Issue      string `json:"issue,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Priority   string `json:"priority,omitempty"`
}

// Score tolerates the model emitting either a JSON number or a numeric
// string. Anything else decodes to absent rather than failing the parse.
type Score struct {
	value *float64
}

func (s *Score) UnmarshalJSON(data []byte) error {
	// json.Unmarshal reports success for null without touching the target,
	// which would turn a null score into 0.
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		s.value = nil
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		s.value = &num
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.ParseFloat(str, 64); err == nil {
			s.value = &parsed
		}
		return nil
	}
	s.value = nil
	return nil
}

func (s Score) MarshalJSON() ([]byte, error) {
	if s.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*s.value)
}

// Float returns the score and whether it is present and finite.
func (s Score) Float() (float64, bool) {
	if s.value == nil {
		return 0, false
	}
	v := *s.value
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// DeriveATSScore reads the nested atsScore.score field from the raw model
// payload. A missing or unparsable score yields nil, never a fabricated value.
func DeriveATSScore(raw json.RawMessage) *float64 {
	var result AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil
	}
	if result.ATSScore == nil {
		return nil
	}
	score, ok := result.ATSScore.Score.Float()
	if !ok {
		return nil
	}
	return &score
}
