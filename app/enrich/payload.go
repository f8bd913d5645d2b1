package enrich

import (
	"encoding/json"
	"fmt"
	"strings"
)

// payload is the JSON contract the providers are asked to return. Fields
// the model omits stay empty and get sentinel defaults during merge.
type payload struct {
	ExamName        string `json:"exam_name"`
	ExamDate        string `json:"exam_date"`
	FormStartDate   string `json:"form_start_date"`
	FormLastDate    string `json:"form_last_date"`
	Authority       string `json:"authority"`
	Institute       string `json:"institute"`
	Eligibility     string `json:"eligibility"`
	Pattern         string `json:"pattern"`
	Syllabus        string `json:"syllabus"`
	Strategy        string `json:"strategy"`
	Insights        string `json:"insights"`
	Selection       string `json:"selection"`
	Seats           string `json:"seats"`
	Salary          string `json:"salary"`
	WhyExam         string `json:"why_exam"`
	AdmitCardStatus string `json:"admit_card_status"`
	ResultStatus    string `json:"result_status"`
	MinAge          string `json:"min_age"`
	MaxAge          string `json:"max_age"`
	Fee             string `json:"fee"`
	Qualification   string `json:"qualification"`
}

// ParsePayload extracts the JSON object from a raw model response. The text
// may be wrapped in markdown fences or surrounded by prose; fence markers
// are stripped and the first balanced {...} span is parsed.
func ParsePayload(raw string) (*payload, error) {
	text := strings.ReplaceAll(raw, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	span, err := balancedObject(text)
	if err != nil {
		return nil, err
	}

	var p payload
	if err := json.Unmarshal([]byte(span), &p); err != nil {
		return nil, fmt.Errorf("failed to parse payload JSON: %w", err)
	}

	return &p, nil
}

// balancedObject returns the first balanced top-level {...} span in text.
func balancedObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("unbalanced JSON object in response")
}
