package enrich

import (
	"fmt"

	"github.com/govtjobs-alert/bot/app/feed"
)

// Summary text is capped going into the prompt to bound request size
const promptSummaryMaxLen = 600

const promptTemplate = `You are an expert on Indian Government Exams and Recruitment.

Job notification details:
TITLE: %s
SOURCE: %s
SUMMARY: %s

Using this info AND your knowledge about Indian govt exams, fill all fields.
Return ONLY a valid JSON object. No markdown. No code blocks. No explanation. Just JSON.

{"exam_name": "Full official exam name", "exam_date": "Exam date or Not Announced Yet", "form_start_date": "Start date or Not Available", "form_last_date": "Last date to apply", "authority": "UPSC/SSC/NTA/Railway/State PSC etc", "institute": "Full organization name", "eligibility": "Education qualification and experience needed", "pattern": "Exam stages, subjects, marks, duration", "syllabus": "Key subjects and important topics", "strategy": "3 specific preparation tips for this exam", "insights": "Previous year cutoffs or useful exam trends", "selection": "Step by step selection process", "seats": "Total vacancies", "salary": "Pay scale or salary range", "why_exam": "2 reasons why candidates should apply", "admit_card_status": "Not Released Yet", "result_status": "Not Declared Yet", "min_age": "Minimum age", "max_age": "Maximum age with age relaxation", "fee": "Application fee General/OBC/SC/ST/Women", "qualification": "Minimum educational qualification required"}`

// BuildPrompt fills the extraction prompt from item fields.
func BuildPrompt(title, source, summary string) string {
	return fmt.Sprintf(promptTemplate, title, source, feed.Truncate(summary, promptSummaryMaxLen))
}
