package service

import (
	"fmt"

	"talentscout_backend/internal/model"
)

// Deterministic, network-free substitute outputs used when no API key is
// configured or a live call fails.

const defaultQuestionCount = 5

func MockSummary(candidateName, role string) string {
	return fmt.Sprintf(
		"%s is a candidate for the %s position. This profile summary was "+
			"produced in offline mode without analyzing the resume; review the "+
			"attached CV text manually for details.",
		candidateName, role)
}

func MockReport(candidateName, role string) string {
	return fmt.Sprintf(
		"Screening report for %s (%s role). This report was produced in "+
			"offline mode: the candidate completed every question, but no "+
			"automated evaluation of the answers was performed. "+
			"Recommendation: Consider - manual review required.",
		candidateName, role)
}

// MockQuestions returns the fixed question bank in presentation order,
// bounded by count.
func MockQuestions(role string, count int) []model.GeneratedQuestion {
	bank := []model.GeneratedQuestion{
		{Text: "Walk me through your professional background and what led you to apply.", Category: model.CategoryScreening},
		{Text: fmt.Sprintf("Why are you interested in the %s role?", role), Category: model.CategoryScreening},
		{Text: fmt.Sprintf("Describe a project where you worked closest to a typical %s responsibility.", role), Category: model.CategoryTechnical},
		{Text: "Tell me about a difficult technical problem you solved and how you approached it.", Category: model.CategoryTechnical},
		{Text: "How do you verify the correctness of your work before shipping it?", Category: model.CategoryTechnical},
		{Text: "Describe a time you disagreed with a teammate on a technical decision.", Category: model.CategoryTechnical},
		{Text: "What part of your toolchain would you most like to improve, and why?", Category: model.CategoryTechnical},
		{Text: "What would your first 90 days in this role look like?", Category: model.CategoryTechnical},
	}

	if count <= 0 {
		count = defaultQuestionCount
	}
	if count > len(bank) {
		count = len(bank)
	}
	return bank[:count]
}
