package service

import (
	"fmt"
	"strings"

	"talentscout_backend/internal/model"
)

func buildSummaryPrompt(candidateName, role, cvText string) string {
	return fmt.Sprintf(
		"You are a senior technical recruiter. Summarize the candidate's profile "+
			"from the resume text below in 4-6 sentences: core skills, years of "+
			"experience, notable projects, and apparent fit for the target role. "+
			"Plain text only, no markdown.\n\n"+
			"Candidate: %s\nTarget role: %s\n\nResume text:\n%s",
		candidateName, role, cvText)
}

func buildQuestionsPrompt(role, summary string, count int) string {
	screening := count / 2
	if screening < 1 {
		screening = 1
	}
	technical := count - screening
	return fmt.Sprintf(
		"Read the candidate profile below and generate interview questions strictly "+
			"grounded in it. Return ONLY a JSON object with keys \"screening\" and "+
			"\"technical\", each an array of question strings.\n"+
			"Rules:\n"+
			"- screening: %d concise warm-up questions about background and motivation.\n"+
			"- technical: %d tailored questions matching the stack and skills in the profile.\n"+
			"- Do NOT include topics absent from the profile.\n"+
			"- Output must be valid JSON, no markdown and no commentary.\n\n"+
			"Target role: %s\n\nCandidate profile:\n%s",
		screening, technical, role, summary)
}

func buildReportPrompt(candidateName, role string, transcript []model.TranscriptEntry) string {
	var qna strings.Builder
	for _, entry := range transcript {
		fmt.Fprintf(&qna, "[%s] Q: %s\nA: %s\n", entry.Category, entry.Question, entry.Answer)
	}
	return fmt.Sprintf(
		"You are a senior hiring manager. Based on the candidate's screening "+
			"interview below, write a concise hiring report: overall impression, "+
			"strengths, weaknesses or risks, and a closing recommendation "+
			"(Strongly Recommend / Recommend / Consider / Do Not Proceed). "+
			"Plain text only.\n\n"+
			"Candidate: %s\nTarget role: %s\n\nInterview Q&A:\n%s",
		candidateName, role, qna.String())
}
