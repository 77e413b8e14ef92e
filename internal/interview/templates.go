package interview

import "github.com/jonathan/career-coach/internal/types"

// scoreBand is an inclusive score range used to pick canned feedback.
type scoreBand struct {
	Lo, Hi int
}

// feedbackTemplate is the canned analysis for a question type and band.
type feedbackTemplate struct {
	Band         scoreBand
	Analysis     string
	Strengths    []string
	Improvements []string
}

// feedbackTemplates holds the canned feedback used by the heuristic
// fallback grader, keyed by question type with ascending score bands.
var feedbackTemplates = map[types.QuestionType][]feedbackTemplate{
	types.QuestionTechnical: {
		{
			Band:     scoreBand{0, 3},
			Analysis: "Your answer lacks technical depth and contains some inaccuracies.",
			Strengths: []string{
				"Attempted to address the technical question",
				"Showed willingness to engage with complex concepts",
			},
			Improvements: []string{
				"Study the fundamental concepts in this area",
				"Practice explaining technical concepts clearly and concisely",
				"Include specific examples to demonstrate understanding",
			},
		},
		{
			Band:     scoreBand{4, 6},
			Analysis: "Your answer demonstrates basic technical knowledge but could benefit from more depth and precision.",
			Strengths: []string{
				"Included some relevant technical concepts",
				"Attempted to structure your answer logically",
			},
			Improvements: []string{
				"Deepen your understanding of the core principles",
				"Be more specific with technical terminology",
				"Add practical examples from your experience",
			},
		},
		{
			Band:     scoreBand{7, 8},
			Analysis: "Your answer shows good technical knowledge, but could be more comprehensive in addressing all aspects of the question.",
			Strengths: []string{
				"Good understanding of technical concepts",
				"Clear explanation of core principles",
				"Practical approach to the solution",
			},
			Improvements: []string{
				"Provide more specific examples",
				"Consider discussing trade-offs in your approach",
				"Expand on the technical details",
			},
		},
		{
			Band:     scoreBand{9, 10},
			Analysis: "Your answer demonstrates excellent technical knowledge with depth, accuracy, and comprehensive coverage.",
			Strengths: []string{
				"Demonstrated deep technical understanding",
				"Provided clear, structured explanation",
				"Included relevant examples and trade-offs",
			},
			Improvements: []string{
				"Consider additional edge cases or constraints",
				"Could further emphasize business impact",
				"Perhaps include alternative approaches for comparison",
			},
		},
	},
	types.QuestionBehavioral: {
		{
			Band:     scoreBand{0, 3},
			Analysis: "Your answer would benefit from a more structured approach and specific examples.",
			Strengths: []string{
				"Attempted to address the question",
				"Showed honesty in your reflection",
			},
			Improvements: []string{
				"Use the STAR method (Situation, Task, Action, Result)",
				"Include specific, concrete examples from your experience",
				"Focus on your personal contribution and learnings",
			},
		},
		{
			Band:     scoreBand{4, 6},
			Analysis: "Your answer provides some good examples but could be more structured and results-focused.",
			Strengths: []string{
				"Shared relevant personal experiences",
				"Demonstrated some self-awareness",
			},
			Improvements: []string{
				"Structure your response with the STAR method",
				"Highlight measurable results or impacts",
				"Be more concise in your storytelling",
			},
		},
		{
			Band:     scoreBand{7, 8},
			Analysis: "Your answer effectively uses the STAR method but could benefit from more emphasis on results and learnings.",
			Strengths: []string{
				"Used a relevant personal experience",
				"Structured your answer logically",
				"Showed problem-solving abilities",
			},
			Improvements: []string{
				"Quantify your impact more specifically",
				"Elaborate on what you learned from the experience",
				"Connect the example more directly to the role",
			},
		},
		{
			Band:     scoreBand{9, 10},
			Analysis: "Your answer is excellent, with a clear structure, specific examples, and demonstrated impact.",
			Strengths: []string{
				"Provided a compelling, structured example",
				"Clearly articulated your specific actions",
				"Highlighted measurable results and personal growth",
			},
			Improvements: []string{
				"Consider briefly mentioning alternative approaches",
				"Could further emphasize transferable skills",
				"Possibly connect to broader organizational impact",
			},
		},
	},
	types.QuestionHR: {
		{
			Band:     scoreBand{0, 3},
			Analysis: "Your answer could benefit from more preparation and alignment with your career goals.",
			Strengths: []string{
				"Showed authentic interest in the position",
				"Attempted to share relevant information",
			},
			Improvements: []string{
				"Research the role and company more thoroughly",
				"Prepare concise, focused responses to common questions",
				"Connect your background specifically to this position",
			},
		},
		{
			Band:     scoreBand{4, 6},
			Analysis: "Your answer shows good preparation but could be more specific about your fit for the role.",
			Strengths: []string{
				"Demonstrated knowledge about the position",
				"Shared relevant aspects of your background",
			},
			Improvements: []string{
				"Be more specific about your career aspirations",
				"Highlight alignment between your values and company culture",
				"Prepare a more concise response",
			},
		},
		{
			Band:     scoreBand{7, 8},
			Analysis: "Your answer was professional and showed good alignment with the role, but could include more specific examples.",
			Strengths: []string{
				"Professional tone and attitude",
				"Clear connection between your background and the role",
				"Good understanding of role requirements",
			},
			Improvements: []string{
				"Include more specific examples from your experience",
				"Be more concise in your key points",
				"Further emphasize cultural fit",
			},
		},
		{
			Band:     scoreBand{9, 10},
			Analysis: "Your answer demonstrates excellent preparation, self-awareness, and alignment with the role.",
			Strengths: []string{
				"Showed deep understanding of the role and company",
				"Articulated clear, relevant motivations",
				"Seamlessly connected past experience to future goals",
			},
			Improvements: []string{
				"Consider adding brief mention of long-term vision",
				"Could further personalize to the specific company culture",
				"Perhaps share a brief anecdote for memorability",
			},
		},
	},
}

// templateFor returns the canned feedback for a question type and score.
func templateFor(questionType types.QuestionType, score int) feedbackTemplate {
	bands, ok := feedbackTemplates[questionType]
	if !ok {
		bands = feedbackTemplates[types.QuestionHR]
	}
	for _, tmpl := range bands {
		if score >= tmpl.Band.Lo && score <= tmpl.Band.Hi {
			return tmpl
		}
	}
	return feedbackTemplate{
		Analysis:     "Your answer needs improvement in several areas.",
		Strengths:    []string{"Attempted to address the question"},
		Improvements: []string{"Be more specific", "Structure your answer better", "Include relevant examples"},
	}
}
