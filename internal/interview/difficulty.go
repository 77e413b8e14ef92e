package interview

import (
	"math/rand"
	"strings"
	"time"

	"github.com/jonathan/career-coach/internal/types"
)

// roleCatalog is the difficulty-aware question catalog, keyed by normalized
// role then difficulty tier.
var roleCatalog = map[string]map[types.Difficulty][]types.Question{
	"software_engineer": {
		types.DifficultyBeginner: {
			{Text: "Explain the difference between a list and a tuple in Python.", Type: types.QuestionTechnical},
			{Text: "What is version control and why is it important?", Type: types.QuestionTechnical},
			{Text: "Describe a project you worked on that you're proud of.", Type: types.QuestionBehavioral},
			{Text: "What made you interested in software engineering?", Type: types.QuestionHR},
		},
		types.DifficultyIntermediate: {
			{Text: "Explain the concept of time complexity and give examples of O(1), O(n), and O(n²) operations.", Type: types.QuestionTechnical},
			{Text: "How would you design a basic caching system?", Type: types.QuestionTechnical},
			{Text: "Tell me about a time you had to debug a complex issue. What was your approach?", Type: types.QuestionBehavioral},
			{Text: "How do you stay updated with new technologies?", Type: types.QuestionHR},
		},
		types.DifficultyAdvanced: {
			{Text: "Explain the CAP theorem and its implications for distributed systems.", Type: types.QuestionTechnical},
			{Text: "How would you optimize a database query that's performing slowly?", Type: types.QuestionTechnical},
			{Text: "Describe a situation where you had to make a difficult technical decision with limited information.", Type: types.QuestionBehavioral},
			{Text: "How do you balance technical debt with feature development?", Type: types.QuestionHR},
		},
		types.DifficultyExpert: {
			{Text: "How would you design a globally distributed system with eventual consistency?", Type: types.QuestionTechnical},
			{Text: "Explain approaches to handle cascading failures in microservices architectures.", Type: types.QuestionTechnical},
			{Text: "Tell me about a time you led a major architectural change. How did you gain buy-in?", Type: types.QuestionBehavioral},
			{Text: "How do you evaluate emerging technologies for potential adoption?", Type: types.QuestionHR},
		},
	},
	"data_scientist": {
		types.DifficultyBeginner: {
			{Text: "Explain the difference between supervised and unsupervised learning.", Type: types.QuestionTechnical},
			{Text: "What is the purpose of train/test splits in machine learning?", Type: types.QuestionTechnical},
			{Text: "Describe a data analysis project you've worked on.", Type: types.QuestionBehavioral},
			{Text: "Why are you interested in data science?", Type: types.QuestionHR},
		},
		types.DifficultyIntermediate: {
			{Text: "Explain the bias-variance tradeoff.", Type: types.QuestionTechnical},
			{Text: "How would you handle imbalanced data in a classification problem?", Type: types.QuestionTechnical},
			{Text: "Tell me about a time when your analysis led to a surprising insight.", Type: types.QuestionBehavioral},
			{Text: "How do you ensure your analysis is communicated effectively to non-technical stakeholders?", Type: types.QuestionHR},
		},
	},
}

// defaultCatalog covers any role absent from roleCatalog, keyed by
// difficulty tier.
var defaultCatalog = map[types.Difficulty][]types.Question{
	types.DifficultyBeginner: {
		{Text: "What interests you about this field?", Type: types.QuestionHR},
		{Text: "What relevant coursework or projects have you completed?", Type: types.QuestionTechnical},
		{Text: "Tell me about yourself and your background.", Type: types.QuestionHR},
		{Text: "Describe a time you had to learn something quickly.", Type: types.QuestionBehavioral},
	},
	types.DifficultyIntermediate: {
		{Text: "What are your greatest professional strengths and weaknesses?", Type: types.QuestionHR},
		{Text: "Describe a challenging project you worked on.", Type: types.QuestionBehavioral},
		{Text: "How do you prioritize your work when you have multiple deadlines?", Type: types.QuestionBehavioral},
		{Text: "What tools or methodologies do you use in your work?", Type: types.QuestionTechnical},
	},
	types.DifficultyAdvanced: {
		{Text: "How have you mentored or coached others in your field?", Type: types.QuestionBehavioral},
		{Text: "Describe a time when you had to solve a complex problem under pressure.", Type: types.QuestionBehavioral},
		{Text: "How do you stay current in your field?", Type: types.QuestionHR},
		{Text: "What is the most innovative solution you've developed?", Type: types.QuestionTechnical},
	},
	types.DifficultyExpert: {
		{Text: "How have you influenced the strategic direction of your team or organization?", Type: types.QuestionBehavioral},
		{Text: "Describe your approach to evaluating and adopting new technologies or methodologies.", Type: types.QuestionTechnical},
		{Text: "How do you balance technical leadership with business objectives?", Type: types.QuestionHR},
		{Text: "Tell me about a time you had to navigate significant organizational change.", Type: types.QuestionBehavioral},
	},
}

// SelectByDifficulty picks up to count questions for the role at the given
// difficulty, restricted to the requested question types. Unknown roles
// use the default catalog; thin role banks are padded from the default
// catalog of the same difficulty before sampling.
func SelectByDifficulty(role string, difficulty types.Difficulty, questionTypes []types.QuestionType, count int, rng *rand.Rand) []types.Question {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	role = strings.ToLower(strings.TrimSpace(role))

	byDifficulty, ok := roleCatalog[role]
	if !ok {
		byDifficulty = defaultCatalog
	}
	bank, ok := byDifficulty[difficulty]
	if !ok {
		bank = defaultCatalog[difficulty]
	}

	wanted := make(map[types.QuestionType]bool, len(questionTypes))
	for _, t := range questionTypes {
		wanted[t] = true
	}

	filtered := filterByType(bank, wanted)
	if len(filtered) < count {
		seen := make(map[string]bool, len(filtered))
		for _, q := range filtered {
			seen[q.Text] = true
		}
		for _, q := range filterByType(defaultCatalog[difficulty], wanted) {
			if !seen[q.Text] {
				filtered = append(filtered, q)
				seen[q.Text] = true
			}
		}
	}

	if count > len(filtered) {
		count = len(filtered)
	}
	if count <= 0 {
		return []types.Question{}
	}

	shuffled := make([]types.Question, len(filtered))
	copy(shuffled, filtered)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}

func filterByType(bank []types.Question, wanted map[types.QuestionType]bool) []types.Question {
	if len(wanted) == 0 {
		return append([]types.Question(nil), bank...)
	}
	out := make([]types.Question, 0, len(bank))
	for _, q := range bank {
		if wanted[q.Type] {
			out = append(out, q)
		}
	}
	return out
}
