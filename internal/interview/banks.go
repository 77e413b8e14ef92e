package interview

import (
	"math/rand"
	"strings"
	"time"

	"github.com/jonathan/career-coach/internal/types"
)

// hrQuestions is the default question bank; it also pads thin categories.
var hrQuestions = []string{
	"Tell me about yourself.",
	"Why are you interested in this role?",
	"Why do you want to work for our company?",
	"What are your greatest strengths?",
	"What do you consider to be your weaknesses?",
	"Where do you see yourself in 5 years?",
	"Describe a challenging work situation and how you overcame it.",
	"How do you handle stress and pressure?",
	"What is your ideal work environment?",
	"How would your previous colleagues describe you?",
	"Why are you leaving your current job?",
	"What motivates you in your career?",
	"How do you prioritize your work?",
	"What are your salary expectations?",
	"Do you have any questions for us?",
}

var behavioralQuestions = []string{
	"Tell me about a time when you had to deal with a difficult team member.",
	"Describe a situation where you had to meet a tight deadline.",
	"Give an example of a time when you showed leadership.",
	"Tell me about a time when you failed and what you learned from it.",
	"Describe a situation where you had to learn something quickly.",
	"Tell me about a time when you had to make a difficult decision.",
	"Give an example of how you handled a conflict with a colleague or supervisor.",
	"Describe a situation where you went above and beyond what was expected.",
	"Tell me about a time when you had to persuade someone to see things your way.",
	"Give an example of a time when you had to adapt to a significant change at work.",
	"Describe your biggest professional achievement and how you accomplished it.",
	"Tell me about a time when you received constructive criticism and how you responded.",
	"Give an example of how you have contributed to a team's success.",
	"Describe a situation where you had to solve a complex problem.",
	"Tell me about a time when you had to work with people from different backgrounds.",
}

// technicalQuestions is keyed by normalized (lowercased) role.
var technicalQuestions = map[string][]string{
	"software developer": {
		"Explain the difference between an array and a linked list.",
		"What is object-oriented programming?",
		"How would you optimize a slow-performing query in a database?",
		"Explain what RESTful API is and its principles.",
		"What testing methodologies are you familiar with?",
		"Describe the MVC architecture pattern.",
		"How do you handle version control in your projects?",
		"What is the difference between HTTP and HTTPS?",
		"Explain the concept of dependency injection.",
		"How do you ensure your code is secure?",
		"What is the difference between synchronous and asynchronous programming?",
		"How would you debug a production issue?",
		"Explain the concept of memory leaks and how to prevent them.",
		"What's your approach to code reviews?",
		"How do you stay updated with the latest technologies?",
	},
	"data scientist": {
		"Explain the difference between supervised and unsupervised learning.",
		"What is overfitting and how can you prevent it?",
		"How would you handle missing data in a dataset?",
		"Explain the bias-variance tradeoff.",
		"What are feature selection and feature engineering?",
		"Describe the difference between classification and regression problems.",
		"How would you evaluate a classification model's performance?",
		"What is the curse of dimensionality?",
		"Explain gradient descent algorithm.",
		"What's the difference between bagging and boosting?",
		"How would you handle imbalanced data?",
		"Explain cross-validation and why it's important.",
		"What is regularization and when would you use it?",
		"Describe your approach to A/B testing.",
		"How do you communicate complex findings to non-technical stakeholders?",
	},
	"product manager": {
		"How do you prioritize features in your product roadmap?",
		"Describe how you would gather and incorporate user feedback.",
		"How do you measure the success of a product?",
		"What's your approach to working with engineering teams?",
		"How do you balance user needs with business objectives?",
		"Describe a product you managed from conception to launch.",
		"How do you handle scope creep?",
		"What metrics do you track for your products?",
		"How do you validate new product ideas?",
		"Describe how you would handle a situation where engineering says a feature is technically infeasible.",
		"How do you decide when to pivot a product strategy?",
		"What methodologies do you use for product development?",
		"How do you communicate product vision to different stakeholders?",
		"Describe your approach to competitor analysis.",
		"How do you balance short-term fixes with long-term product goals?",
	},
	"ux designer": {
		"Describe your design process from research to delivery.",
		"How do you advocate for user needs in your organization?",
		"What methods do you use for user research?",
		"How do you validate your design solutions?",
		"Describe a time when you had to compromise on a design decision.",
		"How do you handle design feedback from stakeholders?",
		"What design tools do you use and why?",
		"How do you ensure accessibility in your designs?",
		"Describe how you apply design principles in your work.",
		"How do you balance aesthetics with usability?",
		"What's your approach to creating design systems?",
		"How do you design for different platforms (web, mobile, etc.)?",
		"Describe a complex UX problem you solved and your approach.",
		"How do you stay updated with design trends and technologies?",
		"How do you measure the success of your designs?",
	},
}

// genericTechnicalQuestions covers roles absent from technicalQuestions.
var genericTechnicalQuestions = []string{
	"What technical skills are you most proficient in?",
	"How do you stay updated with the latest developments in your field?",
	"What relevant certifications do you have?",
	"Describe a technical challenge you faced and how you overcame it.",
	"How do you approach learning new technologies or tools?",
	"What tools or software are you most comfortable using?",
	"How do you ensure the quality of your work?",
	"What methodologies are you familiar with in your field?",
	"Describe your process for solving complex problems.",
	"How do you handle technical disagreements with colleagues?",
	"What experience do you have with teamwork in technical projects?",
	"How do you document your work for others to understand?",
	"What metrics do you use to evaluate your performance?",
	"How do you prioritize tasks in a technical project?",
	"Describe a situation where you had to explain technical concepts to non-technical stakeholders.",
}

// SelectQuestions picks up to count questions for the role and interview
// type from the static catalog. Unknown roles fall back to a generic
// catalog for the type. Sampling is without replacement; thin categories
// are padded from the HR bank. The random source is injected so tests and
// concurrent callers stay deterministic and independent.
func SelectQuestions(role string, interviewType types.QuestionType, count int, rng *rand.Rand) []string {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	role = strings.ToLower(strings.TrimSpace(role))

	var bank []string
	switch interviewType {
	case types.QuestionTechnical:
		if roleBank, ok := technicalQuestions[role]; ok {
			bank = roleBank
		} else {
			bank = genericTechnicalQuestions
		}
	case types.QuestionBehavioral:
		bank = behavioralQuestions
	default:
		bank = hrQuestions
	}

	questions := sampleStrings(rng, bank, count)

	// Pad thin categories from the HR bank, skipping duplicates.
	if len(questions) < count {
		seen := make(map[string]bool, len(questions))
		for _, q := range questions {
			seen[q] = true
		}
		for _, q := range sampleStrings(rng, hrQuestions, len(hrQuestions)) {
			if len(questions) >= count {
				break
			}
			if !seen[q] {
				questions = append(questions, q)
				seen[q] = true
			}
		}
	}

	return questions
}

// sampleStrings draws up to n items without replacement.
func sampleStrings(rng *rand.Rand, items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return []string{}
	}
	shuffled := make([]string, len(items))
	copy(shuffled, items)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
