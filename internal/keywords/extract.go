// Package keywords provides keyword extraction and match scoring over free
// text. It is a deliberately simple, dependency-free substitute for a full
// NLP pipeline and must remain replaceable by a heavier tokenizer without
// changing its contracts.
package keywords

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

const (
	// DefaultLimit is the keyword cap used when callers don't specify one.
	DefaultLimit = 20
	// matchScoreLimit is the keyword cap applied to both sides of match
	// scoring. The cap is part of the contract, not incidental.
	matchScoreLimit = 50
	// minTokenLen is the minimum length for a generic token to survive
	// filtering. Technology-pattern matches are exempt.
	minTokenLen = 3
)

// stopwords is a fixed closed list of common English function words.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"if": true, "because": true, "as": true, "what": true, "when": true,
	"where": true, "how": true, "who": true, "which": true, "this": true,
	"that": true, "to": true, "in": true, "for": true, "with": true,
	"by": true, "at": true, "of": true, "from": true, "about": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"shall": true, "should": true, "can": true, "could": true, "may": true,
	"might": true, "must": true, "on": true, "our": true, "your": true,
	"my": true, "ours": true, "yours": true, "their": true, "his": true,
	"her": true,
}

// nonWordPattern matches punctuation stripped to whitespace before splitting.
var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// techPattern is a fixed alternation of known technology and skill terms.
// It is scanned against the original lowercased text, not the token list,
// so multi-word and symbol-bearing terms survive tokenization.
var techPattern = regexp.MustCompile(`\b(python|java|javascript|html|css|react|angular|node\.js|sql|nosql|mongodb|aws|azure|docker|kubernetes|machine learning|ai|data science|agile|scrum|devops|ci/cd)\b`)

// Tokenize lowercases text, strips punctuation to whitespace and splits on
// whitespace. It applies no stopword or length filtering.
func Tokenize(text string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(cleaned)
}

// Extract returns at most limit salient terms from text, ranked by
// descending frequency with ties broken by first-seen order. Generic tokens
// are lowercased, stopword-filtered and dropped when shorter than three
// characters; matches of the technology pattern are appended to the
// candidate pool unfiltered. An empty text yields an empty result, not an
// error.
func Extract(text string, limit int) []string {
	if text == "" {
		return []string{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	candidates := make([]string, 0)
	for _, token := range Tokenize(text) {
		if stopwords[token] || len(token) < minTokenLen {
			continue
		}
		candidates = append(candidates, token)
	}

	// Scan the raw lowercased text for technology terms the whitespace
	// tokenizer would destroy (e.g. "machine learning", "ci/cd").
	candidates = append(candidates, techPattern.FindAllString(strings.ToLower(text), -1)...)

	counts := make(map[string]int, len(candidates))
	order := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	// Stable sort keeps first-seen order between equal frequencies.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// MatchScore measures how much of the target text's keyword set is covered
// by the source text's keyword set, as a percentage in [0, 100] rounded to
// two decimals. The measure is asymmetric: it is target coverage by source,
// typically "job coverage by candidate", not a similarity score. Either
// side extracting to an empty keyword set yields 0.
func MatchScore(sourceText, targetText string) float64 {
	if sourceText == "" || targetText == "" {
		return 0
	}

	sourceKeywords := Extract(sourceText, matchScoreLimit)
	targetKeywords := Extract(targetText, matchScoreLimit)
	if len(sourceKeywords) == 0 || len(targetKeywords) == 0 {
		return 0
	}

	sourceSet := make(map[string]bool, len(sourceKeywords))
	for _, kw := range sourceKeywords {
		sourceSet[kw] = true
	}

	matches := 0
	for _, kw := range targetKeywords {
		if sourceSet[kw] {
			matches++
		}
	}

	score := float64(matches) / float64(len(targetKeywords)) * 100
	return math.Round(score*100) / 100
}
