package parsing

import "strings"

// stopWords is the general English stopword list used for phrase and
// keyword extraction.
var stopWords = buildSet(
	"what", "when", "where", "which", "whose", "whom", "why", "how",
	"is", "are", "was", "were", "am", "be", "been", "being",
	"do", "does", "did", "doing", "has", "have", "had", "having",
	"a", "an", "the", "and", "but", "or", "nor", "not", "no", "so",
	"if", "than", "then", "that", "this", "these", "those", "there",
	"about", "above", "after", "again", "against", "all", "any",
	"because", "before", "below", "between", "both", "by", "could",
	"down", "during", "each", "few", "for", "from", "further",
	"her", "here", "hers", "herself", "him", "himself", "his",
	"i", "in", "into", "it", "its", "itself", "just", "me", "more",
	"most", "my", "myself", "of", "off", "on", "once", "only",
	"other", "our", "ours", "ourselves", "out", "over", "own",
	"same", "she", "should", "some", "such", "their", "theirs",
	"them", "themselves", "they", "through", "to", "too", "under",
	"until", "up", "very", "we", "while", "who", "will", "with",
	"would", "you", "your", "yours", "yourself", "yourselves",
)

// financialStopWords are terms too common in financial news to be useful
// as residual keywords.
var financialStopWords = buildSet(
	"stock", "stocks", "market", "markets", "company", "companies",
	"share", "shares", "investor", "investors", "trading", "price",
	"prices", "report", "reports", "reported", "quarter", "quarterly",
	"financial", "finance", "investment", "investments", "year",
	"years", "month", "months", "day", "days", "week", "weeks",
	"percent", "percentage",
)

func buildSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// IsStopWord reports whether the word is a general English stopword.
// The check is case-insensitive.
func IsStopWord(word string) bool {
	return stopWords[strings.ToLower(word)]
}

// IsFinancialStopWord reports whether the word is too generic in
// financial news to carry signal.
func IsFinancialStopWord(word string) bool {
	return financialStopWords[strings.ToLower(word)]
}
