package feedback

import "strings"

type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

func (s Sentiment) String() string {
	return string(s)
}

// Fixed lexicons for the naive scorer. Matching is substring-based over the
// lowercased text, like the scorer this replaces.
var (
	positiveWords = []string{"good", "excellent", "happy", "great", "satisfied", "nice"}
	negativeWords = []string{"bad", "poor", "sad", "terrible", "unsatisfied", "worse"}
)

// Analyze scores text as sign(#positive - #negative) over the lexicons.
func Analyze(text string) Sentiment {
	lower := strings.ToLower(text)

	score := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			score++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			score--
		}
	}

	switch {
	case score > 0:
		return SentimentPositive
	case score < 0:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
