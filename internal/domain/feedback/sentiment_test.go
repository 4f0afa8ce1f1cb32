//go:build unit

package feedback_test

import (
	"testing"

	"bikeshare-api/internal/domain/feedback"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	cases := []struct {
		name string
		text string
		want feedback.Sentiment
	}{
		{"positive", "The ebike was excellent, really great ride", feedback.SentimentPositive},
		{"negative", "Terrible experience, the brakes were bad", feedback.SentimentNegative},
		{"mixed cancels out", "Good bike but terrible battery", feedback.SentimentNeutral},
		{"no lexicon hits", "The scooter arrived on time", feedback.SentimentNeutral},
		{"case insensitive", "EXCELLENT service", feedback.SentimentPositive},
		{"empty", "", feedback.SentimentNeutral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, feedback.Analyze(tc.text))
		})
	}
}
