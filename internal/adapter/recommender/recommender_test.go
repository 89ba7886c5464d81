package recommender

import (
	"context"
	"errors"
	"testing"
	"time"

	"cognitive-pathways/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
	delay  time.Duration
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.reply, s.err
}

func TestDecodeRecommendation(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		ok     bool
		stream string
	}{
		{"plain json", `{"recommendedStream":"Commerce","aiInsights":"Good with numbers"}`, true, "Commerce"},
		{"wrapped in prose", "Here you go:\n```json\n{\"recommendedStream\":\"Arts\",\"aiInsights\":\"x\"}\n```", true, "Arts"},
		{"think block", `<think>{"recommendedStream":"Wrong"}</think>{"recommendedStream":"Science","aiInsights":"y"}`, true, "Science"},
		{"unterminated think", `<think>pondering {"recommendedStream":"Science"}`, false, ""},
		{"no braces", "I cannot help with that.", false, ""},
		{"invalid json", `{"recommendedStream": Science}`, false, ""},
		{"empty object", `{}`, false, ""},
		{"insights only", `{"aiInsights":"Keep exploring"}`, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := DecodeRecommendation(tt.text)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.stream, rec.RecommendedStream)
				assert.NotNil(t, rec.TopCourses)
			}
		})
	}
}

func TestRecommender_StreamSuccess(t *testing.T) {
	gen := &stubGenerator{reply: `{"recommendedStream":"Medical","topCourses":["MBBS","BDS"],"aiInsights":"Strong in biology"}`}
	r := NewRecommender(gen, time.Second)

	out, err := r.RecommendStream(context.Background(), []string{"Biology", "Helping people"}, "Science")
	require.NoError(t, err)
	assert.False(t, out.Fallback)
	assert.Equal(t, "Medical", out.RecommendedStream)
	assert.Equal(t, []string{"MBBS", "BDS"}, out.TopCourses)
	require.NotNil(t, out.RawResponse)
	assert.Equal(t, gen.reply, *out.RawResponse)

	assert.Contains(t, gen.prompt, "Student's current stream: Science")
	assert.Contains(t, gen.prompt, `["Biology","Helping people"]`)
}

func TestRecommender_FoundationalPromptHasAnswers(t *testing.T) {
	gen := &stubGenerator{reply: `{"recommendedStream":"Arts","aiInsights":"Creative"}`}
	r := NewRecommender(gen, time.Second)

	out, err := r.RecommendFoundational(context.Background(), []string{"Painting"})
	require.NoError(t, err)
	assert.Equal(t, "Arts", out.RecommendedStream)
	assert.Contains(t, gen.prompt, `Student's quiz answers: ["Painting"]`)
}

func TestRecommender_TransportFailureFallsBack(t *testing.T) {
	r := NewRecommender(&stubGenerator{err: errors.New("connection refused")}, time.Second)

	out, err := r.RecommendStream(context.Background(), []string{"a"}, "Commerce")
	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.Nil(t, out.RawResponse)
	assert.Equal(t, StreamFallback(), out.Recommendation)
	assert.Len(t, out.TopCourses, 5)
}

func TestRecommender_UnparseableKeepsRaw(t *testing.T) {
	r := NewRecommender(&stubGenerator{reply: "Science is great!"}, time.Second)

	out, err := r.RecommendFoundational(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.Equal(t, "Science", out.RecommendedStream)
	require.NotNil(t, out.RawResponse)
	assert.Equal(t, "Science is great!", *out.RawResponse)
}

func TestRecommender_PartialReplyFilledFromFallback(t *testing.T) {
	r := NewRecommender(&stubGenerator{reply: `{"aiInsights":"You like logic"}`}, time.Second)

	out, err := r.RecommendFoundational(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.False(t, out.Fallback)
	assert.Equal(t, "Science", out.RecommendedStream)
	assert.Equal(t, "You like logic", out.AIInsights)
}

func TestRecommender_Timeout(t *testing.T) {
	r := NewRecommender(&stubGenerator{reply: `{"recommendedStream":"Arts"}`, delay: time.Second}, 10*time.Millisecond)

	out, err := r.RecommendFoundational(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.True(t, out.Fallback)
}

func TestRecommender_NoGenerator(t *testing.T) {
	r := NewRecommender(nil, 0)

	_, err := r.RecommendFoundational(context.Background(), []string{"a"})
	assert.Equal(t, domain.CodeConfiguration, domain.ErrorCodeOf(err))
}
