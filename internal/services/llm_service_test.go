package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/justsurfingit/amp-job-portal/internal/config"
	"github.com/justsurfingit/amp-job-portal/internal/models"
)

// fakeModel is an llms.Model that answers with canned content.
type fakeModel struct {
	text    string
	err     error
	choices bool
	block   bool
	prompts []string
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, m := range messages {
		for _, p := range m.Parts {
			if tc, ok := p.(llms.TextContent); ok {
				f.prompts = append(f.prompts, tc.Text)
			}
		}
	}
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	if !f.choices {
		return &llms.ContentResponse{}, nil
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.text}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func newTestLLM(model llms.Model) *LLMService {
	return NewLLMServiceWithClient(model, time.Second, zap.NewNop())
}

func TestNewLLMService_NoKeyIsMockMode(t *testing.T) {
	svc, err := NewLLMService(&config.Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, svc.MockMode())
}

func TestLLMService_MockMode(t *testing.T) {
	svc := newTestLLM(nil)
	ctx := context.Background()

	tips := svc.GenerateInterviewTips(ctx, "Java Developer")
	assert.Contains(t, tips, "Mock")
	assert.Contains(t, tips, "API Key missing")

	assert.Equal(t, "Mock Resume: API Key missing. Please configure.", svc.GenerateResumeContent(ctx, models.CandidateProfile{Name: "A"}))
	assert.Equal(t, "Mock Blog Post: API Key missing.", svc.DraftBlogPost(ctx, "Remote work"))
	assert.Equal(t, "Mock Email: API Key missing.", svc.GenerateEmailTemplate(ctx, "Clerk", "Ravi"))
}

func TestLLMService_Success(t *testing.T) {
	model := &fakeModel{text: "  1. Research the company.\n", choices: true}
	svc := newTestLLM(model)

	out := svc.GenerateInterviewTips(context.Background(), "Java Developer")

	assert.Equal(t, "1. Research the company.", out)
	require.Len(t, model.prompts, 1)
	assert.Equal(t, "Provide 5 top interview tips for a Java Developer position. Keep it concise.", model.prompts[0])
}

func TestLLMService_PromptsEmbedCallerValues(t *testing.T) {
	model := &fakeModel{text: "ok", choices: true}
	svc := newTestLLM(model)
	ctx := context.Background()

	svc.DraftBlogPost(ctx, "Future of Remote Work")
	svc.GenerateEmailTemplate(ctx, "Data Analyst", "Rahul Verma")
	svc.GenerateResumeContent(ctx, models.CandidateProfile{
		Name:   "Priya Sharma",
		Skills: []string{"React", "CSS"},
	})

	require.Len(t, model.prompts, 3)
	assert.Contains(t, model.prompts[0], "'Future of Remote Work'")
	assert.Contains(t, model.prompts[1], "new application for Data Analyst")
	assert.Contains(t, model.prompts[1], "candidate name Rahul Verma")
	assert.Contains(t, model.prompts[2], `"name":"Priya Sharma"`)
	assert.Contains(t, model.prompts[2], `"skills":["React","CSS"]`)
}

func TestLLMService_Failures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		model *fakeModel
		call  func(*LLMService) string
		want  string
	}{
		{
			name:  "call error",
			model: &fakeModel{err: errors.New("connection refused")},
			call:  func(s *LLMService) string { return s.DraftBlogPost(ctx, "x") },
			want:  "Error generating blog.",
		},
		{
			name:  "no choices",
			model: &fakeModel{},
			call:  func(s *LLMService) string { return s.GenerateInterviewTips(ctx, "x") },
			want:  "Error generating tips.",
		},
		{
			name:  "blank text",
			model: &fakeModel{text: "   ", choices: true},
			call:  func(s *LLMService) string { return s.GenerateEmailTemplate(ctx, "x", "y") },
			want:  "Failed to generate email.",
		},
		{
			name:  "empty resume",
			model: &fakeModel{choices: true},
			call:  func(s *LLMService) string { return s.GenerateResumeContent(ctx, models.CandidateProfile{}) },
			want:  "Failed to generate resume.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.call(newTestLLM(tt.model)))
		})
	}
}

func TestLLMService_Timeout(t *testing.T) {
	svc := NewLLMServiceWithClient(&fakeModel{block: true}, 20*time.Millisecond, zap.NewNop())

	out := svc.GenerateInterviewTips(context.Background(), "Welder")
	assert.Equal(t, "Error generating tips.", out)
}

type panickyModel struct{ fakeModel }

func (p *panickyModel) GenerateContent(context.Context, []llms.MessageContent, ...llms.CallOption) (*llms.ContentResponse, error) {
	panic("unexpected payload")
}

func TestLLMService_PanicBecomesErrorText(t *testing.T) {
	svc := newTestLLM(&panickyModel{})
	assert.Equal(t, "Error generating blog.", svc.DraftBlogPost(context.Background(), "x"))
}
