package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"

	"github.com/justsurfingit/amp-job-portal/internal/config"
	"github.com/justsurfingit/amp-job-portal/internal/models"
)

// LLMService drafts text with Gemini. Every method resolves to a string:
// without a client it answers with a mock message, and failures come back
// as short user-facing messages instead of errors.
type LLMService struct {
	// Nil means no API key was configured.
	Client  llms.Model
	Timeout time.Duration
	logger  *zap.Logger
}

// NewLLMService builds the Gemini client when an API key is configured and
// falls back to mock mode otherwise.
func NewLLMService(cfg *config.Config, logger *zap.Logger) (*LLMService, error) {
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY is empty, text generation runs in mock mode")
		return NewLLMServiceWithClient(nil, cfg.GenerationTimeout, logger), nil
	}

	llm, err := googleai.New(context.Background(),
		googleai.WithAPIKey(cfg.GeminiAPIKey),
		googleai.WithDefaultModel(cfg.GeminiModel),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	logger.Info("Gemini client ready", zap.String("model", cfg.GeminiModel))
	return NewLLMServiceWithClient(llm, cfg.GenerationTimeout, logger), nil
}

func NewLLMServiceWithClient(client llms.Model, timeout time.Duration, logger *zap.Logger) *LLMService {
	return &LLMService{Client: client, Timeout: timeout, logger: logger}
}

func (s *LLMService) MockMode() bool {
	return s.Client == nil
}

// fallbacks are the canned answers for one kind of generation.
type fallbacks struct {
	kind  string
	mock  string
	err   string
	empty string
}

var (
	resumeFallbacks = fallbacks{
		kind:  "resume",
		mock:  "Mock Resume: API Key missing. Please configure.",
		err:   "Error generating resume content.",
		empty: "Failed to generate resume.",
	}
	tipsFallbacks = fallbacks{
		kind:  "interview_tips",
		mock:  "Mock Tips: API Key missing.",
		err:   "Error generating tips.",
		empty: "Failed to generate tips.",
	}
	blogFallbacks = fallbacks{
		kind:  "blog_post",
		mock:  "Mock Blog Post: API Key missing.",
		err:   "Error generating blog.",
		empty: "Failed to generate blog.",
	}
	emailFallbacks = fallbacks{
		kind:  "email",
		mock:  "Mock Email: API Key missing.",
		err:   "Error generating email.",
		empty: "Failed to generate email.",
	}
)

const resumePrompt = `You are an expert resume writer and formatter for global job markets. Create an ATS-friendly resume in MS Word (docx) using the following JSON candidate object. Use reverse-chronological layout, include a 2-sentence professional summary, 4–6 achievement bullets under each role where data exists, quantify results when numbers present, skills list as tags, and education. Also produce a short cover-note (3 sentences) the candidate can send to recruiters. Output: structured fields (header meta, sections with markdown-like tags).

User payload: %s`

const interviewTipsPrompt = `Provide 5 top interview tips for a %s position. Keep it concise.`

const blogPostPrompt = `Write a 600-word blog post about '%s' with headings, bullets, and a CTA to Download sample resume.`

const emailPrompt = `Write a professional email notifying company HR of a new application for %s. Include candidate name %s, placeholder for phone/email, 2-sentence summary, link to resume, and next steps.`

func (s *LLMService) GenerateResumeContent(ctx context.Context, candidate models.CandidateProfile) string {
	if s.MockMode() {
		return resumeFallbacks.mock
	}
	payload, err := json.Marshal(candidate)
	if err != nil {
		s.logger.Error("Failed to encode candidate profile", zap.Error(err))
		return resumeFallbacks.err
	}
	return s.generate(ctx, resumeFallbacks, fmt.Sprintf(resumePrompt, payload))
}

func (s *LLMService) GenerateInterviewTips(ctx context.Context, role string) string {
	return s.generate(ctx, tipsFallbacks, fmt.Sprintf(interviewTipsPrompt, role))
}

func (s *LLMService) DraftBlogPost(ctx context.Context, topic string) string {
	return s.generate(ctx, blogFallbacks, fmt.Sprintf(blogPostPrompt, topic))
}

func (s *LLMService) GenerateEmailTemplate(ctx context.Context, jobTitle, candidateName string) string {
	return s.generate(ctx, emailFallbacks, fmt.Sprintf(emailPrompt, jobTitle, candidateName))
}

// generate sends prompt as a single request. There is no retry.
func (s *LLMService) generate(ctx context.Context, fb fallbacks, prompt string) (text string) {
	if s.MockMode() {
		return fb.mock
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Gemini call panicked", zap.String("kind", fb.kind), zap.Any("panic", r))
			text = fb.err
		}
	}()

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	started := time.Now()
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		s.logger.Error("Gemini error", zap.String("kind", fb.kind), zap.Error(err))
		return fb.err
	}

	resp = strings.TrimSpace(resp)
	if resp == "" {
		s.logger.Warn("Gemini returned empty text", zap.String("kind", fb.kind))
		return fb.empty
	}

	s.logger.Debug("Gemini generation done",
		zap.String("kind", fb.kind),
		zap.Int("chars", len(resp)),
		zap.Duration("took", time.Since(started)),
	)
	return resp
}
