package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/justsurfingit/amp-job-portal/internal/config"
	"github.com/justsurfingit/amp-job-portal/internal/models"
	"github.com/justsurfingit/amp-job-portal/internal/services"
	"github.com/justsurfingit/amp-job-portal/internal/store"
)

type testServer struct {
	router  *gin.Engine
	store   *store.Store
	content *ContentHandler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := zap.NewNop()
	cfg := &config.Config{GinMode: gin.TestMode}

	st := store.NewSeeded()
	matcher := services.NewMatcherService()
	jobSvc := services.NewJobService(st, matcher, logger)
	contentSvc := services.NewContentService(st, logger)
	email := services.NewEmailServiceWithClient(nil, "", logger)
	llm := services.NewLLMServiceWithClient(nil, 0, logger)
	guard := NewStoreGuard()

	content := NewContentHandler(st, contentSvc, email, guard)
	content.now = func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) }

	r := NewRouter(cfg, logger, guard,
		NewHealthHandler(llm, email),
		NewSessionHandler(st),
		NewJobHandler(st, jobSvc, matcher),
		content,
		NewAIHandler(llm),
	)
	return &testServer{router: r, store: st, content: content}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api/v1"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func jobIDs(jobs []models.Job) []string {
	ids := []string{}
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "mock", body["text_generation"])
	assert.Equal(t, "disabled", body["email"])
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/session", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/session", map[string]string{"role": "corporate"})
	require.Equal(t, http.StatusCreated, w.Code)
	sess := decode[models.Session](t, w)
	assert.Equal(t, models.RoleCorporate, sess.Role)
	assert.Equal(t, "Tech Corp", sess.CompanyName)

	w = s.do(t, http.MethodGet, "/session", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, "/session", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/session", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/session", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListJobs(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/jobs?q=MUMBAI", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"1"}, jobIDs(decode[[]models.Job](t, w)))

	w = s.do(t, http.MethodGet, "/jobs?q=nothing-like-this", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = s.do(t, http.MethodGet, "/jobs/board", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"1", "2", "3", "4"}, jobIDs(decode[[]models.Job](t, w)))
}

func TestGetJob(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/jobs/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Senior Accountant", decode[models.Job](t, w).Title)

	w = s.do(t, http.MethodGet, "/jobs/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "NOT_FOUND", body["type"])
}

func TestCreateJob(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/jobs", map[string]any{"title": "Only a title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/jobs", map[string]any{
		"title":             "Sales Associate",
		"company":           "Retail Hub",
		"location":          "Jaipur",
		"category":          "Sales",
		"description":       "Floor sales.",
		"job_type":          "Part Time",
		"computer_literacy": []string{"MS Word"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	job := decode[models.Job](t, w)
	assert.Equal(t, models.JobWaitingForApproval, job.ApprovalStatus)
	assert.Equal(t, []string{"MS Word"}, job.ComputerLiteracy)
	assert.Len(t, s.store.Jobs(""), 6)
}

func TestReviewJob(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPatch, "/jobs/5/status", map[string]string{"decision": "REJECT"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	out := decode[services.Outcome](t, w)
	assert.Equal(t, services.OutcomeDenied, out.Kind)

	w = s.do(t, http.MethodPatch, "/jobs/5/status", map[string]string{"decision": "APPROVE"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPatch, "/jobs/5/status", map[string]string{"decision": "APPROVE"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "already decided")

	w = s.do(t, http.MethodPatch, "/jobs/5/status", map[string]string{"decision": "MAYBE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApply(t *testing.T) {
	s := newTestServer(t)
	form := map[string]string{"name": "John Doe", "email": "john@example.com"}

	w := s.do(t, http.MethodPost, "/jobs/1/apply", form)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Application Submitted successfully!", decode[services.Outcome](t, w).Message)

	w = s.do(t, http.MethodPost, "/jobs/4/apply", form)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = s.do(t, http.MethodPost, "/jobs/5/apply", form)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSavedJobs(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/saved-jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = s.do(t, http.MethodPost, "/saved-jobs/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"saved_job_ids":["2"]}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/saved-jobs", nil)
	assert.Equal(t, []string{"2"}, jobIDs(decode[[]models.Job](t, w)))

	w = s.do(t, http.MethodPost, "/saved-jobs/2", nil)
	assert.JSONEq(t, `{"saved_job_ids":[]}`, w.Body.String())

	w = s.do(t, http.MethodPost, "/saved-jobs/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchCriteriaNarrowsBoard(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPut, "/search-criteria", map[string]string{"location": "  delhi "})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "delhi", decode[models.SearchCriteria](t, w).Location)

	w = s.do(t, http.MethodGet, "/jobs/board", nil)
	assert.Equal(t, []string{"2"}, jobIDs(decode[[]models.Job](t, w)))

	w = s.do(t, http.MethodDelete, "/search-criteria", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/jobs/board", nil)
	assert.Len(t, decode[[]models.Job](t, w), 4)
}

func TestMatchCandidates(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/candidates/match?skills=python,sql,react", nil)
	require.Equal(t, http.StatusOK, w.Code)
	matches := decode[[]services.CandidateMatch](t, w)
	require.Len(t, matches, 2)
	assert.Equal(t, "c2", matches[0].Candidate.ID)
	assert.Equal(t, []string{"SQL", "Python"}, matches[0].MatchedSkills)
	assert.Equal(t, "c1", matches[1].Candidate.ID)

	w = s.do(t, http.MethodGet, "/candidates/match", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/candidates", nil)
	assert.Len(t, decode[[]models.CandidateListing](t, w), 3)
}

func TestReviewCorporateAndApprovals(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPatch, "/corporates/corp1/status", map[string]string{"decision": "APPROVE"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusApproved, s.store.Corporates()[0].Status)

	w = s.do(t, http.MethodPatch, "/corporates/corp9/status", map[string]string{"decision": "APPROVE"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPatch, "/approvals/2", map[string]string{"decision": "REJECT"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusRejected, s.store.Approvals()[1].Status)

	w = s.do(t, http.MethodPatch, "/approvals/99", map[string]string{"decision": "REJECT"})
	assert.Equal(t, http.StatusOK, w.Code, "unknown queue entries are ignored")
}

func TestEvents(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Event](t, w), 2)

	w = s.do(t, http.MethodGet, "/events?when=past", nil)
	require.Equal(t, http.StatusOK, w.Code)
	past := decode[[]models.Event](t, w)
	require.Len(t, past, 1)
	assert.Equal(t, "3", past[0].ID)

	w = s.do(t, http.MethodGet, "/events?when=tomorrow", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/events", map[string]string{"title": "Walk-in Drive", "date": "15/11/2030", "location": "Pune"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/events", map[string]string{"title": "Walk-in Drive", "date": "2030-11-15", "location": "Pune"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, s.store.Events(), 4)
}

func TestPublishBlog(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/blogs", map[string]string{"title": "Hiring in 2027", "author": "Admin", "content": "..."})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodGet, "/blogs", nil)
	blogs := decode[[]models.Blog](t, w)
	require.Len(t, blogs, 4)
	assert.Equal(t, "Hiring in 2027", blogs[0].Title)
}

func TestTemplates(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodDelete, "/templates/t1", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, services.OutcomeConfirm, decode[services.Outcome](t, w).Kind)
	assert.Len(t, s.store.EmailTemplates(), 3)

	w = s.do(t, http.MethodDelete, "/templates/t1?confirm=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, s.store.EmailTemplates(), 2)

	w = s.do(t, http.MethodDelete, "/templates/t1?confirm=true", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	for i := len(s.store.EmailTemplates()); i < store.MaxEmailTemplates; i++ {
		w = s.do(t, http.MethodPost, "/templates", map[string]string{"name": fmt.Sprint("T", i), "subject": "s", "body": "b"})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w = s.do(t, http.MethodPost, "/templates", map[string]string{"name": "One too many", "subject": "s", "body": "b"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.NotContains(t, w.Body.String(), `"data"`)
}

func TestSendTemplate(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/templates/t1/send", map[string]any{"to": "hr@techcorp.in", "values": map[string]string{"job_title": "Data Analyst"}})
	require.Equal(t, http.StatusServiceUnavailable, w.Code, "gmail is not configured")

	w = s.do(t, http.MethodPost, "/templates/missing/send", map[string]any{"to": "hr@techcorp.in"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/templates/t1/send", map[string]any{"to": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoriesGalleryBanners(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/stories", map[string]string{"name": "Asha", "role": "Nurse", "comment": "Placed in a week"})
	require.Equal(t, http.StatusCreated, w.Code)
	story := decode[models.SuccessStory](t, w)

	w = s.do(t, http.MethodPut, "/stories/"+story.ID, map[string]string{"name": "Asha K", "role": "Nurse", "comment": "Placed in a week"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, "/stories/"+story.ID+"?confirm=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, s.store.SuccessStories(), 3)

	w = s.do(t, http.MethodPost, "/gallery", map[string]string{"type": "audio", "url": "u", "title": "t"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodDelete, "/gallery/g2", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)

	before := s.store.Banners()
	w = s.do(t, http.MethodPut, "/banners/b99", map[string]any{"name": "Ghost", "title": "Nothing"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before, s.store.Banners())
}

func TestAIRoutesInMockMode(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/ai/interview-tips", map[string]string{"role": "Data Analyst"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, true, body["mock"])
	assert.Equal(t, "Mock Tips: API Key missing.", body["text"])

	w = s.do(t, http.MethodPost, "/ai/resume", map[string]string{"first_name": "Priya", "email": "priya@example.com", "mobile": "98"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mock Resume: API Key missing. Please configure.", decode[map[string]any](t, w)["text"])

	w = s.do(t, http.MethodPost, "/ai/email", map[string]string{"job_title": "Data Analyst"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/jobs", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStoreRoutesAreSerialized(t *testing.T) {
	s := newTestServer(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/stories",
				bytes.NewBufferString(fmt.Sprintf(`{"name":"N%d","role":"R","comment":"C"}`, i)))
			req.Header.Set("Content-Type", "application/json")
			s.router.ServeHTTP(httptest.NewRecorder(), req)
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.store.SuccessStories(), 23)
}
