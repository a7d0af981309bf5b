package services

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/justsurfingit/amp-job-portal/internal/dtos"
	apperrors "github.com/justsurfingit/amp-job-portal/internal/errors"
	"github.com/justsurfingit/amp-job-portal/internal/models"
	"github.com/justsurfingit/amp-job-portal/internal/store"
)

const dateLayout = "2006-01-02"

const msgRejectionReason = "Please provide a reason for rejection."

type JobService struct {
	Store   *store.Store
	Matcher *MatcherService
	logger  *zap.Logger
	now     func() time.Time
}

func NewJobService(st *store.Store, matcher *MatcherService, logger *zap.Logger) *JobService {
	return &JobService{
		Store:   st,
		Matcher: matcher,
		logger:  logger,
		now:     time.Now,
	}
}

// PostJob validates the posting form and queues the job for approval.
func (s *JobService) PostJob(req *dtos.JobPostingRequest) (models.Job, error) {
	if err := dtos.Validate(req); err != nil {
		return models.Job{}, err
	}
	job := req.ToJob(uuid.NewString(), s.now().Format(dateLayout))
	s.Store.AddJob(job)

	s.logger.Info("Job submitted for approval",
		zap.String("job_id", job.ID),
		zap.String("title", job.Title),
		zap.String("company", job.Company),
	)
	return job, nil
}

// Board lists the publicly visible jobs narrowed by the stored search criteria.
func (s *JobService) Board() []models.Job {
	var public []models.Job
	for _, j := range s.Store.Jobs("") {
		if j.ApprovalStatus == models.JobApproved {
			public = append(public, j)
		}
	}
	return s.Matcher.MatchJobs(public, s.Store.SearchCriteria())
}

// Apply submits an application for an open, approved job.
func (s *JobService) Apply(jobID string, req *dtos.JobApplicationRequest) (Outcome, error) {
	if err := dtos.Validate(req); err != nil {
		return Outcome{}, err
	}
	job, ok := s.Store.Job(jobID)
	if !ok || job.ApprovalStatus != models.JobApproved {
		return Outcome{}, apperrors.NotFound("job "+jobID, nil)
	}
	if job.Status != models.JobOpen {
		return denied("This job is no longer accepting applications."), nil
	}

	s.logger.Info("Application submitted",
		zap.String("job_id", job.ID),
		zap.String("candidate", req.Name),
		zap.String("email", req.Email),
	)
	return done("Application Submitted successfully!"), nil
}

// ReviewJob approves or rejects a job waiting for approval. A rejection
// without a reason is refused here; the store itself accepts one.
func (s *JobService) ReviewJob(id string, req *dtos.ReviewRequest) (Outcome, error) {
	if err := dtos.Validate(req); err != nil {
		return Outcome{}, err
	}
	status := models.JobApproved
	if req.Decision == "REJECT" {
		if req.Reason == "" {
			return denied(msgRejectionReason), nil
		}
		status = models.JobRejected
	}
	if err := s.Store.UpdateJobStatus(id, status, req.Reason); err != nil {
		return Outcome{}, err
	}

	s.logger.Info("Job reviewed", zap.String("job_id", id), zap.String("status", string(status)))
	return done("Job " + string(status) + "."), nil
}

// ReviewCorporate decides a pending corporate registration under the same
// reason policy as ReviewJob.
func (s *JobService) ReviewCorporate(id string, req *dtos.ReviewRequest) (Outcome, error) {
	if err := dtos.Validate(req); err != nil {
		return Outcome{}, err
	}
	status := models.StatusApproved
	if req.Decision == "REJECT" {
		if req.Reason == "" {
			return denied(msgRejectionReason), nil
		}
		status = models.StatusRejected
	}
	if err := s.Store.UpdateCorporateStatus(id, status, req.Reason); err != nil {
		return Outcome{}, err
	}

	s.logger.Info("Corporate reviewed", zap.String("corporate_id", id), zap.String("status", string(status)))
	return done("Corporate " + string(status) + "."), nil
}

// ReviewApproval decides an entry of the legacy queue. Unknown ids are
// ignored, as the queue always did.
func (s *JobService) ReviewApproval(id string, req *dtos.ReviewRequest) (Outcome, error) {
	if err := dtos.Validate(req); err != nil {
		return Outcome{}, err
	}
	status := models.StatusApproved
	if req.Decision == "REJECT" {
		status = models.StatusRejected
	}
	s.Store.Lenient().UpdateApproval(id, status)
	return done("Request " + string(status) + "."), nil
}
