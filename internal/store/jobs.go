package store

import (
	"strings"

	apperrors "github.com/justsurfingit/amp-job-portal/internal/errors"
	"github.com/justsurfingit/amp-job-portal/internal/models"
)

func jobID(j models.Job) string { return j.ID }

func corporateID(c models.CorporateUser) string { return c.ID }

func approvalID(a models.ApprovalRequest) string { return a.ID }

func (s *Store) jobIndex(id string) int { return indexByID(s.jobs, id, jobID) }

func (s *Store) corporateIndex(id string) int { return indexByID(s.corporates, id, corporateID) }

// Jobs returns every job in insertion order. A non-empty filter keeps only
// jobs whose title or location contains it, ignoring case.
func (s *Store) Jobs(filter string) []models.Job {
	needle := strings.ToLower(filter)
	out := make([]models.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if needle != "" &&
			!strings.Contains(strings.ToLower(j.Title), needle) &&
			!strings.Contains(strings.ToLower(j.Location), needle) {
			continue
		}
		out = append(out, j.Clone())
	}
	return out
}

func (s *Store) Job(id string) (models.Job, bool) {
	i := s.jobIndex(id)
	if i < 0 {
		return models.Job{}, false
	}
	return s.jobs[i].Clone(), true
}

// AddJob appends job. The caller supplies a fresh id.
func (s *Store) AddJob(job models.Job) {
	s.jobs = append(s.jobs, job.Clone())
}

// UpdateJobStatus records an approval decision. Only jobs waiting for
// approval can be decided, and only as approved or rejected.
func (s *Store) UpdateJobStatus(id string, status models.JobApproval, reason string) error {
	i := s.jobIndex(id)
	if i < 0 {
		return apperrors.NotFound("job "+id, nil)
	}
	if !status.Decided() {
		return apperrors.InvalidInput("job status must be Approved or Rejected, got "+string(status), nil)
	}
	if s.jobs[i].ApprovalStatus != models.JobWaitingForApproval {
		return apperrors.InvalidInput("job "+id+" is already "+string(s.jobs[i].ApprovalStatus), nil)
	}
	s.jobs[i].ApprovalStatus = status
	s.jobs[i].StatusReason = reason
	return nil
}

func (s *Store) Candidates() []models.CandidateListing {
	out := make([]models.CandidateListing, 0, len(s.candidates))
	for _, c := range s.candidates {
		out = append(out, c.Clone())
	}
	return out
}

func (s *Store) Corporates() []models.CorporateUser {
	return cloneOrEmpty(s.corporates)
}

// UpdateCorporateStatus decides a pending corporate registration.
func (s *Store) UpdateCorporateStatus(id string, status models.AccountStatus, reason string) error {
	i := s.corporateIndex(id)
	if i < 0 {
		return apperrors.NotFound("corporate "+id, nil)
	}
	if !status.Decided() {
		return apperrors.InvalidInput("corporate status must be APPROVED or REJECTED, got "+string(status), nil)
	}
	if s.corporates[i].Status != models.StatusPending {
		return apperrors.InvalidInput("corporate "+id+" is already "+string(s.corporates[i].Status), nil)
	}
	s.corporates[i].Status = status
	s.corporates[i].StatusReason = reason
	return nil
}

func (s *Store) Approvals() []models.ApprovalRequest {
	return cloneOrEmpty(s.approvals)
}

// UpdateApproval sets the status of an entry in the legacy review queue.
func (s *Store) UpdateApproval(id string, status models.AccountStatus) error {
	i := indexByID(s.approvals, id, approvalID)
	if i < 0 {
		return apperrors.NotFound("approval "+id, nil)
	}
	if !status.Decided() {
		return apperrors.InvalidInput("approval status must be APPROVED or REJECTED, got "+string(status), nil)
	}
	s.approvals[i].Status = status
	return nil
}
