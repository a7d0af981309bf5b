package store

import "github.com/justsurfingit/amp-job-portal/internal/models"

// Lenient is a view of a Store whose id-based mutations silently do nothing
// when the id is unknown or the change is not allowed. Callers that need to
// know use the Store methods directly and inspect the returned error.
type Lenient struct {
	s *Store
}

func (s *Store) Lenient() Lenient {
	return Lenient{s: s}
}

func (l Lenient) UpdateJobStatus(id string, status models.JobApproval, reason string) {
	_ = l.s.UpdateJobStatus(id, status, reason)
}

func (l Lenient) UpdateCorporateStatus(id string, status models.AccountStatus, reason string) {
	_ = l.s.UpdateCorporateStatus(id, status, reason)
}

func (l Lenient) UpdateApproval(id string, status models.AccountStatus) {
	_ = l.s.UpdateApproval(id, status)
}

func (l Lenient) DeleteEmailTemplate(id string) {
	_ = l.s.DeleteEmailTemplate(id)
}

func (l Lenient) UpdateSuccessStory(st models.SuccessStory) {
	_ = l.s.UpdateSuccessStory(st)
}

func (l Lenient) DeleteSuccessStory(id string) {
	_ = l.s.DeleteSuccessStory(id)
}

func (l Lenient) DeleteGalleryItem(id string) {
	_ = l.s.DeleteGalleryItem(id)
}

func (l Lenient) UpdateBanner(b models.Banner) {
	_ = l.s.UpdateBanner(b)
}

func (l Lenient) ToggleSaveJob(jobID string) {
	_ = l.s.ToggleSaveJob(jobID)
}
