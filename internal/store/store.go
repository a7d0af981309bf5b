// Package store holds every collection the portal works with, along with
// the session, search criteria and saved jobs of the running app.
//
// A Store performs no locking. Callers that share one across goroutines
// must serialise access themselves; the HTTP layer uses handlers.StoreGuard.
package store

import (
	"slices"

	apperrors "github.com/justsurfingit/amp-job-portal/internal/errors"
	"github.com/justsurfingit/amp-job-portal/internal/models"
)

// MaxEmailTemplates caps the template collection.
const MaxEmailTemplates = 10

type Store struct {
	session *models.Session

	jobs        []models.Job
	candidates  []models.CandidateListing
	corporates  []models.CorporateUser
	events      []models.Event
	blogs       []models.Blog
	approvals   []models.ApprovalRequest
	templates   []models.EmailTemplate
	stories     []models.SuccessStory
	gallery     []models.GalleryItem
	banners     []models.Banner
	criteria    models.SearchCriteria
	savedJobIDs []string
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// --- Session ---

// Login starts a session for role without checking any credentials and
// replaces whatever session was active.
func (s *Store) Login(role models.Role) models.Session {
	sess := models.Session{
		ID:             "user_123",
		Email:          "user@test.com",
		Role:           role,
		Name:           "John Doe",
		ApprovalStatus: models.StatusApproved,
	}
	switch role {
	case models.RoleAdmin:
		sess.Email = "admin@amp.org"
		sess.Name = "Administrator"
	case models.RoleCorporate:
		sess.CompanyName = "Tech Corp"
	}
	s.session = &sess
	return sess
}

// Logout ends the session. Saved jobs belong to the session and go with it.
func (s *Store) Logout() {
	s.session = nil
	s.savedJobIDs = nil
}

func (s *Store) CurrentSession() (models.Session, bool) {
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

// --- Search criteria ---

func (s *Store) SearchCriteria() models.SearchCriteria {
	return s.criteria
}

func (s *Store) SetSearchCriteria(c models.SearchCriteria) {
	s.criteria = c
}

func (s *Store) ClearSearchCriteria() {
	s.criteria = models.SearchCriteria{}
}

// --- Saved jobs ---

func (s *Store) SavedJobIDs() []string {
	return cloneOrEmpty(s.savedJobIDs)
}

// SavedJobs returns the saved jobs in job-board order.
func (s *Store) SavedJobs() []models.Job {
	out := []models.Job{}
	for _, j := range s.jobs {
		if slices.Contains(s.savedJobIDs, j.ID) {
			out = append(out, j.Clone())
		}
	}
	return out
}

// ToggleSaveJob removes jobID from the saved set if present and adds it
// otherwise. Only ids of existing jobs can be saved.
func (s *Store) ToggleSaveJob(jobID string) error {
	if i := slices.Index(s.savedJobIDs, jobID); i >= 0 {
		s.savedJobIDs = slices.Delete(s.savedJobIDs, i, i+1)
		return nil
	}
	if s.jobIndex(jobID) < 0 {
		return apperrors.NotFound("job "+jobID, nil)
	}
	s.savedJobIDs = append(s.savedJobIDs, jobID)
	return nil
}

// indexByID returns the position of the element whose id is id, or -1.
func indexByID[T any](items []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
}

// removeByID filters the element with id out of items.
func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	i := indexByID(items, id, idOf)
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}

// cloneOrEmpty never returns nil so JSON callers always see an array.
func cloneOrEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return slices.Clone(items)
}
