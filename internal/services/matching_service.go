package services

import (
	"sort"
	"strings"

	"github.com/justsurfingit/amp-job-portal/internal/models"
)

type MatcherService struct{}

func NewMatcherService() *MatcherService {
	return &MatcherService{}
}

// MatchJobs narrows jobs by the search criteria handed over from the home
// page. Title and location are case-insensitive substring matches, category
// must match exactly (ignoring case). Empty criteria fields match everything.
func (s *MatcherService) MatchJobs(jobs []models.Job, c models.SearchCriteria) []models.Job {
	title := strings.ToLower(strings.TrimSpace(c.Title))
	location := strings.ToLower(strings.TrimSpace(c.Location))
	category := strings.TrimSpace(c.Category)

	out := []models.Job{}
	for _, job := range jobs {
		if title != "" && !strings.Contains(strings.ToLower(job.Title), title) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(job.Location), location) {
			continue
		}
		if category != "" && !strings.EqualFold(job.Category, category) {
			continue
		}
		out = append(out, job)
	}
	return out
}

// CandidateMatch is a candidate together with the requested skills they have.
type CandidateMatch struct {
	Candidate     models.CandidateListing `json:"candidate"`
	MatchedSkills []string                `json:"matched_skills"`
}

// MatchCandidates ranks candidates by how many of the wanted skills they
// list. Candidates with no overlap are dropped; ties keep listing order.
func (s *MatcherService) MatchCandidates(candidates []models.CandidateListing, skills []string) []CandidateMatch {
	wanted := make(map[string]string, len(skills))
	for _, sk := range skills {
		// SAFETY CHECK: ignore blanks, they would match nothing useful.
		if k := strings.ToLower(strings.TrimSpace(sk)); k != "" {
			wanted[k] = strings.TrimSpace(sk)
		}
	}

	matches := []CandidateMatch{}
	if len(wanted) == 0 {
		return matches
	}

	for _, cand := range candidates {
		var hit []string
		for _, have := range cand.Skills {
			if _, ok := wanted[strings.ToLower(strings.TrimSpace(have))]; ok {
				hit = append(hit, have)
			}
		}
		if len(hit) > 0 {
			matches = append(matches, CandidateMatch{Candidate: cand, MatchedSkills: hit})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return len(matches[i].MatchedSkills) > len(matches[j].MatchedSkills)
	})
	return matches
}
