package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/amp-job-portal/internal/models"
	"github.com/justsurfingit/amp-job-portal/internal/store"
)

func TestMatchJobs(t *testing.T) {
	jobs := store.NewSeeded().Jobs("")
	m := NewMatcherService()

	tests := []struct {
		name     string
		criteria models.SearchCriteria
		want     []string
	}{
		{"empty criteria", models.SearchCriteria{}, []string{"1", "2", "3", "4", "5"}},
		{"title", models.SearchCriteria{Title: "analyst"}, []string{"3"}},
		{"location", models.SearchCriteria{Location: " PUNE "}, []string{"4"}},
		{"category exact", models.SearchCriteria{Category: "it"}, []string{"1"}},
		{"category is not a substring match", models.SearchCriteria{Category: "Fin"}, []string{}},
		{"all fields", models.SearchCriteria{Title: "engineer", Location: "mum", Category: "IT"}, []string{"1"}},
		{"no match", models.SearchCriteria{Title: "pilot"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MatchJobs(jobs, tt.criteria)
			ids := make([]string, 0, len(got))
			for _, j := range got {
				ids = append(ids, j.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestMatchCandidates(t *testing.T) {
	cands := store.NewSeeded().Candidates()
	m := NewMatcherService()

	got := m.MatchCandidates(cands, []string{"python", "sql", "excel", "ms excel"})
	require.Len(t, got, 2)
	assert.Equal(t, "c2", got[0].Candidate.ID)
	assert.Equal(t, []string{"SQL", "Python"}, got[0].MatchedSkills)
	assert.Equal(t, "c3", got[1].Candidate.ID)
	assert.Equal(t, []string{"MS Excel"}, got[1].MatchedSkills)
}

func TestMatchCandidates_NoSkills(t *testing.T) {
	m := NewMatcherService()
	got := m.MatchCandidates(store.NewSeeded().Candidates(), []string{"", "  "})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
