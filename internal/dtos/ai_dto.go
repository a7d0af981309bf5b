package dtos

import (
	"strings"

	"github.com/justsurfingit/amp-job-portal/internal/models"
)

type InterviewTipsRequest struct {
	Role string `json:"role" binding:"required"`
}

type BlogDraftRequest struct {
	Topic string `json:"topic" binding:"required"`
}

type EmailDraftRequest struct {
	JobTitle      string `json:"job_title" binding:"required"`
	CandidateName string `json:"candidate_name" binding:"required"`
}

// ResumeRequest mirrors the candidate registration form.
type ResumeRequest struct {
	FirstName      string              `json:"first_name" binding:"required"`
	LastName       string              `json:"last_name"`
	Email          string              `json:"email" binding:"required,email"`
	Mobile         string              `json:"mobile" binding:"required"`
	City           string              `json:"city"`
	State          string              `json:"state"`
	LinkedinURL    string              `json:"linkedin_url" binding:"omitempty,url"`
	Education      []models.Education  `json:"education" binding:"omitempty,dive"`
	Experience     []models.Experience `json:"experience" binding:"omitempty,dive"`
	Skills         string              `json:"skills"`
	Languages      string              `json:"languages"`
	PreferredRoles string              `json:"preferred_roles"`
	ExpectedSalary string              `json:"expected_salary"`
	JobType        string              `json:"job_type"`
}

// ToProfile converts the form into the profile sent for resume generation.
// Comma separated skills become a list; empty education and experience rows
// are dropped.
func (r *ResumeRequest) ToProfile() models.CandidateProfile {
	name := strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))

	location := r.City
	if r.State != "" {
		if location != "" {
			location += ", "
		}
		location += r.State
	}

	edu := []models.Education{}
	for _, e := range r.Education {
		if e.Institution != "" || e.Degree != "" {
			edu = append(edu, e)
		}
	}
	exp := []models.Experience{}
	for _, e := range r.Experience {
		if e.Company != "" || e.Role != "" {
			exp = append(exp, e)
		}
	}

	return models.CandidateProfile{
		Name:           name,
		Email:          r.Email,
		Phone:          r.Mobile,
		Location:       location,
		LinkedinURL:    r.LinkedinURL,
		Education:      edu,
		Experience:     exp,
		Skills:         SplitList(r.Skills),
		Languages:      r.Languages,
		PreferredRoles: r.PreferredRoles,
		ExpectedSalary: r.ExpectedSalary,
		JobType:        r.JobType,
	}
}

// SplitList splits a comma separated form value, dropping blanks.
func SplitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
