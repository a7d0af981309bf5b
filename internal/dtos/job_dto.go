package dtos

import (
	"strings"

	"github.com/justsurfingit/amp-job-portal/internal/models"
)

// JobPostingRequest is the "Post a New Job" form.
type JobPostingRequest struct {
	Title       string `json:"title" binding:"required,max=120"`
	Company     string `json:"company" binding:"required"`
	CompanyLogo string `json:"company_logo" binding:"omitempty,url"`
	Location    string `json:"location" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional Fields
	JobType            string   `json:"job_type" binding:"omitempty,oneof='Full Time' 'Part Time' Internship"`
	Qualification      string   `json:"qualification"`
	Experience         string   `json:"experience"`
	Vacancies          string   `json:"vacancies" binding:"omitempty,numeric"`
	Skills             string   `json:"skills"`
	EnglishProficiency string   `json:"english_proficiency"`
	Relocate           bool     `json:"relocate"`
	BikeLicense        bool     `json:"bike_license"`
	LinkedEvent        string   `json:"linked_event"`
	LinkedinURL        string   `json:"linkedin_url" binding:"omitempty,url"`
	ComputerLiteracy   []string `json:"computer_literacy" binding:"omitempty,dive,required"`
	SalaryMin          string   `json:"salary_min" binding:"omitempty,numeric"`
	SalaryMax          string   `json:"salary_max" binding:"omitempty,numeric"`
	SalaryType         string   `json:"salary_type" binding:"omitempty,oneof=Fixed Incentives Fixed+Incentives"`
	Perks              string   `json:"perks"`
	ReceiveAppsFrom    string   `json:"receive_apps_from" binding:"omitempty,oneof='Pan India' Overseas 'Selected Region'"`
	ExpiryDate         string   `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	Instructions       string   `json:"instructions"`
}

// ToJob builds the job as it enters the approval queue.
func (r *JobPostingRequest) ToJob(id, postedDate string) models.Job {
	return models.Job{
		ID:                 id,
		Title:              strings.TrimSpace(r.Title),
		Company:            strings.TrimSpace(r.Company),
		CompanyLogo:        r.CompanyLogo,
		Location:           strings.TrimSpace(r.Location),
		Category:           r.Category,
		Description:        r.Description,
		PostedDate:         postedDate,
		Status:             models.JobOpen,
		JobType:            r.JobType,
		Qualification:      r.Qualification,
		Experience:         r.Experience,
		Vacancies:          r.Vacancies,
		Skills:             r.Skills,
		EnglishProficiency: r.EnglishProficiency,
		Relocate:           r.Relocate,
		BikeLicense:        r.BikeLicense,
		LinkedEvent:        r.LinkedEvent,
		LinkedinURL:        r.LinkedinURL,
		ComputerLiteracy:   append([]string(nil), r.ComputerLiteracy...),
		SalaryMin:          r.SalaryMin,
		SalaryMax:          r.SalaryMax,
		SalaryType:         r.SalaryType,
		Perks:              r.Perks,
		ReceiveAppsFrom:    r.ReceiveAppsFrom,
		ExpiryDate:         r.ExpiryDate,
		Instructions:       r.Instructions,
		ApprovalStatus:     models.JobWaitingForApproval,
	}
}

type JobApplicationRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	ResumeName string `json:"resume_name"`
}

// ReviewRequest carries an approval decision. The reason is free text.
type ReviewRequest struct {
	Decision string `json:"decision" binding:"required,oneof=APPROVE REJECT"`
	Reason   string `json:"reason"`
}

type SearchCriteriaRequest struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Category string `json:"category"`
}

func (r SearchCriteriaRequest) ToCriteria() models.SearchCriteria {
	return models.SearchCriteria{
		Title:    strings.TrimSpace(r.Title),
		Location: strings.TrimSpace(r.Location),
		Category: strings.TrimSpace(r.Category),
	}
}

type LoginRequest struct {
	Role string `json:"role" binding:"required"`
}
