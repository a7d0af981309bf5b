package models

import (
	"slices"
	"strings"
)

type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleCorporate Role = "CORPORATE"
	RoleAdmin     Role = "ADMIN"
	RoleGuest     Role = "GUEST"
)

// ParseRole maps free text onto a Role. Anything unrecognised is a guest.
func ParseRole(s string) Role {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleCandidate:
		return RoleCandidate
	case RoleCorporate:
		return RoleCorporate
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleGuest
	}
}

// AccountStatus is shared by corporate registrations, sessions and the legacy approval queue.
type AccountStatus string

const (
	StatusPending  AccountStatus = "PENDING"
	StatusApproved AccountStatus = "APPROVED"
	StatusRejected AccountStatus = "REJECTED"
)

func (s AccountStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Decided reports whether s is a terminal review outcome.
func (s AccountStatus) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

type JobStatus string

const (
	JobOpen   JobStatus = "OPEN"
	JobClosed JobStatus = "CLOSED"
)

type JobApproval string

const (
	JobApproved           JobApproval = "Approved"
	JobRejected           JobApproval = "Rejected"
	JobWaitingForApproval JobApproval = "Waiting for Approval"
)

func (a JobApproval) Valid() bool {
	return a == JobApproved || a == JobRejected || a == JobWaitingForApproval
}

func (a JobApproval) Decided() bool {
	return a == JobApproved || a == JobRejected
}

type Session struct {
	ID             string        `json:"id"`
	Email          string        `json:"email"`
	Role           Role          `json:"role"`
	Name           string        `json:"name"`
	CompanyName    string        `json:"company_name,omitempty"`
	ApprovalStatus AccountStatus `json:"approval_status"`
}

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	CompanyLogo string    `json:"company_logo,omitempty"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	PostedDate  string    `json:"posted_date"`
	Status      JobStatus `json:"status"`

	// Posting details
	JobType            string   `json:"job_type,omitempty"`
	Qualification      string   `json:"qualification,omitempty"`
	Experience         string   `json:"experience,omitempty"`
	Vacancies          string   `json:"vacancies,omitempty"`
	Skills             string   `json:"skills,omitempty"`
	EnglishProficiency string   `json:"english_proficiency,omitempty"`
	Relocate           bool     `json:"relocate,omitempty"`
	BikeLicense        bool     `json:"bike_license,omitempty"`
	LinkedEvent        string   `json:"linked_event,omitempty"`
	LinkedinURL        string   `json:"linkedin_url,omitempty"`
	ComputerLiteracy   []string `json:"computer_literacy,omitempty"`
	SalaryMin          string   `json:"salary_min,omitempty"`
	SalaryMax          string   `json:"salary_max,omitempty"`
	SalaryType         string   `json:"salary_type,omitempty"`
	Perks              string   `json:"perks,omitempty"`
	ReceiveAppsFrom    string   `json:"receive_apps_from,omitempty"`
	ExpiryDate         string   `json:"expiry_date,omitempty"`
	Instructions       string   `json:"instructions,omitempty"`

	ApprovalStatus JobApproval `json:"approval_status"`
	StatusReason   string      `json:"status_reason,omitempty"`
}

// Clone returns a copy that shares no slices with j.
func (j Job) Clone() Job {
	j.ComputerLiteracy = slices.Clone(j.ComputerLiteracy)
	return j
}

type CorporateUser struct {
	ID           string        `json:"id"`
	FullName     string        `json:"full_name"`
	CompanyName  string        `json:"company_name"`
	Email        string        `json:"email"`
	Mobile       string        `json:"mobile"`
	Designation  string        `json:"designation"`
	Location     string        `json:"location"`
	Status       AccountStatus `json:"status"`
	StatusReason string        `json:"status_reason,omitempty"`
}

type CandidateListing struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Title            string   `json:"title"`
	Location         string   `json:"location"`
	Experience       string   `json:"experience"`
	Qualification    string   `json:"qualification"`
	Skills           []string `json:"skills"`
	Email            string   `json:"email"`
	Mobile           string   `json:"mobile,omitempty"`
	DOB              string   `json:"dob,omitempty"`
	Pincode          string   `json:"pincode,omitempty"`
	State            string   `json:"state,omitempty"`
	City             string   `json:"city,omitempty"`
	Area             string   `json:"area,omitempty"`
	PreferredCities  string   `json:"preferred_cities,omitempty"`
	Linkedin         string   `json:"linkedin,omitempty"`
	PreferredJobType string   `json:"preferred_job_type,omitempty"`
	PreferredRole    string   `json:"preferred_role,omitempty"`
	IsFresher        string   `json:"is_fresher,omitempty"`
	HighestEducation string   `json:"highest_education,omitempty"`
	JobFairEnrolled  string   `json:"job_fair_enrolled,omitempty"`
	CreatedBy        string   `json:"created_by,omitempty"`
	CreatedOn        string   `json:"created_on,omitempty"`
	CVLink           string   `json:"cv_link,omitempty"`
}

func (c CandidateListing) Clone() CandidateListing {
	c.Skills = slices.Clone(c.Skills)
	return c
}

type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}

type Blog struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

type EmailTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type SuccessStory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Comment  string `json:"comment"`
	ImageURL string `json:"image_url"`
}

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type GalleryItem struct {
	ID    string    `json:"id"`
	Type  MediaType `json:"type"`
	URL   string    `json:"url"`
	Title string    `json:"title"`
}

type Banner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Style       string `json:"style"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"button_text"`
	Link        string `json:"link"`
	IsActive    bool   `json:"is_active"`
}

type ApprovalType string

const (
	ApprovalCorporate ApprovalType = "CORPORATE"
	ApprovalJob       ApprovalType = "JOB"
)

// ApprovalRequest is an entry of the legacy review queue, kept alongside
// the status fields on Job and CorporateUser.
type ApprovalRequest struct {
	ID      string        `json:"id"`
	Type    ApprovalType  `json:"type"`
	Name    string        `json:"name"`
	Details string        `json:"details"`
	Date    string        `json:"date"`
	Status  AccountStatus `json:"status"`
}

type SearchCriteria struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Category string `json:"category"`
}

func (c SearchCriteria) IsZero() bool {
	return c == SearchCriteria{}
}

type Education struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	Year         string `json:"year,omitempty"`
	Percentage   string `json:"percentage,omitempty"`
	Activities   string `json:"activities,omitempty"`
	Achievements string `json:"achievements,omitempty"`
}

type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Description string `json:"description,omitempty"`
}

// CandidateProfile is the candidate data handed to resume generation.
type CandidateProfile struct {
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Location       string       `json:"location,omitempty"`
	LinkedinURL    string       `json:"linkedin_url,omitempty"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
	Skills         []string     `json:"skills"`
	Languages      string       `json:"languages,omitempty"`
	PreferredRoles string       `json:"preferred_roles,omitempty"`
	ExpectedSalary string       `json:"expected_salary,omitempty"`
	JobType        string       `json:"job_type,omitempty"`
}
