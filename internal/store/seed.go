package store

import "github.com/justsurfingit/amp-job-portal/internal/models"

// NewSeeded creates a store populated with the demo fixtures.
func NewSeeded() *Store {
	s := New()
	s.jobs = seedJobs()
	s.candidates = seedCandidates()
	s.corporates = seedCorporates()
	s.events = seedEvents()
	s.blogs = seedBlogs()
	s.approvals = seedApprovals()
	s.templates = seedTemplates()
	s.stories = seedStories()
	s.gallery = seedGallery()
	s.banners = seedBanners()
	return s
}

func seedJobs() []models.Job {
	return []models.Job{
		{
			ID:             "1",
			Title:          "Software Engineer",
			Company:        "Tech Corp",
			CompanyLogo:    "https://img.logoipsum.com/243.svg",
			Location:       "Mumbai",
			Category:       "IT",
			Description:    "React & Node.js dev needed.",
			PostedDate:     "2023-10-25",
			Status:         models.JobOpen,
			JobType:        "Full Time",
			Experience:     "1-3 Years",
			Skills:         "React, Node.js",
			ApprovalStatus: models.JobApproved,
		},
		{
			ID:             "2",
			Title:          "Marketing Manager",
			Company:        "Brand Solutions",
			Location:       "Delhi",
			Category:       "Marketing",
			Description:    "Lead marketing campaigns.",
			PostedDate:     "2023-10-26",
			Status:         models.JobOpen,
			JobType:        "Full Time",
			ApprovalStatus: models.JobApproved,
		},
		{
			ID:             "3",
			Title:          "Data Analyst",
			Company:        "FinTech Ltd",
			CompanyLogo:    "https://img.logoipsum.com/280.svg",
			Location:       "Bangalore",
			Category:       "Data",
			Description:    "SQL and Python required.",
			PostedDate:     "2023-10-24",
			Status:         models.JobOpen,
			JobType:        "Full Time",
			Skills:         "SQL, Python",
			ApprovalStatus: models.JobApproved,
		},
		{
			ID:             "4",
			Title:          "HR Executive",
			Company:        "Global Services",
			Location:       "Pune",
			Category:       "HR",
			Description:    "Recruitment specialist.",
			PostedDate:     "2023-10-20",
			Status:         models.JobClosed,
			JobType:        "Part Time",
			ApprovalStatus: models.JobApproved,
		},
		{
			ID:               "5",
			Title:            "Senior Accountant",
			Company:          "FinancePro Ltd",
			Location:         "Chennai",
			Category:         "Finance",
			Description:      "GST filing and month-end close.",
			PostedDate:       "2023-11-02",
			Status:           models.JobOpen,
			JobType:          "Full Time",
			Qualification:    "B.Com",
			Experience:       "5+ Years",
			Vacancies:        "2",
			ComputerLiteracy: []string{"MS Excel", "Tally"},
			SalaryMin:        "40000",
			SalaryMax:        "60000",
			SalaryType:       "Fixed",
			ReceiveAppsFrom:  "Pan India",
			ExpiryDate:       "2023-12-31",
			ApprovalStatus:   models.JobWaitingForApproval,
		},
	}
}

func seedCandidates() []models.CandidateListing {
	return []models.CandidateListing{
		{
			ID:               "c1",
			Name:             "Priya Sharma",
			Title:            "Frontend Developer",
			Location:         "Mumbai",
			Experience:       "3 Years",
			Qualification:    "B.Tech",
			Skills:           []string{"React", "TypeScript", "CSS"},
			Email:            "priya.sharma@example.com",
			Mobile:           "9820000001",
			State:            "Maharashtra",
			City:             "Mumbai",
			PreferredCities:  "Mumbai, Pune",
			PreferredJobType: "Full Time",
			PreferredRole:    "Frontend Developer",
			IsFresher:        "No",
			HighestEducation: "B.Tech",
			JobFairEnrolled:  "Yes",
			CreatedBy:        "Self",
			CreatedOn:        "2023-09-12",
		},
		{
			ID:               "c2",
			Name:             "Rahul Verma",
			Title:            "Data Analyst",
			Location:         "Bangalore",
			Experience:       "1 Year",
			Qualification:    "M.Sc Statistics",
			Skills:           []string{"SQL", "Python", "Power BI"},
			Email:            "rahul.verma@example.com",
			State:            "Karnataka",
			City:             "Bangalore",
			PreferredJobType: "Full Time",
			PreferredRole:    "Data Analyst",
			IsFresher:        "No",
			HighestEducation: "M.Sc",
			JobFairEnrolled:  "No",
			CreatedBy:        "Admin",
			CreatedOn:        "2023-10-02",
		},
		{
			ID:               "c3",
			Name:             "Anjali Nair",
			Title:            "Accounts Trainee",
			Location:         "Chennai",
			Experience:       "Fresher",
			Qualification:    "B.Com",
			Skills:           []string{"Tally", "MS Excel", "GST"},
			Email:            "anjali.nair@example.com",
			State:            "Tamil Nadu",
			City:             "Chennai",
			PreferredJobType: "Internship",
			PreferredRole:    "Accountant",
			IsFresher:        "Yes",
			HighestEducation: "B.Com",
			JobFairEnrolled:  "Yes",
			CreatedBy:        "Self",
			CreatedOn:        "2023-10-18",
		},
	}
}

func seedCorporates() []models.CorporateUser {
	return []models.CorporateUser{
		{ID: "corp1", FullName: "Neha Kapoor", CompanyName: "Alpha Innovations", Email: "neha@alphainnovations.in", Mobile: "9811100011", Designation: "HR Manager", Location: "Delhi", Status: models.StatusPending},
		{ID: "corp2", FullName: "Arjun Mehta", CompanyName: "Tech Corp", Email: "arjun@techcorp.in", Mobile: "9822200022", Designation: "Talent Lead", Location: "Mumbai", Status: models.StatusApproved},
		{ID: "corp3", FullName: "Vikram Rao", CompanyName: "QuickHire Agency", Email: "vikram@quickhire.in", Mobile: "9833300033", Designation: "Director", Location: "Hyderabad", Status: models.StatusRejected, StatusReason: "GST number could not be verified"},
	}
}

func seedEvents() []models.Event {
	return []models.Event{
		{ID: "1", Title: "Mega Job Fair", Date: "2030-05-15", Location: "Mumbai Exhibition Center", Description: "Over 50+ companies hiring.", ImageURL: "https://picsum.photos/400/200?random=10"},
		{ID: "2", Title: "Tech Career Summit", Date: "2030-06-10", Location: "Online", Description: "Webinar on future tech trends.", ImageURL: "https://picsum.photos/400/200?random=11"},
		{ID: "3", Title: "Past Resume Workshop", Date: "2023-01-10", Location: "Delhi", Description: "Workshop on building ATS resumes.", ImageURL: "https://picsum.photos/400/200?random=12"},
	}
}

func seedBlogs() []models.Blog {
	return []models.Blog{
		{ID: "1", Title: "Campus to Corporate", Author: "Admin", Date: "2023-10-01", Content: "Transitioning effectively from campus life to corporate culture is a significant milestone..."},
		{ID: "2", Title: "Resume Writing 101", Author: "HR Expert", Date: "2023-09-15", Content: "Your resume is your first impression. Here are the top 5 tips to make it count..."},
		{ID: "3", Title: "Acing the Interview", Author: "Career Coach", Date: "2023-09-20", Content: "Body language plays a crucial role in interviews. Learn how to project confidence..."},
	}
}

func seedApprovals() []models.ApprovalRequest {
	return []models.ApprovalRequest{
		{ID: "1", Type: models.ApprovalCorporate, Name: "Alpha Innovations", Details: "IT Services, Reg No: 12345", Date: "2023-11-01", Status: models.StatusPending},
		{ID: "2", Type: models.ApprovalJob, Name: "Senior Accountant", Details: "Posted by FinancePro Ltd", Date: "2023-11-02", Status: models.StatusPending},
	}
}

func seedTemplates() []models.EmailTemplate {
	return []models.EmailTemplate{
		{
			ID:      "t1",
			Name:    "New Application Alert",
			Subject: "New application for {{job_title}}",
			Body:    "Dear HR Team,\n\n{{candidate_name}} has applied for the {{job_title}} position at {{company}}. Please find the resume attached.\n\nRegards,\nAMP Placement Cell",
		},
		{
			ID:      "t2",
			Name:    "Interview Invitation",
			Subject: "Interview invitation: {{job_title}}",
			Body:    "Hi {{candidate_name}},\n\nYou have been shortlisted for an interview for {{job_title}} at {{company}}. Our team will contact you with the schedule.\n\nBest wishes,\nAMP Placement Cell",
		},
		{
			ID:      "t3",
			Name:    "Job Fair Reminder",
			Subject: "Reminder: {{event_title}}",
			Body:    "Hi {{candidate_name}},\n\nThis is a reminder that {{event_title}} is coming up. Carry printed copies of your resume.\n\nSee you there!",
		},
	}
}

func seedStories() []models.SuccessStory {
	return []models.SuccessStory{
		{ID: "s1", Name: "Sneha Patil", Role: "Software Engineer at Tech Corp", Comment: "The job fair got me three interviews in a single day.", ImageURL: "https://picsum.photos/200/200?random=30"},
		{ID: "s2", Name: "Imran Shaikh", Role: "Sales Executive at Brand Solutions", Comment: "The resume workshop changed how I present myself.", ImageURL: "https://picsum.photos/200/200?random=31"},
		{ID: "s3", Name: "Kavya Reddy", Role: "Data Analyst at FinTech Ltd", Comment: "From campus to my first job in under two months.", ImageURL: "https://picsum.photos/200/200?random=32"},
	}
}

func seedGallery() []models.GalleryItem {
	return []models.GalleryItem{
		{ID: "g1", Type: models.MediaImage, URL: "https://picsum.photos/400/300?random=50", Title: "Mentoring"},
		{ID: "g2", Type: models.MediaVideo, URL: "https://picsum.photos/400/300?random=51", Title: "Workplace"},
		{ID: "g3", Type: models.MediaImage, URL: "https://picsum.photos/400/300?random=52", Title: "Interview"},
		{ID: "g4", Type: models.MediaImage, URL: "https://picsum.photos/400/300?random=53", Title: "Job Fair"},
	}
}

func seedBanners() []models.Banner {
	return []models.Banner{
		{ID: "b1", Name: "Hero", Style: "hero", Title: "Connecting Talent, Transforming Futures", Description: "Join thousands of professionals and top companies on the most trusted recruitment platform.", ButtonText: "Get Started", Link: "register-candidate", IsActive: true},
		{ID: "b2", Name: "Job Fair", Style: "accent", Title: "Mega Job Fair", Description: "Over 50+ companies hiring. Register now.", ButtonText: "View Events", Link: "events", IsActive: true},
		{ID: "b3", Name: "Employers", Style: "primary", Title: "Hiring? Post your jobs for free", Description: "Reach verified candidates across India.", ButtonText: "Register as Employer", Link: "register-corporate", IsActive: false},
	}
}
