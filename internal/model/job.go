package model

import (
	"time"
)

type JobPosting struct {
	ID              string         `db:"id" json:"id"`
	Title           string         `db:"title" json:"title"`
	Slug            string         `db:"slug" json:"slug"`
	Department      string         `db:"department" json:"department"`
	Location        string         `db:"location" json:"location"`
	EmploymentType  EmploymentType `db:"employment_type" json:"employmentType"`
	ExperienceLevel string         `db:"experience_level" json:"experienceLevel"`
	SalaryRange     *string        `db:"salary_range" json:"salaryRange,omitempty"`
	Description     string         `db:"description" json:"description"`
	Requirements    string         `db:"requirements" json:"requirements"`
	Responsibilities string        `db:"responsibilities" json:"responsibilities"`
	IsActive        bool           `db:"is_active" json:"isActive"`
	CreatedAt       time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updatedAt"`
}

type JobPostingParams struct {
	Title            string
	Slug             string
	Department       string
	Location         string
	EmploymentType   EmploymentType
	ExperienceLevel  string
	SalaryRange      *string
	Description      string
	Requirements     string
	Responsibilities string
	IsActive         bool
}

type JobApplication struct {
	ID          string            `db:"id" json:"id"`
	JobID       *string           `db:"job_id" json:"jobId,omitempty"`
	JobTitle    *string           `db:"job_title" json:"jobTitle,omitempty"`
	FullName    string            `db:"full_name" json:"fullName"`
	Email       string            `db:"email" json:"email"`
	Phone       *string           `db:"phone" json:"phone,omitempty"`
	CoverLetter *string           `db:"cover_letter" json:"coverLetter,omitempty"`
	ResumeURL   *string           `db:"resume_url" json:"resumeUrl,omitempty"`
	Status      ApplicationStatus `db:"status" json:"status"`
	CreatedAt   time.Time         `db:"created_at" json:"createdAt"`
}

type CreateApplicationParams struct {
	JobID       *string
	JobTitle    *string
	FullName    string
	Email       string
	Phone       *string
	CoverLetter *string
	ResumeURL   *string
}
