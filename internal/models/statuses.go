package models

type UserRole string
type UserStatus string
type ApplicationStatus string
type JobType string

const (
	UserRoleAlumnus UserRole = "alumnus"
	UserRoleCompany UserRole = "company"
	UserRoleAdmin   UserRole = "admin"

	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"

	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusReviewed ApplicationStatus = "REVIEWED"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"

	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeInternship JobType = "internship"
	JobTypeTemporary  JobType = "temporary"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeTemporary:
		return true
	}
	return false
}

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAlumnus, UserRoleCompany, UserRoleAdmin:
		return true
	}
	return false
}
