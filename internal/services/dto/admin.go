package dto

type AdminUserQuery struct {
	Pagination
	Role     string `form:"role" json:"role" validate:"omitempty,oneof=alumnus company admin"`
	Status   string `form:"status" json:"status" validate:"omitempty,oneof=pending active"`
	Verified *bool  `form:"verified" json:"verified"`
	Search   string `form:"search" json:"search"`
}

type AdminStatsResponse struct {
	TotalAlumni         int64            `json:"total_alumni"`
	TotalCompanies      int64            `json:"total_companies"`
	TotalJobs           int64            `json:"total_jobs"`
	ActiveJobs          int64            `json:"active_jobs"`
	TotalApplications   int64            `json:"total_applications"`
	ApplicationsByState map[string]int64 `json:"applications_by_status"`
}

type CreateFamilyRequest struct {
	Code string `json:"code" validate:"required,max=20"`
	Name string `json:"name" validate:"required,max=200"`
}

type CreateCycleRequest struct {
	FamilyID string `json:"family_id" validate:"required,uuid"`
	Code     string `json:"code" validate:"required,max=20"`
	Name     string `json:"name" validate:"required,max=200"`
	Level    string `json:"level" validate:"required,oneof=basic medium higher"`
}

type CreateCenterRequest struct {
	Name     string   `json:"name" validate:"required,max=200"`
	City     string   `json:"city" validate:"omitempty,max=100"`
	Families []string `json:"families" validate:"omitempty,dive,uuid"`
}

type UpdateSMTPSettingsRequest struct {
	Host     string `json:"host" validate:"required"`
	Port     int    `json:"port" validate:"required,min=1,max=65535"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from" validate:"required,email"`
	UseTLS   bool   `json:"use_tls"`
}
