package models

// SMTPSettings is a single admin-editable row that overrides the file
// configuration of the outgoing mail server.
type SMTPSettings struct {
	BaseModel
	Host     string `gorm:"not null" json:"host"`
	Port     int    `gorm:"not null" json:"port"`
	Username string `json:"username"`
	Password string `json:"-"`
	From     string `gorm:"not null" json:"from"`
	UseTLS   bool   `gorm:"default:true" json:"use_tls"`
}
