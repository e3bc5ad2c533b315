package db_models

type DashboardBlob struct {
	Stats       map[string]interface{} `json:"stats"`
	Preferences map[string]interface{} `json:"preferences"`
}

type User struct {
	BaseModel
	Username     string `gorm:"not null" json:"username"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:user" json:"role"`
	LastLogin    *int64 `json:"lastLogin,omitempty"`

	DashboardData DashboardBlob `gorm:"serializer:json" json:"dashboardData"`
}
