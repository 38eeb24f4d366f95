package model

// AdminUser is the single administrator account. It is created by the
// bootstrap on first run and only replaced through the CLI upsert.
// swagger:model AdminUser
type AdminUser struct {
	BaseModel
	Username     string `gorm:"size:100;unique;not null" json:"username"`
	PasswordHash string `gorm:"size:100;not null" json:"-"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
