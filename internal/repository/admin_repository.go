package repository

import (
	"talentscout_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByUsername(username string) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := r.DB.Where("username = ?", username).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Upsert replaces the stored hash for the username, creating the row when
// missing. Idempotent.
func (r *AdminRepository) Upsert(username, passwordHash string) error {
	admin := model.AdminUser{
		Username:     username,
		PasswordHash: passwordHash,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "updated_at"}),
	}).Create(&admin).Error
}
