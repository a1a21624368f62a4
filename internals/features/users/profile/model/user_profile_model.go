// file: internals/features/users/profile/model/user_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One profile row per account; the account itself lives in the external
// auth service, we only keep its uuid.
type UserProfileModel struct {
	UserProfileID     uuid.UUID `gorm:"column:user_profile_id;type:uuid;primaryKey" json:"user_profile_id"`
	UserProfileUserID uuid.UUID `gorm:"column:user_profile_user_id;type:uuid;not null;uniqueIndex:uq_user_profiles_user" json:"user_profile_user_id"`

	UserProfileDivision string `gorm:"column:user_profile_division;type:varchar(100);not null" json:"user_profile_division"`
	UserProfileDistrict string `gorm:"column:user_profile_district;type:varchar(100);not null" json:"user_profile_district"`
	UserProfileThana    string `gorm:"column:user_profile_thana;type:varchar(100);not null" json:"user_profile_thana"`

	UserProfileCreatedAt time.Time `gorm:"column:user_profile_created_at;not null;autoCreateTime" json:"user_profile_created_at"`
	UserProfileUpdatedAt time.Time `gorm:"column:user_profile_updated_at;not null;autoUpdateTime" json:"user_profile_updated_at"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }

func (m *UserProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserProfileID == uuid.Nil {
		m.UserProfileID = uuid.New()
	}
	return nil
}
