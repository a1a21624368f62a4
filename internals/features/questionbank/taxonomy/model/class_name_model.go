// file: internals/features/questionbank/taxonomy/model/class_name_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassNameModel struct {
	ClassNameID   uuid.UUID `gorm:"column:class_name_id;type:uuid;primaryKey" json:"class_name_id"`
	ClassNameName string    `gorm:"column:class_name_name;type:varchar(100);not null;uniqueIndex:uq_class_names_name" json:"class_name_name"`

	ClassNameCreatedAt time.Time `gorm:"column:class_name_created_at;not null;autoCreateTime" json:"class_name_created_at"`
}

func (ClassNameModel) TableName() string { return "class_names" }

func (m *ClassNameModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassNameID == uuid.Nil {
		m.ClassNameID = uuid.New()
	}
	return nil
}
