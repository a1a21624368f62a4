// file: internals/features/questionbank/taxonomy/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subject name is only unique inside its class, not globally.
type SubjectModel struct {
	SubjectID          uuid.UUID `gorm:"column:subject_id;type:uuid;primaryKey" json:"subject_id"`
	SubjectName        string    `gorm:"column:subject_name;type:varchar(100);not null;uniqueIndex:uq_subjects_class_name" json:"subject_name"`
	SubjectClassNameID uuid.UUID `gorm:"column:subject_class_name_id;type:uuid;not null;index:idx_subjects_class;uniqueIndex:uq_subjects_class_name" json:"subject_class_name_id"`

	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;not null;autoCreateTime" json:"subject_created_at"`

	ClassName *ClassNameModel `gorm:"foreignKey:SubjectClassNameID;references:ClassNameID;constraint:OnDelete:CASCADE" json:"class_name,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectID == uuid.Nil {
		m.SubjectID = uuid.New()
	}
	return nil
}
