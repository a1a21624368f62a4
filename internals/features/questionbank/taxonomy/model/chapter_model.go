// file: internals/features/questionbank/taxonomy/model/chapter_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChapterModel struct {
	ChapterID        uuid.UUID `gorm:"column:chapter_id;type:uuid;primaryKey" json:"chapter_id"`
	ChapterName      string    `gorm:"column:chapter_name;type:varchar(200);not null;uniqueIndex:uq_chapters_subject_name" json:"chapter_name"`
	ChapterSubjectID uuid.UUID `gorm:"column:chapter_subject_id;type:uuid;not null;index:idx_chapters_subject;uniqueIndex:uq_chapters_subject_name" json:"chapter_subject_id"`

	ChapterCreatedAt time.Time `gorm:"column:chapter_created_at;not null;autoCreateTime" json:"chapter_created_at"`

	Subject *SubjectModel `gorm:"foreignKey:ChapterSubjectID;references:SubjectID;constraint:OnDelete:CASCADE" json:"subject,omitempty"`
}

func (ChapterModel) TableName() string { return "chapters" }

func (m *ChapterModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChapterID == uuid.Nil {
		m.ChapterID = uuid.New()
	}
	return nil
}
