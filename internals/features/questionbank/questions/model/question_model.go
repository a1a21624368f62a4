// file: internals/features/questionbank/questions/model/question_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	taxonomyModel "prosnobank_backend/internals/features/questionbank/taxonomy/model"
)

// Subject/chapter are nullable: ad-hoc questions may carry only a class.
// The importer and the selection engine enforce that subject belongs to
// class and chapter belongs to subject; the schema does not.
type QuestionModel struct {
	QuestionID   uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey" json:"question_id"`
	QuestionText string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionType string    `gorm:"column:question_type;type:varchar(50);not null;default:mcq;index:idx_questions_type" json:"question_type"`

	QuestionClassNameID uuid.UUID  `gorm:"column:question_class_name_id;type:uuid;not null;index:idx_questions_class" json:"question_class_name_id"`
	QuestionSubjectID   *uuid.UUID `gorm:"column:question_subject_id;type:uuid;index:idx_questions_subject" json:"question_subject_id,omitempty"`
	QuestionChapterID   *uuid.UUID `gorm:"column:question_chapter_id;type:uuid;index:idx_questions_chapter" json:"question_chapter_id,omitempty"`

	QuestionOptionA       *string `gorm:"column:question_option_a;type:text" json:"question_option_a,omitempty"`
	QuestionOptionB       *string `gorm:"column:question_option_b;type:text" json:"question_option_b,omitempty"`
	QuestionOptionC       *string `gorm:"column:question_option_c;type:text" json:"question_option_c,omitempty"`
	QuestionOptionD       *string `gorm:"column:question_option_d;type:text" json:"question_option_d,omitempty"`
	QuestionCorrectOption *string `gorm:"column:question_correct_option;type:varchar(10)" json:"question_correct_option,omitempty"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;not null;autoCreateTime;index:idx_questions_created" json:"question_created_at"`

	ClassName *taxonomyModel.ClassNameModel `gorm:"foreignKey:QuestionClassNameID;references:ClassNameID;constraint:OnDelete:CASCADE" json:"class_name,omitempty"`
	Subject   *taxonomyModel.SubjectModel   `gorm:"foreignKey:QuestionSubjectID;references:SubjectID;constraint:OnDelete:CASCADE" json:"subject,omitempty"`
	Chapter   *taxonomyModel.ChapterModel   `gorm:"foreignKey:QuestionChapterID;references:ChapterID;constraint:OnDelete:CASCADE" json:"chapter,omitempty"`
}

func (QuestionModel) TableName() string { return "questions" }

func (m *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuestionID == uuid.Nil {
		m.QuestionID = uuid.New()
	}
	return nil
}
