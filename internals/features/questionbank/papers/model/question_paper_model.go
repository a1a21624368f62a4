// file: internals/features/questionbank/papers/model/question_paper_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	taxonomyModel "prosnobank_backend/internals/features/questionbank/taxonomy/model"
)

// A paper is immutable once created; the only mutation is a hard delete by
// its creator, so there is no DeletedAt column.
type QuestionPaperModel struct {
	QuestionPaperID          uuid.UUID `gorm:"column:question_paper_id;type:uuid;primaryKey" json:"question_paper_id"`
	QuestionPaperProgramName string    `gorm:"column:question_paper_program_name;type:varchar(200);not null" json:"question_paper_program_name"`
	QuestionPaperCreatorID   uuid.UUID `gorm:"column:question_paper_creator_id;type:uuid;not null;index:idx_question_papers_creator" json:"question_paper_creator_id"`

	QuestionPaperClassNameID  uuid.UUID `gorm:"column:question_paper_class_name_id;type:uuid;not null" json:"question_paper_class_name_id"`
	QuestionPaperQuestionType string    `gorm:"column:question_paper_question_type;type:varchar(50);not null" json:"question_paper_question_type"`
	QuestionPaperNumQuestions int       `gorm:"column:question_paper_number_of_questions;not null;default:0" json:"question_paper_number_of_questions"`

	// declared-scope snapshot ({"subject_ids":[...],"chapter_ids":[...]});
	// null for papers materialized from a concrete selection
	QuestionPaperScope datatypes.JSON `gorm:"column:question_paper_scope;type:jsonb" json:"question_paper_scope,omitempty"`

	QuestionPaperCreatedAt time.Time `gorm:"column:question_paper_created_at;not null;autoCreateTime;index:idx_question_papers_created" json:"question_paper_created_at"`

	ClassName *taxonomyModel.ClassNameModel `gorm:"foreignKey:QuestionPaperClassNameID;references:ClassNameID" json:"class_name,omitempty"`
}

func (QuestionPaperModel) TableName() string { return "question_papers" }

func (m *QuestionPaperModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuestionPaperID == uuid.Nil {
		m.QuestionPaperID = uuid.New()
	}
	return nil
}

// PaperQuestionModel references question rows by id only; question content
// is never duplicated into the paper.
type PaperQuestionModel struct {
	PaperQuestionPaperID    uuid.UUID `gorm:"column:paper_question_paper_id;type:uuid;not null;primaryKey" json:"paper_question_paper_id"`
	PaperQuestionQuestionID uuid.UUID `gorm:"column:paper_question_question_id;type:uuid;not null;primaryKey" json:"paper_question_question_id"`

	Paper *QuestionPaperModel `gorm:"foreignKey:PaperQuestionPaperID;references:QuestionPaperID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PaperQuestionModel) TableName() string { return "question_paper_questions" }
