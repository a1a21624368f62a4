// file: internals/features/questionbank/papers/service/composer.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prosnobank_backend/internals/constants"
	paperModel "prosnobank_backend/internals/features/questionbank/papers/model"
	questionModel "prosnobank_backend/internals/features/questionbank/questions/model"
	questionService "prosnobank_backend/internals/features/questionbank/questions/service"
)

// ErrNoQuestions: the id set resolved to zero stored questions; a paper is
// never created empty.
var ErrNoQuestions = errors.New("no valid questions selected")

type ComposeMode int

const (
	// ModeMaterialize commits a concrete question selection to the paper.
	ModeMaterialize ComposeMode = iota
	// ModeDeclare records intended scope only; a declared paper is a
	// terminal record and never later gains concrete questions.
	ModeDeclare
)

type ComposeInput struct {
	Mode      ComposeMode
	CreatorID uuid.UUID

	// materialize
	QuestionIDs []uuid.UUID
	SchoolName  string

	// declare
	ProgramName       string
	ClassNameID       uuid.UUID
	SubjectIDs        []uuid.UUID
	ChapterIDs        []uuid.UUID
	QuestionType      string
	NumberOfQuestions int
}

type paperScope struct {
	SubjectIDs []uuid.UUID `json:"subject_ids"`
	ChapterIDs []uuid.UUID `json:"chapter_ids"`
}

// ComposePaper is the single composition operation; the two historical
// creation paths are modes of it.
func ComposePaper(ctx context.Context, db *gorm.DB, in ComposeInput) (*paperModel.QuestionPaperModel, []questionModel.QuestionModel, error) {
	switch in.Mode {
	case ModeMaterialize:
		return materialize(ctx, db, in)
	case ModeDeclare:
		paper, err := declare(ctx, db, in)
		return paper, nil, err
	default:
		return nil, nil, fmt.Errorf("unknown compose mode %d", in.Mode)
	}
}

func materialize(ctx context.Context, db *gorm.DB, in ComposeInput) (*paperModel.QuestionPaperModel, []questionModel.QuestionModel, error) {
	var questions []questionModel.QuestionModel
	if len(in.QuestionIDs) > 0 {
		if err := db.WithContext(ctx).
			Where("question_id IN ?", in.QuestionIDs).
			Find(&questions).Error; err != nil {
			return nil, nil, err
		}
	}
	if len(questions) == 0 {
		return nil, nil, ErrNoQuestions
	}

	name := in.SchoolName
	if name == "" {
		name = "Paper"
	}

	paper := paperModel.QuestionPaperModel{
		QuestionPaperProgramName:  fmt.Sprintf("Prepared: %s", name),
		QuestionPaperCreatorID:    in.CreatorID,
		QuestionPaperClassNameID:  questions[0].QuestionClassNameID,
		QuestionPaperQuestionType: constants.QuestionTypeCombined,
		QuestionPaperNumQuestions: len(questions),
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&paper).Error; err != nil {
			return err
		}
		joins := make([]paperModel.PaperQuestionModel, 0, len(questions))
		for _, q := range questions {
			joins = append(joins, paperModel.PaperQuestionModel{
				PaperQuestionPaperID:    paper.QuestionPaperID,
				PaperQuestionQuestionID: q.QuestionID,
			})
		}
		return tx.Create(&joins).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &paper, questions, nil
}

func declare(ctx context.Context, db *gorm.DB, in ComposeInput) (*paperModel.QuestionPaperModel, error) {
	scope, err := json.Marshal(paperScope{
		SubjectIDs: in.SubjectIDs,
		ChapterIDs: in.ChapterIDs,
	})
	if err != nil {
		return nil, err
	}

	qType := questionService.NormalizeQuestionType(in.QuestionType)
	if qType == "" {
		qType = constants.QuestionTypeMCQ
	}

	paper := paperModel.QuestionPaperModel{
		QuestionPaperProgramName:  in.ProgramName,
		QuestionPaperCreatorID:    in.CreatorID,
		QuestionPaperClassNameID:  in.ClassNameID,
		QuestionPaperQuestionType: qType,
		QuestionPaperNumQuestions: in.NumberOfQuestions,
		QuestionPaperScope:        scope,
	}
	if err := db.WithContext(ctx).Create(&paper).Error; err != nil {
		return nil, err
	}
	return &paper, nil
}

// PaperQuestions loads the referenced question rows for a paper.
func PaperQuestions(ctx context.Context, db *gorm.DB, paperID uuid.UUID) ([]questionModel.QuestionModel, error) {
	var rows []questionModel.QuestionModel
	err := db.WithContext(ctx).
		Joins("JOIN question_paper_questions pq ON pq.paper_question_question_id = questions.question_id").
		Where("pq.paper_question_paper_id = ?", paperID).
		Find(&rows).Error
	return rows, err
}

// FindOwnedPaper scopes the lookup to (id, creator). A foreign paper is
// indistinguishable from a missing one.
func FindOwnedPaper(ctx context.Context, db *gorm.DB, paperID, creatorID uuid.UUID) (*paperModel.QuestionPaperModel, error) {
	var paper paperModel.QuestionPaperModel
	err := db.WithContext(ctx).
		Where("question_paper_id = ? AND question_paper_creator_id = ?", paperID, creatorID).
		First(&paper).Error
	if err != nil {
		return nil, err
	}
	return &paper, nil
}
