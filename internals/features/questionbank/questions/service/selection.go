// file: internals/features/questionbank/questions/service/selection.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prosnobank_backend/internals/constants"
	questionModel "prosnobank_backend/internals/features/questionbank/questions/model"
)

type SelectionFilter struct {
	ClassID    uuid.UUID
	SubjectID  uuid.UUID
	ChapterIDs []uuid.UUID
	Type       string // raw, normalized here
	Count      int    // <=0 means "not given / invalid"
}

// SelectQuestions returns the newest-first bounded candidate set.
// Class, subject, at least one chapter and a type must all be present;
// anything less yields an empty set — the selection page reveals questions
// only once the whole filter chain is chosen.
func SelectQuestions(ctx context.Context, db *gorm.DB, f SelectionFilter) ([]questionModel.QuestionModel, error) {
	if f.ClassID == uuid.Nil || f.SubjectID == uuid.Nil || len(f.ChapterIDs) == 0 || f.Type == "" {
		return []questionModel.QuestionModel{}, nil
	}

	limit := f.Count
	if limit <= 0 {
		limit = constants.DefaultSelectionCount
	}

	q := db.WithContext(ctx).
		Where("question_class_name_id = ?", f.ClassID).
		Where("question_subject_id = ?", f.SubjectID).
		Where("question_chapter_id IN ?", f.ChapterIDs)

	// fuzzy type match: canonical key expands into the stored legacy
	// spellings, unknown labels degrade to an exact lowercased match
	key := NormalizeQuestionType(f.Type)
	q = q.Where("lower(question_type) IN ?", StoredSpellingsFor(key))

	var rows []questionModel.QuestionModel
	if err := q.Order("question_created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
