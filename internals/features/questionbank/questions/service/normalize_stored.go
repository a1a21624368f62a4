// file: internals/features/questionbank/questions/service/normalize_stored.go
package service

import (
	"context"

	"gorm.io/gorm"

	questionModel "prosnobank_backend/internals/features/questionbank/questions/model"
)

// NormalizeStoredTypes rewrites legacy question_type values to their
// canonical keys. One-off maintenance pass for historical imports; selection
// tolerates unnormalized rows either way.
func NormalizeStoredTypes(ctx context.Context, db *gorm.DB) (total, changed int, err error) {
	var rows []questionModel.QuestionModel
	if err = db.WithContext(ctx).Find(&rows).Error; err != nil {
		return 0, 0, err
	}

	for _, q := range rows {
		total++
		newType := NormalizeQuestionType(q.QuestionType)
		if newType == "" || newType == q.QuestionType {
			continue
		}
		if uerr := db.WithContext(ctx).Model(&questionModel.QuestionModel{}).
			Where("question_id = ?", q.QuestionID).
			Update("question_type", newType).Error; uerr != nil {
			return total, changed, uerr
		}
		changed++
	}
	return total, changed, nil
}
