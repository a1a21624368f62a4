package service

import (
	"context"
	"testing"
	"time"

	questionModel "prosnobank_backend/internals/features/questionbank/questions/model"
)

func TestNormalizeStoredTypes(t *testing.T) {
	db := openTestDB(t)
	fx := seedTaxonomy(t, db)

	seedQuestion(t, db, fx, "q1", "বহুনির্বাচনী", time.Now())
	seedQuestion(t, db, fx, "q2", "Multiple Choice", time.Now())
	seedQuestion(t, db, fx, "q3", "mcq", time.Now()) // already canonical
	seedQuestion(t, db, fx, "q4", "essay", time.Now())

	total, changed, err := NormalizeStoredTypes(context.Background(), db)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	if changed != 2 {
		t.Errorf("changed = %d, want 2", changed)
	}

	var canonical int64
	db.Model(&questionModel.QuestionModel{}).Where("question_type = ?", "mcq").Count(&canonical)
	if canonical != 3 {
		t.Errorf("canonical mcq rows = %d, want 3", canonical)
	}

	// second pass is a no-op
	_, changed, err = NormalizeStoredTypes(context.Background(), db)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if changed != 0 {
		t.Errorf("second pass changed = %d, want 0", changed)
	}
}
