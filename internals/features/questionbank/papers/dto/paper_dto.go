// file: internals/features/questionbank/papers/dto/paper_dto.go
package dto

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	paperModel "prosnobank_backend/internals/features/questionbank/papers/model"
	questionModel "prosnobank_backend/internals/features/questionbank/questions/model"
	helper "prosnobank_backend/internals/helpers"
)

/* =========================================================
   COMPOSE (materialize from a concrete selection)
   ========================================================= */

type ComposePaperRequest struct {
	// repeated form field or one comma-joined string
	QuestionIDs []string `json:"question_ids" form:"question_ids"`

	SchoolName string `json:"school_name" form:"school_name"`
	Duration   string `json:"duration" form:"duration"`
	TotalMarks string `json:"total_marks" form:"total_marks"`
	IncludeOMR bool   `json:"include_omr" form:"include_omr"`
}

func (r *ComposePaperRequest) Normalize() {
	r.SchoolName = strings.TrimSpace(r.SchoolName)
	r.Duration = strings.TrimSpace(r.Duration)
	r.TotalMarks = strings.TrimSpace(r.TotalMarks)
}

// ResolvedQuestionIDs flattens repeated and comma-joined forms, dropping
// invalid tokens.
func (r *ComposePaperRequest) ResolvedQuestionIDs() []uuid.UUID {
	return helper.ParseUUIDTokens(r.QuestionIDs)
}

/* =========================================================
   DECLARE (record intended scope, no concrete questions)
   ========================================================= */

type DeclarePaperRequest struct {
	ProgramName       string    `json:"program_name" form:"program_name" validate:"required,min=1,max=200"`
	ClassNameID       uuid.UUID `json:"class_level" form:"class_level" validate:"required"`
	SubjectIDs        []string  `json:"subjects" form:"subjects"`
	ChapterIDs        []string  `json:"chapters" form:"chapters"`
	QuestionType      string    `json:"question_type" form:"question_type" validate:"required"`
	NumberOfQuestions int       `json:"number_of_questions" form:"number_of_questions" validate:"required,min=1"`
}

func (r *DeclarePaperRequest) Normalize() {
	r.ProgramName = strings.TrimSpace(r.ProgramName)
	r.QuestionType = strings.TrimSpace(r.QuestionType)
}

/* =========================================================
   RENDER / LIST RESPONSES
   ========================================================= */

type RenderedQuestion struct {
	Index   int    `json:"index"`
	IndexBn string `json:"index_bn"`
	questionModel.QuestionModel
}

type PaperRenderResponse struct {
	Paper        paperModel.QuestionPaperModel `json:"paper"`
	Questions    []RenderedQuestion            `json:"questions"`
	SchoolName   string                        `json:"school_name"`
	Duration     string                        `json:"duration"`
	DurationBn   string                        `json:"duration_bn"`
	TotalMarks   string                        `json:"total_marks"`
	TotalMarksBn string                        `json:"total_marks_bn"`
	IncludeOMR   bool                          `json:"include_omr"`
	ShowAnswers  bool                          `json:"show_answers"`
}

func BuildPaperRender(
	paper paperModel.QuestionPaperModel,
	questions []questionModel.QuestionModel,
	schoolName, duration, totalMarks string,
	includeOMR, showAnswers bool,
) PaperRenderResponse {
	rendered := make([]RenderedQuestion, 0, len(questions))
	for i, q := range questions {
		rendered = append(rendered, RenderedQuestion{
			Index:         i + 1,
			IndexBn:       helper.ToBanglaNumber(strconv.Itoa(i + 1)),
			QuestionModel: q,
		})
	}
	return PaperRenderResponse{
		Paper:        paper,
		Questions:    rendered,
		SchoolName:   schoolName,
		Duration:     duration,
		DurationBn:   helper.ToBanglaNumber(duration),
		TotalMarks:   totalMarks,
		TotalMarksBn: helper.ToBanglaNumber(totalMarks),
		IncludeOMR:   includeOMR,
		ShowAnswers:  showAnswers,
	}
}

type PaperListResponse struct {
	Papers     []paperModel.QuestionPaperModel `json:"papers"`
	Pagination helper.Pagination               `json:"pagination"`
}
