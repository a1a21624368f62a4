// file: internals/features/questionbank/questions/dto/question_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	questionModel "prosnobank_backend/internals/features/questionbank/questions/model"
	taxonomyDTO "prosnobank_backend/internals/features/questionbank/taxonomy/dto"
)

/* =========================================================
   CREATE (ad-hoc, modal path)
   ========================================================= */

type CreateQuestionRequest struct {
	ClassID      uuid.UUID `json:"class_id" form:"class_id" validate:"required"`
	Text         string    `json:"text" form:"text" validate:"required,min=1"`
	QuestionType string    `json:"question_type" form:"question_type"`

	OptionA       *string `json:"option_a" form:"option_a"`
	OptionB       *string `json:"option_b" form:"option_b"`
	OptionC       *string `json:"option_c" form:"option_c"`
	OptionD       *string `json:"option_d" form:"option_d"`
	CorrectOption *string `json:"correct_option" form:"correct_option"`

	// multi-select; falls back to the single filter ids below when empty
	Subjects []string `json:"subjects" form:"subjects"`
	Chapters []string `json:"chapters" form:"chapters"`

	SubjectID string `json:"subject_id" form:"subject_id"`
	ChapterID string `json:"chapter_id" form:"chapter_id"`
}

func (r *CreateQuestionRequest) Normalize() {
	trimPtr := func(pp **string) {
		if pp == nil || *pp == nil {
			return
		}
		v := strings.TrimSpace(**pp)
		if v == "" {
			*pp = nil
			return
		}
		*pp = &v
	}

	r.Text = strings.TrimSpace(r.Text)
	r.QuestionType = strings.TrimSpace(r.QuestionType)
	trimPtr(&r.OptionA)
	trimPtr(&r.OptionB)
	trimPtr(&r.OptionC)
	trimPtr(&r.OptionD)
	trimPtr(&r.CorrectOption)

	if len(r.Subjects) == 0 && strings.TrimSpace(r.SubjectID) != "" {
		r.Subjects = []string{r.SubjectID}
	}
	if len(r.Chapters) == 0 && strings.TrimSpace(r.ChapterID) != "" {
		r.Chapters = []string{r.ChapterID}
	}
}

type CreateQuestionResponse struct {
	Created int      `json:"created"`
	Errors  []string `json:"errors"`
}

/* =========================================================
   SELECTION PAGE PAYLOAD
   ========================================================= */

// SelectionResponse mirrors the selection page contract: the candidate
// questions plus the lists that populate the next dropdown level.
type SelectionResponse struct {
	Questions     []questionModel.QuestionModel `json:"questions"`
	Subjects      []taxonomyDTO.LookupItem      `json:"subjects"`
	Chapters      []taxonomyDTO.LookupItem      `json:"chapters"`
	ShowQuestions bool                          `json:"show_questions"`
}
