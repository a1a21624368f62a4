// file: internals/features/questionbank/taxonomy/dto/taxonomy_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	taxonomyModel "prosnobank_backend/internals/features/questionbank/taxonomy/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateClassNameRequest struct {
	Name string `json:"class_name_name" form:"class_name_name" validate:"required,min=1,max=100"`
}

func (r *CreateClassNameRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type CreateSubjectRequest struct {
	ClassNameID uuid.UUID `json:"subject_class_name_id" form:"subject_class_name_id" validate:"required"`
	Name        string    `json:"subject_name" form:"subject_name" validate:"required,min=1,max=100"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type CreateChapterRequest struct {
	SubjectID uuid.UUID `json:"chapter_subject_id" form:"chapter_subject_id" validate:"required"`
	Name      string    `json:"chapter_name" form:"chapter_name" validate:"required,min=1,max=200"`
}

func (r *CreateChapterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

/* =========================================================
   LOOKUP RESPONSES (flat lists for cascading selects)
   ========================================================= */

type LookupItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromClassNameModels(rows []taxonomyModel.ClassNameModel) []LookupItem {
	out := make([]LookupItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, LookupItem{ID: r.ClassNameID, Name: r.ClassNameName})
	}
	return out
}

func FromSubjectModels(rows []taxonomyModel.SubjectModel) []LookupItem {
	out := make([]LookupItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, LookupItem{ID: r.SubjectID, Name: r.SubjectName})
	}
	return out
}

func FromChapterModels(rows []taxonomyModel.ChapterModel) []LookupItem {
	out := make([]LookupItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, LookupItem{ID: r.ChapterID, Name: r.ChapterName})
	}
	return out
}
