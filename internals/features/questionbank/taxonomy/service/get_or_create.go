// file: internals/features/questionbank/taxonomy/service/get_or_create.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	taxonomyModel "prosnobank_backend/internals/features/questionbank/taxonomy/model"
)

// Get-or-create is written as "create, on failure re-fetch" instead of
// check-then-insert, so two concurrent imports racing on the same name both
// end up with the one row that won.

func GetOrCreateClassName(db *gorm.DB, name string) (*taxonomyModel.ClassNameModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("class name is empty")
	}

	var existing taxonomyModel.ClassNameModel
	err := db.Where("class_name_name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row := taxonomyModel.ClassNameModel{ClassNameName: name}
	if createErr := db.Create(&row).Error; createErr != nil {
		// lost the race: someone else inserted the same name
		if refetchErr := db.Where("class_name_name = ?", name).First(&existing).Error; refetchErr == nil {
			return &existing, nil
		}
		return nil, createErr
	}
	return &row, nil
}

func GetOrCreateSubject(db *gorm.DB, classNameID uuid.UUID, name string) (*taxonomyModel.SubjectModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("subject name is empty")
	}

	var existing taxonomyModel.SubjectModel
	err := db.Where("subject_class_name_id = ? AND lower(subject_name) = lower(?)", classNameID, name).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row := taxonomyModel.SubjectModel{SubjectName: name, SubjectClassNameID: classNameID}
	if createErr := db.Create(&row).Error; createErr != nil {
		if refetchErr := db.Where("subject_class_name_id = ? AND lower(subject_name) = lower(?)", classNameID, name).
			First(&existing).Error; refetchErr == nil {
			return &existing, nil
		}
		return nil, createErr
	}
	return &row, nil
}

func GetOrCreateChapter(db *gorm.DB, subjectID uuid.UUID, name string) (*taxonomyModel.ChapterModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("chapter name is empty")
	}

	var existing taxonomyModel.ChapterModel
	err := db.Where("chapter_subject_id = ? AND lower(chapter_name) = lower(?)", subjectID, name).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row := taxonomyModel.ChapterModel{ChapterName: name, ChapterSubjectID: subjectID}
	if createErr := db.Create(&row).Error; createErr != nil {
		if refetchErr := db.Where("chapter_subject_id = ? AND lower(chapter_name) = lower(?)", subjectID, name).
			First(&existing).Error; refetchErr == nil {
			return &existing, nil
		}
		return nil, createErr
	}
	return &row, nil
}

// FindSubjectAnywhere does a case-insensitive exact-name lookup across every
// class. The importer uses it to adopt an existing subject's class when the
// row itself has no class column.
func FindSubjectAnywhere(db *gorm.DB, name string) (*taxonomyModel.SubjectModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var row taxonomyModel.SubjectModel
	if err := db.Where("lower(subject_name) = lower(?)", name).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
