// file: internals/features/questionbank/questions/service/importer.go
package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	"prosnobank_backend/internals/constants"
	questionModel "prosnobank_backend/internals/features/questionbank/questions/model"
	taxonomyService "prosnobank_backend/internals/features/questionbank/taxonomy/service"
)

type ImportResult struct {
	Created int      `json:"created"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"` // "Row {n}: {reason}", capped at 10 (+N more)
	Notes   []string `json:"notes"`  // non-fatal, e.g. class fallback, capped like errors
}

func (r *ImportResult) Summary() string {
	return fmt.Sprintf("Created %d questions. %d rows failed.", r.Created, r.Failed)
}

// Column aliases per logical field, first non-empty wins. Spreadsheets from
// different schools name these columns inconsistently.
var (
	classColumns   = []string{"class_name", "class", "class_id"}
	subjectColumns = []string{"subject"}
	chapterColumns = []string{"chapter"}
	textColumns    = []string{"text", "question"}
	typeColumns    = []string{"question_type"}
)

// ImportQuestionsCSV runs the bulk import over a UTF-8 comma-delimited
// stream with a header row. The batch is best-effort: a bad row is recorded
// and skipped, never aborts the rest.
func ImportQuestionsCSV(ctx context.Context, db *gorm.DB, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read rows: %w", err)
		}
		records = append(records, rec)
	}

	return importRows(ctx, db, header, records), nil
}

// ImportQuestionsXLSX reads the first sheet of an xlsx workbook and feeds it
// through the same row pipeline as CSV.
func ImportQuestionsXLSX(ctx context.Context, db *gorm.DB, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	return importRows(ctx, db, rows[0], rows[1:]), nil
}

func importRows(ctx context.Context, db *gorm.DB, header []string, records [][]string) *ImportResult {
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = strings.ToLower(strings.TrimSpace(h))
	}

	res := &ImportResult{}
	var allErrors, allNotes []string

	for i, rec := range records {
		// physical spreadsheet line: data rows start after the header
		lineNo := i + 2

		row := make(map[string]string, len(keys))
		for j, k := range keys {
			if k == "" || j >= len(rec) {
				continue
			}
			row[k] = norm.NFC.String(strings.TrimSpace(rec[j]))
		}

		note, err := importOneRow(ctx, db, row)
		if err != nil {
			res.Failed++
			allErrors = append(allErrors, fmt.Sprintf("Row %d: %s", lineNo, err.Error()))
			continue
		}
		res.Created++
		if note != "" {
			allNotes = append(allNotes, fmt.Sprintf("Row %d: %s", lineNo, note))
		}
	}

	res.Errors = capList(allErrors, constants.MaxReportedRowErrors)
	res.Notes = capList(allNotes, constants.MaxReportedRowErrors)
	return res
}

// importOneRow resolves the taxonomy chain and inserts one question.
// Taxonomy get-or-create calls are idempotent; the question insert is the
// unit of atomicity, so a failure here never leaves rows from earlier
// iterations half-done.
func importOneRow(ctx context.Context, db *gorm.DB, row map[string]string) (note string, err error) {
	tx := db.WithContext(ctx)

	subjectName := firstNonEmpty(row, subjectColumns)
	if subjectName == "" {
		return "", fmt.Errorf("missing subject")
	}

	var classID uuid.UUID
	classResolved := false
	if className := firstNonEmpty(row, classColumns); className != "" {
		cls, cerr := taxonomyService.GetOrCreateClassName(tx, className)
		if cerr != nil {
			return "", cerr
		}
		classID = cls.ClassNameID
		classResolved = true
	}

	if !classResolved {
		// adopt the class of an existing same-named subject, else park the
		// row under the Unspecified class; either way the row still succeeds
		if existing, ferr := taxonomyService.FindSubjectAnywhere(tx, subjectName); ferr == nil {
			classID = existing.SubjectClassNameID
			note = fmt.Sprintf("adopted class of existing subject %q", existing.SubjectName)
		} else {
			cls, cerr := taxonomyService.GetOrCreateClassName(tx, constants.UnspecifiedClassName)
			if cerr != nil {
				return "", cerr
			}
			classID = cls.ClassNameID
			note = fmt.Sprintf("no class column; filed under %q", constants.UnspecifiedClassName)
		}
	}

	subject, serr := taxonomyService.GetOrCreateSubject(tx, classID, subjectName)
	if serr != nil {
		return "", serr
	}

	q := questionModel.QuestionModel{
		QuestionClassNameID: classID,
		QuestionSubjectID:   ptr(subject.SubjectID),
	}

	if chapterName := firstNonEmpty(row, chapterColumns); chapterName != "" {
		chapter, cherr := taxonomyService.GetOrCreateChapter(tx, subject.SubjectID, chapterName)
		if cherr != nil {
			return "", cherr
		}
		q.QuestionChapterID = ptr(chapter.ChapterID)
	}

	text := firstNonEmpty(row, textColumns)
	if text == "" {
		return "", fmt.Errorf("missing question text")
	}
	q.QuestionText = text

	qType := firstNonEmpty(row, typeColumns)
	if qType == "" {
		qType = constants.QuestionTypeMCQ
	}
	q.QuestionType = qType

	if v, ok := row["option_a"]; ok && v != "" {
		q.QuestionOptionA = &v
	}
	if v, ok := row["option_b"]; ok && v != "" {
		q.QuestionOptionB = &v
	}
	if v, ok := row["option_c"]; ok && v != "" {
		q.QuestionOptionC = &v
	}
	if v, ok := row["option_d"]; ok && v != "" {
		q.QuestionOptionD = &v
	}
	if v, ok := row["correct_option"]; ok && v != "" {
		q.QuestionCorrectOption = &v
	}

	if ierr := tx.Create(&q).Error; ierr != nil {
		return "", ierr
	}
	return note, nil
}

func firstNonEmpty(row map[string]string, keys []string) string {
	for _, k := range keys {
		if v, ok := row[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

func capList(list []string, max int) []string {
	if len(list) <= max {
		return list
	}
	out := append([]string(nil), list[:max]...)
	return append(out, fmt.Sprintf("+%d more", len(list)-max))
}

func ptr[T any](v T) *T { return &v }
