// file: internals/features/questionbank/questions/service/type_normalizer.go
package service

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"prosnobank_backend/internals/constants"
)

// Synonym tables for free-text question type labels, Latin and Bengali
// script. Loaded once, never mutated, safe to share across handlers.
var typeSynonyms = map[string][]string{
	constants.QuestionTypeMCQ: {
		"mcq", "multiple", "multiple choice", "multiple-choice", "multiplechoice",
		"বহু", "বহুনির্বাচনী", "বহু-নির্বাচনী", "বহু নির্বাচনি",
	},
	constants.QuestionTypeShort: {
		"short", "সংক্ষিপ্ত", "সংক্ষেপ", "short answer", "short-answer",
	},
	constants.QuestionTypeCreative: {
		"creative", "সৃজন", "সৃজনশীল",
	},
}

// storedSpellings lists the literal values historical imports left in the
// question_type column for each canonical key. Selection expands a canonical
// key into an OR over these instead of trusting rows to be normalized.
var storedSpellings = map[string][]string{
	constants.QuestionTypeMCQ: {
		"mcq", "multiple choice", "multiple-choice", "বহুনির্বাচনী", "বহু-নির্বাচনী", "বহু নির্বাচনি",
	},
	constants.QuestionTypeShort: {
		"short", "short answer", "short-answer", "সংক্ষিপ্ত", "সংক্ষেপ",
	},
	constants.QuestionTypeCreative: {
		"creative", "সৃজনশীল",
	},
}

// NormalizeQuestionType maps a free-text label to a canonical key
// (mcq / short / creative) by substring match against the synonym table.
// Unrecognized input falls back to the trimmed lowercased original.
// Blank input stays blank.
func NormalizeQuestionType(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return ""
	}
	// Bengali text arrives in mixed compositions depending on the source
	// spreadsheet; compare in NFC.
	v = norm.NFC.String(v)

	for key, variants := range typeSynonyms {
		for _, variant := range variants {
			if strings.Contains(v, variant) {
				return key
			}
		}
	}
	return v
}

// StoredSpellingsFor returns the literal column values to OR-match for a
// canonical key. For a non-canonical key it returns the key itself, so the
// caller degrades to an exact match.
func StoredSpellingsFor(key string) []string {
	if spellings, ok := storedSpellings[key]; ok {
		return spellings
	}
	return []string{key}
}
