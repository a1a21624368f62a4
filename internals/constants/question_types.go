package constants

// Canonical question type keys. Stored rows may still carry legacy
// spellings (Bengali or Latin); the normalizer in the questions service
// maps both directions.
const (
	QuestionTypeMCQ      = "mcq"
	QuestionTypeShort    = "short"
	QuestionTypeCreative = "creative"
	QuestionTypeCombined = "combined" // papers assembled from a mixed selection
)

// Class assigned to imported rows whose class could not be resolved.
const UnspecifiedClassName = "Unspecified"

const (
	DefaultSelectionCount = 20
	DefaultPapersPerPage  = 10
	MaxReportedRowErrors  = 10
)
