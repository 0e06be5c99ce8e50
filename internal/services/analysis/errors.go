package analysis

// AnalysisError is a custom error type for analysis-related errors
type AnalysisError string

// Error implements the error interface
func (e AnalysisError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        AnalysisError = "config cannot be nil"
	ErrNilSweepRepo     AnalysisError = "sweep repository cannot be nil"
	ErrNilClock         AnalysisError = "clock cannot be nil"
	ErrNilUUIDGenerator AnalysisError = "UUID generator cannot be nil"
	ErrInvalidDieSize   AnalysisError = "die size must be at least 2"
	ErrNoDieSizes       AnalysisError = "at least one die size is required"
	ErrNoTargets        AnalysisError = "at least one target is required"
	ErrSweepNotFound    AnalysisError = "sweep not found"
)
