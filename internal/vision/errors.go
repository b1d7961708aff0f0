package vision

import "fmt"

// ConfigError reports an invalid configuration value. Configuration is
// validated at set-time; callers keep the previous valid value when one of
// these is returned, so a ConfigError is never fatal.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// ExtractionError wraps a failure of the feature-extraction collaborator
// (or a malformed feature set it returned). When Process returns one of
// these, belief state is untouched and the next valid frame resumes
// normally.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("feature extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
