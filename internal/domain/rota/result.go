// internal/domain/rota/result.go
package rota

import "fmt"

// ResultKind discriminates the four possible outcomes of a classification.
type ResultKind string

const (
	// KindCategory is a bare timing category (Gold, Silver, Gray, MIST Transplant).
	KindCategory ResultKind = "CATEGORY"
	// KindDescription is a timing category wrapped in a line-specific policy
	// description (YPBB, Blue, Green, MIST SCU).
	KindDescription ResultKind = "DESCRIPTION"
	// KindUnrecognized means the line is not modeled here; the caller should
	// advise consulting the published schedule. It is not a failure.
	KindUnrecognized ResultKind = "UNRECOGNIZED"
	// KindFailure is a parse or table-consistency failure with a named reason.
	KindFailure ResultKind = "FAILURE"
)

// Result is the tagged outcome of classifying a shift identifier.
// Callers discriminate on Kind; the remaining fields are only meaningful for
// the kinds noted on them.
type Result struct {
	Kind        ResultKind
	Category    TimingCategory // KindCategory, KindDescription
	Description string         // KindDescription
	Reason      string         // KindFailure
}

func categoryResult(c TimingCategory) Result {
	return Result{Kind: KindCategory, Category: c}
}

func descriptionResult(c TimingCategory, description string) Result {
	return Result{Kind: KindDescription, Category: c, Description: description}
}

func unrecognizedResult() Result {
	return Result{Kind: KindUnrecognized}
}

func failuref(format string, args ...any) Result {
	return Result{Kind: KindFailure, Reason: fmt.Sprintf(format, args...)}
}
