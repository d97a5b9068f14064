// internal/domain/rota/tables.go
package rota

import (
	"fmt"
	"time"
)

// GoldScheme selects which Gold 2-5 rotation rule an academic year runs under.
// The two schemes disagree on those counts and must never be mixed in one
// deployment.
type GoldScheme string

const (
	// GoldSchemeLegacy uses the count-indexed table carried over from the
	// pre-revision academic year.
	GoldSchemeLegacy GoldScheme = "legacy"
	// GoldSchemeRevised replaces the table with a day-parity rule: Gold 3 and
	// Gold 5 are Early on Days 1/3 and Middle on Days 2/4; Gold 2 and Gold 4
	// are the inverse.
	GoldSchemeRevised GoldScheme = "revised"
)

// SpecialPeriod is an inclusive date interval during which a line's normal
// rotation rules are overridden. Currently only the Blue line has these.
type SpecialPeriod struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the period, comparing calendar days.
func (p SpecialPeriod) Contains(d time.Time) bool {
	day := midnightUTC(d)
	return !day.Before(midnightUTC(p.Start)) && !day.After(midnightUTC(p.End))
}

// RuleSet is the process-wide rotation configuration: the cycle anchor, the
// Gold scheme in force, and any Blue special periods. It is built once at
// startup and never mutated, so concurrent Classify calls need no locking.
type RuleSet struct {
	Anchor      Anchor
	GoldScheme  GoldScheme
	BluePeriods []SpecialPeriod
}

// NewRuleSet returns the default configuration: the standing anchor, the
// legacy Gold scheme, and no special periods.
func NewRuleSet() *RuleSet {
	return &RuleSet{
		Anchor:     DefaultAnchor,
		GoldScheme: GoldSchemeLegacy,
	}
}

// Validate checks the invariants the resolver relies on.
func (rs *RuleSet) Validate() error {
	if rs.Anchor.Date.IsZero() {
		return fmt.Errorf("rule set: anchor date is not set")
	}
	if rs.Anchor.DayNumber < 1 || rs.Anchor.DayNumber > 4 {
		return fmt.Errorf("rule set: anchor day number %d out of range 1-4", rs.Anchor.DayNumber)
	}
	if rs.GoldScheme != GoldSchemeLegacy && rs.GoldScheme != GoldSchemeRevised {
		return fmt.Errorf("rule set: unknown gold scheme %q", rs.GoldScheme)
	}
	for i, p := range rs.BluePeriods {
		if p.Start.IsZero() || p.End.IsZero() {
			return fmt.Errorf("rule set: blue special period %d has an unset bound", i)
		}
		if p.End.Before(p.Start) {
			return fmt.Errorf("rule set: blue special period %d ends before it starts", i)
		}
	}
	return nil
}

// blueSpecialPeriod returns the first configured period containing d, if any.
// Overlapping periods are tolerated; the first match wins.
func (rs *RuleSet) blueSpecialPeriod(d time.Time) (SpecialPeriod, bool) {
	for _, p := range rs.BluePeriods {
		if p.Contains(d) {
			return p, true
		}
	}
	return SpecialPeriod{}, false
}

// goldLegacyRotation is the pre-revision Gold table for counts 2-5, indexed by
// shift count then day number.
var goldLegacyRotation = map[int]map[int]TimingCategory{
	2: {1: CategoryEarly, 2: CategoryMiddle, 3: CategoryLate, 4: CategoryMiddle},
	3: {1: CategoryMiddle, 2: CategoryLate, 3: CategoryMiddle, 4: CategoryEarly},
	4: {1: CategoryLate, 2: CategoryMiddle, 3: CategoryEarly, 4: CategoryMiddle},
	5: {1: CategoryMiddle, 2: CategoryEarly, 3: CategoryMiddle, 4: CategoryLate},
}

// ypbbRotation is the shared standard-period table for the Yellow, Purple,
// Blue, and Bronze lines, indexed by suffix then day number.
var ypbbRotation = map[string]map[int]TimingCategory{
	"1-1": {1: CategoryEarly, 2: CategoryMiddle, 3: CategoryEarly, 4: CategoryMiddle},
	"1-2": {1: CategoryMiddle, 2: CategoryEarly, 3: CategoryMiddle, 4: CategoryEarly},
	"2-1": {1: CategoryLate, 2: CategoryMiddle, 3: CategoryEarly, 4: CategoryMiddle},
	"2-2": {1: CategoryMiddle, 2: CategoryLate, 3: CategoryMiddle, 4: CategoryEarly},
	"3":   {1: CategoryEarly, 2: CategoryMiddle, 3: CategoryLate, 4: CategoryMiddle},
}

// blueSpecialRotation replaces ypbbRotation for the Blue line inside a
// configured special period. Only these three keys are staffed then.
var blueSpecialRotation = map[string]map[int]TimingCategory{
	"1":   {1: CategoryEarly, 2: CategoryMiddle, 3: CategoryEarly, 4: CategoryMiddle},
	"3-1": {1: CategoryMiddle, 2: CategoryEarly, 3: CategoryMiddle, 4: CategoryEarly},
	"3-2": {1: CategoryMiddle, 2: CategoryEarly, 3: CategoryMiddle, 4: CategoryEarly},
}

// greenRotation covers the Green line's three shifts.
var greenRotation = map[string]map[int]TimingCategory{
	"1": {1: CategoryEarly, 2: CategoryEarly, 3: CategoryMiddle, 4: CategoryMiddle},
	"2": {1: CategoryMiddle, 2: CategoryMiddle, 3: CategoryLate, 4: CategoryEarly},
	"3": {1: CategoryLate, 2: CategoryLate, 3: CategoryEarly, 4: CategoryEarly},
}

// mistSCURotation covers the MIST SCU line, which rotates by day number alone.
var mistSCURotation = map[int]TimingCategory{
	1: CategoryMiddle,
	2: CategoryEarly,
	3: CategoryMiddle,
	4: CategoryLate,
}

// exactMatchRotation covers the multi-word identifiers that resolve by exact
// normalized string: the three Gray roles and MIST Transplant.
var exactMatchRotation = map[string]map[int]TimingCategory{
	"gray 1 md":       {1: CategoryEarly, 2: CategoryMiddle, 3: CategoryEarly, 4: CategoryMiddle},
	"mist transplant": {1: CategoryEarly, 2: CategoryMiddle, 3: CategoryEarly, 4: CategoryMiddle},
	"gray 2 md":       {1: CategoryMiddle, 2: CategoryEarly, 3: CategoryMiddle, 4: CategoryEarly},
	"gray 3 app":      {1: CategoryMiddle, 2: CategoryEarly, 3: CategoryMiddle, 4: CategoryEarly},
}

// ypbbKeys and greenKeys list the valid rotation keys per family, for error
// messages.
var (
	ypbbKeys  = []string{"1-1", "1-2", "2-1", "2-2", "3"}
	greenKeys = []string{"1", "2", "3"}
)

// grayIdentifiers lists the valid Gray identifiers, for error messages.
var grayIdentifiers = []string{"Gray 1 MD", "Gray 2 MD", "Gray 3 APP"}

// blueSpecialKeys lists the keys valid inside a Blue special period, for
// error messages.
var blueSpecialKeys = []string{"1", "3-1", "3-2"}
