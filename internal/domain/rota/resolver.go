// internal/domain/rota/resolver.go
package rota

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Role labels used in the fixed-hours policy clause.
const (
	roleAPPTML  = "APP/TML"
	roleAPP     = "APP"
	roleMISTSCU = "MIST SCU"
)

// describe wraps a computed category in the fixed-hours policy clause shared
// by the suffix lines. Physician hours on those lines do not move with the
// rotation; only the APP/TML coverage does.
func describe(c TimingCategory, roleLabel string) string {
	return fmt.Sprintf("%s for %s. Physician hours are fixed 8am-5pm (4pm on weekends and holidays) regardless of shift timing.", c, roleLabel)
}

// internalGap reports a rotation-table hole. Tables are supposed to cover
// every valid key and day number, so reaching this means the configuration is
// defective and the message says exactly where.
func internalGap(line, key string, dayNumber int) Result {
	if key == "" {
		return failuref("internal inconsistency: no rule for %s on Day %d", line, dayNumber)
	}
	return failuref("internal inconsistency: no rule for %s %s on Day %d", line, key, dayNumber)
}

// Classify resolves a raw shift identifier against the rotation rules for the
// given date and day number. It always returns a Result; parse problems and
// table gaps come back as KindFailure, and lines this system does not model
// come back as KindUnrecognized so the caller can point at the published
// schedule instead.
func (rs *RuleSet) Classify(rawShift string, date time.Time, dayNumber int) Result {
	if dayNumber < 1 || dayNumber > 4 {
		return failuref("invalid day number %d: must be 1-4", dayNumber)
	}

	clean := Normalize(rawShift)
	if clean == "" {
		return failuref("shift name input cannot be empty")
	}

	// Multi-word exact identifiers resolve before any tokenizing.
	if table, ok := exactMatchRotation[clean]; ok {
		cat, ok := table[dayNumber]
		if !ok {
			return internalGap(clean, "", dayNumber)
		}
		return categoryResult(cat)
	}

	if strings.HasPrefix(clean, "mist scu") {
		cat, ok := mistSCURotation[dayNumber]
		if !ok {
			return internalGap("mist scu", "", dayNumber)
		}
		return descriptionResult(cat, describe(cat, roleMISTSCU))
	}

	parts := strings.Split(clean, " ")
	// A trailing MD/APP token is a role qualifier, not part of the rotation key.
	if last := parts[len(parts)-1]; len(parts) > 1 && (last == "md" || last == "app") {
		parts = parts[:len(parts)-1]
	}

	key := ""
	if len(parts) > 1 {
		key = parts[1]
	}

	switch parts[0] {
	case "gold":
		return rs.classifyGold(rawShift, parts, dayNumber)
	case "silver":
		return classifySilver(rawShift, parts)
	case "blue":
		return rs.classifyBlue(rawShift, key, date, dayNumber)
	case "yellow", "purple", "bronze":
		return classifyYPBB(parts[0], key, rawShift, dayNumber)
	case "green":
		return classifyGreen(key, rawShift, dayNumber)
	case "gray":
		return failuref("unknown gray shift %q: valid identifiers are %s",
			strings.TrimSpace(rawShift), strings.Join(grayIdentifiers, ", "))
	}

	return unrecognizedResult()
}

func (rs *RuleSet) classifyGold(rawShift string, parts []string, dayNumber int) Result {
	if len(parts) == 1 {
		return failuref("shift %q needs a number (e.g. Gold 3)", strings.TrimSpace(rawShift))
	}
	if len(parts) > 2 {
		return failuref("cannot parse shift format %q: expected 'Gold #'", strings.TrimSpace(rawShift))
	}

	count, err := strconv.Atoi(parts[1])
	if err != nil {
		return failuref("invalid number %q in shift %q", parts[1], strings.TrimSpace(rawShift))
	}
	if count <= 0 {
		return failuref("shift number in %q must be positive", strings.TrimSpace(rawShift))
	}

	switch {
	case count == 1:
		return categoryResult(CategoryEarly)
	case count >= 6:
		return categoryResult(CategoryMiddle)
	}

	// Counts 2-5 rotate by day number under the scheme in force.
	if rs.GoldScheme == GoldSchemeRevised {
		earlyOnOdd := count == 3 || count == 5
		if earlyOnOdd == (dayNumber%2 == 1) {
			return categoryResult(CategoryEarly)
		}
		return categoryResult(CategoryMiddle)
	}

	table, ok := goldLegacyRotation[count]
	if !ok {
		return internalGap("gold", parts[1], dayNumber)
	}
	cat, ok := table[dayNumber]
	if !ok {
		return internalGap("gold", parts[1], dayNumber)
	}
	return categoryResult(cat)
}

func classifySilver(rawShift string, parts []string) Result {
	if len(parts) > 2 {
		return failuref("cannot parse shift format %q: expected 'Silver #' or 'Silver'", strings.TrimSpace(rawShift))
	}

	// A bare "silver" or a non-numeric suffix is read as Silver 1. The
	// schedule occasionally writes the first silver shift without a number.
	count := 1
	if len(parts) == 2 {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			if n <= 0 {
				return failuref("shift number in %q must be positive", strings.TrimSpace(rawShift))
			}
			count = n
		}
	}

	if count == 1 {
		return categoryResult(CategoryEarly)
	}
	return categoryResult(CategoryMiddle)
}

func (rs *RuleSet) classifyBlue(rawShift, key string, date time.Time, dayNumber int) Result {
	if key == "" {
		return failuref("shift %q needs a rotation key (e.g. Blue 1-1)", strings.TrimSpace(rawShift))
	}

	if _, ok := rs.blueSpecialPeriod(date); ok {
		table, ok := blueSpecialRotation[key]
		if !ok {
			return failuref("invalid blue rotation key %q during the special period: valid keys are %s",
				key, strings.Join(blueSpecialKeys, ", "))
		}
		cat, ok := table[dayNumber]
		if !ok {
			return internalGap("blue", key, dayNumber)
		}
		return descriptionResult(cat, describe(cat, roleAPPTML))
	}

	return classifyYPBB("blue", key, rawShift, dayNumber)
}

func classifyYPBB(line, key, rawShift string, dayNumber int) Result {
	if key == "" {
		return failuref("shift %q needs a rotation key (e.g. 1-1, 2-2, 3)", strings.TrimSpace(rawShift))
	}

	table, ok := ypbbRotation[key]
	if !ok {
		return failuref("invalid rotation key %q in shift %q: valid keys are %s",
			key, strings.TrimSpace(rawShift), strings.Join(ypbbKeys, ", "))
	}
	cat, ok := table[dayNumber]
	if !ok {
		return internalGap(line, key, dayNumber)
	}
	return descriptionResult(cat, describe(cat, roleAPPTML))
}

func classifyGreen(key, rawShift string, dayNumber int) Result {
	if key == "" {
		return failuref("shift %q needs a rotation key (e.g. Green 1)", strings.TrimSpace(rawShift))
	}

	table, ok := greenRotation[key]
	if !ok {
		return failuref("invalid rotation key %q in shift %q: valid keys are %s",
			key, strings.TrimSpace(rawShift), strings.Join(greenKeys, ", "))
	}
	cat, ok := table[dayNumber]
	if !ok {
		return internalGap("green", key, dayNumber)
	}
	return descriptionResult(cat, describe(cat, roleAPP))
}
