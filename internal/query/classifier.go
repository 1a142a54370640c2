// Package query turns free-text questions into intents.
//
// Classification is a strict decision list: rules are tried in order and the
// first one that matches wins. A compound rule must come before any rule whose
// keywords are a subset of its own ("temperature" + "trend" before plain
// "temperature").
package query

import (
	"strings"

	"github.com/jengzang/ocean-query-backend/internal/models"
)

// rule matches when every keyword in all is present and, if any is
// non-empty, at least one keyword in any is present
type rule struct {
	all    []string
	any    []string
	intent models.Intent
}

var rules = []rule{
	{all: []string{"temperature", "trend"}, intent: models.IntentTemperatureTrend},
	{all: []string{"temperature"}, intent: models.IntentTemperature},
	{all: []string{"salinity"}, intent: models.IntentSalinity},
	{all: []string{"oxygen"}, intent: models.IntentOxygen},
	{any: []string{"map", "location"}, intent: models.IntentLocations},
	{all: []string{"depth"}, intent: models.IntentDepthProfile},
}

func (r rule) matches(text string) bool {
	for _, kw := range r.all {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	if len(r.any) == 0 {
		return true
	}
	for _, kw := range r.any {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Classify maps query text to an intent. Unmatched text is general.
func Classify(text string) models.Intent {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.matches(lower) {
			return r.intent
		}
	}
	return models.IntentGeneral
}

// Text extracts query text from an untyped payload.
// Anything other than a string yields "".
func Text(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// ClassifyValue classifies an untyped payload; non-strings are general
func ClassifyValue(v interface{}) models.Intent {
	return Classify(Text(v))
}

// MatchLocation returns the first known site whose name occurs in text,
// ignoring case, or "" when none does
func MatchLocation(text string) string {
	lower := strings.ToLower(text)
	for _, site := range models.Sites {
		if strings.Contains(lower, strings.ToLower(site.Name)) {
			return site.Name
		}
	}
	return ""
}
