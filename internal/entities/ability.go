package entities

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/KirkDiggler/madking-api/internal/errors"
)

// Ability is a named feature that unlocks at a character level
type Ability struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Level       int    `json:"level" yaml:"level"`
}

type levelParity int

const (
	anyLevel levelParity = iota
	oddLevels
	evenLevels
)

func validateAbilities(field string, abilities []Ability, parity levelParity, vb *errors.ValidationBuilder) {
	for i, a := range abilities {
		f := indexed(field, i)
		errors.ValidateRequired(f+".name", a.Name, vb)
		errors.ValidateRange(f+".level", a.Level, MinLevel, MaxLevel, vb)
		switch {
		case parity == oddLevels && a.Level%2 == 0:
			vb.Field(f+".level", "class abilities unlock on odd levels only")
		case parity == evenLevels && a.Level%2 != 0:
			vb.Field(f+".level", "subclass abilities unlock on even levels only")
		}
	}
}

func sortAbilities(abilities []Ability) {
	sort.SliceStable(abilities, func(i, j int) bool {
		return abilities[i].Level < abilities[j].Level
	})
}

func indexed(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}

// dedupe drops repeated values while keeping first-seen order
func dedupe[T comparable](values []T) []T {
	if len(values) == 0 {
		return values
	}
	seen := make(map[T]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func trimAll(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func validateTags(field string, tags []string, vb *errors.ValidationBuilder) {
	for i, t := range tags {
		errors.ValidateMaxLength(indexed(field, i), t, maxTagLength, vb)
	}
}

func sortedTags(tags []string) []string {
	tags = dedupe(trimAll(tags))
	slices.Sort(tags)
	return tags
}
