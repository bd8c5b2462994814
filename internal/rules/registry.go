// Package rules manages registration of member classification rules.
package rules

import (
	"github.com/donaldgifford/memberlint/internal/classify"
)

var classifyRules []classify.Rule

// RegisterClassifyRule adds a classification rule to the registry.
// Rules are tried in the order they are registered.
func RegisterClassifyRule(r classify.Rule) {
	classifyRules = append(classifyRules, r)
}

// ClassifyRules returns all registered classification rules in match order.
func ClassifyRules() []classify.Rule {
	return classifyRules
}
