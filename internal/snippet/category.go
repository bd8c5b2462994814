// Package snippet defines the member taxonomy and the values produced by
// classifying class member declarations.
package snippet

import "strings"

// Category classifies a member declaration. The declaration order of the
// constants is the canonical order a class must follow.
type Category int

const (
	// Name is the class declaration line itself.
	Name Category = iota
	// Constructor is the constructor header.
	Constructor

	StaticPublicClass
	StaticPublicField
	StaticPublicGetter
	StaticPublicMethod

	PublicField
	PublicGetter
	PublicMethod

	StaticPrivateClass
	StaticPrivateField
	StaticPrivateGetter
	StaticPrivateMethod

	PrivateField
	PrivateGetter
	PrivateMethod

	// NestedTestCase is a static class literal extending the test base class.
	NestedTestCase
)

var categoryNames = [...]string{
	Name:                "NAME",
	Constructor:         "CONSTRUCTOR",
	StaticPublicClass:   "STATIC_PUBLIC_CLASS",
	StaticPublicField:   "STATIC_PUBLIC_FIELD",
	StaticPublicGetter:  "STATIC_PUBLIC_GETTER",
	StaticPublicMethod:  "STATIC_PUBLIC_METHOD",
	PublicField:         "PUBLIC_FIELD",
	PublicGetter:        "PUBLIC_GETTER",
	PublicMethod:        "PUBLIC_METHOD",
	StaticPrivateClass:  "STATIC_PRIVATE_CLASS",
	StaticPrivateField:  "STATIC_PRIVATE_FIELD",
	StaticPrivateGetter: "STATIC_PRIVATE_GETTER",
	StaticPrivateMethod: "STATIC_PRIVATE_METHOD",
	PrivateField:        "PRIVATE_FIELD",
	PrivateGetter:       "PRIVATE_GETTER",
	PrivateMethod:       "PRIVATE_METHOD",
	NestedTestCase:      "NESTED_TESTCASE",
}

// Categories returns every category in canonical order.
func Categories() []Category {
	all := make([]Category, 0, len(categoryNames))
	for c := range categoryNames {
		all = append(all, Category(c))
	}
	return all
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "UNKNOWN"
	}
	return categoryNames[c]
}

// IsSubRoot reports whether snippets of this category open a scope that
// owns other snippets.
func (c Category) IsSubRoot() bool {
	switch c {
	case Name, StaticPublicClass, StaticPrivateClass, NestedTestCase:
		return true
	}
	return false
}

// IsField reports whether c is one of the *_FIELD categories.
func (c Category) IsField() bool {
	return strings.HasSuffix(c.String(), "_FIELD")
}

// IsGetter reports whether c is one of the *_GETTER categories. Setters
// share these categories.
func (c Category) IsGetter() bool {
	return strings.HasSuffix(c.String(), "_GETTER")
}

// Visibility picks the private or public variant of a category pair based on
// the identifier's leading '#'.
func Visibility(ident string, private, public Category) Category {
	if strings.HasPrefix(ident, "#") {
		return private
	}
	return public
}
