// Package member implements the classification rules for class members.
package member

import "regexp"

// methodRe matches a method header tail: "name(args) {" or an arrow-valued
// member "name = (args) => {".
var methodRe = regexp.MustCompile(`(\) \{)|(\) => \{)`)

// staticClassRe matches assignment of a class literal.
var staticClassRe = regexp.MustCompile(` = class `)

func isAccessorKeyword(w string) bool {
	return w == "get" || w == "set"
}
