package rules

import (
	"github.com/donaldgifford/memberlint/internal/rules/member"
)

func init() {
	// Order matters: the first rule that accepts a statement decides it.
	RegisterClassifyRule(&member.ClassName{})
	RegisterClassifyRule(&member.Constructor{})

	// Static members.
	RegisterClassifyRule(&member.StaticAccessor{})
	RegisterClassifyRule(&member.NestedTestCase{})
	RegisterClassifyRule(&member.StaticClass{})
	RegisterClassifyRule(&member.StaticMethod{})
	RegisterClassifyRule(&member.StaticField{})

	// Instance members.
	RegisterClassifyRule(&member.Accessor{})
	RegisterClassifyRule(&member.Method{})
	RegisterClassifyRule(&member.PrivateField{})
	RegisterClassifyRule(&member.HelperFactory{})
	RegisterClassifyRule(&member.PublicField{})
}
