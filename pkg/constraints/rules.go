// Package constraints checks decoded JSON values against a declarative rule tree.
//
// A rule tree is built from the node types in this file and interpreted
// recursively by Check and Validate. Values are expected in the shape produced
// by encoding/json when decoding into an interface{}: map[string]interface{},
// []interface{}, string, float64, bool and nil.
package constraints

import (
	"regexp"
)

// Kind is the JSON type a TypeOf rule expects.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	kindNull    Kind = "null"
	kindUnknown Kind = "unknown"
)

// Rule is a node of a rule tree. The set of implementations is closed.
type Rule interface {
	rule()
}

// Required reports a violation when the value is absent or null.
type Required struct{}

// TypeOf reports a violation when a present value is not of the given kind.
type TypeOf struct {
	Kind Kind
}

// Regex reports a violation when a string value does not match Pattern.
type Regex struct {
	Pattern *regexp.Regexp
}

// Enum reports a violation when a value is not one of Values.
type Enum struct {
	Values []string
}

// KeyFunc extracts the uniqueness key of an array element. The second return
// value is false when the element has no key and must be skipped.
type KeyFunc func(element interface{}) (string, bool)

// Unique reports every array element whose key was already seen.
type Unique struct {
	// Label names the key in violation messages, e.g. "name".
	Label string
	Key   KeyFunc
}

// Each applies Rule to every element of an array.
type Each struct {
	Rule Rule
}

// Nested applies field rules to the named fields of an object. Fields absent
// from the object are still visited so that Required can fire.
type Nested struct {
	Fields map[string]Rule
}

// All applies every rule to the same value.
type All []Rule

// Variant selects a rule by the string value of the Field discriminator of an
// object. Objects with an unknown or missing discriminator are left alone.
type Variant struct {
	Field string
	Cases map[string]Rule
}

// Values applies Rule to every value of an object.
type Values struct {
	Rule Rule
}

func (Required) rule() {}
func (TypeOf) rule()   {}
func (Regex) rule()    {}
func (Enum) rule()     {}
func (Unique) rule()   {}
func (Each) rule()     {}
func (Nested) rule()   {}
func (All) rule()      {}
func (Variant) rule()  {}
func (Values) rule()   {}

// MatchRegex compiles expr into a Regex rule. It panics on an invalid expression.
func MatchRegex(expr string) Regex {
	return Regex{Pattern: regexp.MustCompile(expr)}
}

// OneOf builds an Enum rule.
func OneOf(values ...string) Enum {
	return Enum{Values: values}
}

// UniqueBy builds a Unique rule keyed on a string field of object elements.
func UniqueBy(field string) Unique {
	return Unique{
		Label: field,
		Key: func(element interface{}) (string, bool) {
			obj, ok := element.(map[string]interface{})
			if !ok {
				return "", false
			}
			key, ok := obj[field].(string)
			return key, ok
		},
	}
}

// UniqueValues builds a Unique rule keyed on the elements themselves. Only
// string elements are compared.
func UniqueValues(label string) Unique {
	return Unique{
		Label: label,
		Key: func(element interface{}) (string, bool) {
			key, ok := element.(string)
			return key, ok
		},
	}
}
