package constraints

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RootPath is the path reported for violations on the value itself.
const RootPath = "$"

// Violation is a single failed constraint.
type Violation struct {
	Path   string
	Reason string
}

func (v Violation) String() string {
	return v.Path + ": " + v.Reason
}

// ValidationError carries every violation found by one validation pass.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	noun := "violations"
	if len(parts) == 1 {
		noun = "violation"
	}
	return fmt.Sprintf("%d constraint %s: %s", len(parts), noun, strings.Join(parts, "; "))
}

// Check evaluates rule against value and returns the violations in a
// deterministic order. A nil result means the value is valid.
func Check(value interface{}, rule Rule) []Violation {
	e := &evaluator{}
	e.eval(RootPath, value, true, rule)
	return e.violations
}

// Validate checks value against rule and, on success, decodes it into T.
// On failure the returned error is a *ValidationError.
func Validate[T any](value interface{}, rule Rule) (T, error) {
	var out T
	if violations := Check(value, rule); len(violations) > 0 {
		return out, &ValidationError{Violations: violations}
	}

	data, err := json.Marshal(value)
	if err != nil {
		return out, fmt.Errorf("failed to encode validated value: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode validated value into %T: %w", out, err)
	}
	return out, nil
}

type evaluator struct {
	violations []Violation
}

func (e *evaluator) add(path, format string, args ...interface{}) {
	e.violations = append(e.violations, Violation{Path: path, Reason: fmt.Sprintf(format, args...)})
}

func (e *evaluator) eval(path string, value interface{}, present bool, r Rule) {
	// Only Required looks at absent values.
	if _, isRequired := r.(Required); !isRequired && (!present || value == nil) {
		if all, ok := r.(All); ok {
			for _, child := range all {
				e.eval(path, value, present, child)
			}
		}
		return
	}

	switch rule := r.(type) {
	case nil:
	case Required:
		if !present || value == nil {
			e.add(path, "is required")
		}
	case TypeOf:
		if actual := kindOf(value); actual != rule.Kind {
			e.add(path, "must be of type %s, got %s", rule.Kind, actual)
		}
	case Regex:
		if s, ok := value.(string); ok && !rule.Pattern.MatchString(s) {
			e.add(path, "value %q does not match pattern %s", s, rule.Pattern.String())
		}
	case Enum:
		s, ok := value.(string)
		if !ok || !contains(rule.Values, s) {
			e.add(path, "value %s must be one of [%s]", describe(value), strings.Join(rule.Values, ", "))
		}
	case Unique:
		items, ok := value.([]interface{})
		if !ok {
			return
		}
		label := rule.Label
		if label == "" {
			label = "key"
		}
		seen := make(map[string]int, len(items))
		for i, item := range items {
			key, ok := rule.Key(item)
			if !ok {
				continue
			}
			if first, dup := seen[key]; dup {
				e.add(indexPath(path, i), "duplicate %s %q, first used at index %d", label, key, first)
				continue
			}
			seen[key] = i
		}
	case Each:
		items, ok := value.([]interface{})
		if !ok {
			return
		}
		for i, item := range items {
			e.eval(indexPath(path, i), item, true, rule.Rule)
		}
	case Nested:
		obj, ok := value.(map[string]interface{})
		if !ok {
			return
		}
		names := make([]string, 0, len(rule.Fields))
		for name := range rule.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			child, has := obj[name]
			e.eval(fieldPath(path, name), child, has, rule.Fields[name])
		}
	case All:
		for _, child := range rule {
			e.eval(path, value, present, child)
		}
	case Variant:
		obj, ok := value.(map[string]interface{})
		if !ok {
			return
		}
		tag, _ := obj[rule.Field].(string)
		if sub, ok := rule.Cases[tag]; ok {
			e.eval(path, value, present, sub)
		}
	case Values:
		obj, ok := value.(map[string]interface{})
		if !ok {
			return
		}
		keys := make([]string, 0, len(obj))
		for key := range obj {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			e.eval(fieldPath(path, key), obj[key], true, rule.Rule)
		}
	default:
		e.add(path, "unsupported rule %T", r)
	}
}

func kindOf(value interface{}) Kind {
	switch value.(type) {
	case nil:
		return kindNull
	case string:
		return KindString
	case bool:
		return KindBoolean
	case float64, float32, int, int64, int32, json.Number:
		return KindNumber
	case map[string]interface{}:
		return KindObject
	case []interface{}:
		return KindArray
	default:
		return kindUnknown
	}
}

func describe(value interface{}) string {
	if s, ok := value.(string); ok {
		return strconv.Quote(s)
	}
	return "of type " + string(kindOf(value))
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

func fieldPath(parent, name string) string {
	if parent == RootPath {
		return name
	}
	return parent + "." + name
}

func indexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
