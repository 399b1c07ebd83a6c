package model

import (
	"path/filepath"
	"regexp"
)

// IdentifierPattern is the rule every component and API claim name follows.
const IdentifierPattern = `^[\w-]+$`

// VersionPattern is the rule for the bundle version.
const VersionPattern = `^[\w.+-]+$`

// FolderPattern is the rule for folders inside a component directory: slash
// separated segments, none of them empty or "..".
const FolderPattern = `^` + folderSegment + `(?:/` + folderSegment + `)*$`

const folderSegment = `(?:[^/\\.][^/\\]*|\.[^/\\.][^/\\]*|\.\.[^/\\]+|\.)`

var (
	identifierRegex = regexp.MustCompile(IdentifierPattern)
	folderRegex     = regexp.MustCompile(FolderPattern)
)

// ValidateIdentifier checks a name against IdentifierPattern. kind is used in
// the error message, e.g. "microservice".
func ValidateIdentifier(kind, value string) error {
	if !identifierRegex.MatchString(value) {
		return NewValidationError("invalid %s name %q: only letters, digits, underscore and dash are allowed", kind, value)
	}
	return nil
}

// ValidateFolder checks that a folder of a component stays inside the
// component directory. An empty value is accepted and means the default.
func ValidateFolder(kind, value string) error {
	if value == "" {
		return nil
	}
	if filepath.IsAbs(value) || !folderRegex.MatchString(filepath.ToSlash(value)) {
		return NewValidationError("invalid %s %q: must be a relative path inside the component directory", kind, value)
	}
	return nil
}
