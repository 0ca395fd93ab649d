package cases

import (
	"go/token"
	"strings"

	xcases "golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func PascalCaseToKebabCase(s string) string {
	// a uppercase char is a sign of a deiimiter
	// except for acronyms. if it's an acronym, then you delimit
	// on the previous character.
	delimiterIndices := []int{}
	previousIsUpper := false
	isAcronym := false
	for i, r := range s {
		if 'A' <= r && r <= 'Z' {
			if previousIsUpper && !isAcronym {
				isAcronym = true
				delimiterIndices = append(delimiterIndices, i-1)
			}
			previousIsUpper = true
		} else {
			if previousIsUpper {
				delimiterIndices = append(delimiterIndices, i-1)
			}
			isAcronym = false
			previousIsUpper = false
		}
	}
	parts := []string{}
	prevDelimIndex := 0
	for _, d := range delimiterIndices {
		if d != prevDelimIndex {
			parts = append(parts, s[prevDelimIndex:d])
			prevDelimIndex = d
		}
	}
	parts = append(parts, s[prevDelimIndex:])
	return strings.ToLower(strings.Join(parts, "-"))
}

func KebabToCamelCase(s string) string {
	parts := strings.Split(s, "-")
	for i := range parts {
		if len(parts[i]) > 0 {
			parts[i] = strings.ToUpper(string(parts[i][0])) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func KebabToPascalCase(s string) string {
	return UpperFirst(KebabToCamelCase(s))
}

func SnakeToKebabCase(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// Capitalize title-cases every word of s, e.g. "book edition" becomes
// "Book Edition". A Caser is stateful, so each call gets its own.
func Capitalize(s string) string {
	return xcases.Title(language.AmericanEnglish).String(s)
}

// Humanize turns a PascalCase kind such as "BookEdition" into lower case
// words ("book edition").
func Humanize(kind string) string {
	return strings.ReplaceAll(PascalCaseToKebabCase(kind), "-", " ")
}

// GoName converts a pattern variable or a resource kind, such as "book_id"
// or "bookEdition", into an exported Go identifier ("BookId",
// "BookEdition").
func GoName(s string) string {
	name := SegmentToPascalCase(s)
	if name == "" || isASCIIDigit(name[0]) {
		name = "X" + name
	}
	return name
}

// reserved holds identifiers that generated parameters must not shadow.
var reserved = map[string]bool{
	"resourcename": true,
	"fmt":          true,
	"errors":       true,
	"name":         true,
	"values":       true,
	"err":          true,
}

// GoParamName returns a lowerCamel Go parameter name for a pattern variable.
// Go keywords and names used by generated code get a trailing underscore.
func GoParamName(variable string) string {
	name := LowerFirst(GoName(variable))
	if token.IsKeyword(name) || reserved[name] {
		name += "_"
	}
	return name
}

// SegmentToPascalCase converts one literal path segment, such as
// "billingAccounts" or "book-editions", into a PascalCase identifier part.
// Characters that cannot appear in a Go identifier are dropped.
func SegmentToPascalCase(segment string) string {
	s := KebabToPascalCase(SnakeToKebabCase(segment))
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isASCIILower(c) || isASCIIUpper(c) || isASCIIDigit(c) {
			sb.WriteByte(c)
		}
	}
	return UpperFirst(sb.String())
}

func isASCIILower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func isASCIIUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
