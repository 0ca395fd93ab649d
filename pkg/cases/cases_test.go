package cases

import "testing"

func TestPascalCaseToKebabCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"single word", "User", "user"},
		{"multiple words", "UserProfile", "user-profile"},
		{"consecutive capitals", "UtilityAPIResponse", "utility-api-response"},
		{"consecutive capitals", "APIResponse", "api-response"},
		{"mixed case", "backgroundColor", "background-color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PascalCaseToKebabCase(tt.input)
			if got != tt.expected {
				t.Errorf("PascalCaseToKebabCase(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKebabToCamelCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"single word", "user", "User"},
		{"multiple words", "user-profile", "UserProfile"},
		{"consecutive hyphens", "api--response", "ApiResponse"},
		{"starting with hyphen", "-background", "Background"},
		{"ending with hyphen", "foreground-", "Foreground"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KebabToCamelCase(tt.input)
			if got != tt.expected {
				t.Errorf("KebabToCamelCase(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSnakeToKebabCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"single word", "user", "user"},
		{"multiple words", "user_profile", "user-profile"},
		{"consecutive underscores", "api__response", "api--response"},
		{"starting with underscore", "_background", "-background"},
		{"ending with underscore", "foreground_", "foreground-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SnakeToKebabCase(tt.input)
			if got != tt.expected {
				t.Errorf("SnakeToKebabCase(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"single character", "a", "A"},
		{"word", "hello", "Hello"},
		{"already capitalized", "World", "World"},
		{"with spaces", "hello world", "Hello world"},
		{"with numbers", "1st", "1st"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpperFirst(tt.input)
			if got != tt.expected {
				t.Errorf("UpperFirst(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGoName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", "X"},
		{"single word", "book", "Book"},
		{"snake case", "book_id", "BookId"},
		{"already pascal", "BookEdition", "BookEdition"},
		{"lower camel", "bookEdition", "BookEdition"},
		{"acronym", "APIKey", "APIKey"},
		{"leading underscore", "_hidden", "Hidden"},
		{"digits", "v1_thing", "V1Thing"},
		{"leading digit", "3d_model", "X3dModel"},
		{"kebab", "book-edition", "BookEdition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GoName(tt.input)
			if got != tt.expected {
				t.Errorf("GoName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGoParamName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"project", "project"},
		{"book_id", "bookId"},
		{"type", "type_"},
		{"func", "func_"},
		{"name", "name_"},
		{"resourcename", "resourcename_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := GoParamName(tt.input)
			if got != tt.expected {
				t.Errorf("GoParamName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSegmentToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"projects", "Projects"},
		{"billingAccounts", "BillingAccounts"},
		{"book-editions", "BookEditions"},
		{"book_editions", "BookEditions"},
		{"~", ""},
		{"v1", "V1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SegmentToPascalCase(tt.input)
			if got != tt.expected {
				t.Errorf("SegmentToPascalCase(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		title    string
	}{
		{"Book", "book", "Book"},
		{"BookEdition", "book edition", "Book Edition"},
		{"APIKey", "api key", "Api Key"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Humanize(tt.input)
			if got != tt.expected {
				t.Errorf("Humanize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			if title := Capitalize(got); title != tt.title {
				t.Errorf("Capitalize(%q) = %q, want %q", got, title, tt.title)
			}
		})
	}
}
