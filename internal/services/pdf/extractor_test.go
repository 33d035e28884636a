// extractor_test.go — Unit tests for PDF validation and text helpers.
//
// Go Pattern: Test files live alongside the code they test and end in _test.go.
// We don't ship binary PDF fixtures; the extraction error path and the pure
// helpers are covered directly.
package pdf

import (
	"strings"
	"testing"
)

func TestValidatePDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{
			name: "valid PDF header",
			data: []byte("%PDF-1.7\n..."),
			want: true,
		},
		{
			name: "plain text file",
			data: []byte("hello world"),
			want: false,
		},
		{
			name: "empty data",
			data: []byte{},
			want: false,
		},
		{
			name: "too short",
			data: []byte("%PDF"),
			want: false,
		},
		{
			name: "header not at start",
			data: []byte("x%PDF-1.4"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePDF(tt.data); got != tt.want {
				t.Errorf("ValidatePDF(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestExtract_InvalidData(t *testing.T) {
	// Garbage bytes must fail fast — the pipeline aborts before any remote call.
	_, err := Extract([]byte("not a pdf at all"))
	if err == nil {
		t.Fatal("Extract() expected error for non-PDF data, got nil")
	}
	if !strings.Contains(err.Error(), "failed to open PDF") {
		t.Errorf("Extract() error = %q, want open failure", err)
	}
}

func TestExtractFile_Missing(t *testing.T) {
	_, err := ExtractFile("testdata/does-not-exist.pdf")
	if err == nil {
		t.Fatal("ExtractFile() expected error for missing file, got nil")
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"hello", 1},
		{"hello world", 2},
		{"Nominal Power 550 W", 4},
		{"  spaces  everywhere  ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := countWords(tt.input); got != tt.want {
				t.Errorf("countWords(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
