package frontmatter

import (
	"strings"
	"testing"
)

type skillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  bool
	}{
		{
			name:     "valid header",
			input:    "---\nname: review\ndescription: Code review skill\n---\n\nBody text here.\n",
			wantName: "review",
		},
		{
			name:     "no frontmatter",
			input:    "# Just a heading\n\nNo metadata.\n",
			wantName: "",
		},
		{
			name:     "empty file",
			input:    "",
			wantName: "",
		},
		{
			name:     "unclosed delimiter",
			input:    "---\nname: dangling\n",
			wantName: "",
		},
		{
			name:    "malformed yaml",
			input:   "---\nname: [unterminated\n---\n",
			wantErr: true,
		},
		{
			name:     "delimiter with surrounding whitespace",
			input:    "---\nname: spaced\n  ---  \nbody\n",
			wantName: "spaced",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var meta skillMeta
			err := ParseHeader(strings.NewReader(tt.input), &meta)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHeader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if meta.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", meta.Name, tt.wantName)
			}
		})
	}
}

func TestParseHeader_DoesNotReadBody(t *testing.T) {
	r := strings.NewReader("---\nname: early\n---\nrest of the file")

	var meta skillMeta
	if err := ParseHeader(r, &meta); err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	if meta.Name != "early" {
		t.Errorf("Name = %q, want %q", meta.Name, "early")
	}
}
