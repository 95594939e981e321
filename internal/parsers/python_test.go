package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequirements(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "pinned with comment and editable",
			content: "requests==2.31.0\n# comment\n-e ./local-pkg\n",
			want:    []string{"requests"},
		},
		{
			name:    "specifiers and extras stripped",
			content: "flask[async]>=2.0\nDjango ~= 4.2\nnumpy\nzope.interface<6 ; python_version < \"3.12\"\n",
			want:    []string{"flask", "Django", "numpy", "zope.interface"},
		},
		{
			name:    "inline comments",
			content: "pyyaml  # config loading\n   # indented comment\n",
			want:    []string{"pyyaml"},
		},
		{
			name: "non-installable directives",
			content: strings.Join([]string{
				"-r base.txt",
				"--requirement dev.txt",
				"-e git+https://example.com/repo.git#egg=pkg",
				"--editable ./src",
				"git+https://example.com/other.git",
				"http://example.com/pkg.tar.gz",
				"https://example.com/pkg.whl",
				"attrs",
			}, "\n"),
			want: []string{"attrs"},
		},
		{
			name:    "order and duplicates preserved",
			content: "b\na\nb==1.0\n",
			want:    []string{"b", "a", "b"},
		},
		{
			name:    "crlf line endings",
			content: "six\r\nidna==3.4\r\n",
			want:    []string{"six", "idna"},
		},
		{
			name:    "lines with no name token",
			content: "==1.0\n>=2\n[extra]\n",
			want:    nil,
		},
		{
			name:    "empty",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRequirements([]byte(tt.content)))
		})
	}
}

func TestParseRequirementsNamesHaveNoQualifiers(t *testing.T) {
	content := "a==1\nb >= 2\nc~=3.1\nd!=4\ne<5\nf>6\ng[x,y]==7\nh @ https://example.com/h.whl\n"
	for _, name := range ParseRequirements([]byte(content)) {
		assert.NotContainsf(t, name, " ", "name %q", name)
		assert.Falsef(t, strings.ContainsAny(name, "=<>!~[]@;"), "name %q carries a qualifier", name)
	}
}
