package domain

import (
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/jsonfmt/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDestination(t *testing.T) {
	wd := filepath.Join(string(filepath.Separator), "work", "project")
	out := filepath.Join(string(filepath.Separator), "tmp", "out")

	tests := []struct {
		name   string
		source string
		root   string
		want   string
	}{
		{
			name:   "no root rewrites in place",
			source: filepath.Join(wd, "a.json"),
			want:   filepath.Join(wd, "a.json"),
		},
		{
			name:   "no root keeps relative source as is",
			source: filepath.Join("..", "elsewhere.json"),
			want:   filepath.Join("..", "elsewhere.json"),
		},
		{
			name:   "absolute source under working dir",
			source: filepath.Join(wd, "a", "b.json"),
			root:   out,
			want:   filepath.Join(out, "a", "b.json"),
		},
		{
			name:   "relative source",
			source: filepath.Join("a", "b.json"),
			root:   out,
			want:   filepath.Join(out, "a", "b.json"),
		},
		{
			name:   "relative source with dot segments",
			source: filepath.Join(".", "a", "..", "c.json"),
			root:   out,
			want:   filepath.Join(out, "c.json"),
		},
		{
			name:   "relative root resolves against working dir",
			source: filepath.Join(wd, "x.json"),
			root:   "mirror",
			want:   filepath.Join(wd, "mirror", "x.json"),
		},
		{
			name:   "sibling with shared prefix is not inside",
			source: filepath.Join(wd+"-other", "x.json"),
			root:   out,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDestination(m.Path(tt.source), m.Path(tt.root), m.Path(wd))

			if tt.want == "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, m.ErrOutsideWorkingDir)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, m.Path(tt.want), got)
		})
	}
}

func TestResolveDestination_RejectsSourcesOutsideWorkingDir(t *testing.T) {
	wd := filepath.Join(string(filepath.Separator), "work", "project")
	out := m.Path(filepath.Join(string(filepath.Separator), "tmp", "out"))

	for _, source := range []string{
		filepath.Join("..", "escape.json"),
		filepath.Join("a", "..", "..", "escape.json"),
		filepath.Join(string(filepath.Separator), "etc", "config.json"),
		wd,
		".",
	} {
		t.Run(source, func(t *testing.T) {
			_, err := ResolveDestination(m.Path(source), out, m.Path(wd))
			require.Error(t, err)

			assert.ErrorIs(t, err, m.ErrOutsideWorkingDir)
			assert.ErrorIs(t, err, m.ErrConfig)
			assert.True(t, m.IsFatal(err))
		})
	}
}

func TestWouldChange(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		canonical string
		want      bool
	}{
		{name: "identical", original: "{}\n", canonical: "{}\n", want: false},
		{name: "missing newline", original: "{}", canonical: "{}\n", want: true},
		{name: "whitespace differs", original: "{ }\n", canonical: "{}\n", want: true},
		// é precomposed versus e + combining acute
		{name: "no unicode normalization", original: "\"\u00e9\"\n", canonical: "\"e\u0301\"\n", want: true},
		{name: "both empty", original: "", canonical: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WouldChange([]byte(tt.original), []byte(tt.canonical)))
		})
	}
}
