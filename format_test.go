package checkignore

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_writeRecord(t *testing.T) {
	logRule := &Rule{Source: ".gitignore", Line: 3, Pattern: "*.log"}

	tests := []struct {
		name string
		cfg  RunConfig
		path string
		rule *Rule
		want string
	}{
		{
			name: "plain layout quotes when needed",
			path: "a\tb.log",
			rule: logRule,
			want: "\"a\\tb.log\"\n",
		},
		{
			name: "plain layout leaves clean paths bare",
			path: "b.log",
			rule: logRule,
			want: "b.log\n",
		},
		{
			name: "null layout writes raw bytes",
			cfg:  RunConfig{NullTerm: true},
			path: "a\tb.log",
			rule: logRule,
			want: "a\tb.log\x00",
		},
		{
			name: "verbose matched",
			cfg:  RunConfig{Verbose: true},
			path: "build.log",
			rule: logRule,
			want: ".gitignore:3:*.log\tbuild.log\n",
		},
		{
			name: "verbose matched with quoting on both components",
			cfg:  RunConfig{Verbose: true},
			path: "a\tb.log",
			rule: &Rule{Source: "dir\tx/.gitignore", Line: 7, Pattern: "*.log"},
			want: "\"dir\\tx/.gitignore\":7:*.log\t\"a\\tb.log\"\n",
		},
		{
			name: "verbose unmatched",
			cfg:  RunConfig{Verbose: true, ShowNonMatching: true},
			path: "a.txt",
			rule: nil,
			want: "::\ta.txt\n",
		},
		{
			name: "verbose null matched",
			cfg:  RunConfig{Verbose: true, NullTerm: true},
			path: "b.log",
			rule: &Rule{Source: ".gitignore", Line: 1, Pattern: "*.log"},
			want: ".gitignore\x001\x00*.log\x00b.log\x00",
		},
		{
			name: "verbose null unmatched has three empty fields",
			cfg:  RunConfig{Verbose: true, NullTerm: true},
			path: "a.txt",
			rule: nil,
			want: "\x00\x00\x00a.txt\x00",
		},
		{
			name: "verbose null negated directory rule",
			cfg:  RunConfig{Verbose: true, NullTerm: true},
			path: "keep",
			rule: &Rule{Source: ".gitignore", Line: 9, Pattern: "keep", Negated: true, OnlyDir: true},
			want: ".gitignore\x009\x00!keep/\x00keep\x00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewChecker(tt.cfg, fakeRules{}, fakeIndex{}, fakeBoundary{}, &out)

			require.NoError(t, c.writeRecord(tt.path, tt.rule))
			require.NoError(t, c.Flush())

			assert.Equal(t, tt.want, out.String())
		})
	}
}
