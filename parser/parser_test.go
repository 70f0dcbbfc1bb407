// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snazzy-d/sdfmt/chunk"
	"github.com/snazzy-d/sdfmt/internal/golden"
	"github.com/snazzy-d/sdfmt/parser"
	"github.com/snazzy-d/sdfmt/source"
)

// render runs text through the whole pipeline and flattens the chunk
// stream back into a string.
func render(path, text string) string {
	return chunk.Print(parser.Parse(parser.Lex(source.NewFile(path, text))))
}

func TestCorpus(t *testing.T) {
	t.Parallel()

	golden.Corpus{
		Root:      "testdata",
		Refresh:   "SDFMT_REFRESH",
		Extension: "d",
		Outputs: []golden.Output{
			{Extension: "rendered"},
		},
		Test: func(t *testing.T, path, text string) []string {
			got := render(path, text)
			assert.Equal(t, got, render(path, got), "rendering must be a fixed point")
			return []string{got}
		},
	}.Run(t)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "alias declaration",
			input: "alias Size = ulong;",
			want:  "alias Size = ulong;",
		},
		{
			name:  "storage class chain",
			input: "static immutable int x = 1;",
			want:  "static immutable int x = 1;",
		},
		{
			name:  "attribute on a function",
			input: "@safe void f() {\n}",
			want:  "@safe void f() {\n}",
		},
		{
			name:  "extern block",
			input: "extern (C) {\n\tint c;\n}",
			want:  "extern (C) {\n\tint c;\n}",
		},
		{
			name:  "qualifier glued to its parens",
			input: "const(int) x;",
			want:  "const(int) x;",
		},
		{
			name:  "version with else",
			input: "version (X) {\n\ta();\n} else {\n\tb();\n}",
			want:  "version (X) {\n\ta();\n} else {\n\tb();\n}",
		},
		{
			name:  "debug section",
			input: "debug:\nextra();",
			want:  "debug:\nextra();",
		},
		{
			name:  "unittest block",
			input: "unittest {\n\tassert(ok);\n}",
			want:  "unittest {\n\tassert(ok);\n}",
		},
		{
			name:  "string mixin",
			input: "mixin(\"code\");",
			want:  "mixin(\"code\");",
		},
		{
			name:  "template mixin",
			input: "mixin Foo;",
			want:  "mixin Foo;",
		},
		{
			name:  "constructor",
			input: "this(int x) {\n\tthis.x = x;\n}",
			want:  "this(int x) {\n\tthis.x = x;\n}",
		},
		{
			name:  "class with base list",
			input: "class B : A, I {\n}",
			want:  "class B : A, I {\n}",
		},
		{
			name:  "template declaration",
			input: "template Pair(T) {\n\talias first = T;\n}",
			want:  "template Pair(T) {\n\talias first = T;\n}",
		},
		{
			name:  "anonymous enum breaks its members",
			input: "enum { A, B }",
			want:  "enum {\n\tA,\n\tB\n}",
		},
		{
			name:  "enum with base type",
			input: "enum Flag : byte { On }",
			want:  "enum Flag : byte {\n\tOn\n}",
		},
		{
			name:  "manifest constant",
			input: "enum x = 5;",
			want:  "enum x = 5;",
		},
		{
			name:  "scope guard",
			input: "scope (exit) cleanup();",
			want:  "scope (exit) cleanup();",
		},
		{
			name:  "with statement",
			input: "with (obj) {\n\tcall();\n}",
			want:  "with (obj) {\n\tcall();\n}",
		},
		{
			name:  "foreach keeps its header inline",
			input: "foreach (i; items) {\n\tprocess(i);\n}",
			want:  "foreach (i; items) {\n\tprocess(i);\n}",
		},
		{
			name:  "lambda",
			input: "auto f = (x) => x + 1;",
			want:  "auto f = (x) => x + 1;",
		},
		{
			name:  "function literal glues its semicolon",
			input: "auto f = function() {\n\treturn 1;\n};",
			want:  "auto f = function() {\n\treturn 1;\n};",
		},
		{
			name:  "delegate literal as an initializer",
			input: "auto g = {\n\twork();\n};",
			want:  "auto g = {\n\twork();\n};",
		},
		{
			name:  "block argument glues the separator",
			input: "each({ step(); }, items);",
			want:  "each({\n\t\tstep();\n\t}, items);",
		},
		{
			name:  "static if",
			input: "static if (is(T == U)) {\n}",
			want:  "static if (is(T == U)) {\n}",
		},
		{
			name:  "goto",
			input: "goto end;",
			want:  "goto end;",
		},
		{
			name:  "break and continue",
			input: "break;\ncontinue outer;",
			want:  "break;\ncontinue outer;",
		},
		{
			name:  "throw",
			input: "throw new Error(msg);",
			want:  "throw new Error(msg);",
		},
		{
			name:  "array literal",
			input: "int[] a = [1, 2];",
			want:  "int[] a = [1, 2];",
		},
		{
			name:  "unbraced else gets its own line",
			input: "if (x) y();\nelse z();",
			want:  "if (x)\n\ty();\nelse\n\tz();",
		},
		{
			name:  "stray closers pass through",
			input: "int a;\n)))\nint b;",
			want:  "int a;\n)))\nint b;",
		},
		{
			name:  "dangling braces keep their comment",
			input: "}} // dangling\nint x;",
			want:  "}} // dangling\nint x;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, render("input.d", tt.input))
		})
	}
}
