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

// Package sdfmt is the core of a tolerant source code formatter for the D
// programming language.
//
// Formatting runs in stages, each with its own subpackage:
//  1. Lexing splits a file into tokens without ever rejecting input.
//     Also see: parser.Lex
//  2. Recognition walks the token stream, identifies the declarations,
//     statements, and expressions it knows, and decides the canonical
//     whitespace around them. Anything it does not recognize passes through
//     byte-for-byte.
//     Also see: parser.Parse
//  3. The output is a flat sequence of chunks, annotated with nested cost
//     groups and indentation, from which a layout pass can pick final line
//     breaks.
//     Also see: chunk.Chunk, chunk.Print
//
// The pipeline is deliberately unable to fail: there are no diagnostics and
// no error returns, because a formatter that refuses to format is useless
// on the code that needs it most. Input the recognizer cannot make sense of
// is preserved exactly, and everything around it is still formatted.
//
// [Format] runs the whole pipeline over one file.
package sdfmt
