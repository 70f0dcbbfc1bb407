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

package keyword

type property uint16

const (
	valid property = 1 << iota

	punct
	word

	storage
	aggregate
	basicType
	qualifier
	literal
	binaryOp
	prefixOp
	typeLike
)

func (k Keyword) properties() property {
	if int(k) < len(properties) {
		return properties[k]
	}
	return 0
}

// properties is a table of keyword properties, stored as bitsets.
var properties = [...]property{
	Module:    valid | word,
	Import:    valid | word,
	Alias:     valid | word,
	Enum:      valid | word,
	Struct:    valid | word | aggregate,
	Union:     valid | word | aggregate,
	Class:     valid | word | aggregate,
	Interface: valid | word | aggregate,
	Template:  valid | word | aggregate,
	Mixin:     valid | word | typeLike,
	Unittest:  valid | word,
	Version:   valid | word,
	Debug:     valid | word,

	If:             valid | word,
	Else:           valid | word,
	While:          valid | word,
	Do:             valid | word,
	For:            valid | word,
	Foreach:        valid | word,
	ForeachReverse: valid | word,
	Switch:         valid | word,
	Case:           valid | word,
	Default:        valid | word,
	Goto:           valid | word,
	Break:          valid | word,
	Continue:       valid | word,
	Return:         valid | word,
	Try:            valid | word,
	Catch:          valid | word,
	Finally:        valid | word,
	Throw:          valid | word,
	With:           valid | word,

	Cast:   valid | word | prefixOp,
	New:    valid | word | prefixOp,
	Delete: valid | word | prefixOp,
	In:     valid | word | binaryOp,
	Is:     valid | word | binaryOp | typeLike,
	Typeof: valid | word | typeLike,
	Typeid: valid | word | typeLike,

	Static:       valid | word | storage,
	Extern:       valid | word | storage,
	Align:        valid | word | storage,
	Abstract:     valid | word | storage,
	Final:        valid | word | storage,
	Override:     valid | word | storage,
	Pure:         valid | word | storage,
	Nothrow:      valid | word | storage,
	Deprecated:   valid | word | storage,
	Synchronized: valid | word | storage,
	GShared:      valid | word | storage,
	Auto:         valid | word | storage,
	Ref:          valid | word | storage,
	Lazy:         valid | word | storage,
	Out:          valid | word | storage,
	Scope:        valid | word | storage,
	Public:       valid | word | storage,
	Private:      valid | word | storage,
	Protected:    valid | word | storage,
	Package:      valid | word | storage,
	Export:       valid | word | storage,

	Const:     valid | word | storage | qualifier,
	Immutable: valid | word | storage | qualifier,
	Inout:     valid | word | storage | qualifier,
	Shared:    valid | word | storage | qualifier,

	This:  valid | word | literal,
	Super: valid | word | literal,
	True:  valid | word | literal,
	False: valid | word | literal,
	Null:  valid | word | literal,

	Void:   valid | word | basicType,
	Bool:   valid | word | basicType,
	Byte:   valid | word | basicType,
	UByte:  valid | word | basicType,
	Short:  valid | word | basicType,
	UShort: valid | word | basicType,
	Int:    valid | word | basicType,
	UInt:   valid | word | basicType,
	Long:   valid | word | basicType,
	ULong:  valid | word | basicType,
	Cent:   valid | word | basicType,
	UCent:  valid | word | basicType,
	Char:   valid | word | basicType,
	WChar:  valid | word | basicType,
	DChar:  valid | word | basicType,
	Float:  valid | word | basicType,
	Double: valid | word | basicType,
	Real:   valid | word | basicType,

	LParen:   valid | punct,
	RParen:   valid | punct,
	LBracket: valid | punct,
	RBracket: valid | punct,
	LBrace:   valid | punct,
	RBrace:   valid | punct,

	Semi:     valid | punct,
	Colon:    valid | punct,
	Comma:    valid | punct,
	Dot:      valid | punct,
	DotDot:   valid | punct | binaryOp,
	Ellipsis: valid | punct,
	At:       valid | punct,
	Dollar:   valid | punct | literal,
	Arrow:    valid | punct | binaryOp,

	Eq:      valid | punct | binaryOp,
	Plus:    valid | punct | binaryOp | prefixOp,
	Minus:   valid | punct | binaryOp | prefixOp,
	Star:    valid | punct | binaryOp | prefixOp,
	Slash:   valid | punct | binaryOp,
	Percent: valid | punct | binaryOp,
	Tilde:   valid | punct | binaryOp | prefixOp,
	Amp:     valid | punct | binaryOp | prefixOp,
	Pipe:    valid | punct | binaryOp,
	Caret:   valid | punct | binaryOp,
	Pow:     valid | punct | binaryOp,

	Shl:  valid | punct | binaryOp,
	Shr:  valid | punct | binaryOp,
	UShr: valid | punct | binaryOp,

	AmpAmp:   valid | punct | binaryOp,
	PipePipe: valid | punct | binaryOp,

	EqEq:      valid | punct | binaryOp,
	BangEq:    valid | punct | binaryOp,
	Less:      valid | punct | binaryOp,
	LessEq:    valid | punct | binaryOp,
	Greater:   valid | punct | binaryOp,
	GreaterEq: valid | punct | binaryOp,

	Bang: valid | punct | prefixOp,
	Ask:  valid | punct | binaryOp,
	Inc:  valid | punct | prefixOp,
	Dec:  valid | punct | prefixOp,

	PlusEq:    valid | punct | binaryOp,
	MinusEq:   valid | punct | binaryOp,
	StarEq:    valid | punct | binaryOp,
	SlashEq:   valid | punct | binaryOp,
	PercentEq: valid | punct | binaryOp,
	TildeEq:   valid | punct | binaryOp,
	AmpEq:     valid | punct | binaryOp,
	PipeEq:    valid | punct | binaryOp,
	CaretEq:   valid | punct | binaryOp,
	PowEq:     valid | punct | binaryOp,
	ShlEq:     valid | punct | binaryOp,
	ShrEq:     valid | punct | binaryOp,
	UShrEq:    valid | punct | binaryOp,
}
