// Package recognizer is the peephole compound-op recognizer (R): a
// streaming matcher holding a bounded window of already-emitted compound
// ops, rewriting recognized idioms in place. This is the largest
// component of the pipeline.
package recognizer

import "github.com/Urethramancer/octofold/lexer"

// Kind identifies a compound op variant. A raw basic op that matched no
// idiom is Basic; everything else is a recognized higher-level
// instruction.
type Kind int

const (
	Basic Kind = iota
	Zero
	ZeroAdvance
	ZeroRetreat
	Set
	Panic
	MoveAdd
	MoveAdd2
	MoveSet
	Dupe
	Equals
	NotEquals
	LessThan
	GreaterThan
	LessThanEqual
	GreaterThanEqual
	ShiftLeftLogical
	ShiftRightLogical
	BitAnd
	BitNeg
	DivMod
	PrintStatic
	MoveCellDynamicU8
	MoveCellDynamicU16
	MoveCellDynamicU32
	CopyCellDynamicU8
	CopyCellDynamicU32
	MoveCellsStaticReverse
	AddU32
)

var kindNames = [...]string{
	Basic:                  "Basic",
	Zero:                   "Zero",
	ZeroAdvance:            "ZeroAdvance",
	ZeroRetreat:            "ZeroRetreat",
	Set:                    "Set",
	Panic:                  "Panic",
	MoveAdd:                "MoveAdd",
	MoveAdd2:               "MoveAdd2",
	MoveSet:                "MoveSet",
	Dupe:                   "Dupe",
	Equals:                 "Equals",
	NotEquals:              "NotEquals",
	LessThan:               "LessThan",
	GreaterThan:            "GreaterThan",
	LessThanEqual:          "LessThanEqual",
	GreaterThanEqual:       "GreaterThanEqual",
	ShiftLeftLogical:       "ShiftLeftLogical",
	ShiftRightLogical:      "ShiftRightLogical",
	BitAnd:                 "BitAnd",
	BitNeg:                 "BitNeg",
	DivMod:                 "WellBehavedDivMod",
	PrintStatic:            "PrintStatic",
	MoveCellDynamicU8:      "MoveCellDynamicU8",
	MoveCellDynamicU16:     "MoveCellDynamicU16",
	MoveCellDynamicU32:     "MoveCellDynamicU32",
	CopyCellDynamicU8:      "CopyCellDynamicU8",
	CopyCellDynamicU32:     "CopyCellDynamicU32",
	MoveCellsStaticReverse: "MoveCellsStaticReverse",
	AddU32:                 "AddU32",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Op is a single compound op. Like lexer.Op and the cpu package's
// DecodedInstruction, this is one flat struct shared by every variant;
// only the fields relevant to Kind are meaningful.
type Op struct {
	Kind Kind

	Basic lexer.Op // valid when Kind == Basic

	Offset  int64 // MoveAdd/MoveSet/Dupe/dynamic-op offset
	Offset2 int64 // MoveAdd2's second destination (absolute, offset1+offset2)
	Shift   int64 // WellBehavedDivMod's post-op head shift

	Count int  // ZeroAdvance/ZeroRetreat/MoveCellsStaticReverse repeat count
	Value byte // Set/Panic immediate value

	Bytes []byte // PrintStatic's fixed output sequence
}

func basicOp(b lexer.Op) Op { return Op{Kind: Basic, Basic: b} }

func asBasic(op Op, kind lexer.Kind) (lexer.Op, bool) {
	if op.Kind != Basic || op.Basic.Kind != kind {
		return lexer.Op{}, false
	}
	return op.Basic, true
}
