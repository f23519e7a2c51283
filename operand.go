package main

// movForm classifies the five legal shapes of a `mov` instruction
// (spec.md §3, §4.5). One of dest/src is always a register; the other is
// an immediate, a memory reference or a symbol.
type movForm int

const (
	movRegImm32 movForm = iota // mov r, imm   (imm <= 0xFFFFFFFF)
	movRegImm64                // mov r, imm   (imm  > 0xFFFFFFFF)
	movRegLoad                 // mov r, [sym] — load
	movMemStore                // mov [sym], r — store
	movRegLea                  // mov r, sym   — address-of
)

// parsedMov is the result of classifying a `mov dest, src` instruction.
// Size and shape depend only on the operand syntax, never on whether the
// referenced symbol exists yet — the key invariant that makes a
// single-pass simulation sufficient (spec.md §9).
type parsedMov struct {
	form   movForm
	reg    uint8
	imm    uint64
	symbol string
}

func parseMovOperands(destTok, srcTok string, lineNo int, text string) (*parsedMov, error) {
	destMem := isMemoryReference(destTok)
	srcMem := isMemoryReference(srcTok)

	switch {
	case destMem && srcMem:
		return nil, errf(SyntaxError, lineNo, text, "mov cannot have two memory operands")

	case destMem:
		reg, ok := registerCode(srcTok)
		if !ok {
			return nil, errf(UnknownRegister, lineNo, text, "unknown register %q", srcTok)
		}
		return &parsedMov{form: movMemStore, reg: reg, symbol: memoryReferenceName(destTok)}, nil

	case srcMem:
		reg, ok := registerCode(destTok)
		if !ok {
			return nil, errf(UnknownRegister, lineNo, text, "unknown register %q", destTok)
		}
		return &parsedMov{form: movRegLoad, reg: reg, symbol: memoryReferenceName(srcTok)}, nil

	case isNumericLiteral(srcTok):
		reg, ok := registerCode(destTok)
		if !ok {
			return nil, errf(UnknownRegister, lineNo, text, "unknown register %q", destTok)
		}
		val, err := parseUnsigned(srcTok, lineNo, text)
		if err != nil {
			return nil, err
		}
		form := movRegImm32
		if val > 0xFFFFFFFF {
			form = movRegImm64
		}
		return &parsedMov{form: form, reg: reg, imm: val}, nil

	default:
		// Bare identifier: address-of via LEA.
		reg, ok := registerCode(destTok)
		if !ok {
			return nil, errf(UnknownRegister, lineNo, text, "unknown register %q", destTok)
		}
		return &parsedMov{form: movRegLea, reg: reg, symbol: srcTok}, nil
	}
}

// movSize returns the fixed encoded size of a classified mov, per the
// table in spec.md §4.4.
func movSize(m *parsedMov) int {
	switch m.form {
	case movRegImm32:
		return 7
	case movRegImm64:
		return 10
	case movRegLoad, movMemStore, movRegLea:
		return 7
	default:
		return 0
	}
}

// arithOperand is the second operand of a cmp/add instruction: either a
// register or an immediate (spec.md §3's Comp/Add).
type arithOperand struct {
	isImmediate bool
	reg         uint8
	imm         uint64
}

func parseArithOperand(tok string, lineNo int, text string) (*arithOperand, error) {
	if isNumericLiteral(tok) {
		val, err := parseUnsigned(tok, lineNo, text)
		if err != nil {
			return nil, err
		}
		return &arithOperand{isImmediate: true, imm: val}, nil
	}
	reg, ok := registerCode(tok)
	if !ok {
		return nil, errf(UnknownRegister, lineNo, text, "unknown register %q", tok)
	}
	return &arithOperand{reg: reg}, nil
}

// arithSize returns the fixed encoded size of cmp/add, per spec.md §4.4.
func arithSize(op *arithOperand) int {
	if op.isImmediate {
		return 7
	}
	return 3
}
