package main

import (
	"math"
	"strings"
)

// encode runs pass two: it walks the same lines as simulate, skipping
// blank/comment/data/label lines, and emits the exact machine code bytes
// for every instruction into a.code. Every branch here must agree with
// simulateInstruction on both legality and byte count (spec.md §4.5).
func (a *Assembler) encode(lines []sourceLine) error {
	for _, ln := range lines {
		switch {
		case ln.text == "" || isComment(ln.text) || isDataDirective(ln.text) || isLabel(ln.text):
			continue
		default:
			if err := a.encodeInstruction(ln.text, ln.number); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Assembler) encodeInstruction(text string, lineNo int) error {
	mnemonic := firstToken(text)
	rest := strings.TrimSpace(strings.TrimPrefix(text, mnemonic))
	operands := splitOperands(rest)

	switch mnemonic {
	case "mov":
		return a.encodeMov(operands, lineNo, text)
	case "call":
		a.code.WriteByte(0x0F)
		a.code.WriteByte(0x05)
		return nil
	case "jmp":
		return a.encodeJump(0xE9, nil, operands, lineNo, text)
	case "jmplt":
		return a.encodeJump(0x0F, []byte{0x8C}, operands, lineNo, text)
	case "jmpgt":
		return a.encodeJump(0x0F, []byte{0x8F}, operands, lineNo, text)
	case "jmpeq":
		return a.encodeJump(0x0F, []byte{0x84}, operands, lineNo, text)
	case "cmp":
		return a.encodeArith(operands, lineNo, text, 0x39, 0xF8)
	case "add":
		return a.encodeArith(operands, lineNo, text, 0x01, 0xC0)
	default:
		return errf(UnknownInstruction, lineNo, text, "unknown instruction %q", mnemonic)
	}
}

func (a *Assembler) encodeMov(operands []string, lineNo int, text string) error {
	if len(operands) != 2 {
		return errf(SyntaxError, lineNo, text, "mov requires two operands")
	}
	m, err := parseMovOperands(operands[0], operands[1], lineNo, text)
	if err != nil {
		return err
	}

	switch m.form {
	case movRegImm32:
		a.code.WriteByte(0x48)
		a.code.WriteByte(0xC7)
		a.code.WriteByte(0xC0 | m.reg)
		a.code.WriteUint32LE(uint32(m.imm))

	case movRegImm64:
		a.code.WriteByte(0x48)
		a.code.WriteByte(0xB8 + m.reg)
		a.code.WriteUint64LE(m.imm)

	case movRegLoad:
		addr, serr := a.symbols.Lookup(m.symbol)
		if serr != nil {
			return attachLine(serr, lineNo, text)
		}
		nextInstr := a.baseAddr + headerSize + uint64(a.code.Len()) + 7
		a.code.WriteByte(0x48)
		a.code.WriteByte(0x8B)
		a.code.WriteByte((m.reg << 3) | 0x05)
		a.code.WriteInt32LE(int32(int64(addr) - int64(nextInstr)))

	case movMemStore:
		addr, serr := a.symbols.Lookup(m.symbol)
		if serr != nil {
			return attachLine(serr, lineNo, text)
		}
		nextInstr := a.baseAddr + headerSize + uint64(a.code.Len()) + 7
		a.code.WriteByte(0x48)
		a.code.WriteByte(0x89)
		a.code.WriteByte((m.reg << 3) | 0x05)
		a.code.WriteInt32LE(int32(int64(addr) - int64(nextInstr)))

	case movRegLea:
		addr, serr := a.symbols.Lookup(m.symbol)
		if serr != nil {
			return attachLine(serr, lineNo, text)
		}
		a.code.WriteByte(0x48)
		a.code.WriteByte(0x8D)
		a.code.WriteByte((m.reg << 3) | 0x05)
		// disp32 is computed against the address immediately following the
		// 4-byte displacement: instr_start + 7 for this 7-byte form.
		instrStart := a.baseAddr + headerSize + uint64(a.code.Len()) - 3
		a.code.WriteInt32LE(int32(int64(addr) - int64(instrStart+7)))
	}
	return nil
}

func (a *Assembler) encodeJump(opcode byte, extra []byte, operands []string, lineNo int, text string) error {
	if len(operands) != 1 {
		return errf(SyntaxError, lineNo, text, "jump requires a label")
	}
	target, err := a.symbols.Lookup(operands[0])
	if err != nil {
		return attachLine(err, lineNo, text)
	}

	size := 1 + len(extra) + 4
	instrStart := a.baseAddr + headerSize + uint64(a.code.Len())
	rel := int64(target) - int64(instrStart+uint64(size))
	if rel < math.MinInt32 || rel > math.MaxInt32 {
		return errf(JumpTooFar, lineNo, text, "jump target %q is out of 32-bit range", operands[0])
	}

	a.code.WriteByte(opcode)
	for _, b := range extra {
		a.code.WriteByte(b)
	}
	a.code.WriteInt32LE(int32(rel))
	return nil
}

func (a *Assembler) encodeArith(operands []string, lineNo int, text string, regRegOpcode, immModRM byte) error {
	if len(operands) != 2 {
		return errf(SyntaxError, lineNo, text, "instruction requires two operands")
	}
	reg, ok := registerCode(operands[0])
	if !ok {
		return errf(UnknownRegister, lineNo, text, "unknown register %q", operands[0])
	}
	op, err := parseArithOperand(operands[1], lineNo, text)
	if err != nil {
		return err
	}

	if op.isImmediate {
		if op.imm > 0xFFFFFFFF {
			if a.immediateOverflowIsError {
				return errf(ImmediateTooLarge, lineNo, text, "immediate %d does not fit in 32 bits", op.imm)
			}
		}
		a.code.WriteByte(0x48)
		a.code.WriteByte(0x81)
		a.code.WriteByte(immModRM | reg)
		a.code.WriteUint32LE(uint32(op.imm))
		return nil
	}

	a.code.WriteByte(0x48)
	a.code.WriteByte(regRegOpcode)
	a.code.WriteByte(0xC0 | (op.reg << 3) | reg)
	return nil
}

// attachLine annotates an error surfaced from a context-free lookup (the
// symbol table doesn't know about source lines) with the instruction's
// line number and text, so diagnostics always point at the offending line.
func attachLine(err error, lineNo int, text string) error {
	if ae, ok := err.(*AssembleError); ok {
		ae.Line = lineNo
		ae.Text = text
		return ae
	}
	return err
}
