package main

import "strings"

// sourceLine is one logical line of source, preserved verbatim (for
// diagnostics and the second pass) alongside its trimmed form and line
// number.
type sourceLine struct {
	number int
	raw    string
	text   string // trimmed
}

// splitLines slurps source into logical lines, stripping trailing
// newlines but preserving the original text for pass two and for
// diagnostics (spec.md §2's lexer/line-reader component).
func splitLines(source string) []sourceLine {
	rawLines := strings.Split(source, "\n")
	lines := make([]sourceLine, 0, len(rawLines))
	for i, raw := range rawLines {
		raw = strings.TrimRight(raw, "\r")
		lines = append(lines, sourceLine{number: i + 1, raw: raw, text: trimLine(raw)})
	}
	return lines
}

// simulate runs pass one: it walks every line, inserting labels into the
// symbol table at their eventual code address, collecting data directives
// without emitting bytes, and summing the fixed size of every
// instruction. It returns the total code-section size in bytes.
func (a *Assembler) simulate(lines []sourceLine) (codeSize uint64, err error) {
	for _, ln := range lines {
		switch {
		case ln.text == "" || isComment(ln.text):
			continue

		case isDataDirective(ln.text):
			d, derr := parseDataDirective(ln.text, ln.number)
			if derr != nil {
				return 0, derr
			}
			a.dataDirectives = append(a.dataDirectives, d)

		case isLabel(ln.text):
			name, ok := labelName(ln.text)
			if !ok {
				return 0, errf(SyntaxError, ln.number, ln.text, "empty label name")
			}
			if ierr := a.symbols.Insert(name, a.baseAddr+headerSize+codeSize); ierr != nil {
				return 0, ierr
			}

		default:
			size, ierr := simulateInstruction(ln.text, ln.number)
			if ierr != nil {
				return 0, ierr
			}
			codeSize += uint64(size)
		}
	}
	return codeSize, nil
}

// simulateInstruction predicts the byte length of one instruction line
// without resolving any symbol (spec.md §4.4). The simulator and the
// encoder in encoder.go must classify every line identically — a line the
// simulator sizes as N bytes that the encoder then rejects, or encodes to
// a different size, would desynchronize every later RIP-relative offset.
func simulateInstruction(text string, lineNo int) (int, error) {
	mnemonic := firstToken(text)
	rest := strings.TrimSpace(strings.TrimPrefix(text, mnemonic))
	operands := splitOperands(rest)

	switch mnemonic {
	case "mov":
		if len(operands) != 2 {
			return 0, errf(SyntaxError, lineNo, text, "mov requires two operands")
		}
		m, err := parseMovOperands(operands[0], operands[1], lineNo, text)
		if err != nil {
			return 0, err
		}
		return movSize(m), nil

	case "call":
		return 2, nil

	case "jmp":
		if len(operands) != 1 {
			return 0, errf(SyntaxError, lineNo, text, "jmp requires a label")
		}
		return 5, nil

	case "jmplt", "jmpgt", "jmpeq":
		if len(operands) != 1 {
			return 0, errf(SyntaxError, lineNo, text, "%s requires a label", mnemonic)
		}
		return 6, nil

	case "cmp", "add":
		if len(operands) != 2 {
			return 0, errf(SyntaxError, lineNo, text, "%s requires two operands", mnemonic)
		}
		if _, ok := registerCode(operands[0]); !ok {
			return 0, errf(UnknownRegister, lineNo, text, "unknown register %q", operands[0])
		}
		op, err := parseArithOperand(operands[1], lineNo, text)
		if err != nil {
			return 0, err
		}
		return arithSize(op), nil

	case "":
		return 0, errf(SyntaxError, lineNo, text, "empty instruction")

	default:
		return 0, errf(UnknownInstruction, lineNo, text, "unknown instruction %q", mnemonic)
	}
}
