package main

import "strings"

// registerCodes maps the six encodable registers to their 3-bit ModR/M
// codes. No other register names exist in this dialect (spec.md §3).
var registerCodes = map[string]uint8{
	"rax": 0,
	"rcx": 1,
	"rdx": 2,
	"rbx": 3,
	"rsi": 6,
	"rdi": 7,
}

// mnemonics is the full set of recognised instruction first-tokens.
var mnemonics = map[string]bool{
	"mov":    true,
	"call":   true,
	"jmp":    true,
	"jmplt":  true,
	"jmpgt":  true,
	"jmpeq":  true,
	"cmp":    true,
	"add":    true,
}

// registerCode looks up a register's 3-bit encoding. ok is false for any
// token that isn't one of the six recognised registers.
func registerCode(name string) (code uint8, ok bool) {
	code, ok = registerCodes[name]
	return code, ok
}

// trimLine strips surrounding whitespace, matching syntax_trim's behaviour
// (leading/trailing spaces, tabs, CR, LF).
func trimLine(line string) string {
	return strings.TrimRight(strings.TrimSpace(line), "\r\n")
}

// isComment reports whether a trimmed line is a comment: first non-blank
// character is '#'.
func isComment(line string) bool {
	return len(line) > 0 && line[0] == '#'
}

// isLabel reports whether a trimmed line defines a label: it ends in ':'.
func isLabel(line string) bool {
	return len(line) > 0 && strings.HasSuffix(line, ":")
}

// labelName extracts the label name from a label-definition line, trimmed
// of the trailing colon and surrounding whitespace. ok is false for an
// empty label ("  :").
func labelName(line string) (name string, ok bool) {
	name = trimLine(strings.TrimSuffix(line, ":"))
	return name, name != ""
}

// isDataDirective reports whether a trimmed line's first token is "data".
func isDataDirective(line string) bool {
	return firstToken(line) == "data"
}

// isMemoryReference reports whether a token has the shape "[name]".
func isMemoryReference(tok string) bool {
	return len(tok) >= 2 && tok[0] == '[' && tok[len(tok)-1] == ']'
}

// memoryReferenceName strips the brackets from a memory-reference token.
func memoryReferenceName(tok string) string {
	return trimLine(tok[1 : len(tok)-1])
}

// isNumericLiteral reports whether a token begins like a number: a digit,
// a leading '-', or a 0x/0X/0b/0B prefix.
func isNumericLiteral(tok string) bool {
	if tok == "" {
		return false
	}
	if tok[0] == '-' || (tok[0] >= '0' && tok[0] <= '9') {
		return true
	}
	return false
}

// firstToken returns the first whitespace-delimited token of a line, or ""
// if the line has no tokens.
func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// splitOperands tokenizes everything after the mnemonic on an instruction
// line, the way the original's strtok(" ,\t") does: operands are separated
// by any mix of commas, spaces and tabs, and empty fields are dropped.
func splitOperands(rest string) []string {
	fields := strings.FieldsFunc(rest, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return fields
}

// decodeEscapes decodes the backslash escape sequences recognised inside a
// quoted string literal: \n \t \r \\ \" each collapse to one output byte;
// any other \x passes through as the literal byte 'x' (spec.md §4.1).
func decodeEscapes(s string) []byte {
	out := make([]byte, 0, len(s))
	runes := []byte(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == '\\' && i+1 < len(runes) {
			i++
			switch runes[i] {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			case '\\':
				out = append(out, '\\')
			case '"':
				out = append(out, '"')
			default:
				out = append(out, runes[i])
			}
			continue
		}
		out = append(out, c)
	}
	return out
}
