package main

import "testing"

func TestParseMovOperandsImmediate(t *testing.T) {
	m, err := parseMovOperands("rax", "5", 1, "")
	if err != nil {
		t.Fatalf("parseMovOperands: %v", err)
	}
	if m.form != movRegImm32 || m.reg != 0 || m.imm != 5 {
		t.Errorf("got %+v", m)
	}
	if movSize(m) != 7 {
		t.Errorf("movSize = %d, want 7", movSize(m))
	}
}

func TestParseMovOperandsImmediate64(t *testing.T) {
	m, err := parseMovOperands("rax", "0x100000000", 1, "")
	if err != nil {
		t.Fatalf("parseMovOperands: %v", err)
	}
	if m.form != movRegImm64 {
		t.Errorf("expected movRegImm64 for a value > 32 bits, got %v", m.form)
	}
	if movSize(m) != 10 {
		t.Errorf("movSize = %d, want 10", movSize(m))
	}
}

func TestParseMovOperandsLoadAndStore(t *testing.T) {
	m, err := parseMovOperands("rax", "[msg]", 1, "")
	if err != nil {
		t.Fatalf("parseMovOperands load: %v", err)
	}
	if m.form != movRegLoad || m.symbol != "msg" {
		t.Errorf("got %+v", m)
	}

	m, err = parseMovOperands("[msg]", "rbx", 1, "")
	if err != nil {
		t.Fatalf("parseMovOperands store: %v", err)
	}
	if m.form != movMemStore || m.symbol != "msg" || m.reg != 3 {
		t.Errorf("got %+v", m)
	}
}

func TestParseMovOperandsLea(t *testing.T) {
	m, err := parseMovOperands("rax", "msg", 1, "")
	if err != nil {
		t.Fatalf("parseMovOperands: %v", err)
	}
	if m.form != movRegLea || m.symbol != "msg" {
		t.Errorf("got %+v", m)
	}
}

func TestParseMovOperandsRejectsDoubleMemory(t *testing.T) {
	if _, err := parseMovOperands("[a]", "[b]", 1, ""); err == nil {
		t.Fatal("expected error for two memory operands")
	}
}

func TestParseArithOperand(t *testing.T) {
	op, err := parseArithOperand("10", 1, "")
	if err != nil || !op.isImmediate || op.imm != 10 {
		t.Errorf("got %+v, %v", op, err)
	}
	if arithSize(op) != 7 {
		t.Errorf("arithSize(imm) = %d, want 7", arithSize(op))
	}

	op, err = parseArithOperand("rcx", 1, "")
	if err != nil || op.isImmediate || op.reg != 1 {
		t.Errorf("got %+v, %v", op, err)
	}
	if arithSize(op) != 3 {
		t.Errorf("arithSize(reg) = %d, want 3", arithSize(op))
	}
}
