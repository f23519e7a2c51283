package main

import "testing"

func TestSimulateInstructionSizes(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"mov rax, 1", 7},
		{"mov rax, 0x100000000", 10},
		{"mov rax, [msg]", 7},
		{"mov [msg], rax", 7},
		{"mov rax, msg", 7},
		{"call", 2},
		{"jmp loop", 5},
		{"jmplt loop", 6},
		{"jmpgt loop", 6},
		{"jmpeq loop", 6},
		{"cmp rax, 1", 7},
		{"cmp rax, rbx", 3},
		{"add rax, 1", 7},
		{"add rax, rbx", 3},
	}
	for _, c := range cases {
		got, err := simulateInstruction(c.text, 1)
		if err != nil {
			t.Fatalf("simulateInstruction(%q): %v", c.text, err)
		}
		if got != c.want {
			t.Errorf("simulateInstruction(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestSimulateInstructionUnknown(t *testing.T) {
	if _, err := simulateInstruction("nop", 1); err == nil {
		t.Fatal("expected error for unknown instruction")
	}
}

func TestSimulateAssignsLabelAddresses(t *testing.T) {
	src := "start:\nmov rax, 1\nloop:\nadd rax, 1\n"
	a := newAssembler(DefaultOptions())
	lines := splitLines(src)
	codeSize, err := a.simulate(lines)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if codeSize != 14 {
		t.Fatalf("codeSize = %d, want 14", codeSize)
	}
	start, err := a.symbols.Lookup("start")
	if err != nil {
		t.Fatalf("lookup start: %v", err)
	}
	loop, err := a.symbols.Lookup("loop")
	if err != nil {
		t.Fatalf("lookup loop: %v", err)
	}
	if loop-start != 7 {
		t.Errorf("loop - start = %d, want 7 (size of the mov between them)", loop-start)
	}
}
