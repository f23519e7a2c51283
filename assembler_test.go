package main

import (
	"bytes"
	"testing"
)

func TestAssembleHelloWorld(t *testing.T) {
	src := `
data msg "hello\n"

start:
mov rax, 1
mov rdi, 1
mov rsi, msg
mov rdx, 6
call
`
	res, err := Assemble(src, DefaultOptions())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if res.CodeSize == 0 {
		t.Fatal("expected non-zero code size")
	}
	if _, ok := res.Symbols["start"]; !ok {
		t.Error("expected start label to be recorded")
	}
	if _, ok := res.Symbols["msg"]; !ok {
		t.Error("expected msg data label to be recorded")
	}
	if !bytes.HasPrefix(res.Payload, []byte{0x7F, 'E', 'L', 'F'}) {
		t.Error("expected ELF magic at the start of the payload")
	}
}

func TestAssembleForwardJump(t *testing.T) {
	src := `
jmp skip
mov rax, 1
skip:
mov rbx, 2
`
	res, err := Assemble(src, DefaultOptions())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if res.CodeSize != 5+7+7 {
		t.Errorf("CodeSize = %d, want %d", res.CodeSize, 5+7+7)
	}
}

func TestAssembleImmediateBoundary(t *testing.T) {
	opts := DefaultOptions()
	if _, err := Assemble("mov rax, 0xFFFFFFFF\n", opts); err != nil {
		t.Fatalf("32-bit boundary immediate should be accepted: %v", err)
	}
	if _, err := Assemble("cmp rax, 0x100000000\n", opts); err == nil {
		t.Fatal("expected ImmediateTooLarge just past the 32-bit boundary")
	}
}

func TestAssembleMemoryLoadStoreRoundTrip(t *testing.T) {
	src := `
data counter 0
mov rax, counter
mov [counter], rax
mov rbx, [counter]
`
	if _, err := Assemble(src, DefaultOptions()); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
}

func TestAssembleConditionalBranch(t *testing.T) {
	src := `
top:
cmp rax, 10
jmpeq done
jmplt top
jmpgt done
done:
add rax, 1
`
	if _, err := Assemble(src, DefaultOptions()); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
}

func TestAssembleRawOutput(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatRaw
	res, err := Assemble("mov rax, 1\n", opts)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if bytes.HasPrefix(res.Payload, []byte{0x7F, 'E', 'L', 'F'}) {
		t.Error("raw output must not carry an ELF header")
	}
	want := []byte{0x48, 0xC7, 0xC0, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(res.Payload, want) {
		t.Errorf("raw payload = % x, want % x", res.Payload, want)
	}
}

func TestAssembleUnknownSymbolFails(t *testing.T) {
	if _, err := Assemble("jmp nowhere\n", DefaultOptions()); err == nil {
		t.Fatal("expected UnknownSymbol error")
	}
}

func TestAssembleCustomBaseAddr(t *testing.T) {
	opts := DefaultOptions()
	opts.BaseAddr = 0x10000
	src := "start:\nmov rax, 1\n"
	res, err := Assemble(src, opts)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if res.Symbols["start"] != 0x10000+headerSize {
		t.Errorf("start = 0x%x, want 0x%x", res.Symbols["start"], 0x10000+headerSize)
	}
}
