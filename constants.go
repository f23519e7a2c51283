package main

const (
	// defaultBaseAddr is BASE_ADDR from spec.md §3. Overridable via config
	// or environment (SPEC_FULL.md §3, §9).
	defaultBaseAddr uint64 = 0x400000

	// headerSize is HEADER_SIZE: one ELF64 header (64 bytes) plus one
	// program header (56 bytes).
	headerSize uint64 = 64 + 56

	elfHeaderSize     = 64
	programHeaderSize = 56
)
