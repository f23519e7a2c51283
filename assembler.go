package main

// OutputFormat selects which output writer variant runs (spec.md §4.7,
// §4.8).
type OutputFormat int

const (
	FormatELF OutputFormat = iota
	FormatRaw
)

func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch s {
	case "elf", "":
		return FormatELF, true
	case "bin", "raw":
		return FormatRaw, true
	default:
		return 0, false
	}
}

func (f OutputFormat) String() string {
	if f == FormatRaw {
		return "bin"
	}
	return "elf"
}

// Options configures one Assemble invocation. Every field has a default
// matching spec.md; BaseAddr and ImmediateOverflowIsError are the two
// knobs SPEC_FULL.md adds on top of the original behaviour.
type Options struct {
	BaseAddr                 uint64
	Format                   OutputFormat
	ImmediateOverflowIsError bool
	Verbose                  bool
}

// DefaultOptions returns spec.md's defaults: BASE_ADDR = 0x400000, ELF
// output, and ImmediateTooLarge raised rather than silently truncated
// (SPEC_FULL.md §11, Open Question 1).
func DefaultOptions() Options {
	return Options{
		BaseAddr:                 defaultBaseAddr,
		Format:                   FormatELF,
		ImmediateOverflowIsError: true,
		Verbose:                  false,
	}
}

// Assembler holds all state scoped to a single invocation: the symbol
// table, the collected data directives, and the code and data byte
// buffers. A fresh Assembler is created per Assemble call, so no explicit
// reset is ever required (spec.md §3 "Lifecycles", SPEC_FULL.md §9).
type Assembler struct {
	baseAddr                 uint64
	immediateOverflowIsError bool
	symbols                  *SymbolTable
	dataDirectives           []*dataDirective
	code                     *ByteBuffer
	data                     *ByteBuffer
	codeSize                 uint64
}

func newAssembler(opts Options) *Assembler {
	return &Assembler{
		baseAddr:                 opts.BaseAddr,
		immediateOverflowIsError: opts.ImmediateOverflowIsError,
		symbols:                  newSymbolTable(),
		code:                     newByteBuffer(1024),
		data:                     newByteBuffer(1024),
	}
}

// Result describes a completed assembly: the final byte payload (header +
// code + data for ELF, code + data for raw) and the sizes that went into
// it, useful for tests asserting spec.md §8's invariants.
type Result struct {
	Payload  []byte
	CodeSize uint64
	DataSize uint64
	Symbols  map[string]uint64
}

// snapshotSymbols copies the symbol table into a plain map. Later
// entries for a name that was already inserted are skipped, preserving
// first-match semantics (SPEC_FULL.md §11, Open Question 2).
func snapshotSymbols(t *SymbolTable) map[string]uint64 {
	out := make(map[string]uint64, len(t.symbols))
	for _, s := range t.symbols {
		if _, exists := out[s.name]; !exists {
			out[s.name] = s.value
		}
	}
	return out
}

// Assemble runs the full two-pass pipeline over source and returns the
// assembled payload. It never partially writes anything — callers decide
// whether/where to persist Payload, so a failure here never leaves a
// truncated file on disk (spec.md §7).
func Assemble(source string, opts Options) (*Result, error) {
	if opts.BaseAddr == 0 {
		opts.BaseAddr = defaultBaseAddr
	}

	a := newAssembler(opts)
	lines := splitLines(source)

	codeSize, err := a.simulate(lines)
	if err != nil {
		return nil, err
	}
	a.codeSize = codeSize

	if err := a.emitData(); err != nil {
		return nil, err
	}

	if err := a.encode(lines); err != nil {
		return nil, err
	}

	if uint64(a.code.Len()) != codeSize {
		return nil, errf(SyntaxError, 0, "", "internal error: pass-one predicted %d code bytes but pass two emitted %d", codeSize, a.code.Len())
	}

	var payload []byte
	switch opts.Format {
	case FormatRaw:
		payload = writeRaw(a.code.Bytes(), a.data.Bytes())
	default:
		entry := a.baseAddr + headerSize
		payload = writeELF(a.baseAddr, entry, a.code.Bytes(), a.data.Bytes())
	}

	return &Result{
		Payload:  payload,
		CodeSize: uint64(a.code.Len()),
		DataSize: uint64(a.data.Len()),
		Symbols:  snapshotSymbols(a.symbols),
	}, nil
}
