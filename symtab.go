package main

// symbolTableMinCapacity is the minimum number of symbols the table must
// hold before SymbolTableOverflow may be raised (spec.md §4.2: "must be
// >= 100").
const symbolTableMinCapacity = 1024

// symbol binds a label or data-directive name to an absolute virtual
// address (spec.md §3).
type symbol struct {
	name  string
	value uint64
}

// SymbolTable is a flat, append-only sequence of symbols. Lookup is a
// linear scan that returns the first match, so the first insertion of a
// given name always wins — duplicate definitions are accepted, not
// rejected (see SPEC_FULL.md §11, Open Question 2).
type SymbolTable struct {
	symbols []symbol
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make([]symbol, 0, 64)}
}

// Insert appends a new symbol. It never overwrites or checks for an
// existing name with the same text — lookups always resolve to whichever
// insertion happened first.
func (t *SymbolTable) Insert(name string, value uint64) error {
	if len(t.symbols) >= symbolTableMinCapacity {
		return errf(SymbolTableOverflow, 0, "", "symbol table is full (%d entries)", symbolTableMinCapacity)
	}
	t.symbols = append(t.symbols, symbol{name: name, value: value})
	return nil
}

// Lookup returns the value of the first symbol inserted under name, or
// UnknownSymbol if no such symbol exists.
func (t *SymbolTable) Lookup(name string) (uint64, error) {
	for _, s := range t.symbols {
		if s.name == name {
			return s.value, nil
		}
	}
	return 0, errf(UnknownSymbol, 0, "", "unknown symbol %q", name)
}
