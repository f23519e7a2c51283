package main

import "testing"

func TestSymbolTableFirstInsertWins(t *testing.T) {
	st := newSymbolTable()
	if err := st.Insert("x", 100); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := st.Insert("x", 200); err != nil {
		t.Fatalf("Insert duplicate: %v", err)
	}
	v, err := st.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v != 100 {
		t.Errorf("Lookup(x) = %d, want 100 (first insertion wins)", v)
	}
}

func TestSymbolTableUnknown(t *testing.T) {
	st := newSymbolTable()
	if _, err := st.Lookup("missing"); err == nil {
		t.Fatal("expected error looking up unknown symbol")
	} else if ae, ok := err.(*AssembleError); !ok || ae.Kind != UnknownSymbol {
		t.Errorf("expected UnknownSymbol, got %v", err)
	}
}

func TestSymbolTableOverflow(t *testing.T) {
	st := newSymbolTable()
	for i := 0; i < symbolTableMinCapacity; i++ {
		if err := st.Insert("sym", uint64(i)); err != nil {
			t.Fatalf("unexpected error at insert %d: %v", i, err)
		}
	}
	err := st.Insert("one_too_many", 0)
	if err == nil {
		t.Fatal("expected overflow error")
	}
	ae, ok := err.(*AssembleError)
	if !ok || ae.Kind != SymbolTableOverflow {
		t.Errorf("expected SymbolTableOverflow, got %v", err)
	}
}
