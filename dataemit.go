package main

import "os"

// emitData walks the collected data directives in original order, binding
// each label to its address in the data section and appending that
// directive's bytes to a.data (spec.md §4.6). It must run before encode,
// since mov [label] and LEA instructions resolve data-label addresses
// from the symbol table.
func (a *Assembler) emitData() error {
	base := a.baseAddr + headerSize + a.codeSize
	for _, d := range a.dataDirectives {
		addr := base + uint64(a.data.Len())
		if err := a.symbols.Insert(d.label, addr); err != nil {
			return err
		}

		switch d.kind {
		case dataString:
			a.data.WriteBytes(d.bytes)

		case dataBuffer:
			a.data.WriteZeros(int(d.size))

		case dataFile:
			contents, err := os.ReadFile(d.path)
			if err != nil {
				return wrapf(FileIoError, err, "cannot read %q (line %d)", d.path, d.line)
			}
			a.data.WriteBytes(contents)

		case dataRaw:
			a.data.WriteUint64LE(d.value)
		}
	}
	return nil
}
