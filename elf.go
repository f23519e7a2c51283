package main

// writeELF serialises code and data as a minimal statically-linked ELF64
// executable: one ELF header, one PT_LOAD program header, then code bytes
// immediately followed by data bytes. No section headers, no symbol
// table, no relocations (spec.md §4.7). Field values and layout are
// ported directly from original jasm's elf_writer.c.
func writeELF(baseAddr, entry uint64, code, data []byte) []byte {
	out := newByteBuffer(elfHeaderSize + programHeaderSize + len(code) + len(data))

	// --- ELF64 header (64 bytes) ---
	out.WriteByte(0x7F)
	out.WriteByte('E')
	out.WriteByte('L')
	out.WriteByte('F')
	out.WriteByte(2) // ELFCLASS64
	out.WriteByte(1) // ELFDATA2LSB
	out.WriteByte(1) // EV_CURRENT
	out.WriteByte(0) // ABI
	out.WriteZeros(8)

	out.WriteUint16LE(2)    // e_type = ET_EXEC
	out.WriteUint16LE(0x3E) // e_machine = EM_X86_64
	out.WriteUint32LE(1)    // e_version

	out.WriteUint64LE(entry)                         // e_entry
	out.WriteUint64LE(uint64(elfHeaderSize))          // e_phoff
	out.WriteUint64LE(0)                              // e_shoff
	out.WriteUint32LE(0)                              // e_flags
	out.WriteUint16LE(elfHeaderSize)                  // e_ehsize
	out.WriteUint16LE(programHeaderSize)              // e_phentsize
	out.WriteUint16LE(1)                              // e_phnum
	out.WriteUint16LE(0)                              // e_shentsize
	out.WriteUint16LE(0)                              // e_shnum
	out.WriteUint16LE(0)                              // e_shstrndx

	// --- Program header (56 bytes), one PT_LOAD segment ---
	fileSize := uint64(elfHeaderSize+programHeaderSize) + uint64(len(code)) + uint64(len(data))

	out.WriteUint32LE(1) // p_type = PT_LOAD
	out.WriteUint32LE(7) // p_flags = PF_R | PF_W | PF_X
	out.WriteUint64LE(0) // p_offset
	out.WriteUint64LE(baseAddr)
	out.WriteUint64LE(baseAddr) // p_paddr
	out.WriteUint64LE(fileSize) // p_filesz
	out.WriteUint64LE(fileSize) // p_memsz
	out.WriteUint64LE(0x1000)   // p_align

	out.WriteBytes(code)
	out.WriteBytes(data)

	return out.Bytes()
}
