package loader

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
)

// elfImage builds a minimal 64-bit little-endian ELF executable holding the
// given sections as SHT_PROGBITS. Layout: ehdr, section data, .shstrtab,
// section headers.
func elfImage(machine elf.Machine, sects []rawSection) []byte {
	const (
		ehsize    = 64
		shentsize = 64
	)

	var names bytes.Buffer
	names.WriteByte(0)
	nameOff := make([]uint32, len(sects))
	for i, s := range sects {
		nameOff[i] = uint32(names.Len())
		names.WriteString(s.name)
		names.WriteByte(0)
	}
	shstrtabName := uint32(names.Len())
	names.WriteString(".shstrtab")
	names.WriteByte(0)

	offs := make([]uint64, len(sects))
	cur := uint64(ehsize)
	for i, s := range sects {
		offs[i] = cur
		cur += uint64(len(s.data))
	}
	strtabOff := cur
	shoff := strtabOff + uint64(names.Len())
	shnum := len(sects) + 2 // null + sects + .shstrtab

	var buf bytes.Buffer
	le := binary.LittleEndian
	w16 := func(v uint16) { binary.Write(&buf, le, v) }
	w32 := func(v uint32) { binary.Write(&buf, le, v) }
	w64 := func(v uint64) { binary.Write(&buf, le, v) }

	buf.Write([]byte{0x7f, 'E', 'L', 'F', 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	w16(uint16(elf.ET_EXEC))
	w16(uint16(machine))
	w32(1) // e_version
	w64(0) // e_entry
	w64(0) // e_phoff
	w64(shoff)
	w32(0) // e_flags
	w16(ehsize)
	w16(56) // e_phentsize
	w16(0)  // e_phnum
	w16(shentsize)
	w16(uint16(shnum))
	w16(uint16(shnum - 1)) // e_shstrndx

	for _, s := range sects {
		buf.Write(s.data)
	}
	buf.Write(names.Bytes())

	// null section header
	buf.Write(make([]byte, shentsize))
	for i, s := range sects {
		w32(nameOff[i])
		w32(uint32(elf.SHT_PROGBITS))
		w64(uint64(elf.SHF_ALLOC))
		w64(0) // addr
		w64(offs[i])
		w64(uint64(len(s.data)))
		w32(0) // link
		w32(0) // info
		w64(1) // addralign
		w64(0) // entsize
	}
	w32(shstrtabName)
	w32(uint32(elf.SHT_STRTAB))
	w64(0)
	w64(0)
	w64(strtabOff)
	w64(uint64(names.Len()))
	w32(0)
	w32(0)
	w64(1)
	w64(0)

	return buf.Bytes()
}
