package loader

import (
	"bytes"
	"debug/macho"
	"encoding/binary"
)

type rawSection struct {
	name string
	data []byte
}

// machoImage builds a minimal 64-bit little-endian Mach-O with a single
// __TEXT segment holding the given sections.
func machoImage(cpu macho.Cpu, sects []rawSection) []byte {
	const (
		hdrSize  = 32
		segSize  = 72
		sectSize = 80
	)
	cmdSize := segSize + sectSize*len(sects)
	dataOff := hdrSize + cmdSize
	total := dataOff
	for _, s := range sects {
		total += len(s.data)
	}

	var buf bytes.Buffer
	le := binary.LittleEndian
	w32 := func(v uint32) { binary.Write(&buf, le, v) }
	w64 := func(v uint64) { binary.Write(&buf, le, v) }
	name16 := func(s string) {
		var b [16]byte
		copy(b[:], s)
		buf.Write(b[:])
	}

	// mach_header_64
	w32(0xfeedfacf)
	w32(uint32(cpu))
	w32(0) // cpusubtype
	w32(uint32(macho.TypeExec))
	w32(1) // ncmds
	w32(uint32(cmdSize))
	w32(0) // flags
	w32(0) // reserved

	// LC_SEGMENT_64
	w32(uint32(macho.LoadCmdSegment64))
	w32(uint32(cmdSize))
	name16("__TEXT")
	w64(0)             // vmaddr
	w64(uint64(total)) // vmsize
	w64(0)             // fileoff
	w64(uint64(total)) // filesize
	w32(7)             // maxprot
	w32(5)             // initprot
	w32(uint32(len(sects)))
	w32(0) // flags

	off := uint32(dataOff)
	for _, s := range sects {
		name16(s.name)
		name16("__TEXT")
		w64(0)                   // addr
		w64(uint64(len(s.data))) // size
		w32(off)                 // offset
		w32(0)                   // align
		w32(0)                   // reloff
		w32(0)                   // nreloc
		w32(0)                   // flags
		w32(0)                   // reserved1
		w32(0)                   // reserved2
		w32(0)                   // reserved3
		off += uint32(len(s.data))
	}
	for _, s := range sects {
		buf.Write(s.data)
	}
	return buf.Bytes()
}

// fatImage wraps the given flat Mach-O images in a fat container. Images
// must not repeat a cputype; debug/macho rejects such containers.
func fatImage(images ...[]byte) []byte {
	var buf bytes.Buffer
	be := binary.BigEndian
	w32 := func(v uint32) { binary.Write(&buf, be, v) }

	w32(0xcafebabe)
	w32(uint32(len(images)))
	off := uint32(8 + 20*len(images))
	for _, img := range images {
		cpu := binary.LittleEndian.Uint32(img[4:8])
		w32(cpu)              // cputype
		w32(0)                // cpusubtype
		w32(off)              // offset
		w32(uint32(len(img))) // size
		w32(2)                // align
		off += uint32(len(img))
	}
	for _, img := range images {
		buf.Write(img)
	}
	return buf.Bytes()
}
