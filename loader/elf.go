package loader

import (
	"bytes"
	"debug/elf"

	"github.com/pkg/errors"

	"github.com/lunixbochs/sectdump/models"
)

var elfMagic = []byte{0x7f, 0x45, 0x4c, 0x46}

var elfMachineMap = map[elf.Machine]string{
	elf.EM_386:     "i386",
	elf.EM_X86_64:  "x86_64",
	elf.EM_ARM:     "armv7",
	elf.EM_AARCH64: "arm64",
	elf.EM_PPC:     "ppc",
	elf.EM_PPC64:   "ppc64",
}

func MatchElf(p []byte) bool {
	return bytes.Equal(getMagic(p), elfMagic)
}

// ElfObject is a flat ELF file. ELF has no universal container, so it is
// always both the Binary and the Object.
type ElfObject struct {
	file *elf.File
	arch string
	raw  []byte
}

func NewElfObject(raw []byte) (*ElfObject, error) {
	file, err := elf.NewFile(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open ELF file")
	}
	arch, ok := elfMachineMap[file.Machine]
	if !ok {
		return nil, errors.Errorf("Unsupported machine: %s", file.Machine)
	}
	return &ElfObject{file: file, arch: arch, raw: raw}, nil
}

func (e *ElfObject) Arch() string {
	return e.arch
}

func (e *ElfObject) Object(arch string) (models.Object, error) {
	return e, nil
}

func (e *ElfObject) Sections() []models.SectionInfo {
	ret := make([]models.SectionInfo, 0, len(e.file.Sections))
	for _, s := range e.file.Sections {
		if s.Type == elf.SHT_NULL || s.Type == elf.SHT_NOBITS {
			continue
		}
		start := s.Offset
		end := start + s.FileSize
		if end > uint64(len(e.raw)) {
			continue
		}
		ret = append(ret, models.SectionInfo{
			Name:  s.Name,
			Range: models.NewByteRange(start, end, e.raw[start:end]),
		})
	}
	return ret
}
