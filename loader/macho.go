package loader

import (
	"bytes"
	"debug/macho"

	"github.com/pkg/errors"

	"github.com/lunixbochs/sectdump/logflags"
	"github.com/lunixbochs/sectdump/models"
)

// Arch names follow the llvm convention, matching what callers pass for the
// -arch of a universal binary.
var machoCpuMap = map[macho.Cpu]string{
	macho.Cpu386:   "i386",
	macho.CpuAmd64: "x86_64",
	macho.CpuArm:   "armv7",
	macho.CpuArm64: "arm64",
	macho.CpuPpc:   "ppc",
	macho.CpuPpc64: "ppc64",
}

var fatMagic = []byte{0xca, 0xfe, 0xba, 0xbe}

var machoMagics = [][]byte{
	{0xfe, 0xed, 0xfa, 0xce},
	{0xfe, 0xed, 0xfa, 0xcf},
	{0xce, 0xfa, 0xed, 0xfe},
	{0xcf, 0xfa, 0xed, 0xfe},
}

func MatchFat(p []byte) bool {
	return bytes.Equal(getMagic(p), fatMagic)
}

func MatchMachO(p []byte) bool {
	magic := getMagic(p)
	for _, check := range machoMagics {
		if bytes.Equal(magic, check) {
			return true
		}
	}
	return false
}

// MachOObject is a flat Mach-O file, or one slice of a fat binary. raw is
// the object's bytes (for a slice, a subslice of the container's buffer);
// section ranges point into it.
type MachOObject struct {
	file *macho.File
	arch string
	raw  []byte
}

func NewMachOObject(raw []byte) (*MachOObject, error) {
	file, err := macho.NewFile(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open MachO file")
	}
	arch, ok := machoCpuMap[file.Cpu]
	if !ok {
		return nil, errors.Errorf("Unsupported CPU: %s", file.Cpu)
	}
	return &MachOObject{file: file, arch: arch, raw: raw}, nil
}

func (m *MachOObject) Arch() string {
	return m.arch
}

// Object implements models.Binary. A flat file is its own single slice, so
// the requested arch is not checked.
func (m *MachOObject) Object(arch string) (models.Object, error) {
	return m, nil
}

func (m *MachOObject) Sections() []models.SectionInfo {
	ret := make([]models.SectionInfo, 0, len(m.file.Sections))
	for _, s := range m.file.Sections {
		start := uint64(s.Offset)
		end := start + s.Size
		if s.Offset == 0 || end > uint64(len(m.raw)) {
			// zerofill sections have no file contents
			continue
		}
		ret = append(ret, models.SectionInfo{
			Name:  s.Name,
			Range: models.NewByteRange(start, end, m.raw[start:end]),
		})
	}
	return ret
}

// FatBinary is a universal binary holding one object per architecture.
type FatBinary struct {
	file *macho.FatFile
	raw  []byte
}

func NewFatBinary(raw []byte) (*FatBinary, error) {
	file, err := macho.NewFatFile(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open fat MachO file")
	}
	return &FatBinary{file: file, raw: raw}, nil
}

// Object selects the slice whose declared architecture matches arch exactly.
// There is no fallback. The first matching slice wins; debug/macho rejects
// containers that repeat a cputype, so in practice each name occurs once.
func (f *FatBinary) Object(arch string) (models.Object, error) {
	for _, a := range f.file.Arches {
		name, ok := machoCpuMap[a.Cpu]
		if !ok || name != arch {
			continue
		}
		end := uint64(a.Offset) + uint64(a.Size)
		if end > uint64(len(f.raw)) {
			return nil, errors.Errorf("fat arch %s extends past end of file", name)
		}
		logflags.LoaderLogger().Debugf("selected %s slice at 0x%x (%d bytes)", name, a.Offset, a.Size)
		return &MachOObject{file: a.File, arch: name, raw: f.raw[a.Offset:end]}, nil
	}
	return nil, errors.WithStack(&models.ArchNotFoundError{Arch: arch})
}
