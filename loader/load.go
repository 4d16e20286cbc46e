package loader

import (
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/lunixbochs/sectdump/logflags"
	"github.com/lunixbochs/sectdump/models"
)

var UnknownMagic = errors.New("Could not identify file magic.")

// LoadFile reads path fully into memory and classifies it. The returned
// Binary owns the buffer; every Object and ByteRange derived from it borrows
// that buffer and must not outlive it.
func LoadFile(path string) (models.Binary, error) {
	p, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, &models.LoadError{Path: path, Err: err}
	}
	bin, err := Load(p)
	if err != nil {
		return nil, &models.LoadError{Path: path, Err: err}
	}
	logflags.LoaderLogger().Debugf("loaded %s (%d bytes)", path, len(p))
	return bin, nil
}

// Load classifies p by magic. The fat magic is checked before the flat
// Mach-O magics; it is a distinct prefix and never a valid flat header.
func Load(p []byte) (models.Binary, error) {
	if MatchFat(p) {
		return NewFatBinary(p)
	} else if MatchMachO(p) {
		return NewMachOObject(p)
	} else if MatchElf(p) {
		return NewElfObject(p)
	}
	return nil, errors.WithStack(UnknownMagic)
}
