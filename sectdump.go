package sectdump

import (
	"github.com/lunixbochs/sectdump/loader"
	"github.com/lunixbochs/sectdump/logflags"
	"github.com/lunixbochs/sectdump/models"
	"github.com/lunixbochs/sectdump/sections"
)

// Run resolves the reflection sections of the binary named by cfg and hands
// the assembled bundle to sink. The loaded binary's buffer stays live until
// sink returns; every range in the bundle borrows from it.
//
// One call processes one binary end to end. Any failure is terminal; there
// is no retry and no partial bundle.
func Run(cfg models.Config, sink models.Sink) error {
	logflags.Setup(cfg.Verbose)
	bin, err := loader.LoadFile(cfg.Binary)
	if err != nil {
		return err
	}
	obj, err := bin.Object(cfg.Arch)
	if err != nil {
		return err
	}
	bundle, err := sections.Assemble(obj, cfg.Binary)
	if err != nil {
		return err
	}
	return sink.Consume(bundle)
}
