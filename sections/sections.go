package sections

import (
	"github.com/pkg/errors"

	"github.com/lunixbochs/sectdump/logflags"
	"github.com/lunixbochs/sectdump/models"
)

// Find scans the object's section table in declaration order and returns the
// range of the first section whose name exactly matches any alias. Matching
// is case-sensitive with no prefix or substring matching, so sections with
// merely similar names are never picked up. The zero ByteRange means no
// section matched.
func Find(obj models.Object, aliases []string) models.ByteRange {
	for _, s := range obj.Sections() {
		for _, name := range aliases {
			if s.Name == name {
				return s.Range
			}
		}
	}
	return models.ByteRange{}
}

// Assemble resolves every category against obj and returns the immutable
// bundle. The first missing required category aborts with
// MissingSectionError; absent optional categories are recorded as the
// sentinel and never fail.
func Assemble(obj models.Object, binary string) (*models.Bundle, error) {
	log := logflags.SectionsLogger()
	ranges := make(map[models.Category]models.ByteRange)
	for _, cat := range models.Categories() {
		r := Find(obj, cat.Aliases())
		if r.Absent() {
			if cat.Required() {
				return nil, errors.WithStack(&models.MissingSectionError{
					Binary:   binary,
					Category: cat,
				})
			}
			log.Debugf("%s section absent", cat)
			ranges[cat] = r
			continue
		}
		log.Debugf("resolved %s section [0x%x-0x%x] (%d bytes)", cat, r.Start, r.End, r.Len())
		ranges[cat] = r
	}
	return models.NewBundle(binary, ranges), nil
}
