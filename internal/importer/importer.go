// Package importer places the reference points of an FDM file into a
// scene as named markers, grouped per section under one session group.
package importer

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/eytandecker/fdmscene/internal/fdm"
	"github.com/eytandecker/fdmscene/internal/naming"
	"github.com/eytandecker/fdmscene/pkg/types"
)

// Importer runs imports into one host.
type Importer struct {
	host     Host
	log      *slog.Logger
	maxProbe int
}

// New creates an Importer writing into host. A nil logger uses
// slog.Default().
func New(host Host, log *slog.Logger) *Importer {
	if log == nil {
		log = slog.Default()
	}
	return &Importer{host: host, log: log, maxProbe: naming.DefaultMaxProbe}
}

// Import reads the FDM file at name from fsys and places its markers.
// Sections run in a fixed order; a fatal error stops the import and
// leaves whatever was already placed. Every returned error is a
// *types.ImportError.
func (im *Importer) Import(fsys fs.FS, name string, s Settings) (*types.ImportSummary, error) {
	start := time.Now()

	if err := s.Validate(); err != nil {
		return nil, importErr(name, "", err)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, importErr(name, "", err)
	}
	if s.ValidateSchema {
		if err := fdm.Validate(data); err != nil {
			return nil, importErr(name, "", err)
		}
	}
	doc, err := fdm.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, importErr(name, "", err)
	}

	sys := im.host.Units()
	if err := sys.Validate(); err != nil {
		return nil, importErr(name, "", err)
	}

	sess, err := NewSession(im.host, BaseName(name), sys, s, im.maxProbe)
	if err != nil {
		return nil, importErr(name, "", err)
	}

	sum := &types.ImportSummary{
		Path:      name,
		SessionID: sess.ID,
		RootGroup: sess.Root.Name,
	}
	for _, sec := range sections {
		if !sec.enabled(s) {
			continue
		}
		g := sess.Group(sec.category)
		el := doc.Section(sec.tag)
		if el == nil {
			w := types.Warning{Section: sec.tag, Message: fmt.Sprintf("missing tag [%s]", sec.tag)}
			sum.Warnings = append(sum.Warnings, w)
			im.log.Warn("missing section", "file", name, "section", sec.tag)
			continue
		}

		reqs, err := sec.parse(el, s, sys)
		if err != nil {
			return nil, importErr(name, sec.tag, err)
		}
		if err := sess.Place(g, reqs); err != nil {
			return nil, importErr(name, sec.tag, err)
		}
	}

	sum.Groups = sess.groups
	sum.Markers = sess.markers
	sum.Elapsed = time.Since(start)
	sum.ElapsedMS = float64(sum.Elapsed.Microseconds()) / 1000
	im.log.Info("imported FDM",
		"file", name,
		"session", sess.ID,
		"elapsed_ms", sum.ElapsedMS,
		"groups", sum.Groups,
		"markers", sum.Markers,
	)
	return sum, nil
}

// BaseName is the file name up to its ".xml" extension.
func BaseName(name string) string {
	base, _, _ := strings.Cut(path.Base(name), ".xml")
	return base
}
