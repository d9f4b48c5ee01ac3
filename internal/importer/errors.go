package importer

import (
	"errors"

	"github.com/eytandecker/fdmscene/internal/fdm"
	"github.com/eytandecker/fdmscene/pkg/types"
)

var ErrInvalidPlotScale = errors.New("importer: plot scale must be positive")

func importErr(path, section string, err error) *types.ImportError {
	ie := &types.ImportError{Path: path, Section: section, Err: err}
	var elErr *fdm.ElementError
	if errors.As(err, &elErr) {
		ie.Element = elErr.Element
		ie.Line = elErr.Line
	}
	return ie
}
