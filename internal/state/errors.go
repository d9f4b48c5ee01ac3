package state

import "errors"

// ErrNotXML is returned when an import path does not name an .xml file.
var ErrNotXML = errors.New("state: please select a valid XML file")
