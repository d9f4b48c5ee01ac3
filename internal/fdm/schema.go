package fdm

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/jacoelho/xsd"
)

//go:embed fdm.xsd
var schemaFS embed.FS

var loadSchema = sync.OnceValues(func() (*xsd.Schema, error) {
	return xsd.Load(schemaFS, "fdm.xsd")
})

// Validate checks data against the embedded FDM schema. The schema only
// constrains the reference-point records; everything else is accepted.
func Validate(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("fdm: load schema: %w", err)
	}
	if err := schema.Validate(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaInvalid, err)
	}
	return nil
}
