package gazetteer

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	_ "embed"

	"github.com/jonathan/newssense/internal/schemas"
)

//go:embed data.json
var defaultData []byte

//go:embed schema.json
var dataSchema []byte

var (
	defaultOnce sync.Once
	defaultGaz  *Gazetteer
)

// Default returns the Gazetteer built from the embedded reference data.
// The embedded data is validated at build time by tests, so a failure
// here is a programming error and panics.
func Default() *Gazetteer {
	defaultOnce.Do(func() {
		g, err := parse(defaultData)
		if err != nil {
			panic(fmt.Sprintf("embedded gazetteer data is invalid: %v", err))
		}
		defaultGaz = g
	})
	return defaultGaz
}

// LoadFile reads a gazetteer JSON file, validates it against the data
// schema, and builds a Gazetteer from it.
func LoadFile(path string) (*Gazetteer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Message: "failed to read gazetteer file " + path, Cause: err}
	}
	g, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func parse(raw []byte) (*Gazetteer, error) {
	if err := schemas.ValidateJSONString(string(dataSchema), string(raw)); err != nil {
		return nil, &Error{Message: "gazetteer data failed schema validation", Cause: err}
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &Error{Message: "failed to parse gazetteer JSON", Cause: err}
	}
	return New(data)
}
