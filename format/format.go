// Package format writes expression trees in the textual forms the CLI and
// the hosts offer.
package format

import (
	"encoding"
	"fmt"
	"io"
	"sort"

	"github.com/dhamidi/exped/expr"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(e expr.Expression) error
}

var encoders = map[string]func(io.Writer) Encoder{
	"dump":  func(w io.Writer) Encoder { return NewDumpEncoder(w) },
	"infix": func(w io.Writer) Encoder { return NewInfixEncoder(w) },
	"json":  func(w io.Writer) Encoder { return NewJSONEncoder(w) },
	"line":  func(w io.Writer) Encoder { return NewLineEncoder(w) },
}

// NewEncoder returns the encoder registered under name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	newEncoder, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (supported: %v)", name, Names())
	}
	return newEncoder(w), nil
}

// Names lists the supported format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
