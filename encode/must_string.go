package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/delta"
)

func MustString(d delta.Delta, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	opts = append([]EncodeOption{EncodeWire(true)}, opts...)
	if err := Encode(d, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
