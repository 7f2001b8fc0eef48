package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/yabe/encode"
	"github.com/signadot/yabe/ir"
)

type Y struct{ *ir.Node }

func (y Y) String() string {
	x := y.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf, encode.EncodeFlow(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return string(bytes.TrimSpace(buf.Bytes()))
}

// Logf writes a debug message to stderr. *ir.Node arguments are rendered
// as single line documents; nil nodes as "<none>".
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			if x == nil {
				args[i] = "<none>"
				continue
			}
			args[i] = Y{x}.String()
		case []*ir.Node:
			parts := make([]string, len(x))
			for j, n := range x {
				if n == nil {
					parts[j] = "<none>"
					continue
				}
				parts[j] = Y{n}.String()
			}
			args[i] = parts
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
