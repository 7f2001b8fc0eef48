package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("parse error")
	ErrTooDeep     = fmt.Errorf("%w: nesting too deep", ErrParse)
	ErrUnsupported = fmt.Errorf("%w: unsupported node", ErrParse)
	ErrAlias       = fmt.Errorf("%w: unknown alias", ErrParse)
	ErrNoDoc       = fmt.Errorf("%w: no such document", ErrParse)
)
