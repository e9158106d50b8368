package parse

import (
	"fmt"

	"github.com/signadot/gedcom-xml/ir"
)

var (
	ErrNoRoot            = fmt.Errorf("%w: level sequence does not start at 0", ir.ErrMalformedRecord)
	ErrNoParent          = fmt.Errorf("%w: no enclosing record", ir.ErrMalformedRecord)
	ErrLevelJump         = fmt.Errorf("%w: level skipped", ir.ErrMalformedRecord)
	ErrUntypedIdentifier = fmt.Errorf("%w: identifier without record type", ir.ErrMalformedRecord)
)
