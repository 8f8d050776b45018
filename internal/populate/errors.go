package populate

import (
	"fmt"
)

// ShapeError reports a runtime value that does not fit its schema node.
type ShapeError struct {
	Path string
	Want string
	Got  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("cannot place %s into %s at %s", e.Got, e.Want, e.Path)
}
