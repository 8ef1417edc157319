package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// mustCopy maps a read view onto a response DTO by field name.
// A failure means the two shapes drifted apart, so it panics and is caught by the recovery middleware.
func mustCopy[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		panic(fmt.Sprintf("response: copy %T into %T: %v", src, dst, err))
	}
	return &dst
}
