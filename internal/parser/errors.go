package parser

import (
	"errors"
	"fmt"
)

// ErrFileNotFound reports a caller contract violation: the document was
// expected to already sit under the storage root before Parse was invoked.
var ErrFileNotFound = errors.New("file not found")

// ErrDocUnsupported carries the distinct reviewer-facing message for the
// legacy .doc container, which no backend handles.
var ErrDocUnsupported = errors.New("暂不支持doc格式解析")

// UnsupportedTypeError rejects every other extension outside the allow-list.
type UnsupportedTypeError struct {
	Ext string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("不支持的文件类型: .%s", e.Ext)
}

// IsUnsupported reports whether err is either unsupported failure mode.
func IsUnsupported(err error) bool {
	var ute *UnsupportedTypeError
	return errors.Is(err, ErrDocUnsupported) || errors.As(err, &ute)
}
