// SPDX-License-Identifier: EPL-2.0

package audtrim

import "errors"

var (
	ErrUnreadableFile = errors.New("unreadable audio file")
	ErrWriteFailed    = errors.New("writing audio file failed")
)
