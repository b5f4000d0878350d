// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

var (
	ErrInvalidPolicy   = errors.New("invalid unreadable-file policy")
	ErrInvalidOptions  = errors.New("invalid batch options")
	ErrOutputCollision = errors.New("another input already maps to this output")
)
