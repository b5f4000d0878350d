// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not an AIFF or AIFF-C file.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth is returned for sample sizes other than 16 or 24 bits.
	ErrUnsupportedBitDepth = errors.New("only 16 and 24-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout indicates the COMM chunk could not be used.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
