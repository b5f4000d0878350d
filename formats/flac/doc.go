// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams with github.com/mewkiz/flac.
//
//	file, _ := os.Open("take.flac")
//	src, err := flac.Decoder{}.Decode(file)
//	defer src.Close()
//
// Every bit depth the format allows from 8 to 32 bits is scaled to float32
// in [-1, 1]. Frames are decoded lazily, one block at a time.
package flac
