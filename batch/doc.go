// SPDX-License-Identifier: EPL-2.0

// Package batch trims every audio file under a directory.
//
// The output tree mirrors the input tree. Each file keeps its base name and
// gets a .wav extension, since WAV is the only format written. Files are
// processed in parallel but nothing is shared between them, so the output
// for a given input does not depend on scheduling.
//
// A file that cannot be read is either skipped or replaced by a short
// silent placeholder, depending on the Policy. Neither a bad input nor a
// failed write stops the batch.
package batch
