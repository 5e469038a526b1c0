// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedBitDepth  = errors.New("only PCM 16-bit and 32-bit supported")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	ErrInconsistentHeader   = errors.New("inconsistent WAV header")
)
