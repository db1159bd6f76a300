package domain

import "bytes"

// WouldChange reports whether writing canonical over original would alter the
// file. The comparison is byte-exact: no Unicode normalization and no
// whitespace leniency.
func WouldChange(original, canonical []byte) bool {
	return !bytes.Equal(original, canonical)
}
