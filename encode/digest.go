package encode

import (
	"encoding/hex"

	"github.com/signadot/nbt-format/go-nbt/tag"
	"github.com/zeebo/blake3"
)

// Digest returns the BLAKE3 hash of the encoding of t.  Equal trees encoded
// with the same options have equal digests.
func Digest(t *tag.Tag, opts ...EncodeOption) ([32]byte, error) {
	var res [32]byte
	h := blake3.New()
	if err := Encode(t, h, opts...); err != nil {
		return res, err
	}
	copy(res[:], h.Sum(nil))
	return res, nil
}

// DigestString is Digest in hexadecimal.
func DigestString(t *tag.Tag, opts ...EncodeOption) (string, error) {
	d, err := Digest(t, opts...)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(d[:]), nil
}
