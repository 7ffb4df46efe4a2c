package sampling

import (
	"bytes"
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// KeySize is the size in bytes of the keys returned by DeriveKey.
const KeySize = 32

// DeriveKey hashes a seed, a label and an index into a key for NewKeyedPRNG.
// Distinct (label, index) pairs yield independent streams from the same seed.
func DeriveKey(seed []byte, label string, index int) []byte {
	hasher := blake3.New()
	buf := new(bytes.Buffer)

	binary.Write(buf, binary.BigEndian, int64(len(seed)))
	buf.Write(seed)
	buf.WriteString(label)
	binary.Write(buf, binary.BigEndian, int64(index))

	hasher.Write(buf.Bytes())
	digest := hasher.Sum(nil)
	return digest[:KeySize]
}
