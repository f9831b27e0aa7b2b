package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// blockSize is the number of keystream bytes generated per refill.
const blockSize = 64

// Source is a ChaCha20-backed random source. It satisfies
// [math/rand/v2.Source] and can be passed to rand.New or directly to
// Collection.ShuffleWith.
type Source struct {
	cipher *chacha20.Cipher
	buf    [blockSize]byte
	off    int
}

// NewSeeded returns a Source whose output is fully determined by seed.
// Two sources built from the same seed yield identical sequences.
func NewSeeded(seed []byte) (*Source, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	sum := blake2b.Sum512(seed)
	key := sum[:chacha20.KeySize]
	nonce := sum[chacha20.KeySize : chacha20.KeySize+chacha20.NonceSize]

	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("random: init cipher: %w", err)
	}
	return &Source{cipher: c, off: blockSize}, nil
}

// New returns a Source seeded from crypto/rand.
func New() (*Source, error) {
	seed := make([]byte, chacha20.KeySize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("random: read seed: %w", err)
	}
	return NewSeeded(seed)
}

// Uint64 returns the next 64 bits of keystream.
func (s *Source) Uint64() uint64 {
	if s.off+8 > blockSize {
		clear(s.buf[:])
		s.cipher.XORKeyStream(s.buf[:], s.buf[:])
		s.off = 0
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8
	return v
}
