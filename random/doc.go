// Package random provides deterministic [math/rand/v2.Source]
// implementations for [github.com/hasbyte1/go-array-collection/collections]
// shuffling.
//
// A [Source] turns an arbitrary seed into a ChaCha20 keystream. The seed is
// hashed with BLAKE2b to derive the key and nonce, so any byte string works:
//
//	src, err := random.NewSeeded([]byte("fixture-42"))
//	if err != nil {
//	    return err
//	}
//	c := collections.New(1, 2, 3, 4, 5)
//	c.ShuffleWith(src) // same order on every run
//
// [New] seeds from crypto/rand for callers that want an explicit,
// unpredictable source instead of the process-wide generator.
//
// Sources are not safe for concurrent use.
package random
