package ckb

import (
	"hash"

	"github.com/minio/blake2b-simd"
)

// personalization of the chain's default blake2b hasher
var hashPersonalization = []byte("ckb-default-hash")

// NewHasher returns a blake2b-256 hasher with the chain personalization.
func NewHasher() hash.Hash {
	h, err := blake2b.New(&blake2b.Config{Size: HashLength, Person: hashPersonalization})
	if err != nil {
		// only fails on an invalid config
		panic(err)
	}
	return h
}

// Blake256 hashes the concatenation of data.
func Blake256(data ...[]byte) Hash {
	h := NewHasher()
	for _, d := range data {
		_, _ = h.Write(d)
	}
	return BytesToHash(h.Sum(nil))
}

// Blake160 is the first 20 bytes of Blake256, used for public key hashes.
func Blake160(data []byte) []byte {
	h := Blake256(data)
	return h[:20]
}
