package bintext

import (
	"crypto/sha256"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

type Hash uint8

const (
	SHA_256 Hash = 1 + iota
	SHA3_256
	SHA3_512
	BLAKE2b_256
	BLAKE2b_512
	BLAKE2s_256
)

var HashNames = map[Hash]string{
	SHA_256:     "SHA-256",
	SHA3_256:    "SHA3-256",
	SHA3_512:    "SHA3-512",
	BLAKE2b_256: "BLAKE2b-256",
	BLAKE2b_512: "BLAKE2b-512",
	BLAKE2s_256: "BLAKE2s-256",
}

var hashes = [...]Hash{
	SHA_256,
	SHA3_256,
	SHA3_512,
	BLAKE2b_256,
	BLAKE2b_512,
	BLAKE2s_256,
}

var HashString = getOptionString(hashes[:], HashNames)

// ParseHash matches names case-insensitively, so "sha3-256" selects SHA3_256.
func ParseHash(s string) (Hash, error) {
	for _, h := range hashes {
		if strings.EqualFold(HashNames[h], s) {
			return h, nil
		}
	}
	return 0, ErrHash
}

func getHash(h Hash) (hash.Hash, error) {
	switch h {
	case SHA_256:
		return sha256.New(), nil
	case SHA3_256:
		return sha3.New256(), nil
	case SHA3_512:
		return sha3.New512(), nil
	case BLAKE2b_256:
		return blake2b.New256(nil)
	case BLAKE2b_512:
		return blake2b.New512(nil)
	case BLAKE2s_256:
		return blake2s.New256(nil)
	}
	return nil, ErrHash
}

func newDigest(h Hash) (hash.Hash, error) {
	if h == 0 {
		return nil, nil
	}
	return getHash(h)
}
