package algorithm

import (
	"crypto"
	"fmt"
)

// ID identifies one of the nine supported algorithm configurations.
type ID string

// Supported algorithm identifiers.
const (
	RSA2048   ID = "RSA-2048"
	RSA3072   ID = "RSA-3072"
	RSA4096   ID = "RSA-4096"
	P256      ID = "P-256"
	P384      ID = "P-384"
	P521      ID = "P-521"
	Secp256k1 ID = "secp256k1"
	Ed25519   ID = "Ed25519"
	X25519    ID = "X25519"
)

// Capability is one of the five operations an algorithm may support.
type Capability string

// Supported capabilities.
const (
	CapEncrypt     Capability = "encrypt"
	CapDecrypt     Capability = "decrypt"
	CapSign        Capability = "sign"
	CapVerify      Capability = "verify"
	CapKeyExchange Capability = "key-exchange"
)

// Metadata describes the display attributes of an algorithm configuration.
// CurveName is set only for the four selectable elliptic curves; RSA has no
// curve and Ed25519/X25519 use fixed Curve25519 semantics that are not
// exposed as a selectable curve.
type Metadata struct {
	KeySizeBits       int
	CurveName         string
	ApproxSecurityBits int
}

// spec bundles everything the dispatcher derives from an algorithm
// identifier: its capability set, display metadata and the fixed hash used
// for signing. Ed25519 hashes internally and X25519 never signs, so their
// Hash is zero.
type spec struct {
	capabilities []Capability
	metadata     Metadata
	hash         crypto.Hash
}

// table is the single source of truth for algorithm behavior. Every dispatch
// decision is a lookup here; no call site branches on identifier prefixes.
var table = map[ID]spec{
	RSA2048: {
		capabilities: []Capability{CapEncrypt, CapDecrypt, CapSign, CapVerify},
		metadata:     Metadata{KeySizeBits: 2048, ApproxSecurityBits: 112},
		hash:         crypto.SHA256,
	},
	RSA3072: {
		capabilities: []Capability{CapEncrypt, CapDecrypt, CapSign, CapVerify},
		metadata:     Metadata{KeySizeBits: 3072, ApproxSecurityBits: 128},
		hash:         crypto.SHA256,
	},
	RSA4096: {
		capabilities: []Capability{CapEncrypt, CapDecrypt, CapSign, CapVerify},
		metadata:     Metadata{KeySizeBits: 4096, ApproxSecurityBits: 152},
		hash:         crypto.SHA256,
	},
	P256: {
		capabilities: []Capability{CapSign, CapVerify, CapKeyExchange},
		metadata:     Metadata{KeySizeBits: 256, CurveName: "P-256", ApproxSecurityBits: 128},
		hash:         crypto.SHA256,
	},
	P384: {
		capabilities: []Capability{CapSign, CapVerify, CapKeyExchange},
		metadata:     Metadata{KeySizeBits: 384, CurveName: "P-384", ApproxSecurityBits: 192},
		hash:         crypto.SHA384,
	},
	P521: {
		capabilities: []Capability{CapSign, CapVerify, CapKeyExchange},
		metadata:     Metadata{KeySizeBits: 521, CurveName: "P-521", ApproxSecurityBits: 256},
		hash:         crypto.SHA512,
	},
	Secp256k1: {
		capabilities: []Capability{CapSign, CapVerify, CapKeyExchange},
		metadata:     Metadata{KeySizeBits: 256, CurveName: "secp256k1", ApproxSecurityBits: 128},
		hash:         crypto.SHA256,
	},
	Ed25519: {
		capabilities: []Capability{CapSign, CapVerify},
		metadata:     Metadata{KeySizeBits: 256, ApproxSecurityBits: 128},
	},
	X25519: {
		capabilities: []Capability{CapKeyExchange},
		metadata:     Metadata{KeySizeBits: 256, ApproxSecurityBits: 128},
	},
}

// All returns the nine supported identifiers in a stable display order.
func All() []ID {
	return []ID{RSA2048, RSA3072, RSA4096, P256, P384, P521, Secp256k1, Ed25519, X25519}
}

// Parse validates a caller-supplied algorithm name.
func Parse(name string) (ID, error) {
	id := ID(name)
	if _, ok := table[id]; !ok {
		return "", NewUnsupportedAlgorithm(name)
	}
	return id, nil
}

// Capabilities returns the fixed capability set of an algorithm. The returned
// slice is a copy; callers may mutate it freely.
func Capabilities(id ID) []Capability {
	caps := table[id].capabilities
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// Supports reports whether the algorithm supports the given operation.
func Supports(id ID, op Capability) bool {
	for _, c := range table[id].capabilities {
		if c == op {
			return true
		}
	}
	return false
}

// MetadataOf returns the display metadata of an algorithm.
func MetadataOf(id ID) Metadata {
	return table[id].metadata
}

// HashOf returns the fixed signing hash paired with an algorithm. The pairing
// is not caller-selectable: RSA, P-256 and secp256k1 use SHA-256, P-384 uses
// SHA-384, P-521 uses SHA-512. Ed25519 hashes internally and reports
// ok=false, as does X25519 which cannot sign.
func HashOf(id ID) (crypto.Hash, bool) {
	h := table[id].hash
	return h, h != 0
}

// HashName returns the display name of an algorithm's signing hash, or
// "intrinsic" for Ed25519.
func HashName(id ID) string {
	if id == Ed25519 {
		return "intrinsic"
	}
	h, ok := HashOf(id)
	if !ok {
		return ""
	}
	switch h {
	case crypto.SHA256:
		return "SHA-256"
	case crypto.SHA384:
		return "SHA-384"
	case crypto.SHA512:
		return "SHA-512"
	default:
		return fmt.Sprintf("hash(%d)", h)
	}
}

// IsRSA reports whether the identifier is one of the RSA modulus sizes.
func (id ID) IsRSA() bool {
	return id == RSA2048 || id == RSA3072 || id == RSA4096
}

// IsNISTCurve reports whether the identifier is one of the three NIST
// prime curves.
func (id ID) IsNISTCurve() bool {
	return id == P256 || id == P384 || id == P521
}
