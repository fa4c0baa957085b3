// Package primitives defines the interfaces of the per-family crypto
// engines: key generation, encryption, signatures, key agreement and PEM
// key codecs. Implementations live in internal/infrastructure/cryptography.
package primitives
