// Package operations defines the request/response contract of the operation
// dispatcher (key generation, encrypt/decrypt, sign/verify, key exchange)
// and the operation history model. Result types echo the algorithm, hash
// and curve that were used so callers can display them without re-deriving.
package operations
