// Package cryptography implements the per-family crypto engines behind the
// primitives interfaces: RSA (OAEP encryption and PKCS#1 v1.5 signatures),
// ECDSA over the NIST prime curves with ECDH, secp256k1 via the decred
// implementation, Ed25519 and X25519.
package cryptography
