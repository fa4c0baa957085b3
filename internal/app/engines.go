package app

import (
	"crypto/elliptic"
	"fmt"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/algorithm"
	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/primitives"
	"github.com/EakDev-hub/asymmetric-crypto/internal/infrastructure/cryptography"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/logger"
)

// Engines bundles the five per-family crypto engines the operation services
// dispatch to.
type Engines struct {
	RSA       primitives.RSAEngine
	ECDSA     primitives.ECDSAEngine
	Secp256k1 primitives.Secp256k1Engine
	Ed25519   primitives.Ed25519Engine
	X25519    primitives.X25519Engine
}

// NewEngines constructs the full engine set.
func NewEngines(log logger.Logger) (*Engines, error) {
	rsaEngine, err := cryptography.NewRSAEngine(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA engine: %w", err)
	}

	ecdsaEngine, err := cryptography.NewECDSAEngine(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ECDSA engine: %w", err)
	}

	secpEngine, err := cryptography.NewSecp256k1Engine(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create secp256k1 engine: %w", err)
	}

	edEngine, err := cryptography.NewEd25519Engine(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ed25519 engine: %w", err)
	}

	xEngine, err := cryptography.NewX25519Engine(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create X25519 engine: %w", err)
	}

	return &Engines{
		RSA:       rsaEngine,
		ECDSA:     ecdsaEngine,
		Secp256k1: secpEngine,
		Ed25519:   edEngine,
		X25519:    xEngine,
	}, nil
}

// nistCurve maps the three NIST identifiers to their stdlib curves.
func nistCurve(id algorithm.ID) elliptic.Curve {
	switch id {
	case algorithm.P256:
		return elliptic.P256()
	case algorithm.P384:
		return elliptic.P384()
	default:
		return elliptic.P521()
	}
}
