package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/algorithm"
)

// AlgorithmValidation validates that a field names one of the nine
// supported algorithm configurations.
func AlgorithmValidation(fl validator.FieldLevel) bool {
	_, err := algorithm.Parse(fl.Field().String())
	return err == nil
}
