// Package persistence implements the GORM/sqlite backed operation history
// repository. Only operation outcomes are stored; key material, messages
// and derived secrets never reach this layer.
package persistence
