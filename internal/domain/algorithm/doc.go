// Package algorithm defines the closed set of supported algorithm
// configurations, the static capability table mapping each configuration to
// its legal operations and display metadata, and the error taxonomy shared
// by the operation services and crypto engines.
package algorithm
