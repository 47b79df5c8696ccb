// Package domain contains the core model for mathmod: the jug volume estimator,
// the Fraction type and the Sudoku grid accessor.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// JSON documents, or the filesystem. Infra/adapters map into/from these types.
// Every computation here is a pure function of its inputs.
package domain
