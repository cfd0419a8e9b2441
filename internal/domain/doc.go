// Package domain contains the core domain model for Astra.
//
// The domain is parsing- and persistence-agnostic: it does not depend on YAML
// parsing, the filesystem, or the terminal. Infra/adapters map into/from these
// types.
package domain
