package port

import "context"

// IDGenerator produces candidate identifiers. It has no knowledge of the
// identifiers already in use. A zero value means no candidate could be
// produced.
type IDGenerator[ID comparable] interface {
	Generate() ID
}

type IDGeneratorFunc[ID comparable] func() ID

// Generate implements IDGenerator.
func (fn IDGeneratorFunc[ID]) Generate() ID {
	return fn()
}

// ExistenceOracle tells whether an identifier is already used by a
// persisted record.
type ExistenceOracle[ID comparable] interface {
	Exists(ctx context.Context, id ID) (bool, error)
}

type ExistenceOracleFunc[ID comparable] func(ctx context.Context, id ID) (bool, error)

// Exists implements ExistenceOracle.
func (fn ExistenceOracleFunc[ID]) Exists(ctx context.Context, id ID) (bool, error) {
	return fn(ctx, id)
}
