package l2

import (
	"errors"

	"github.com/ethereum/go-ethereum/params"
)

// ErrOutOfGas is returned when a frame exhausts its gas budget.
var ErrOutOfGas = errors.New("out of gas")

// Gas schedule of the runtime. Reads are not metered.
const (
	GasStorageSet   = params.SstoreSetGasEIP2200
	GasStorageReset = params.SstoreResetGasEIP2200
	GasCreate       = params.CreateGas
	GasLog          = params.LogGas
	GasCall         = params.CallGasEIP150
)

// GasMeter tracks the gas left in a single call frame.
type GasMeter struct {
	limit uint64
	used  uint64
}

// NewGasMeter returns a meter with the given limit.
func NewGasMeter(limit uint64) *GasMeter {
	return &GasMeter{limit: limit}
}

// Consume charges n gas. On exhaustion the whole budget is considered spent.
func (g *GasMeter) Consume(n uint64) error {
	if g.limit-g.used < n {
		g.used = g.limit
		return ErrOutOfGas
	}
	g.used += n
	return nil
}

// Left returns the remaining gas.
func (g *GasMeter) Left() uint64 {
	return g.limit - g.used
}

// Used returns the gas consumed so far.
func (g *GasMeter) Used() uint64 {
	return g.used
}

// Limit returns the budget the meter was created with.
func (g *GasMeter) Limit() uint64 {
	return g.limit
}

// callGasCap applies the all-but-one-64th rule to the gas available to the caller.
func callGasCap(available, requested uint64) uint64 {
	capped := available - available/64
	if requested < capped {
		return requested
	}
	return capped
}
