package inscription

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
)

// Contracts holds the per-network script templates (args left empty) and the cell deps that
// carry their code.
type Contracts struct {
	InfoType        ckb.Script
	InscriptionType ckb.Script
	RebaseType      ckb.Script
	XudtType        ckb.Script
	CotaType        ckb.Script

	InfoDep        ckb.CellDep
	InscriptionDep ckb.CellDep
	RebaseDep      ckb.CellDep
	XudtDep        ckb.CellDep

	// LockDeps maps a supported lock code hash to the dep that unlocks it.
	LockDeps map[ckb.Hash]ckb.CellDep
}

// LockDep returns the cell dep of the given lock.
func (c Contracts) LockDep(lock ckb.Script) (ckb.CellDep, error) {
	dep, ok := c.LockDeps[lock.CodeHash]
	if !ok {
		return ckb.CellDep{}, errors.Wrapf(errs.Unsupported, "lock with code hash %s is not supported", lock.CodeHash)
	}
	return dep, nil
}
