package inscription

import (
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
)

// InscriptionId derives the inscription identity from the first input of the deploy transaction
// and the index of the info cell.
func InscriptionId(firstInput ckb.CellInput, outputIndex uint64) ckb.Hash {
	return ckb.Blake256(ckb.SerializeCellInput(firstInput), lecodec.U64ToLe(outputIndex))
}
