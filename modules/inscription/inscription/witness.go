package inscription

import (
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/uint128"
)

// xUDT input witness envelope: a table header of one total size and three offsets (owner
// script, then two empty vectors sharing the same offset) followed by the owner script and an
// empty dynvec.
const (
	xudtWitnessHeaderSize = 20
	emptyDynVecSize       = 4
)

var emptyDynVec = lecodec.U32ToLe(emptyDynVecSize)

// EmptyWitnessArgs is the serialized WitnessArgs with all three fields absent.
func EmptyWitnessArgs() []byte {
	return ckb.WitnessArgs{}.Serialize()
}

func xudtOwnerWitness(owner ckb.Script) []byte {
	ownerBytes := ckb.SerializeScript(owner)
	offset := uint32(xudtWitnessHeaderSize + len(ownerBytes))
	total := offset + emptyDynVecSize

	outputType := make([]byte, 0, total)
	outputType = append(outputType, lecodec.U32ToLe(total)...)
	outputType = append(outputType, lecodec.U32ToLe(xudtWitnessHeaderSize)...)
	for range 3 {
		outputType = append(outputType, lecodec.U32ToLe(offset)...)
	}
	outputType = append(outputType, ownerBytes...)
	outputType = append(outputType, emptyDynVec...)
	return ckb.WitnessArgs{OutputType: outputType}.Serialize()
}

// MintWitness proves ownership of the token type to the xUDT script on mint.
func (c Contracts) MintWitness(info ckb.Script) []byte {
	return xudtOwnerWitness(c.OwnerScript(info))
}

// RebasedMintWitness is MintWitness for the rebased owner.
func (c Contracts) RebasedMintWitness(info ckb.Script, preTokenHash ckb.Hash, actualSupply uint128.Uint128) []byte {
	return xudtOwnerWitness(c.RebasedOwnerScript(info, preTokenHash, actualSupply))
}
