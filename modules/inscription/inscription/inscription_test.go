package inscription

import (
	"testing"

	"github.com/gaze-network/ckb-inscription/pkg/ckb"
)

const (
	joyIDTestnetAddress = "ckt1qrfrwcdnvssswdwpn3s9v8fp87emat306ctjwsm3nmlkjg8qyza2cqgqq9sfrkfah2cj79nyp7e6p283ualq8779rscnjmrj"
	secpTestnetAddress  = "ckt1qzda0cr08m85hc8jlnfp3zer7xulejywt49kt2rr0vthywaa50xwsqdelcxw9t8sa5q695g65eer5awxvtg0nhsk4ahkx"
)

func typeScript(codeHash string) ckb.Script {
	return ckb.Script{CodeHash: ckb.MustHexToHash(codeHash), HashType: ckb.HashTypeType, Args: ckb.Bytes{}}
}

var testContracts = Contracts{
	InfoType:        typeScript("0x50fdea2d0030a8d0b3d69f883b471cab2a29cae6f01923f19cecac0f27fdaaa6"),
	InscriptionType: typeScript("0x3a241ceceede72a5f55c8fb985652690f09a517d6c9070f0df0d3572fa03fb70"),
	RebaseType:      typeScript("0x93043b66bb20797caad0deacaadbada5e58f0893d770ecdddb8806aff8877e29"),
	XudtType:        typeScript("0x25c29dc317811a6f6f3985a7a9ebc4838bd388d19d0feeecf0bcd60f6c0975bb"),
	CotaType:        typeScript("0x89cd8003a0eaf8e65e0c31525b7d1d5c1becefd2ea75bb4cff87810ae37764d8"),
	LockDeps: map[ckb.Hash]ckb.CellDep{
		ckb.SecpCodeHash: {DepType: ckb.DepTypeDepGroup},
	},
}

func mustParseLock(t *testing.T, address string) ckb.Script {
	t.Helper()
	addr, err := ckb.ParseAddress(address)
	if err != nil {
		t.Fatalf("parse address: %v", err)
	}
	return addr.Script
}

func plainCell(index uint64, capacity uint64) *ckb.Cell {
	return &ckb.Cell{
		OutPoint: ckb.OutPoint{TxHash: ckb.Hash{byte(index + 1)}, Index: ckb.Quantity(index)},
		Output:   ckb.CellOutput{Capacity: ckb.Quantity(capacity)},
	}
}
