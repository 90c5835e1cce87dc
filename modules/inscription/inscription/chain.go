package inscription

import (
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/uint128"
)

// Every inscription is identified by a chain of scripts, each one's args being the hash of the
// previous:
//
//	info type (args = inscription id)
//	  -> owner (inscription type, args = hash(info))
//	    -> token (xUDT, args = hash(owner))
//
// A rebase swaps the owner for the rebase type, whose args also commit to the pre-rebase token
// hash and the measured supply.

func (c Contracts) InfoTypeScript(id ckb.Hash) ckb.Script {
	return c.InfoType.WithArgs(id[:])
}

func (c Contracts) OwnerScript(info ckb.Script) ckb.Script {
	h := info.Hash()
	return c.InscriptionType.WithArgs(h[:])
}

// TokenTypeScript is the xUDT type of the tokens minted from the inscription.
func (c Contracts) TokenTypeScript(info ckb.Script) ckb.Script {
	h := c.OwnerScript(info).Hash()
	return c.XudtType.WithArgs(h[:])
}

func (c Contracts) TokenTypeHash(info ckb.Script) ckb.Hash {
	return c.TokenTypeScript(info).Hash()
}

// RebasedOwnerScript args are hash(info) ‖ preTokenHash ‖ le128(actualSupply), 80 bytes.
func (c Contracts) RebasedOwnerScript(info ckb.Script, preTokenHash ckb.Hash, actualSupply uint128.Uint128) ckb.Script {
	infoHash := info.Hash()
	args := make([]byte, 0, 2*ckb.HashLength+16)
	args = append(args, infoHash[:]...)
	args = append(args, preTokenHash[:]...)
	args = append(args, lecodec.U128ToLe(actualSupply)...)
	return c.RebaseType.WithArgs(args)
}

func (c Contracts) RebasedTokenTypeScript(info ckb.Script, preTokenHash ckb.Hash, actualSupply uint128.Uint128) ckb.Script {
	h := c.RebasedOwnerScript(info, preTokenHash, actualSupply).Hash()
	return c.XudtType.WithArgs(h[:])
}

func (c Contracts) RebasedTokenTypeHash(info ckb.Script, preTokenHash ckb.Hash, actualSupply uint128.Uint128) ckb.Hash {
	return c.RebasedTokenTypeScript(info, preTokenHash, actualSupply).Hash()
}
