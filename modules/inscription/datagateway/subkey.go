package datagateway

import "context"

type SubkeyUnlocker interface {
	// UnlockSubkey returns the unlock entry proving that pubkeyHash is a registered subkey of the
	// serialized lock script.
	UnlockSubkey(ctx context.Context, lockScript []byte, pubkeyHash []byte, algIndex uint8) ([]byte, error)
}
