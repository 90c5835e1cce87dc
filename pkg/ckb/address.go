package ckb

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	"github.com/gaze-network/ckb-inscription/common/errs"
)

// address payload format types
const (
	formatFull         byte = 0x00
	formatShort        byte = 0x01
	formatFullDataOld  byte = 0x02
	formatFullTypeOld  byte = 0x04
	shortCodeIndexSecp byte = 0x00
	shortCodeIndexMsig byte = 0x01
	shortArgsLength         = 20
)

var (
	// SecpCodeHash is the code hash of the default secp256k1-blake160 lock (hash type "type").
	SecpCodeHash = MustHexToHash("0x9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce8")

	// MultisigCodeHash is the code hash of the secp256k1-blake160 multisig lock (hash type "type").
	MultisigCodeHash = MustHexToHash("0x5c5069eb0857efc65e1bca0c07df34c31663b3622fd3876c876320fc9634e2a8")
)

var shortCodeHashes = map[byte]Hash{
	shortCodeIndexSecp: SecpCodeHash,
	shortCodeIndexMsig: MultisigCodeHash,
}

// Address is a lock script bound to the network its human readable part names.
type Address struct {
	Network common.Network
	Script  Script
}

// NewSecpAddress returns the address of the default secp256k1-blake160 lock for the pubkey hash.
func NewSecpAddress(network common.Network, pubkeyHash []byte) Address {
	return Address{
		Network: network,
		Script:  Script{CodeHash: SecpCodeHash, HashType: HashTypeType, Args: append(Bytes{}, pubkeyHash...)},
	}
}

// ParseAddress decodes a full (bech32m), short or deprecated full (bech32) address.
func ParseAddress(address string) (Address, error) {
	hrp, data, err := bech32.DecodeNoLimit(address)
	if err != nil {
		return Address{}, errors.Wrap(errors.Join(errs.InvalidArgument, err), "can't decode bech32 address")
	}
	network, ok := common.NetworkFromAddressPrefix(hrp)
	if !ok {
		return Address{}, errors.Wrapf(errs.Unsupported, "unknown address prefix %q", hrp)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, errors.Wrap(errors.Join(errs.InvalidArgument, err), "can't convert address payload")
	}
	if len(payload) == 0 {
		return Address{}, errors.Wrap(errs.InvalidArgument, "empty address payload")
	}

	script, err := parsePayload(payload)
	if err != nil {
		return Address{}, errors.WithStack(err)
	}
	return Address{Network: network, Script: script}, nil
}

func parsePayload(payload []byte) (Script, error) {
	body := payload[1:]
	switch payload[0] {
	case formatFull:
		if len(body) < HashLength+1 {
			return Script{}, errors.Wrap(errs.InvalidArgument, "full address payload too short")
		}
		hashType := HashType(body[HashLength])
		if _, ok := hashTypeNames[hashType]; !ok {
			return Script{}, errors.Wrapf(errs.InvalidArgument, "unknown hash type %d", hashType)
		}
		return Script{
			CodeHash: BytesToHash(body[:HashLength]),
			HashType: hashType,
			Args:     append(Bytes{}, body[HashLength+1:]...),
		}, nil
	case formatShort:
		if len(body) != 1+shortArgsLength {
			return Script{}, errors.Wrap(errs.InvalidArgument, "invalid short address payload length")
		}
		codeHash, ok := shortCodeHashes[body[0]]
		if !ok {
			return Script{}, errors.Wrapf(errs.Unsupported, "unknown short address code index %d", body[0])
		}
		return Script{CodeHash: codeHash, HashType: HashTypeType, Args: append(Bytes{}, body[1:]...)}, nil
	case formatFullDataOld, formatFullTypeOld:
		if len(body) < HashLength {
			return Script{}, errors.Wrap(errs.InvalidArgument, "full address payload too short")
		}
		hashType := HashTypeData
		if payload[0] == formatFullTypeOld {
			hashType = HashTypeType
		}
		return Script{
			CodeHash: BytesToHash(body[:HashLength]),
			HashType: hashType,
			Args:     append(Bytes{}, body[HashLength:]...),
		}, nil
	}
	return Script{}, errors.Wrapf(errs.Unsupported, "unknown address format %d", payload[0])
}

// String encodes the address in the full format.
func (a Address) String() string {
	payload := make([]byte, 0, 1+HashLength+1+len(a.Script.Args))
	payload = append(payload, formatFull)
	payload = append(payload, a.Script.CodeHash[:]...)
	payload = append(payload, byte(a.Script.HashType))
	payload = append(payload, a.Script.Args...)

	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		// 8-to-5 regrouping with padding never fails
		panic(err)
	}
	s, err := bech32.EncodeM(a.Network.AddressPrefix(), data)
	if err != nil {
		panic(err)
	}
	return s
}

// ShortString encodes secp256k1 and multisig addresses in the short format. Other locks fall
// back to the full format.
func (a Address) ShortString() string {
	if a.Script.HashType != HashTypeType || len(a.Script.Args) != shortArgsLength {
		return a.String()
	}
	for index, codeHash := range shortCodeHashes {
		if codeHash != a.Script.CodeHash {
			continue
		}
		payload := append([]byte{formatShort, index}, a.Script.Args...)
		data, err := bech32.ConvertBits(payload, 8, 5, true)
		if err != nil {
			panic(err)
		}
		s, err := bech32.Encode(a.Network.AddressPrefix(), data)
		if err != nil {
			panic(err)
		}
		return s
	}
	return a.String()
}
