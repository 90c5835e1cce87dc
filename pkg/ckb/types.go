// Package ckb holds the cell-model chain primitives: scripts, cells, transactions, their
// molecule serialization, hashing, capacity rules and addresses.
package ckb

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/lib/lecodec"
)

const HashLength = 32

// Hash is a 32-byte blake2b digest.
type Hash [HashLength]byte

// HexToHash parses a 0x-prefixed 32-byte hex string.
func HexToHash(s string) (Hash, error) {
	b, err := lecodec.DecodeHex(s)
	if err != nil {
		return Hash{}, errors.WithStack(err)
	}
	if len(b) != HashLength {
		return Hash{}, errors.Wrapf(errs.InvalidArgument, "hash must be %d bytes, got %d", HashLength, len(b))
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}

// MustHexToHash is like HexToHash but panics on error. For constants only.
func MustHexToHash(s string) Hash {
	h, err := HexToHash(s)
	if err != nil {
		panic(err)
	}
	return h
}

func BytesToHash(b []byte) Hash {
	var h Hash
	copy(h[:], b)
	return h
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) String() string {
	return lecodec.EncodeHex(h[:])
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.WithStack(err)
	}
	v, err := HexToHash(s)
	if err != nil {
		return errors.WithStack(err)
	}
	*h = v
	return nil
}

// HashType tells how a script's code hash is matched against cell deps.
type HashType byte

const (
	HashTypeData  HashType = 0
	HashTypeType  HashType = 1
	HashTypeData1 HashType = 2
)

var hashTypeNames = map[HashType]string{
	HashTypeData:  "data",
	HashTypeType:  "type",
	HashTypeData1: "data1",
}

func (t HashType) String() string {
	return hashTypeNames[t]
}

func (t HashType) MarshalJSON() ([]byte, error) {
	name, ok := hashTypeNames[t]
	if !ok {
		return nil, errors.Wrapf(errs.InvalidArgument, "unknown hash type %d", t)
	}
	return json.Marshal(name)
}

func (t *HashType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.WithStack(err)
	}
	for k, v := range hashTypeNames {
		if v == s {
			*t = k
			return nil
		}
	}
	return errors.Wrapf(errs.InvalidArgument, "unknown hash type %q", s)
}

// Bytes is a byte string encoded as 0x-prefixed hex in JSON.
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(lecodec.EncodeHex(b))
}

func (b *Bytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.WithStack(err)
	}
	v, err := lecodec.DecodeHex(s)
	if err != nil {
		return errors.WithStack(err)
	}
	*b = v
	return nil
}

// Quantity is a uint64 encoded as 0x-prefixed hex in JSON.
type Quantity uint64

func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(lecodec.EncodeQuantity(uint64(q)))
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.WithStack(err)
	}
	v, err := lecodec.DecodeQuantity(s)
	if err != nil {
		return errors.WithStack(err)
	}
	*q = Quantity(v)
	return nil
}

// Script is a lock or type predicate.
type Script struct {
	CodeHash Hash     `json:"code_hash"`
	HashType HashType `json:"hash_type"`
	Args     Bytes    `json:"args"`
}

// Equals reports whether all three fields match.
func (s Script) Equals(o Script) bool {
	return s.CodeHash == o.CodeHash && s.HashType == o.HashType && bytes.Equal(s.Args, o.Args)
}

// Hash returns the script identity hash, blake2b over the molecule serialization.
func (s Script) Hash() Hash {
	return Blake256(SerializeScript(s))
}

// WithArgs returns a copy of the script template s with the given args.
func (s Script) WithArgs(args []byte) Script {
	return Script{
		CodeHash: s.CodeHash,
		HashType: s.HashType,
		Args:     append(Bytes{}, args...),
	}
}

// OccupiedBytes is the on-chain size of the script.
func (s Script) OccupiedBytes() uint64 {
	return HashLength + 1 + uint64(len(s.Args))
}

type OutPoint struct {
	TxHash Hash     `json:"tx_hash"`
	Index  Quantity `json:"index"`
}

type DepType byte

const (
	DepTypeCode     DepType = 0
	DepTypeDepGroup DepType = 1
)

func (t DepType) MarshalJSON() ([]byte, error) {
	switch t {
	case DepTypeCode:
		return json.Marshal("code")
	case DepTypeDepGroup:
		return json.Marshal("dep_group")
	}
	return nil, errors.Wrapf(errs.InvalidArgument, "unknown dep type %d", t)
}

func (t *DepType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.WithStack(err)
	}
	switch s {
	case "code":
		*t = DepTypeCode
	case "dep_group":
		*t = DepTypeDepGroup
	default:
		return errors.Wrapf(errs.InvalidArgument, "unknown dep type %q", s)
	}
	return nil
}

type CellDep struct {
	OutPoint OutPoint `json:"out_point"`
	DepType  DepType  `json:"dep_type"`
}

type CellInput struct {
	Since          Quantity `json:"since"`
	PreviousOutput OutPoint `json:"previous_output"`
}

type CellOutput struct {
	Capacity Quantity `json:"capacity"`
	Lock     Script   `json:"lock"`
	Type     *Script  `json:"type"`
}

// OccupiedBytes is the minimum size the output needs with dataLen bytes of data, including
// the one byte buffer this protocol reserves on every cell.
func (o CellOutput) OccupiedBytes(dataLen int) uint64 {
	size := o.Lock.OccupiedBytes() + CapacityFieldSize + uint64(dataLen) + CapacityBufferSize
	if o.Type != nil {
		size += o.Type.OccupiedBytes()
	}
	return size
}

// Cell is a live cell as returned by the indexer.
type Cell struct {
	OutPoint    OutPoint   `json:"out_point"`
	Output      CellOutput `json:"output"`
	Data        Bytes      `json:"output_data"`
	BlockNumber Quantity   `json:"block_number"`
	TxIndex     Quantity   `json:"tx_index"`
}

// Input returns the cell as a transaction input.
func (c Cell) Input() CellInput {
	return CellInput{PreviousOutput: c.OutPoint}
}

// Transaction is an unsigned transaction in node RPC JSON form.
type Transaction struct {
	Version     Quantity     `json:"version"`
	CellDeps    []CellDep    `json:"cell_deps"`
	HeaderDeps  []Hash       `json:"header_deps"`
	Inputs      []CellInput  `json:"inputs"`
	Outputs     []CellOutput `json:"outputs"`
	OutputsData []Bytes      `json:"outputs_data"`
	Witnesses   []Bytes      `json:"witnesses"`
}

// Hash returns the transaction hash, blake2b over the serialized raw transaction.
func (tx *Transaction) Hash() Hash {
	return Blake256(SerializeRawTransaction(tx))
}

// SerializedSize is the size the node charges fees on: the serialized transaction plus the
// 4-byte offset it takes in a block's transaction vector.
func (tx *Transaction) SerializedSize() int {
	return len(SerializeTransaction(tx)) + 4
}

// OutputsCapacity sums the capacity of all outputs.
func (tx *Transaction) OutputsCapacity() (uint64, error) {
	var total uint64
	for i, o := range tx.Outputs {
		next := total + uint64(o.Capacity)
		if next < total {
			return 0, errors.Wrapf(errs.OverflowUint64, "outputs capacity overflows at output %d", i)
		}
		total = next
	}
	return total, nil
}
