package ckb

import (
	"encoding/binary"
)

// Molecule layouts used by the chain:
//   - struct: fields concatenated
//   - fixvec: u32 item count, then the items
//   - dynvec / table: u32 total size, u32 offset per item, then the items
//   - option: empty for none, the inner value for some

const (
	// CapacityFieldSize is the size of the capacity field of a cell output.
	CapacityFieldSize = 8

	outPointSize  = HashLength + 4
	cellInputSize = 8 + outPointSize
	cellDepSize   = outPointSize + 1
)

func appendU32(b []byte, n uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, n)
}

// serializeBytes encodes a Bytes fixvec.
func serializeBytes(b []byte) []byte {
	out := make([]byte, 0, 4+len(b))
	out = appendU32(out, uint32(len(b)))
	return append(out, b...)
}

// serializeTable encodes fields as a table (same layout as a dynvec).
func serializeTable(fields ...[]byte) []byte {
	headerSize := 4 + 4*len(fields)
	total := headerSize
	for _, f := range fields {
		total += len(f)
	}

	out := make([]byte, 0, total)
	out = appendU32(out, uint32(total))
	offset := headerSize
	for _, f := range fields {
		out = appendU32(out, uint32(offset))
		offset += len(f)
	}
	for _, f := range fields {
		out = append(out, f...)
	}
	return out
}

func serializeFixVec(itemCount int, items []byte) []byte {
	out := make([]byte, 0, 4+len(items))
	out = appendU32(out, uint32(itemCount))
	return append(out, items...)
}

// SerializeScript encodes s as the Script table. The size is 53 + len(args).
func SerializeScript(s Script) []byte {
	return serializeTable(s.CodeHash[:], []byte{byte(s.HashType)}, serializeBytes(s.Args))
}

func SerializeOutPoint(o OutPoint) []byte {
	out := make([]byte, 0, outPointSize)
	out = append(out, o.TxHash[:]...)
	return appendU32(out, uint32(o.Index))
}

// SerializeCellInput encodes the CellInput struct: since followed by the out point.
func SerializeCellInput(in CellInput) []byte {
	out := make([]byte, 0, cellInputSize)
	out = binary.LittleEndian.AppendUint64(out, uint64(in.Since))
	return append(out, SerializeOutPoint(in.PreviousOutput)...)
}

func serializeCellDep(d CellDep) []byte {
	return append(SerializeOutPoint(d.OutPoint), byte(d.DepType))
}

func serializeScriptOpt(s *Script) []byte {
	if s == nil {
		return nil
	}
	return SerializeScript(*s)
}

func SerializeCellOutput(o CellOutput) []byte {
	return serializeTable(
		binary.LittleEndian.AppendUint64(nil, uint64(o.Capacity)),
		SerializeScript(o.Lock),
		serializeScriptOpt(o.Type),
	)
}

// WitnessArgs is the standard witness layout. A nil field is encoded as none.
type WitnessArgs struct {
	Lock       []byte
	InputType  []byte
	OutputType []byte
}

func serializeBytesOpt(b []byte) []byte {
	if b == nil {
		return nil
	}
	return serializeBytes(b)
}

// Serialize encodes the WitnessArgs table.
func (w WitnessArgs) Serialize() []byte {
	return serializeTable(serializeBytesOpt(w.Lock), serializeBytesOpt(w.InputType), serializeBytesOpt(w.OutputType))
}

// SerializeRawTransaction encodes the RawTransaction table, the preimage of the tx hash.
func SerializeRawTransaction(tx *Transaction) []byte {
	deps := make([]byte, 0, len(tx.CellDeps)*cellDepSize)
	for _, d := range tx.CellDeps {
		deps = append(deps, serializeCellDep(d)...)
	}
	headerDeps := make([]byte, 0, len(tx.HeaderDeps)*HashLength)
	for _, h := range tx.HeaderDeps {
		headerDeps = append(headerDeps, h[:]...)
	}
	inputs := make([]byte, 0, len(tx.Inputs)*cellInputSize)
	for _, in := range tx.Inputs {
		inputs = append(inputs, SerializeCellInput(in)...)
	}
	outputs := make([][]byte, len(tx.Outputs))
	for i, o := range tx.Outputs {
		outputs[i] = SerializeCellOutput(o)
	}
	outputsData := make([][]byte, len(tx.OutputsData))
	for i, d := range tx.OutputsData {
		outputsData[i] = serializeBytes(d)
	}

	return serializeTable(
		appendU32(nil, uint32(tx.Version)),
		serializeFixVec(len(tx.CellDeps), deps),
		serializeFixVec(len(tx.HeaderDeps), headerDeps),
		serializeFixVec(len(tx.Inputs), inputs),
		serializeTable(outputs...),
		serializeTable(outputsData...),
	)
}

// SerializeTransaction encodes the Transaction table: raw transaction and witnesses.
func SerializeTransaction(tx *Transaction) []byte {
	witnesses := make([][]byte, len(tx.Witnesses))
	for i, w := range tx.Witnesses {
		witnesses[i] = serializeBytes(w)
	}
	return serializeTable(SerializeRawTransaction(tx), serializeTable(witnesses...))
}
