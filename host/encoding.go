package host

import (
	"encoding/binary"
	"errors"
)

// kindRegistry maps an asset variant's storage.VariantCodec Kind string to a
// stable one-byte wire discriminant. Game packages that mint assets
// register their kinds from an init(), mirroring how the teacher's
// storage/statedb.go keyed its prefixes once at package load.
var kindRegistry = map[string]byte{}
var kindRegistryRev = map[byte]string{}

// RegisterKind assigns tag as the one-byte wire discriminant for kind.
// Panics on a duplicate kind or tag: either would make EncodeAsset/
// DecodeAsset ambiguous, which must be caught at startup, not at runtime.
func RegisterKind(kind string, tag byte) {
	if _, ok := kindRegistry[kind]; ok {
		panic("host: asset kind already registered: " + kind)
	}
	if _, ok := kindRegistryRev[tag]; ok {
		panic("host: asset kind tag already registered")
	}
	kindRegistry[kind] = tag
	kindRegistryRev[tag] = kind
}

// ErrUnknownKind is returned by EncodeAsset/DecodeAsset for a kind string or
// wire tag no game package has registered.
var ErrUnknownKind = errors.New("host: unknown asset kind")

// EncodeAsset produces the wire-stable byte encoding of an asset envelope:
// a one-byte kind discriminant, fixed 8-byte big-endian id and genesis
// fields, then owner and variant as length-prefixed byte strings. This is
// the encoding storage.AssetStore.ComputeRoot hashes over, kept distinct
// from the JSON encoding AssetStore uses to persist records to disk (spec's
// wire-format contract, grounded on the teacher's storage/statedb.go
// ComputeRoot length-prefixed key/value encoding).
func EncodeAsset(id AssetID, genesis uint64, owner, kind string, variant []byte) ([]byte, error) {
	tag, ok := kindRegistry[kind]
	if !ok {
		return nil, ErrUnknownKind
	}
	ownerB := []byte(owner)
	buf := make([]byte, 0, 1+8+8+4+len(ownerB)+4+len(variant))
	buf = append(buf, tag)

	var u64 [8]byte
	binary.BigEndian.PutUint64(u64[:], uint64(id))
	buf = append(buf, u64[:]...)
	binary.BigEndian.PutUint64(u64[:], genesis)
	buf = append(buf, u64[:]...)

	buf = appendLenPrefixed(buf, ownerB)
	buf = appendLenPrefixed(buf, variant)
	return buf, nil
}

func appendLenPrefixed(buf, b []byte) []byte {
	var l [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(len(b)))
	buf = append(buf, l[:]...)
	return append(buf, b...)
}

func readLenPrefixed(data []byte, off int) (b []byte, next int, err error) {
	if off+4 > len(data) {
		return nil, 0, errors.New("host: truncated length prefix")
	}
	n := int(binary.BigEndian.Uint32(data[off : off+4]))
	off += 4
	if off+n > len(data) {
		return nil, 0, errors.New("host: truncated length-prefixed field")
	}
	return data[off : off+n], off + n, nil
}

// DecodeAsset parses the encoding EncodeAsset produces, resolving the kind
// tag back to its registered kind string and returning the raw variant
// bytes for the caller's VariantCodec to decode further.
func DecodeAsset(data []byte) (id AssetID, genesis uint64, owner, kind string, variant []byte, err error) {
	if len(data) < 1+8+8 {
		err = errors.New("host: truncated asset encoding")
		return
	}
	k, ok := kindRegistryRev[data[0]]
	if !ok {
		err = ErrUnknownKind
		return
	}
	kind = k
	off := 1
	id = AssetID(binary.BigEndian.Uint64(data[off : off+8]))
	off += 8
	genesis = binary.BigEndian.Uint64(data[off : off+8])
	off += 8

	var ownerB, variantB []byte
	ownerB, off, err = readLenPrefixed(data, off)
	if err != nil {
		return
	}
	owner = string(ownerB)
	variantB, off, err = readLenPrefixed(data, off)
	if err != nil {
		return
	}
	variant = variantB
	return
}
