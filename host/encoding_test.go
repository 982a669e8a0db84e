package host_test

import (
	"testing"

	"github.com/ajuna-network/ajunacore/host"
)

func TestEncodeDecodeAssetRoundTrips(t *testing.T) {
	wire, err := host.EncodeAsset(host.AssetID(7), 42, "alice", "test-kind-a", []byte(`{"dna":1}`))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	id, genesis, owner, kind, variant, err := host.DecodeAsset(wire)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if id != 7 || genesis != 42 || owner != "alice" || kind != "test-kind-a" || string(variant) != `{"dna":1}` {
		t.Fatalf("round trip mismatch: id=%v genesis=%v owner=%v kind=%v variant=%s", id, genesis, owner, kind, variant)
	}
}

func TestEncodeAssetRejectsUnregisteredKind(t *testing.T) {
	if _, err := host.EncodeAsset(host.AssetID(1), 0, "alice", "no-such-kind", nil); err != host.ErrUnknownKind {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestDecodeAssetRejectsTruncatedInput(t *testing.T) {
	wire, err := host.EncodeAsset(host.AssetID(1), 0, "alice", "test-kind-a", []byte("x"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, _, _, _, _, err := host.DecodeAsset(wire[:len(wire)-2]); err == nil {
		t.Fatal("expected an error decoding truncated input")
	}
}

func init() {
	host.RegisterKind("test-kind-a", 200)
}
