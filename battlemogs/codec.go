package battlemogs

import (
	"encoding/json"
	"fmt"

	"github.com/ajuna-network/ajunacore/host"
)

const (
	kindMogwai           = "mogwai"
	kindAchievementTable = "achievement_table"
)

// One-byte wire discriminants for storage.AssetStore.ComputeRoot's
// byte-stable encoding (host.EncodeAsset/DecodeAsset), distinct from the
// kind strings above, which only identify the JSON storage shape.
func init() {
	host.RegisterKind(kindMogwai, 1)
	host.RegisterKind(kindAchievementTable, 2)
}

// Codec implements storage.VariantCodec for the two BattleMogs asset
// variants, so a storage.AssetStore can round-trip them without importing
// this package directly.
type Codec struct{}

// Kind reports the storage kind string for a variant value.
func (Codec) Kind(variant any) (string, bool) {
	switch variant.(type) {
	case *Mogwai:
		return kindMogwai, true
	case *AchievementTable:
		return kindAchievementTable, true
	default:
		return "", false
	}
}

// Encode marshals a variant to its JSON payload.
func (Codec) Encode(variant any) (json.RawMessage, error) {
	return json.Marshal(variant)
}

// Decode unmarshals raw into the variant type named by kind.
func (Codec) Decode(kind string, raw json.RawMessage) (any, error) {
	switch kind {
	case kindMogwai:
		var m Mogwai
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		return &m, nil
	case kindAchievementTable:
		var t AchievementTable
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, err
		}
		return &t, nil
	default:
		return nil, fmt.Errorf("battlemogs: unknown asset kind %q", kind)
	}
}
