// Package battlemogs implements the BattleMogs creature-breeding transition
// engine: mogwai and achievement-table assets, the breeding/hatching/morph/
// sacrifice algebra, and the transition dispatch harness around it.
package battlemogs

// RarityType ranks a mogwai's rarity. Stored as a single byte on the wire.
type RarityType byte

const (
	RarityCommon RarityType = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
	RarityMythical
)

// RarityFromU8 saturates an arbitrary byte into the RarityType range.
func RarityFromU8(v byte) RarityType {
	if v > byte(RarityMythical) {
		return RarityMythical
	}
	return RarityType(v)
}

func (r RarityType) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	case RarityMythical:
		return "Mythical"
	default:
		return "Unknown"
	}
}

// PhaseType is a mogwai's lifecycle stage. Transitions only move forward:
// Bred -> Hatched -> Matured -> Mastered -> Exalted.
type PhaseType byte

const (
	PhaseNone PhaseType = iota
	PhaseBred
	PhaseHatched
	PhaseMatured
	PhaseMastered
	PhaseExalted
)

func (p PhaseType) String() string {
	switch p {
	case PhaseNone:
		return "None"
	case PhaseBred:
		return "Bred"
	case PhaseHatched:
		return "Hatched"
	case PhaseMatured:
		return "Matured"
	case PhaseMastered:
		return "Mastered"
	case PhaseExalted:
		return "Exalted"
	default:
		return "Unknown"
	}
}

// Next returns the next forward phase and whether advancing is legal.
func (p PhaseType) Next() (PhaseType, bool) {
	switch p {
	case PhaseHatched:
		return PhaseMatured, true
	case PhaseMatured:
		return PhaseMastered, true
	case PhaseMastered:
		return PhaseExalted, true
	default:
		return p, false
	}
}

// MogwaiGeneration is clamped to 1..=16 (a saturating coercion caps at 16).
type MogwaiGeneration uint8

const (
	MinGeneration MogwaiGeneration = 1
	MaxGeneration MogwaiGeneration = 16
)

// GenerationFromU16 saturates above 16 back to 16 and below 1 to 1.
func GenerationFromU16(v uint16) MogwaiGeneration {
	if v < uint16(MinGeneration) {
		return MinGeneration
	}
	if v > uint16(MaxGeneration) {
		return MaxGeneration
	}
	return MogwaiGeneration(v)
}

// BreedType selects the DNA interleave mask Breeding.Pair uses. Derived
// from block height mod 80.
type BreedType byte

const (
	BreedDomDom BreedType = iota
	BreedDomRez
	BreedRezDom
	BreedRezRez
)

// CalculateBreedType implements spec.md §4.4's height-mod-80 table.
func CalculateBreedType(height uint64) BreedType {
	switch m := height % 80; {
	case m <= 19:
		return BreedDomDom
	case m <= 39:
		return BreedDomRez
	case m <= 59:
		return BreedRezDom
	default:
		return BreedRezRez
	}
}

// DNA is two 32-byte rows: row 0 is dominant, row 1 recessive.
type DNA [2][32]byte

// Mogwai is the breedable-creature asset variant.
type Mogwai struct {
	DNA        DNA
	Generation MogwaiGeneration
	Rarity     RarityType
	Phase      PhaseType
}

// AchievementKind enumerates the five tracked achievements.
type AchievementKind byte

const (
	AchievementEggHatcher AchievementKind = iota
	AchievementSacrificer
	AchievementMorpheus
	AchievementLegendBreeder
	AchievementPromiscuous
	achievementKindCount
)

func (k AchievementKind) String() string {
	switch k {
	case AchievementEggHatcher:
		return "EggHatcher"
	case AchievementSacrificer:
		return "Sacrificer"
	case AchievementMorpheus:
		return "Morpheus"
	case AchievementLegendBreeder:
		return "LegendBreeder"
	case AchievementPromiscuous:
		return "Promiscuous"
	default:
		return "Unknown"
	}
}

// AchievementState is either InProgress{Current, Target} with
// Current < Target, or Completed (terminal).
type AchievementState struct {
	Completed bool
	Current   uint32
	Target    uint32
}

// Update saturates Current+n against Target; crossing promotes to
// Completed exactly once. Completed is absorbing: Update(Completed, _)
// stays Completed.
func (a AchievementState) Update(n uint32) AchievementState {
	if a.Completed {
		return a
	}
	next := a.Current + n
	if next < a.Current { // overflow guard, saturate at Target
		next = a.Target
	}
	if next >= a.Target {
		return AchievementState{Completed: true, Current: a.Target, Target: a.Target}
	}
	return AchievementState{Current: next, Target: a.Target}
}

// AchievementTable is a fixed mapping from the five achievement kinds to
// their state. A fixed-size array (not a Go map) so iteration order is
// deterministic for ComputeRoot/serialization.
type AchievementTable struct {
	States [int(achievementKindCount)]AchievementState
}

// Bump applies Update(n) to the given achievement kind on a copy of the
// table and returns that copy; the receiver is left unchanged (tables are small value-ish structs copied
// through the transition layer, mirroring the teacher's "pass (id, asset)
// pairs by value" convention from spec.md §9).
func (t AchievementTable) Bump(kind AchievementKind, n uint32) AchievementTable {
	t.States[kind] = t.States[kind].Update(n)
	return t
}
