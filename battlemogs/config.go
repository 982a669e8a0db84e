package battlemogs

// Config is the BattleMogs transition_config record from spec.md §6.
type Config struct {
	MaxMogwais          uint16 `json:"max_mogwais"`
	TargetEggHatcher     uint16 `json:"target_egg_hatcher"`
	TargetSacrificer      uint16 `json:"target_sacrificer"`
	TargetMorpheus        uint16 `json:"target_morpheus"`
	TargetLegendBreeder   uint16 `json:"target_legend_breeder"`
	TargetPromiscuous     uint16 `json:"target_promiscuous"`
}

// DefaultConfig returns the spec.md §6 default values.
func DefaultConfig() *Config {
	return &Config{
		MaxMogwais:          10,
		TargetEggHatcher:    100,
		TargetSacrificer:    100,
		TargetMorpheus:      100,
		TargetLegendBreeder: 100,
		TargetPromiscuous:   100,
	}
}

// TargetFor returns the per-kind achievement target from config.
func (c *Config) TargetFor(kind AchievementKind) uint32 {
	switch kind {
	case AchievementEggHatcher:
		return uint32(c.TargetEggHatcher)
	case AchievementSacrificer:
		return uint32(c.TargetSacrificer)
	case AchievementMorpheus:
		return uint32(c.TargetMorpheus)
	case AchievementLegendBreeder:
		return uint32(c.TargetLegendBreeder)
	case AchievementPromiscuous:
		return uint32(c.TargetPromiscuous)
	default:
		return 0
	}
}

// TimeTillHatch is GameEventType::time_till(Hatch) from spec.md §6: the
// number of blocks that must elapse between CreateMogwai and Hatch.
const TimeTillHatch = 100

// MillimogsPerUnit anchors the pricing table's unit, MILLIMOGS = 10^9.
const MillimogsPerUnit = 1_000_000_000

// DMogsPerUnit anchors config_max_mogwais's unit, DMOGS = 1000*MILLIMOGS.
const DMogsPerUnit = 1000 * MillimogsPerUnit
