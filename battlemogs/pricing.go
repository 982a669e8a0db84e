package battlemogs

// FeeKind selects a row in the fee_price table.
type FeeKind byte

const (
	FeeDefault FeeKind = iota
	FeeRemove
)

// FeePrice is the fee_price(...) table from spec.md §6, in MILLIMOGS.
func FeePrice(kind FeeKind) uint64 {
	switch kind {
	case FeeRemove:
		return 50 * MillimogsPerUnit
	default:
		return 1 * MillimogsPerUnit
	}
}

// IntrinsicReturn is the per-phase divisor used when sacrificing a mogwai.
func IntrinsicReturn(phase PhaseType) uint64 {
	switch phase {
	case PhaseBred:
		return 20
	case PhaseHatched:
		return 5
	case PhaseMatured:
		return 3
	case PhaseMastered:
		return 2
	case PhaseExalted:
		return 1
	default:
		return 0
	}
}

// Pairing is the pairing(r1+r2=s) table from spec.md §6, in MILLIMOGS.
func Pairing(r1, r2 RarityType) uint64 {
	s := int(r1) + int(r2)
	switch s {
	case 0:
		return 10 * MillimogsPerUnit
	case 1:
		return 100 * MillimogsPerUnit
	case 2:
		return 200 * MillimogsPerUnit
	case 3:
		return 300 * MillimogsPerUnit
	case 4:
		return 400 * MillimogsPerUnit
	case 5:
		return 500 * MillimogsPerUnit
	case 6:
		return 1000 * MillimogsPerUnit
	case 7:
		return 1500 * MillimogsPerUnit
	case 8:
		return 2000 * MillimogsPerUnit
	default:
		return 10000 * MillimogsPerUnit
	}
}

// ConfigMaxMogwais is config_max_mogwais(v) from spec.md §6, in DMOGS.
func ConfigMaxMogwais(v uint8) uint64 {
	switch v {
	case 1:
		return 5000 * DMogsPerUnit
	case 2:
		return 10000 * DMogsPerUnit
	case 3:
		return 20000 * DMogsPerUnit
	default:
		return 0
	}
}
