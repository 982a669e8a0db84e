package battlemogs

import "fmt"

// ErrorCode is the small u8 table from spec.md §6, propagated as
// TransitionError{Code}. No error carries a free-form string; codes are
// stable across versions for replay compatibility.
type ErrorCode byte

const (
	ErrAssetNotFound                    ErrorCode = 0
	ErrMogwaiLimitReached               ErrorCode = 1
	ErrPlayerAlreadyHasAchievementTable ErrorCode = 2
	ErrAssetIsNotMogwai                 ErrorCode = 3
	ErrAssetIsNotAchievementTable       ErrorCode = 4
	ErrCannotUseSameAssetForBreeding    ErrorCode = 5
	ErrMogwaiStillInBredPhase           ErrorCode = 6
	ErrMogwaiNotInBredPhase             ErrorCode = 7
	ErrMogwaiHasInvalidRarity           ErrorCode = 8
	ErrAssetCouldNotReceiveFunds        ErrorCode = 100
	ErrAssetCouldNotWithdrawFunds       ErrorCode = 101
)

func (c ErrorCode) String() string {
	switch c {
	case ErrAssetNotFound:
		return "asset-not-found"
	case ErrMogwaiLimitReached:
		return "mogwai-limit-reached"
	case ErrPlayerAlreadyHasAchievementTable:
		return "player-already-has-achievement-table"
	case ErrAssetIsNotMogwai:
		return "asset-is-not-mogwai"
	case ErrAssetIsNotAchievementTable:
		return "asset-is-not-achievement-table"
	case ErrCannotUseSameAssetForBreeding:
		return "cannot-use-same-asset-for-breeding"
	case ErrMogwaiStillInBredPhase:
		return "mogwai-still-in-bred-phase"
	case ErrMogwaiNotInBredPhase:
		return "mogwai-not-in-bred-phase"
	case ErrMogwaiHasInvalidRarity:
		return "mogwai-has-invalid-rarity"
	case ErrAssetCouldNotReceiveFunds:
		return "asset-could-not-receive-funds"
	case ErrAssetCouldNotWithdrawFunds:
		return "asset-could-not-withdraw-funds"
	default:
		return "unknown"
	}
}

// TransitionError is the structured error every transition returns on
// failure. It carries only a stable code, never a free-form string.
type TransitionError struct {
	Code ErrorCode
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("battlemogs: transition error %d (%s)", e.Code, e.Code)
}

// NewTransitionError builds a *TransitionError for the given code.
func NewTransitionError(code ErrorCode) *TransitionError {
	return &TransitionError{Code: code}
}

// AssetOwnershipError is the distinct non-transition error for ownership
// failures (spec.md §6: "Plus a distinct non-transition error
// AssetOwnership for ownership failures").
type AssetOwnershipError struct {
	Owner string
}

func (e *AssetOwnershipError) Error() string {
	return fmt.Sprintf("battlemogs: %s does not own the asset", e.Owner)
}
