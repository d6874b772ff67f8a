package economy

// engineError classifies a failed action. Failed actions never mutate
// the player record.
type engineError struct{ msg string }

func (e *engineError) Error() string { return e.msg }

var (
	ErrUnknownOre            = &engineError{"unknown ore"}
	ErrLockedOre             = &engineError{"locked ore for your pickaxe"}
	ErrUnknownTier           = &engineError{"unknown pickaxe"}
	ErrUnknownSword          = &engineError{"unknown sword"}
	ErrInsufficientResources = &engineError{"not enough resources"}
	ErrInsufficientSilver    = &engineError{"need more silver"}
	ErrUnknownPowerup        = &engineError{"unknown powerup"}
	ErrCodeRequired          = &engineError{"code required"}
	ErrCodeAlreadyUsed       = &engineError{"code already used"}
	ErrInvalidCode           = &engineError{"invalid code"}
	ErrCooldown              = &engineError{"cooldown"}
	ErrForbidden             = &engineError{"forbidden"}
)
