package usecase

// TargetProgress é tri-estado: sem meta configurada (Applicable=false) é
// diferente de meta batida (Applicable=true, Remaining=0).
type TargetProgress struct {
	Applicable bool    `json:"applicable"`
	Remaining  float64 `json:"remaining"`
}

// ReconcileTarget calcula quanto falta para a meta. Nunca fica negativo:
// meta estourada reporta zero restante.
func ReconcileTarget(target *float64, achieved float64) TargetProgress {
	if target == nil {
		return TargetProgress{}
	}

	remaining := *target - achieved
	if remaining < 0 {
		remaining = 0
	}

	return TargetProgress{Applicable: true, Remaining: remaining}
}
