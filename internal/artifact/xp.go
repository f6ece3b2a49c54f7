package artifact

// RoundXP scales an xp grant by the knowledge multiplier (ignored when not
// positive) and rounds it down to the step of its magnitude band.
func RoundXP(amount uint64, multiplier float32) uint64 {
	if multiplier > 0 {
		amount = uint64(float64(amount) * float64(multiplier))
	}

	switch {
	case amount >= xpLargeThreshold:
		return xpLargeStep * (amount / xpLargeStep)
	case amount >= xpMediumThreshold:
		return xpMediumStep * (amount / xpMediumStep)
	case amount >= xpSmallThreshold:
		return xpSmallStep * (amount / xpSmallStep)
	default:
		return amount
	}
}

// KnowledgeXP applies the knowledge multiplier of the given level, defaulting
// to level 1 when level is zero, then rounds.
func KnowledgeXP(tables Tables, amount uint64, knowledgeLevel uint32) uint64 {
	if knowledgeLevel == 0 {
		knowledgeLevel = 1
	}
	multiplier, _ := tables.KnowledgeMultiplier(knowledgeLevel)
	return RoundXP(amount, multiplier)
}
