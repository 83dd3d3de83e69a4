package domain

// ErosionTier maps an erosion-rate threshold to the erosion die it
// grants. Tiers are ascending; the die never decreases once raised.
type ErosionTier struct {
	Threshold int
	Die       int
}

// ErosionTiers is the fixed Double Cross escalation table.
var ErosionTiers = []ErosionTier{
	{Threshold: 60, Die: 1},
	{Threshold: 80, Die: 2},
	{Threshold: 100, Die: 3},
	{Threshold: 130, Die: 4},
	{Threshold: 190, Die: 5},
}

// ComputeErosionDie derives the erosion die for the given rate. It
// returns the new die (never lower than the current one) and the tiers
// newly crossed, in ascending threshold order. Pure function; callers
// persist the result and announce each crossed tier.
func ComputeErosionDie(rate, currentDie int) (int, []ErosionTier) {
	newDie := currentDie
	var crossed []ErosionTier
	for _, t := range ErosionTiers {
		if rate >= t.Threshold && newDie < t.Die {
			newDie = t.Die
			crossed = append(crossed, t)
		}
	}
	return newDie, crossed
}

// ApplyErosion raises the character's erosion rate by delta, recomputes
// the erosion die, and returns the new rate plus any crossed tiers.
func (c *CharacterSheet) ApplyErosion(delta int) (int, []ErosionTier) {
	rate := c.AddStat(StatErosion, delta)
	return c.RefreshErosionDie()
}

// RefreshErosionDie recomputes the erosion die from the current rate,
// storing it when it rises. Returns the current rate and crossed tiers.
func (c *CharacterSheet) RefreshErosionDie() (int, []ErosionTier) {
	rate := c.Stat(StatErosion)
	die, crossed := ComputeErosionDie(rate, c.Stat(StatErosionDie))
	if len(crossed) > 0 {
		c.SetStat(StatErosionDie, die)
	}
	return rate, crossed
}
