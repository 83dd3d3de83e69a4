package domain_test

import (
	"testing"

	"github.com/dom/dx3bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeErosionDie_Thresholds(t *testing.T) {
	tests := []struct {
		rate    int
		wantDie int
	}{
		{rate: 0, wantDie: 0},
		{rate: 59, wantDie: 0},
		{rate: 60, wantDie: 1},
		{rate: 79, wantDie: 1},
		{rate: 80, wantDie: 2},
		{rate: 99, wantDie: 2},
		{rate: 100, wantDie: 3},
		{rate: 129, wantDie: 3},
		{rate: 130, wantDie: 4},
		{rate: 189, wantDie: 4},
		{rate: 190, wantDie: 5},
		{rate: 500, wantDie: 5},
	}

	for _, tt := range tests {
		die, _ := domain.ComputeErosionDie(tt.rate, 0)
		assert.Equal(t, tt.wantDie, die, "rate %d", tt.rate)
	}
}

func TestComputeErosionDie_Monotonic(t *testing.T) {
	prev := 0
	for rate := 0; rate <= 250; rate++ {
		die, _ := domain.ComputeErosionDie(rate, 0)
		assert.GreaterOrEqual(t, die, prev, "rate %d", rate)
		prev = die
	}
}

func TestComputeErosionDie_NeverLowers(t *testing.T) {
	die, crossed := domain.ComputeErosionDie(10, 3)
	assert.Equal(t, 3, die)
	assert.Empty(t, crossed)
}

func TestComputeErosionDie_CrossedTiers(t *testing.T) {
	// Jumping from below 60 straight past 100 crosses three tiers,
	// reported in ascending order.
	die, crossed := domain.ComputeErosionDie(105, 0)
	require.Len(t, crossed, 3)
	assert.Equal(t, 3, die)
	assert.Equal(t, 60, crossed[0].Threshold)
	assert.Equal(t, 80, crossed[1].Threshold)
	assert.Equal(t, 100, crossed[2].Threshold)

	// With the die already at 1, only the newer tiers are crossed.
	die, crossed = domain.ComputeErosionDie(105, 1)
	require.Len(t, crossed, 2)
	assert.Equal(t, 3, die)
	assert.Equal(t, 80, crossed[0].Threshold)
}

func TestApplyErosion(t *testing.T) {
	c := &domain.CharacterSheet{}
	c.SetStat(domain.StatErosion, 58)

	rate, crossed := c.ApplyErosion(7)
	assert.Equal(t, 65, rate)
	require.Len(t, crossed, 1)
	assert.Equal(t, 1, c.Stat(domain.StatErosionDie))

	// A second small bump below the next threshold crosses nothing.
	rate, crossed = c.ApplyErosion(5)
	assert.Equal(t, 70, rate)
	assert.Empty(t, crossed)
	assert.Equal(t, 1, c.Stat(domain.StatErosionDie))
}
