package dice_test

import (
	"testing"

	"github.com/KirkDiggler/quickroll-bot/internal/dice"
	mockdice "github.com/KirkDiggler/quickroll-bot/internal/dice/mock"
	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "1d8 piercing",
			setupRolls: []int{6},
			count:      1,
			sides:      8,
			wantTotal:  6,
			wantRolls:  []int{6},
		},
		{
			name:       "3d6+4 fire",
			setupRolls: []int{4, 5, 1},
			count:      3,
			sides:      6,
			bonus:      4,
			wantTotal:  14,
			wantRolls:  []int{4, 5, 1},
		},
		{
			name:       "fewer predetermined rolls than dice",
			setupRolls: []int{3},
			count:      2,
			sides:      10,
			wantErr:    true,
		},
		{
			name:       "roll larger than the die",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
			assert.Equal(t, tt.wantTotal-tt.bonus, result.RawTotal)
		})
	}
}

func TestMockRoller_SequentialRolls(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{6, 1, 8})

	result, err := roller.Roll(2, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, result.Total)
	assert.Equal(t, 1, roller.Remaining())

	result, err = roller.Roll(1, 8, 3)
	require.NoError(t, err)
	assert.Equal(t, 11, result.Total) // 8+3
	assert.Equal(t, "1d8 **8** : [8]", result.String())

	_, err = roller.Roll(1, 20, 0)
	assert.Error(t, err)
}

func TestRandomRoller_StaysWithinDieFaces(t *testing.T) {
	roller := dice.NewRandomRoller()

	result, err := roller.Roll(2, 6, 3)
	require.NoError(t, err)
	assert.Len(t, result.Rolls, 2)
	assert.GreaterOrEqual(t, result.Total, 5)
	assert.LessOrEqual(t, result.Total, 15)
	for _, roll := range result.Rolls {
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, 6)
	}
}

func TestRandomRoller_RejectsInvalidDice(t *testing.T) {
	roller := dice.NewRandomRoller()

	for _, tc := range [][2]int{{0, 6}, {2, 0}, {dice.MaxCount + 1, 6}, {1, dice.MaxSides + 1}} {
		_, err := roller.Roll(tc[0], tc[1], 0)
		require.Error(t, err)
		assert.Equal(t, qrerr.CodeInvalidArgument, qrerr.GetCode(err))
	}
}
