package dice_test

import (
	"testing"

	"github.com/KirkDiggler/quickroll-bot/internal/dice"
	mockdice "github.com/KirkDiggler/quickroll-bot/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input       string
		wantFormula string
		wantType    string
	}{
		{input: "/r (2d6+4)[fire]", wantFormula: "2d6+4", wantType: "fire"},
		{input: "(/r (3d6+4)[acid])", wantFormula: "3d6+4", wantType: "acid"},
		{input: "/r ((1d8+2)*2)[slashing]", wantFormula: "(1d8+2)*2", wantType: "slashing"},
		{input: "  /r (12)[bludgeoning] ", wantFormula: "12", wantType: "bludgeoning"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := dice.ParseCommand(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.wantFormula, cmd.Formula)
			assert.Equal(t, tt.wantType, cmd.DamageType)
		})
	}
}

func TestParseCommand_Invalid(t *testing.T) {
	for _, input := range []string{"", "2d6 fire", "/r 2d6[fire]", "/r (2d6)", "/r (2d6)[Fire]", "/roll (2d6)[fire]"} {
		_, err := dice.ParseCommand(input)
		assert.Error(t, err, input)
	}
}

func TestCommand_RoundTripAndRoll(t *testing.T) {
	cmd, err := dice.ParseCommand("/r (2d6+4)[fire]")
	require.NoError(t, err)
	assert.Equal(t, "/r (2d6+4)[fire]", cmd.String())

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{2, 3})

	result, err := cmd.Roll(roller)
	require.NoError(t, err)
	assert.Equal(t, 9, result.Total)
	assert.Equal(t, "2d6+4", result.Formula)
}
