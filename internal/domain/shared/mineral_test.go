package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

func TestParseMineral_AcceptsDisplayAndShortNames(t *testing.T) {
	tests := []struct {
		input string
		want  shared.Mineral
	}{
		{"Ferro-Nickel", shared.MineralFerroNickel},
		{"ferronickel", shared.MineralFerroNickel},
		{"FERRO_NICKEL", shared.MineralFerroNickel},
		{"Silicon Crystal", shared.MineralSilicon},
		{"Silicon", shared.MineralSilicon},
		{"Cobalt", shared.MineralCobalt},
		{"cobalt ore", shared.MineralCobalt},
		{"AETHERIUM", shared.MineralAetherium},
		{"Quantum", shared.MineralQuantum},
		{"quantum-fluid", shared.MineralQuantum},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := shared.ParseMineral(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMineral_RejectsUnknownNames(t *testing.T) {
	for _, input := range []string{"", "Unobtainium", "Ore", "Nickel Ferro Dust"} {
		_, err := shared.ParseMineral(input)

		assert.Error(t, err, input)
	}
}

func TestRollMineral_RarityLadder(t *testing.T) {
	assert.Equal(t, shared.MineralFerroNickel, shared.RollMineral(0.60))
	assert.Equal(t, shared.MineralSilicon, shared.RollMineral(0.61))
	assert.Equal(t, shared.MineralCobalt, shared.RollMineral(0.90))
	assert.Equal(t, shared.MineralAetherium, shared.RollMineral(0.97))
	assert.Equal(t, shared.MineralQuantum, shared.RollMineral(0.995))
}
