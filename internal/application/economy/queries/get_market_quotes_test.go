package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceminer-go/internal/application/economy/queries"
	"github.com/andrescamacho/spaceminer-go/internal/application/engine"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

func TestGetMarketQuotes_NamedStation(t *testing.T) {
	// Arrange
	e := engine.New(engine.Options{InitialAsteroids: engine.NoAsteroids, Random: shared.NewRandomSource(1)})
	h := queries.NewGetMarketQuotesHandler(e)

	// Act
	resp, err := h.Handle(context.Background(), &queries.GetMarketQuotesQuery{Station: "Void Monastery"})

	// Assert
	require.NoError(t, err)
	quotes := resp.(*queries.GetMarketQuotesResponse)
	assert.Equal(t, "Void Monastery", quotes.Station)
	assert.Equal(t, 500, quotes.Credits)
	for _, q := range quotes.Minerals {
		assert.Equal(t, q.Mineral == shared.MineralAetherium.String(), q.Specialized, q.Mineral)
	}
	require.Len(t, quotes.Upgrades, 4)
	assert.Equal(t, "cargo", quotes.Upgrades[0].Kind)
	assert.Equal(t, 500, quotes.Upgrades[0].Cost)
	assert.True(t, quotes.Upgrades[0].Affordable)
}

func TestGetMarketQuotes_NotDockedUsesBasePrices(t *testing.T) {
	e := engine.New(engine.Options{InitialAsteroids: engine.NoAsteroids, Random: shared.NewRandomSource(1)})
	h := queries.NewGetMarketQuotesHandler(e)

	resp, err := h.Handle(context.Background(), &queries.GetMarketQuotesQuery{})

	require.NoError(t, err)
	quotes := resp.(*queries.GetMarketQuotesResponse)
	assert.Empty(t, quotes.Station)
	for _, q := range quotes.Minerals {
		assert.False(t, q.Specialized)
	}
}

func TestGetMarketQuotes_UnknownStation(t *testing.T) {
	e := engine.New(engine.Options{InitialAsteroids: engine.NoAsteroids})
	h := queries.NewGetMarketQuotesHandler(e)

	_, err := h.Handle(context.Background(), &queries.GetMarketQuotesQuery{Station: "Nowhere"})

	assert.Error(t, err)
}
