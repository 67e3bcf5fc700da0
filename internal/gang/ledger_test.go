package gang_test

import (
	"testing"

	"github.com/pnattawut/bgm-tui/internal/gang"
	"github.com/stretchr/testify/require"
)

func TestPlayerTotal(t *testing.T) {
	settings := gang.Settings{PlayerCourtFee: 20, PlayerShuttlecockFee: 5}
	player := gang.Player{Shuttlecocks: 4}

	require.Equal(t, 40, gang.PlayerTotal(player, settings))
}

func TestTotalShuttlecocksIncludesLiveGames(t *testing.T) {
	data, courtID, _ := fourOnCourt(t)
	data.TotalShuttlecocksUsed = 6

	var err error
	data, err = gang.StartGame(data, courtID)
	require.NoError(t, err)
	data, err = gang.AdjustShuttlecocks(data, courtID, 1)
	require.NoError(t, err)

	// 6 completed plus 2 on the playing court.
	require.Equal(t, 8, gang.TotalShuttlecocks(data))
}

func TestOrganizerCost(t *testing.T) {
	data := gang.Default()
	data.Settings = gang.Settings{OrganizerCourtFee: 1200, OrganizerShuttlecockFee: 80}
	data.TotalShuttlecocksUsed = 10

	require.Equal(t, 800, gang.ShuttlecockCost(data))
	require.Equal(t, 2000, gang.OrganizerCost(data))
}

func TestIncomeSplitsByMethod(t *testing.T) {
	data := gang.Default()
	data.Settings = gang.Settings{PlayerCourtFee: 100, PlayerShuttlecockFee: 20}
	data.Players = []gang.Player{
		{ID: "a", Name: "Ann", Shuttlecocks: 2, Paid: true, PaymentMethod: gang.PayCash},
		{ID: "b", Name: "Bee", Shuttlecocks: 3, Paid: true, PaymentMethod: gang.PayMobile},
		{ID: "c", Name: "Chai", Shuttlecocks: 5, Paid: false, PaymentMethod: gang.PayCash},
	}

	cash, mobile := gang.Income(data)
	require.Equal(t, 140, cash)
	require.Equal(t, 160, mobile)
}

func TestProfitLoss(t *testing.T) {
	data := gang.Default()
	data.Settings = gang.Settings{
		PlayerCourtFee:          100,
		OrganizerCourtFee:       150,
		OrganizerShuttlecockFee: 80,
	}
	data.Players = []gang.Player{
		{ID: "a", Name: "Ann", Paid: true, PaymentMethod: gang.PayCash},
	}

	require.Equal(t, -50, gang.ProfitLoss(data))

	data.Settings.OrganizerCourtFee = 100
	require.Zero(t, gang.ProfitLoss(data))
}
