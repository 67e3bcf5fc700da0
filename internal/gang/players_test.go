package gang_test

import (
	"testing"

	"github.com/pnattawut/bgm-tui/internal/gang"
	"github.com/stretchr/testify/require"
)

// requireConsistent checks the court back-reference invariant: a player has
// a court id if and only if exactly one court lists that player once.
func requireConsistent(t *testing.T, data gang.AppData) {
	t.Helper()

	for _, player := range data.Players {
		listed := 0
		for _, court := range data.Courts {
			for _, id := range court.Players {
				if id == player.ID {
					listed++
					require.Equal(t, court.ID, player.CourtID)
				}
			}
		}
		if player.CourtID == "" {
			require.Zero(t, listed, "player %s listed on a court without back-reference", player.Name)
		} else {
			require.Equal(t, 1, listed, "player %s should be on exactly one court", player.Name)
		}
	}
}

func TestAddPlayer(t *testing.T) {
	data, err := gang.AddPlayer(gang.Default(), "Ann")
	require.NoError(t, err)
	require.Len(t, data.Players, 1)

	player := data.Players[0]
	require.NotEmpty(t, player.ID)
	require.Equal(t, "Ann", player.Name)
	require.Zero(t, player.Games)
	require.Zero(t, player.Shuttlecocks)
	require.Equal(t, gang.PayMobile, player.PaymentMethod)
	require.False(t, player.Paid)
	require.Empty(t, player.CourtID)
}

func TestAddPlayerTrimsName(t *testing.T) {
	data, err := gang.AddPlayer(gang.Default(), "  Ann ")
	require.NoError(t, err)
	require.Equal(t, "Ann", data.Players[0].Name)
}

func TestAddPlayerEmptyName(t *testing.T) {
	_, err := gang.AddPlayer(gang.Default(), "   ")
	require.ErrorIs(t, err, gang.ErrValidation)
}

func TestAddPlayerDuplicateName(t *testing.T) {
	data, err := gang.AddPlayer(gang.Default(), "Ann")
	require.NoError(t, err)

	after, err := gang.AddPlayer(data, "Ann")
	require.ErrorIs(t, err, gang.ErrDuplicate)
	require.Len(t, after.Players, 1)
}

func TestDeletePlayer(t *testing.T) {
	data, err := gang.AddPlayer(gang.Default(), "Ann")
	require.NoError(t, err)

	data, err = gang.DeletePlayer(data, data.Players[0].ID)
	require.NoError(t, err)
	require.Empty(t, data.Players)
}

func TestDeletePlayerGuards(t *testing.T) {
	data, err := gang.AddPlayer(gang.Default(), "Ann")
	require.NoError(t, err)
	playerID := data.Players[0].ID

	t.Run("paid", func(t *testing.T) {
		paid, errPaid := gang.TogglePaid(data, playerID)
		require.NoError(t, errPaid)

		_, errDelete := gang.DeletePlayer(paid, playerID)
		require.ErrorIs(t, errDelete, gang.ErrConstraint)
	})

	t.Run("on court", func(t *testing.T) {
		withCourt, errCourt := gang.CreateCourt(data, "C1")
		require.NoError(t, errCourt)
		staged, errAssign := gang.AssignPlayers(withCourt, withCourt.Courts[0].ID, []string{playerID})
		require.NoError(t, errAssign)

		_, errDelete := gang.DeletePlayer(staged, playerID)
		require.ErrorIs(t, errDelete, gang.ErrConstraint)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, errDelete := gang.DeletePlayer(data, "missing")
		require.ErrorIs(t, errDelete, gang.ErrValidation)
	})
}

func TestDeletePlayerWithGameHistory(t *testing.T) {
	data, courtID, ids := fourOnCourt(t)

	data, err := gang.StartGame(data, courtID)
	require.NoError(t, err)
	data, err = gang.EndGame(data, courtID)
	require.NoError(t, err)

	_, err = gang.DeletePlayer(data, ids[0])
	require.ErrorIs(t, err, gang.ErrConstraint)
}

func TestTogglePaymentMethod(t *testing.T) {
	data, err := gang.AddPlayer(gang.Default(), "Ann")
	require.NoError(t, err)
	playerID := data.Players[0].ID

	data, err = gang.TogglePaymentMethod(data, playerID)
	require.NoError(t, err)
	require.Equal(t, gang.PayCash, data.Players[0].PaymentMethod)

	data, err = gang.TogglePaymentMethod(data, playerID)
	require.NoError(t, err)
	require.Equal(t, gang.PayMobile, data.Players[0].PaymentMethod)
}

func TestTogglePaymentMethodLockedWhenPaid(t *testing.T) {
	data, err := gang.AddPlayer(gang.Default(), "Ann")
	require.NoError(t, err)
	playerID := data.Players[0].ID

	data, err = gang.TogglePaid(data, playerID)
	require.NoError(t, err)

	after, err := gang.TogglePaymentMethod(data, playerID)
	require.ErrorIs(t, err, gang.ErrConstraint)
	require.Equal(t, gang.PayMobile, after.Players[0].PaymentMethod)
}

func TestTogglePaidOnCourt(t *testing.T) {
	data, err := gang.AddPlayer(gang.Default(), "Ann")
	require.NoError(t, err)
	data, err = gang.CreateCourt(data, "C1")
	require.NoError(t, err)
	data, err = gang.AssignPlayers(data, data.Courts[0].ID, []string{data.Players[0].ID})
	require.NoError(t, err)

	_, err = gang.TogglePaid(data, data.Players[0].ID)
	require.ErrorIs(t, err, gang.ErrConstraint)
	requireConsistent(t, data)
}

func TestCopyOnWrite(t *testing.T) {
	before, err := gang.AddPlayer(gang.Default(), "Ann")
	require.NoError(t, err)

	after, err := gang.TogglePaid(before, before.Players[0].ID)
	require.NoError(t, err)

	require.False(t, before.Players[0].Paid)
	require.True(t, after.Players[0].Paid)
}
