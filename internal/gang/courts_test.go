package gang_test

import (
	"testing"

	"github.com/pnattawut/bgm-tui/internal/gang"
	"github.com/stretchr/testify/require"
)

// fourOnCourt builds a session with four members staged on one court, ready
// to start a game.
func fourOnCourt(t *testing.T) (gang.AppData, string, []string) {
	t.Helper()

	data := gang.Default()
	var err error
	for _, name := range []string{"Ann", "Bee", "Chai", "Dao"} {
		data, err = gang.AddPlayer(data, name)
		require.NoError(t, err)
	}

	data, err = gang.CreateCourt(data, "C1")
	require.NoError(t, err)
	courtID := data.Courts[0].ID

	ids := make([]string, 0, len(data.Players))
	for _, player := range data.Players {
		ids = append(ids, player.ID)
	}

	data, err = gang.AssignPlayers(data, courtID, ids)
	require.NoError(t, err)
	requireConsistent(t, data)

	return data, courtID, ids
}

func TestCreateCourt(t *testing.T) {
	data, err := gang.CreateCourt(gang.Default(), "C1")
	require.NoError(t, err)
	require.Len(t, data.Courts, 1)

	court := data.Courts[0]
	require.Equal(t, "C1", court.Name)
	require.Empty(t, court.Players)
	require.Zero(t, court.Shuttlecocks)
	require.False(t, court.IsPlaying)
	require.Zero(t, court.ColorIndex)
}

func TestCreateCourtValidation(t *testing.T) {
	_, err := gang.CreateCourt(gang.Default(), " ")
	require.ErrorIs(t, err, gang.ErrValidation)

	data, err := gang.CreateCourt(gang.Default(), "C1")
	require.NoError(t, err)
	_, err = gang.CreateCourt(data, "C1")
	require.ErrorIs(t, err, gang.ErrDuplicate)
}

func TestCreateCourtColorAllocation(t *testing.T) {
	data := gang.Default()
	var err error
	data, err = gang.CreateCourt(data, "C1")
	require.NoError(t, err)
	data, err = gang.CreateCourt(data, "C2")
	require.NoError(t, err)
	require.Equal(t, 1, data.Courts[1].ColorIndex)

	// Closing the first court must not recycle its color right away.
	data, err = gang.CloseCourt(data, data.Courts[0].ID)
	require.NoError(t, err)
	data, err = gang.CreateCourt(data, "C3")
	require.NoError(t, err)
	require.Equal(t, 2, data.Courts[1].ColorIndex)
}

func TestCreateCourtColorWrapsPalette(t *testing.T) {
	data := gang.Default()
	var err error
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
		data, err = gang.CreateCourt(data, name)
		require.NoError(t, err)
	}

	require.Equal(t, gang.PaletteSize-1, data.Courts[9].ColorIndex)
	require.Zero(t, data.Courts[10].ColorIndex)
}

func TestAssignPlayersCapacity(t *testing.T) {
	data, courtID, _ := fourOnCourt(t)

	data, err := gang.AddPlayer(data, "Eve")
	require.NoError(t, err)
	eve := data.Players[4].ID

	_, err = gang.AssignPlayers(data, courtID, []string{eve})
	require.ErrorIs(t, err, gang.ErrCapacity)
}

func TestAssignPlayersAlreadyStaged(t *testing.T) {
	data, err := gang.AddPlayer(gang.Default(), "Ann")
	require.NoError(t, err)
	data, err = gang.CreateCourt(data, "C1")
	require.NoError(t, err)
	data, err = gang.CreateCourt(data, "C2")
	require.NoError(t, err)

	ann := data.Players[0].ID
	data, err = gang.AssignPlayers(data, data.Courts[0].ID, []string{ann})
	require.NoError(t, err)

	after, err := gang.AssignPlayers(data, data.Courts[1].ID, []string{ann})
	require.ErrorIs(t, err, gang.ErrConstraint)
	require.Empty(t, after.Courts[1].Players)
	requireConsistent(t, after)
}

func TestAssignPlayersDuplicateSelection(t *testing.T) {
	data, err := gang.AddPlayer(gang.Default(), "Ann")
	require.NoError(t, err)
	data, err = gang.CreateCourt(data, "C1")
	require.NoError(t, err)

	ann := data.Players[0].ID
	after, err := gang.AssignPlayers(data, data.Courts[0].ID, []string{ann, ann})
	require.ErrorIs(t, err, gang.ErrConstraint)
	require.Empty(t, after.Courts[0].Players)
}

func TestAssignPlayersWhilePlaying(t *testing.T) {
	data, courtID, _ := fourOnCourt(t)
	data, err := gang.StartGame(data, courtID)
	require.NoError(t, err)

	data, err = gang.AddPlayer(data, "Eve")
	require.NoError(t, err)

	_, err = gang.AssignPlayers(data, courtID, []string{data.Players[4].ID})
	require.ErrorIs(t, err, gang.ErrConstraint)
}

func TestAssignPlayersKeepsOrder(t *testing.T) {
	data := gang.Default()
	var err error
	for _, name := range []string{"Ann", "Bee", "Chai", "Dao"} {
		data, err = gang.AddPlayer(data, name)
		require.NoError(t, err)
	}
	data, err = gang.CreateCourt(data, "C1")
	require.NoError(t, err)

	// Assign in reverse; the list order decides the team pairing.
	ids := []string{data.Players[3].ID, data.Players[2].ID, data.Players[1].ID, data.Players[0].ID}
	data, err = gang.AssignPlayers(data, data.Courts[0].ID, ids)
	require.NoError(t, err)
	require.Equal(t, ids, data.Courts[0].Players)
}

func TestStartGame(t *testing.T) {
	data, courtID, _ := fourOnCourt(t)

	data, err := gang.StartGame(data, courtID)
	require.NoError(t, err)
	require.True(t, data.Courts[0].IsPlaying)
	require.Equal(t, 1, data.Courts[0].Shuttlecocks)

	_, err = gang.StartGame(data, courtID)
	require.ErrorIs(t, err, gang.ErrConstraint)
}

func TestStartGameNeedsFullCourt(t *testing.T) {
	data, err := gang.AddPlayer(gang.Default(), "Ann")
	require.NoError(t, err)
	data, err = gang.CreateCourt(data, "C1")
	require.NoError(t, err)
	data, err = gang.AssignPlayers(data, data.Courts[0].ID, []string{data.Players[0].ID})
	require.NoError(t, err)

	_, err = gang.StartGame(data, data.Courts[0].ID)
	require.ErrorIs(t, err, gang.ErrConstraint)
}

func TestStartGameKeepsCarriedShuttlecocks(t *testing.T) {
	data, courtID, ids := fourOnCourt(t)

	data, err := gang.StartGame(data, courtID)
	require.NoError(t, err)
	data, err = gang.AdjustShuttlecocks(data, courtID, 1)
	require.NoError(t, err)

	// Abort and re-fill: the counter carries over and StartGame must not
	// reset it back to one.
	data, err = gang.RemovePlayers(data, courtID)
	require.NoError(t, err)
	require.Zero(t, data.Courts[0].Shuttlecocks)

	data, err = gang.AssignPlayers(data, courtID, ids)
	require.NoError(t, err)
	data, err = gang.StartGame(data, courtID)
	require.NoError(t, err)
	require.Equal(t, 1, data.Courts[0].Shuttlecocks)
}

func TestAdjustShuttlecocks(t *testing.T) {
	data, courtID, _ := fourOnCourt(t)
	data, err := gang.StartGame(data, courtID)
	require.NoError(t, err)

	for range 3 {
		data, err = gang.AdjustShuttlecocks(data, courtID, 1)
		require.NoError(t, err)
	}
	require.Equal(t, 4, data.Courts[0].Shuttlecocks)

	data, err = gang.AdjustShuttlecocks(data, courtID, -1)
	require.NoError(t, err)
	require.Equal(t, 3, data.Courts[0].Shuttlecocks)
}

func TestAdjustShuttlecocksClampsAtOne(t *testing.T) {
	data, courtID, _ := fourOnCourt(t)
	data, err := gang.StartGame(data, courtID)
	require.NoError(t, err)

	// The first shuttlecock is never refunded: decrementing at one is a
	// silent no-op, not an error.
	after, err := gang.AdjustShuttlecocks(data, courtID, -1)
	require.NoError(t, err)
	require.Equal(t, data, after)
}

func TestAdjustShuttlecocksNotPlaying(t *testing.T) {
	data, courtID, _ := fourOnCourt(t)

	_, err := gang.AdjustShuttlecocks(data, courtID, 1)
	require.ErrorIs(t, err, gang.ErrConstraint)
}

func TestEndGameCreditsPlayersAndTotal(t *testing.T) {
	data, courtID, _ := fourOnCourt(t)

	var err error
	data, err = gang.StartGame(data, courtID)
	require.NoError(t, err)
	for range 3 {
		data, err = gang.AdjustShuttlecocks(data, courtID, 1)
		require.NoError(t, err)
	}

	data, err = gang.EndGame(data, courtID)
	require.NoError(t, err)

	for _, player := range data.Players {
		require.Equal(t, 1, player.Games)
		require.Equal(t, 4, player.Shuttlecocks)
		require.Empty(t, player.CourtID)
	}
	require.Equal(t, 4, data.TotalShuttlecocksUsed)

	court := data.Courts[0]
	require.Empty(t, court.Players)
	require.False(t, court.IsPlaying)
	require.Zero(t, court.Shuttlecocks)
	requireConsistent(t, data)
}

func TestRemovePlayersCreditsNothing(t *testing.T) {
	data, courtID, _ := fourOnCourt(t)

	var err error
	data, err = gang.StartGame(data, courtID)
	require.NoError(t, err)
	data, err = gang.AdjustShuttlecocks(data, courtID, 1)
	require.NoError(t, err)

	data, err = gang.RemovePlayers(data, courtID)
	require.NoError(t, err)

	for _, player := range data.Players {
		require.Zero(t, player.Games)
		require.Zero(t, player.Shuttlecocks)
		require.Empty(t, player.CourtID)
	}
	require.Zero(t, data.TotalShuttlecocksUsed)
	require.Empty(t, data.Courts[0].Players)
	require.False(t, data.Courts[0].IsPlaying)
	requireConsistent(t, data)
}

func TestCloseCourt(t *testing.T) {
	data, err := gang.CreateCourt(gang.Default(), "C1")
	require.NoError(t, err)

	data, err = gang.CloseCourt(data, data.Courts[0].ID)
	require.NoError(t, err)
	require.Empty(t, data.Courts)
}

func TestCloseCourtOccupied(t *testing.T) {
	data, courtID, _ := fourOnCourt(t)

	_, err := gang.CloseCourt(data, courtID)
	require.ErrorIs(t, err, gang.ErrConstraint)
}

func TestUpdateSettings(t *testing.T) {
	data, err := gang.UpdateSettings(gang.Default(), gang.Settings{
		PlayerCourtFee:          100,
		PlayerShuttlecockFee:    20,
		OrganizerCourtFee:       1200,
		OrganizerShuttlecockFee: 80,
	})
	require.NoError(t, err)
	require.Equal(t, 100, data.Settings.PlayerCourtFee)
	require.Equal(t, 80, data.Settings.OrganizerShuttlecockFee)

	_, err = gang.UpdateSettings(data, gang.Settings{PlayerCourtFee: -1})
	require.ErrorIs(t, err, gang.ErrValidation)
}
