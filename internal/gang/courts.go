package gang

import (
	"fmt"
	"slices"
	"strings"
)

// CreateCourt opens a new court with a unique name. The color index is the
// highest existing index plus one, wrapped to the palette size, which keeps
// colors spread out and avoids immediate reuse after a court is closed.
func CreateCourt(data AppData, name string) (AppData, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return data, fmt.Errorf("%w: court name is empty", ErrValidation)
	}

	for _, court := range data.Courts {
		if court.Name == name {
			return data, fmt.Errorf("%w: court %q", ErrDuplicate, name)
		}
	}

	colorIndex := 0
	if len(data.Courts) > 0 {
		maxIndex := data.Courts[0].ColorIndex
		for _, court := range data.Courts[1:] {
			maxIndex = max(maxIndex, court.ColorIndex)
		}
		colorIndex = (maxIndex + 1) % PaletteSize
	}

	next := data.Clone()
	next.Courts = append(next.Courts, Court{
		ID:         newID(),
		Name:       name,
		Players:    []string{},
		ColorIndex: colorIndex,
	})

	return next, nil
}

// AssignPlayers stages players onto a court, preserving the given order
// since it determines the team pairing. Every player must currently be off
// court, the court must not be playing and may not exceed four players.
func AssignPlayers(data AppData, courtID string, playerIDs []string) (AppData, error) {
	courtIdx := data.courtIndex(courtID)
	if courtIdx < 0 {
		return data, fmt.Errorf("%w: unknown court", ErrValidation)
	}
	if len(playerIDs) == 0 {
		return data, fmt.Errorf("%w: no players selected", ErrValidation)
	}

	court := data.Courts[courtIdx]
	if court.IsPlaying {
		return data, fmt.Errorf("%w: court %s is mid-game", ErrConstraint, court.Name)
	}
	if len(court.Players)+len(playerIDs) > CourtSize {
		return data, fmt.Errorf("%w: court %s takes at most %d players", ErrCapacity, court.Name, CourtSize)
	}

	next := data.Clone()
	for _, playerID := range playerIDs {
		playerIdx := next.playerIndex(playerID)
		if playerIdx < 0 {
			return data, fmt.Errorf("%w: unknown player", ErrValidation)
		}
		if next.Players[playerIdx].CourtID != "" {
			return data, fmt.Errorf("%w: %s is already in a court", ErrConstraint, next.Players[playerIdx].Name)
		}
		next.Players[playerIdx].CourtID = courtID
		next.Courts[courtIdx].Players = append(next.Courts[courtIdx].Players, playerID)
	}

	return next, nil
}

// StartGame begins play on a full court. The shuttlecock counter starts at
// one unless a positive count was already carried over, e.g. after a
// removal/re-fill cycle.
func StartGame(data AppData, courtID string) (AppData, error) {
	courtIdx := data.courtIndex(courtID)
	if courtIdx < 0 {
		return data, fmt.Errorf("%w: unknown court", ErrValidation)
	}

	court := data.Courts[courtIdx]
	if court.IsPlaying {
		return data, fmt.Errorf("%w: court %s is already playing", ErrConstraint, court.Name)
	}
	if len(court.Players) != CourtSize {
		return data, fmt.Errorf("%w: court %s needs %d players", ErrConstraint, court.Name, CourtSize)
	}

	next := data.Clone()
	next.Courts[courtIdx].IsPlaying = true
	if next.Courts[courtIdx].Shuttlecocks == 0 {
		next.Courts[courtIdx].Shuttlecocks = 1
	}

	return next, nil
}

// AdjustShuttlecocks changes the live counter of a playing court. The count
// never drops below one once a game has started; a decrement that would is
// clamped silently rather than failing.
func AdjustShuttlecocks(data AppData, courtID string, delta int) (AppData, error) {
	courtIdx := data.courtIndex(courtID)
	if courtIdx < 0 {
		return data, fmt.Errorf("%w: unknown court", ErrValidation)
	}
	if !data.Courts[courtIdx].IsPlaying {
		return data, fmt.Errorf("%w: court %s is not playing", ErrConstraint, data.Courts[courtIdx].Name)
	}

	count := max(1, data.Courts[courtIdx].Shuttlecocks+delta)
	if count == data.Courts[courtIdx].Shuttlecocks {
		return data, nil
	}

	next := data.Clone()
	next.Courts[courtIdx].Shuttlecocks = count

	return next, nil
}

// EndGame finishes play on a court as one transaction: every player on the
// court is credited one game and the court's shuttlecocks, the session total
// grows by the same count, and the court goes back to empty. This is the
// only operation that turns live counters into permanent history.
func EndGame(data AppData, courtID string) (AppData, error) {
	courtIdx := data.courtIndex(courtID)
	if courtIdx < 0 {
		return data, fmt.Errorf("%w: unknown court", ErrValidation)
	}

	court := data.Courts[courtIdx]
	used := court.Shuttlecocks

	next := data.Clone()
	for i, player := range next.Players {
		if !slices.Contains(court.Players, player.ID) {
			continue
		}
		next.Players[i].CourtID = ""
		next.Players[i].Games++
		next.Players[i].Shuttlecocks += used
	}
	next.Courts[courtIdx].Players = []string{}
	next.Courts[courtIdx].IsPlaying = false
	next.Courts[courtIdx].Shuttlecocks = 0
	next.TotalShuttlecocksUsed += used

	return next, nil
}

// RemovePlayers clears a court without crediting anything, used to abort a
// mis-assigned court. Unlike EndGame no stats or totals change.
func RemovePlayers(data AppData, courtID string) (AppData, error) {
	courtIdx := data.courtIndex(courtID)
	if courtIdx < 0 {
		return data, fmt.Errorf("%w: unknown court", ErrValidation)
	}

	court := data.Courts[courtIdx]

	next := data.Clone()
	for i, player := range next.Players {
		if slices.Contains(court.Players, player.ID) {
			next.Players[i].CourtID = ""
		}
	}
	next.Courts[courtIdx].Players = []string{}
	next.Courts[courtIdx].IsPlaying = false
	next.Courts[courtIdx].Shuttlecocks = 0

	return next, nil
}

// CloseCourt removes an empty court from the session.
func CloseCourt(data AppData, courtID string) (AppData, error) {
	courtIdx := data.courtIndex(courtID)
	if courtIdx < 0 {
		return data, fmt.Errorf("%w: unknown court", ErrValidation)
	}
	if len(data.Courts[courtIdx].Players) > 0 {
		return data, fmt.Errorf("%w: court %s still has players", ErrConstraint, data.Courts[courtIdx].Name)
	}

	next := data.Clone()
	next.Courts = slices.DeleteFunc(next.Courts, func(c Court) bool { return c.ID == courtID })

	return next, nil
}

// UpdateSettings replaces the session fees. Fees are whole baht and may not
// be negative.
func UpdateSettings(data AppData, settings Settings) (AppData, error) {
	if settings.PlayerCourtFee < 0 || settings.PlayerShuttlecockFee < 0 ||
		settings.OrganizerCourtFee < 0 || settings.OrganizerShuttlecockFee < 0 {
		return data, fmt.Errorf("%w: fees cannot be negative", ErrValidation)
	}

	next := data.Clone()
	next.Settings = settings

	return next, nil
}
