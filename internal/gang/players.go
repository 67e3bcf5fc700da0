package gang

import (
	"fmt"
	"slices"
	"strings"
)

// AddPlayer registers a new member with zero stats, unpaid, paying by mobile
// transfer and not assigned to any court. Names must be non-empty and unique
// (exact match).
func AddPlayer(data AppData, name string) (AppData, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return data, fmt.Errorf("%w: player name is empty", ErrValidation)
	}

	for _, player := range data.Players {
		if player.Name == name {
			return data, fmt.Errorf("%w: player %q", ErrDuplicate, name)
		}
	}

	next := data.Clone()
	next.Players = append(next.Players, Player{
		ID:            newID(),
		Name:          name,
		PaymentMethod: PayMobile,
	})

	return next, nil
}

// DeletePlayer removes a member. Only players with no court, no settled
// payment and no completed games may be deleted, so billing history is never
// silently destroyed.
func DeletePlayer(data AppData, playerID string) (AppData, error) {
	player, ok := data.PlayerByID(playerID)
	if !ok {
		return data, fmt.Errorf("%w: unknown player", ErrValidation)
	}

	switch {
	case player.CourtID != "":
		return data, fmt.Errorf("%w: %s is in a court", ErrConstraint, player.Name)
	case player.Paid:
		return data, fmt.Errorf("%w: %s has already paid", ErrConstraint, player.Name)
	case player.Games > 0:
		return data, fmt.Errorf("%w: %s has played games", ErrConstraint, player.Name)
	}

	next := data.Clone()
	next.Players = slices.DeleteFunc(next.Players, func(p Player) bool { return p.ID == playerID })

	return next, nil
}

// TogglePaymentMethod flips a player between mobile transfer and cash. The
// method is locked once the player is marked paid.
func TogglePaymentMethod(data AppData, playerID string) (AppData, error) {
	idx := data.playerIndex(playerID)
	if idx < 0 {
		return data, fmt.Errorf("%w: unknown player", ErrValidation)
	}
	if data.Players[idx].Paid {
		return data, fmt.Errorf("%w: payment method is locked after settling", ErrConstraint)
	}

	next := data.Clone()
	if next.Players[idx].PaymentMethod == PayMobile {
		next.Players[idx].PaymentMethod = PayCash
	} else {
		next.Players[idx].PaymentMethod = PayMobile
	}

	return next, nil
}

// TogglePaid flips the settled flag. A player still on a court cannot settle
// since their game and shuttlecock counts are not final yet.
func TogglePaid(data AppData, playerID string) (AppData, error) {
	idx := data.playerIndex(playerID)
	if idx < 0 {
		return data, fmt.Errorf("%w: unknown player", ErrValidation)
	}

	player := data.Players[idx]
	if player.CourtID != "" {
		court, _ := data.CourtByID(player.CourtID)
		return data, fmt.Errorf("%w: %s is still in court %s", ErrConstraint, player.Name, court.Name)
	}

	next := data.Clone()
	next.Players[idx].Paid = !player.Paid

	return next, nil
}
