package gang

// The ledger is derived on demand from the aggregate. Nothing here mutates
// state; the only stored figure is TotalShuttlecocksUsed, maintained by
// EndGame.

// TotalShuttlecocks counts completed-game shuttlecocks plus the live
// counters of courts currently playing. In-progress usage is a cost to the
// organizer as soon as the tube is opened, not when the game ends.
func TotalShuttlecocks(data AppData) int {
	total := data.TotalShuttlecocksUsed
	for _, court := range data.Courts {
		if court.IsPlaying {
			total += court.Shuttlecocks
		}
	}

	return total
}

// ShuttlecockCost is what the organizer pays for shuttlecocks alone.
func ShuttlecockCost(data AppData) int {
	return TotalShuttlecocks(data) * data.Settings.OrganizerShuttlecockFee
}

// OrganizerCost is the organizer's full outlay: shuttlecocks plus the flat
// court rental.
func OrganizerCost(data AppData) int {
	return ShuttlecockCost(data) + data.Settings.OrganizerCourtFee
}

// PlayerTotal is what one player owes: the flat per-head court fee plus
// their accumulated shuttlecocks at the per-player rate. Shuttlecocks from a
// game still in progress are not owed yet.
func PlayerTotal(player Player, settings Settings) int {
	return settings.PlayerCourtFee + player.Shuttlecocks*settings.PlayerShuttlecockFee
}

// Income sums the totals of players who have settled, split by payment
// method.
func Income(data AppData) (cash int, mobile int) {
	for _, player := range data.Players {
		if !player.Paid {
			continue
		}
		total := PlayerTotal(player, data.Settings)
		if player.PaymentMethod == PayCash {
			cash += total
		} else {
			mobile += total
		}
	}

	return cash, mobile
}

// ProfitLoss is collected income minus organizer cost. Zero counts as
// profit.
func ProfitLoss(data AppData) int {
	cash, mobile := Income(data)

	return cash + mobile - OrganizerCost(data)
}
