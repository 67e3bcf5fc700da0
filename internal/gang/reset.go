package gang

// ResetOptions selects what the start-over operation wipes. Players and
// courts are independent choices; the completed-shuttlecock total is always
// zeroed and the fee settings are never touched.
type ResetOptions struct {
	// DeletePlayers drops all member records. When false the members are
	// kept and only their gameplay fields are reset.
	DeletePlayers bool
	// DeleteCourts drops all courts. When false the courts keep their names
	// and colors but are emptied.
	DeleteCourts bool
}

// Reset starts a new gang session according to the chosen options.
func Reset(data AppData, opts ResetOptions) AppData {
	next := data.Clone()

	if opts.DeletePlayers {
		next.Players = []Player{}
	} else {
		for i := range next.Players {
			next.Players[i].Games = 0
			next.Players[i].Shuttlecocks = 0
			next.Players[i].Paid = false
			next.Players[i].PaymentMethod = PayMobile
			next.Players[i].CourtID = ""
		}
	}

	if opts.DeleteCourts {
		next.Courts = []Court{}
	} else {
		for i := range next.Courts {
			next.Courts[i].Players = []string{}
			next.Courts[i].IsPlaying = false
			next.Courts[i].Shuttlecocks = 0
		}
	}

	next.TotalShuttlecocksUsed = 0

	return next
}
