// Package gang implements the session state model for a badminton gang:
// players, courts, fee settings and the derived cost ledger. Every operation
// is a pure transformation over the AppData aggregate; the Store serializes
// them and persists the result.
package gang

import (
	"slices"

	"github.com/google/uuid"
)

const (
	// CourtSize is the number of players needed for a doubles game.
	CourtSize = 4
	// PaletteSize matches the number of court colors the UI defines.
	PaletteSize = 10
	// StorageKey is the fixed document key the aggregate persists under.
	StorageKey = "bgm-badminton-data"
)

type PaymentMethod string

const (
	PayMobile PaymentMethod = "mobile"
	PayCash   PaymentMethod = "cash"
)

type Player struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Games         int           `json:"games"`
	Shuttlecocks  int           `json:"shuttlecocks"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Paid          bool          `json:"paid"`
	// CourtID is empty while the player is not in any court.
	CourtID string `json:"courtId"`
}

type Court struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Players holds up to four player ids. Order encodes the team pairing:
	// the first two are one side, the next two the other.
	Players      []string `json:"players"`
	Shuttlecocks int      `json:"shuttlecocks"`
	IsPlaying    bool     `json:"isPlaying"`
	ColorIndex   int      `json:"colorIndex"`
}

// Settings holds the session fees in whole baht.
type Settings struct {
	PlayerCourtFee          int `json:"playerCourtFee"`
	PlayerShuttlecockFee    int `json:"playerShuttlecockFee"`
	OrganizerCourtFee       int `json:"organizerCourtFee"`
	OrganizerShuttlecockFee int `json:"organizerShuttlecockFee"`
}

// AppData is the aggregate root for one gang session.
type AppData struct {
	Players  []Player `json:"players"`
	Courts   []Court  `json:"courts"`
	Settings Settings `json:"settings"`
	// TotalShuttlecocksUsed counts shuttlecocks from completed games only.
	// Counters on courts still playing are not included until EndGame.
	TotalShuttlecocksUsed int `json:"totalShuttlecocksUsed"`
}

// Default returns an empty aggregate. Slices are allocated so the persisted
// document keeps the same shape as a live one.
func Default() AppData {
	return AppData{
		Players: []Player{},
		Courts:  []Court{},
	}
}

// Clone deep-copies the aggregate. Operations clone before mutating so a
// previously observed aggregate is never modified in place.
func (d AppData) Clone() AppData {
	next := d
	next.Players = slices.Clone(d.Players)
	next.Courts = make([]Court, len(d.Courts))
	for i, court := range d.Courts {
		court.Players = slices.Clone(court.Players)
		next.Courts[i] = court
	}

	return next
}

// PlayerByID returns the player with the given id.
func (d AppData) PlayerByID(id string) (Player, bool) {
	for _, player := range d.Players {
		if player.ID == id {
			return player, true
		}
	}

	return Player{}, false
}

// CourtByID returns the court with the given id.
func (d AppData) CourtByID(id string) (Court, bool) {
	for _, court := range d.Courts {
		if court.ID == id {
			return court, true
		}
	}

	return Court{}, false
}

func (d AppData) playerIndex(id string) int {
	return slices.IndexFunc(d.Players, func(p Player) bool { return p.ID == id })
}

func (d AppData) courtIndex(id string) int {
	return slices.IndexFunc(d.Courts, func(c Court) bool { return c.ID == id })
}

func newID() string {
	return uuid.NewString()
}
