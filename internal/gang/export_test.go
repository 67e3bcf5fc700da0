package gang_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pnattawut/bgm-tui/internal/gang"
	"github.com/stretchr/testify/require"
)

func TestSummaryRequiresEveryonePaid(t *testing.T) {
	data, _, ids := fourOnCourt(t)

	_, err := gang.Summary(data)
	require.ErrorIs(t, err, gang.ErrPrecondition)

	data, err = gang.RemovePlayers(data, data.Courts[0].ID)
	require.NoError(t, err)
	for _, id := range ids {
		data, err = gang.TogglePaid(data, id)
		require.NoError(t, err)
	}

	_, err = gang.Summary(data)
	require.NoError(t, err)
}

func TestSummaryRequiresPlayers(t *testing.T) {
	_, err := gang.Summary(gang.Default())
	require.ErrorIs(t, err, gang.ErrPrecondition)
}

func TestSummaryContent(t *testing.T) {
	data := gang.Default()
	data.Settings = gang.Settings{
		PlayerCourtFee:          100,
		PlayerShuttlecockFee:    20,
		OrganizerCourtFee:       1200,
		OrganizerShuttlecockFee: 80,
	}
	data.TotalShuttlecocksUsed = 10
	data.Players = []gang.Player{
		{ID: "a", Name: "Ann", Games: 3, Shuttlecocks: 6, Paid: true, PaymentMethod: gang.PayMobile},
		{ID: "b", Name: "Bee", Games: 2, Shuttlecocks: 4, Paid: true, PaymentMethod: gang.PayCash},
	}

	doc, err := gang.Summary(data)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(doc, "\uFEFF"), "summary must carry a UTF-8 BOM")
	require.Contains(t, doc, "สรุปรายได้การจัดก๊วนแบดมินตัน\n")
	require.Contains(t, doc, "จำนวนลูกทั้งหมด,10 ลูก\n")
	require.Contains(t, doc, "ราคาลูกละ,80 บาท\n")
	require.Contains(t, doc, "ราคาต้นทุนค่าลูก,800 บาท\n")
	require.Contains(t, doc, "ต้นทุนรวมผู้จัด,2000 บาท\n")
	require.Contains(t, doc, "รายรับเงินสด,180 บาท\n")
	require.Contains(t, doc, "รายรับเงินโอน,220 บาท\n")
	require.Contains(t, doc, "รายรับทั้งหมด,400 บาท\n")
	// 400 income against 2000 cost is a 1600 loss, reported as an absolute
	// value under the loss label.
	require.Contains(t, doc, "ขาดทุน,1600 บาท\n")
	require.Contains(t, doc, "ชื่อ,เกมส์,ลูก,รวม (บาท),วิธีชำระ,สถานะ\n")
	require.Contains(t, doc, "Ann,3,6,220,โอน,ชำระแล้ว\n")
	require.Contains(t, doc, "Bee,2,4,180,เงินสด,ชำระแล้ว\n")
}

func TestSummaryProfitLabel(t *testing.T) {
	data := gang.Default()
	data.Settings = gang.Settings{PlayerCourtFee: 100}
	data.Players = []gang.Player{
		{ID: "a", Name: "Ann", Paid: true, PaymentMethod: gang.PayCash},
	}

	doc, err := gang.Summary(data)
	require.NoError(t, err)
	require.Contains(t, doc, "กำไร,100 บาท\n")
}

func TestSummaryFilename(t *testing.T) {
	day := time.Date(2026, 9, 1, 20, 30, 0, 0, time.UTC)
	require.Equal(t, "BGM-Summary-2026-09-01.csv", gang.SummaryFilename(day))
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()

	data := gang.Default()
	data.Players = []gang.Player{
		{ID: "a", Name: "Ann", Paid: true, PaymentMethod: gang.PayMobile},
	}

	outPath, err := gang.WriteSummary(data, dir)
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(outPath))
	require.Equal(t, gang.SummaryFilename(time.Now()), filepath.Base(outPath))

	raw, errRead := os.ReadFile(outPath)
	require.NoError(t, errRead)
	require.True(t, strings.HasPrefix(string(raw), "\uFEFF"))
}

func TestWriteSummaryPreconditionWritesNothing(t *testing.T) {
	dir := t.TempDir()

	data := gang.Default()
	data.Players = []gang.Player{{ID: "a", Name: "Ann"}}

	_, err := gang.WriteSummary(data, dir)
	require.ErrorIs(t, err, gang.ErrPrecondition)

	entries, errRead := os.ReadDir(dir)
	require.NoError(t, errRead)
	require.Empty(t, entries)
}
