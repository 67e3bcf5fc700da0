package gang

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Summary builds the session summary as an Excel-compatible CSV document:
// UTF-8 with a byte-order mark, a cost section, a profit/loss section and a
// per-player detail section. Labels are Thai, matching the spreadsheets the
// gangs already use.
//
// Every member must have settled before a summary can be produced.
func Summary(data AppData) (string, error) {
	if len(data.Players) == 0 {
		return "", fmt.Errorf("%w: no players in session", ErrPrecondition)
	}
	for _, player := range data.Players {
		if !player.Paid {
			return "", fmt.Errorf("%w: %s has not paid yet", ErrPrecondition, player.Name)
		}
	}

	cash, mobile := Income(data)
	profit := ProfitLoss(data)
	label := "กำไร"
	if profit < 0 {
		label = "ขาดทุน"
		profit = -profit
	}

	var doc strings.Builder
	doc.WriteString("\uFEFF")
	doc.WriteString("สรุปรายได้การจัดก๊วนแบดมินตัน\n\n")

	doc.WriteString("--- ต้นทุน ---\n")
	fmt.Fprintf(&doc, "จำนวนลูกทั้งหมด,%d ลูก\n", TotalShuttlecocks(data))
	fmt.Fprintf(&doc, "ราคาลูกละ,%d บาท\n", data.Settings.OrganizerShuttlecockFee)
	fmt.Fprintf(&doc, "ราคาต้นทุนค่าลูก,%d บาท\n", ShuttlecockCost(data))
	fmt.Fprintf(&doc, "ค่าคอร์ท,%d บาท\n", data.Settings.OrganizerCourtFee)
	fmt.Fprintf(&doc, "ต้นทุนรวมผู้จัด,%d บาท\n\n", OrganizerCost(data))

	doc.WriteString("--- กำไร/ขาดทุน ---\n")
	fmt.Fprintf(&doc, "รายรับเงินสด,%d บาท\n", cash)
	fmt.Fprintf(&doc, "รายรับเงินโอน,%d บาท\n", mobile)
	fmt.Fprintf(&doc, "รายรับทั้งหมด,%d บาท\n", cash+mobile)
	fmt.Fprintf(&doc, "%s,%d บาท\n\n", label, profit)

	doc.WriteString("--- ข้อมูลผู้เล่น ---\n")
	doc.WriteString("ชื่อ,เกมส์,ลูก,รวม (บาท),วิธีชำระ,สถานะ\n")
	for _, player := range data.Players {
		method := "เงินสด"
		if player.PaymentMethod == PayMobile {
			method = "โอน"
		}
		status := "ยังไม่ชำระ"
		if player.Paid {
			status = "ชำระแล้ว"
		}
		fmt.Fprintf(&doc, "%s,%d,%d,%d,%s,%s\n",
			player.Name, player.Games, player.Shuttlecocks,
			PlayerTotal(player, data.Settings), method, status)
	}

	return doc.String(), nil
}

// SummaryFilename names the export artifact after the session date.
func SummaryFilename(day time.Time) string {
	return "BGM-Summary-" + day.Format("2006-01-02") + ".csv"
}

// WriteSummary writes the summary document into dir and returns the full
// path. Nothing is written when the precondition fails.
func WriteSummary(data AppData, dir string) (string, error) {
	doc, errDoc := Summary(data)
	if errDoc != nil {
		return "", errDoc
	}

	outPath := filepath.Join(dir, SummaryFilename(time.Now()))
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}

	return outPath, nil
}
