package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"lakd/internal/models"
	"lakd/internal/services"
	"lakd/internal/structures"
)

// Exporter renders a month of records as the two-sheet activity workbook:
// the daily log in the exact layout Parse reads back, plus a recap sheet
// with the signature block for printing.
type Exporter struct {
	conf *structures.Config
}

func NewExporter(conf *structures.Config) *Exporter {
	return &Exporter{conf: conf}
}

const (
	headerRowIndex = 10
	recapSheetName = "Rekap"
)

var activityHeaders = []string{
	"NO", "HARI", "TANGGAL", "JAM MULAI", "JAM SELESAI", "URAIAN KEGIATAN",
	"VOLUME", "MENIT", "KET", "", "KODE", "PASIEN UMUM", "PASIEN RUJUKAN", "PASIEN KHUSUS",
}

func (e *Exporter) Build(profile models.Profile, records map[string]*models.DayRecord, summary services.MonthSummary, attendance float64, year, month int) (*excelize.File, error) {
	f := excelize.NewFile()
	dataSheet := fmt.Sprintf("LAK %s %d", models.MonthName(month), year)
	if err := f.SetSheetName(f.GetSheetName(0), dataSheet); err != nil {
		return nil, err
	}

	if err := e.writeActivitySheet(f, dataSheet, profile, records, summary, year, month); err != nil {
		return nil, err
	}
	if err := e.writeRecapSheet(f, profile, summary, attendance, year, month); err != nil {
		return nil, err
	}
	return f, nil
}

func (e *Exporter) writeActivitySheet(f *excelize.File, sheet string, profile models.Profile, records map[string]*models.DayRecord, summary services.MonthSummary, year, month int) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
	})
	if err != nil {
		return err
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return err
	}
	dateStyle, err := f.NewStyle(&excelize.Style{
		Border:       thinBorder(),
		CustomNumFmt: strPtr("dd/mm/yyyy"),
	})
	if err != nil {
		return err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, Border: thinBorder()})
	if err != nil {
		return err
	}

	setCell(f, sheet, 1, 1, "LAPORAN AKTIVITAS KERJA HARIAN (LAK)")
	_ = f.MergeCell(sheet, "A1", "N1")
	_ = f.SetCellStyle(sheet, "A1", "N1", titleStyle)

	identity := []struct{ label, value string }{
		{"Nama", profile.Nama},
		{"NIP", profile.Nip},
		{"Pangkat / Golongan", profile.Pangkat},
		{"Unit Kerja", profile.Unit},
		{"Bulan", fmt.Sprintf("%s %d", models.MonthName(month), year)},
	}
	for i, row := range identity {
		setCell(f, sheet, 2, 3+i, row.label)
		setCell(f, sheet, 3, 3+i, ": "+row.value)
	}

	for i, header := range activityHeaders {
		setCell(f, sheet, i+1, headerRowIndex, header)
	}
	_ = f.SetCellStyle(sheet, axis(1, headerRowIndex), axis(len(activityHeaders), headerRowIndex), headerStyle)

	widths := []struct {
		col   string
		width float64
	}{
		{"A", 5}, {"B", 10}, {"C", 12}, {"D", 11}, {"E", 11}, {"F", 48},
		{"G", 12}, {"H", 8}, {"I", 6}, {"J", 2}, {"K", 14}, {"L", 9}, {"M", 10}, {"N", 10},
	}
	for _, w := range widths {
		_ = f.SetColWidth(sheet, w.col, w.col, w.width)
	}

	row := headerRowIndex + 1
	for idx, date := range summary.Dates {
		rec := records[date]
		if rec == nil {
			continue
		}
		day, err := models.ParseDate(date)
		if err != nil {
			return fmt.Errorf("invalid record date %q: %w", date, err)
		}
		for i, act := range rec.Activities {
			_ = f.SetCellStyle(sheet, axis(1, row), axis(len(activityHeaders), row), bodyStyle)
			if i == 0 {
				setCell(f, sheet, colNo+1, row, idx+1)
				setCell(f, sheet, colHari+1, row, rec.Hari)
				setCell(f, sheet, colTanggal+1, row, day)
				_ = f.SetCellStyle(sheet, axis(colTanggal+1, row), axis(colTanggal+1, row), dateStyle)
				setCell(f, sheet, colKet+1, row, rec.Keterangan)
				setCell(f, sheet, colPasienUmum+1, row, rec.PasienUmum)
				setCell(f, sheet, colPasienRujukan+1, row, rec.PasienRujukan)
				setCell(f, sheet, colPasienKhusus+1, row, rec.PasienKhusus)
			}
			setCell(f, sheet, colJamMulai+1, row, act.JamMulai)
			setCell(f, sheet, colJamSelesai+1, row, act.JamSelesai)
			setCell(f, sheet, colKegiatan+1, row, act.Kegiatan)
			setCell(f, sheet, colVolume+1, row, act.Volume)
			setCell(f, sheet, colMenit+1, row, act.Menit)
			setCell(f, sheet, colKode+1, row, act.Kode)
			row++
		}
	}

	setCell(f, sheet, colTanggal+1, row, fmt.Sprintf("%s : %d", totalRowMarker, summary.Stats.TotalActivities))
	setCell(f, sheet, colMenit+1, row, summary.Stats.TotalMinutes)
	_ = f.SetCellStyle(sheet, axis(1, row), axis(len(activityHeaders), row), totalStyle)
	return nil
}

func (e *Exporter) writeRecapSheet(f *excelize.File, profile models.Profile, summary services.MonthSummary, attendance float64, year, month int) error {
	sheet := recapSheetName
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 13},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Underline: "single"}})
	if err != nil {
		return err
	}

	setCell(f, sheet, 1, 1, "REKAPITULASI LAPORAN AKTIVITAS KERJA")
	_ = f.MergeCell(sheet, "A1", "D1")
	_ = f.SetCellStyle(sheet, "A1", "D1", titleStyle)
	setCell(f, sheet, 1, 3, "Bulan")
	setCell(f, sheet, 2, 3, fmt.Sprintf(": %s %d", models.MonthName(month), year))

	stats := []struct {
		label string
		value interface{}
	}{
		{"Jumlah Hari Tercatat", summary.Stats.TotalDays},
		{"Total Aktivitas", summary.Stats.TotalActivities},
		{"Total Menit Kerja", summary.Stats.TotalMinutes},
		{"Pasien Umum", summary.Stats.PatientUmum},
		{"Pasien Rujukan", summary.Stats.PatientRujukan},
		{"Pasien Khusus", summary.Stats.PatientKhusus},
		{"Total Pasien", summary.Stats.TotalPatients},
		{"Hari Izin Sakit", summary.SickLeaveDays},
		{"Hari Libur Nasional", summary.HolidayDays},
		{"Persentase Kehadiran", fmt.Sprintf("%.1f%%", attendance)},
	}
	for i, row := range stats {
		setCell(f, sheet, 1, 5+i, row.label)
		setCell(f, sheet, 2, 5+i, row.value)
		_ = f.SetCellStyle(sheet, axis(1, 5+i), axis(2, 5+i), labelStyle)
	}
	_ = f.SetColWidth(sheet, "A", "A", 26)
	_ = f.SetColWidth(sheet, "B", "B", 16)
	_ = f.SetColWidth(sheet, "D", "D", 30)

	headRole := e.conf.Report.HeadRole
	if headRole == "" {
		headRole = "Kepala Puskesmas"
	}
	now := time.Now()
	signRow := 5 + len(stats) + 2

	setCell(f, sheet, 1, signRow, "Mengetahui,")
	setCell(f, sheet, 1, signRow+1, headRole)
	setCell(f, sheet, 1, signRow+5, e.conf.Report.HeadName)
	_ = f.SetCellStyle(sheet, axis(1, signRow+5), axis(1, signRow+5), boldStyle)
	setCell(f, sheet, 1, signRow+6, "NIP. "+e.conf.Report.HeadNip)

	setCell(f, sheet, 4, signRow, fmt.Sprintf("%s, %d %s %d", profile.Unit, now.Day(), models.MonthName(int(now.Month())), now.Year()))
	setCell(f, sheet, 4, signRow+1, "Pembuat Laporan")
	setCell(f, sheet, 4, signRow+5, profile.Nama)
	_ = f.SetCellStyle(sheet, axis(4, signRow+5), axis(4, signRow+5), boldStyle)
	setCell(f, sheet, 4, signRow+6, "NIP. "+profile.Nip)
	return nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
}

func axis(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) {
	_ = f.SetCellValue(sheet, axis(col, row), value)
}

func strPtr(s string) *string {
	return &s
}
