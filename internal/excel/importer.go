package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"lakd/internal/models"
)

// ImportResult is everything recovered from one activity workbook.
type ImportResult struct {
	Profile models.Profile
	Records map[string]*models.DayRecord
}

// The header row must sit inside the preamble; a workbook without a
// recognizable "NO" column within this many rows is rejected.
const headerScanLimit = 16

// Column layout of the activity sheet.
const (
	colNo = iota
	colHari
	colTanggal
	colJamMulai
	colJamSelesai
	colKegiatan
	colVolume
	colMenit
	colKet
	_
	colKode
	colPasienUmum
	colPasienRujukan
	colPasienKhusus
)

const totalRowMarker = "Total Aktivitas"

// Parse reads an activity workbook and rebuilds the daily records and the
// employee profile embedded in its preamble.
func Parse(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := findActivitySheet(f)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Records: make(map[string]*models.DayRecord)}
	parseProfile(rows, &result.Profile)

	headerRow := -1
	for i := 0; i < len(rows) && i < headerScanLimit; i++ {
		if strings.EqualFold(strings.TrimSpace(cell(rows[i], colNo)), "NO") {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return nil, fmt.Errorf("sheet %q has no activity header row", sheet)
	}

	var current *models.DayRecord
	for _, row := range rows[headerRow+1:] {
		if strings.Contains(cell(row, colTanggal), totalRowMarker) {
			current = nil
			continue
		}

		if date, ok := CellDate(cell(row, colTanggal)); ok && strings.TrimSpace(cell(row, colNo)) != "" {
			rec, exists := result.Records[date]
			if !exists {
				rec = &models.DayRecord{Tanggal: date}
				result.Records[date] = rec
			}
			rec.Hari = strings.TrimSpace(cell(row, colHari))
			if rec.Hari == "" {
				if t, err := models.ParseDate(date); err == nil {
					rec.Hari = models.DayName(t)
				}
			}
			ket := strings.TrimSpace(cell(row, colKet))
			rec.SetDayType(models.DayTypeForKeterangan(ket))
			current = rec
		}
		if current == nil {
			continue
		}

		start := CellTime(cell(row, colJamMulai))
		end := CellTime(cell(row, colJamSelesai))
		if start != "" && end != "" {
			entry := models.ActivityEntry{
				JamMulai:   start,
				JamSelesai: end,
				Kegiatan:   strings.TrimSpace(cell(row, colKegiatan)),
				Volume:     strings.TrimSpace(cell(row, colVolume)),
				Menit:      cast.ToInt(strings.TrimSpace(cell(row, colMenit))),
				Kode:       strings.TrimSpace(cell(row, colKode)),
			}
			if entry.Volume == "" {
				entry.Volume = "1 kegiatan"
			}
			current.Activities = append(current.Activities, entry)
		}

		// Patient counters overwrite, not accumulate: a re-imported file
		// is the source of truth for its own days.
		if v := strings.TrimSpace(cell(row, colPasienUmum)); v != "" {
			current.PasienUmum = cast.ToInt(v)
		}
		if v := strings.TrimSpace(cell(row, colPasienRujukan)); v != "" {
			current.PasienRujukan = cast.ToInt(v)
		}
		if v := strings.TrimSpace(cell(row, colPasienKhusus)); v != "" {
			current.PasienKhusus = cast.ToInt(v)
		}
	}

	for _, rec := range result.Records {
		rec.RecomputeTotal()
	}
	return result, nil
}

// findActivitySheet picks the sheet carrying the daily log. Exported
// workbooks name it after the report, hand-edited ones sometimes rename
// it, so fall back to the first sheet.
func findActivitySheet(f *excelize.File) string {
	sheets := f.GetSheetList()
	for _, name := range sheets {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "lak") || strings.Contains(lower, "laporan aktivitas") {
			return name
		}
	}
	return sheets[0]
}

// parseProfile reads the identity band above the activity table. Labels
// sit in the second column, values in the third, usually prefixed with a
// colon separator.
func parseProfile(rows [][]string, p *models.Profile) {
	for i := 2; i <= 8 && i < len(rows); i++ {
		label := strings.ToLower(strings.TrimSpace(cell(rows[i], 1)))
		if label == "" {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(cell(rows[i], 2)), ":"))
		switch {
		case strings.Contains(label, "nama"):
			p.Nama = value
		case strings.Contains(label, "nip"):
			p.Nip = value
		case strings.Contains(label, "pangkat"), strings.Contains(label, "golongan"):
			p.Pangkat = value
		case strings.Contains(label, "unit"):
			p.Unit = value
		}
	}
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
