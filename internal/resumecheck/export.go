package resumecheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Ayuniiieee02/Resume/internal/extract"
)

const exportSheet = "Resume Checks"

var exportHeaders = []string{
	"Checked At",
	"Name",
	"Email",
	"Score",
	"Pages",
	"Field",
	"Level",
	"Skills",
	"Recommended Skills",
}

// ExportXLSX renders the user's full check history as an XLSX workbook.
func (s *Service) ExportXLSX(ctx context.Context, userID string) ([]byte, error) {
	recs, err := s.History(ctx, userID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return WriteXLSX(recs)
}

// WriteXLSX renders records into a single-sheet workbook.
func WriteXLSX(recs []Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, h)
	}

	for i, rec := range recs {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(exportSheet, cell, v)
		}
		write(1, rec.CreatedAt.Format("2006-01-02 15:04:05"))
		write(2, orUnknown(rec.Name))
		write(3, orUnknown(rec.Email))
		write(4, rec.Score)
		write(5, rec.PageCount)
		write(6, string(rec.Field))
		write(7, string(rec.Level))
		write(8, strings.Join(rec.Skills, ", "))
		write(9, strings.Join(rec.RecommendedSkills, ", "))
	}

	_ = f.SetColWidth(exportSheet, "A", "A", 20)
	_ = f.SetColWidth(exportSheet, "B", "C", 28)
	_ = f.SetColWidth(exportSheet, "F", "G", 22)
	_ = f.SetColWidth(exportSheet, "H", "I", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func orUnknown(s string) string {
	if s == "" {
		return extract.Unknown
	}
	return s
}
