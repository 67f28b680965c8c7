package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"osteria-backend/analytics"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportSummary streams the analytics summary as an XLSX workbook with
// one sheet per aggregate (daily traffic, top pages, top referrers).
func (h *AnalyticsHandler) ExportSummary(c *gin.Context) {
	days := 30
	if raw := c.Query("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			days = parsed
		}
	}
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	summary, err := h.Tracker.Summarize(time.Now(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build analytics summary"})
		return
	}

	file, err := buildSummaryWorkbook(summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("analytics_%s_%ddays.xlsx", time.Now().Format("2006-01-02"), days)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		// Headers already sent, nothing useful to report to the client
		return
	}
}

func buildSummaryWorkbook(summary *analytics.Summary) (*excelize.File, error) {
	file := excelize.NewFile()

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		headerStyle = 0
	}

	writeSheet := func(name string, header []string, rows [][]interface{}) error {
		if name == "Daily" {
			file.SetSheetName("Sheet1", name)
		} else {
			if _, err := file.NewSheet(name); err != nil {
				return err
			}
		}

		for i, col := range header {
			cell, err := excelize.CoordinatesToCellName(i+1, 1)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(name, cell, col); err != nil {
				return err
			}
		}
		if headerStyle != 0 {
			start, _ := excelize.CoordinatesToCellName(1, 1)
			end, _ := excelize.CoordinatesToCellName(len(header), 1)
			_ = file.SetCellStyle(name, start, end, headerStyle)
		}

		for r, row := range rows {
			for i, val := range row {
				cell, err := excelize.CoordinatesToCellName(i+1, r+2)
				if err != nil {
					return err
				}
				if err := file.SetCellValue(name, cell, val); err != nil {
					return err
				}
			}
		}
		return nil
	}

	dailyRows := make([][]interface{}, 0, len(summary.Buckets))
	for _, b := range summary.Buckets {
		dailyRows = append(dailyRows, []interface{}{b.Date, b.Views, b.Visitors})
	}
	if err := writeSheet("Daily", []string{"Date", "Views", "Unique Visitors"}, dailyRows); err != nil {
		file.Close()
		return nil, err
	}

	pathRows := make([][]interface{}, 0, len(summary.TopPaths))
	for _, p := range summary.TopPaths {
		pathRows = append(pathRows, []interface{}{p.Value, p.Views})
	}
	if err := writeSheet("Top Pages", []string{"Path", "Views"}, pathRows); err != nil {
		file.Close()
		return nil, err
	}

	refRows := make([][]interface{}, 0, len(summary.TopReferrers))
	for _, r := range summary.TopReferrers {
		refRows = append(refRows, []interface{}{r.Value, r.Views})
	}
	if err := writeSheet("Top Referrers", []string{"Referrer", "Views"}, refRows); err != nil {
		file.Close()
		return nil, err
	}

	return file, nil
}
