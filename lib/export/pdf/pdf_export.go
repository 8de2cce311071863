package pdfexport

import (
	"bytes"
	"fmt"

	reportapimodels "office-tools-backend/models/api/report"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

var taskHeaders = []string{"Nhiệm vụ", "Phòng ban", "Trạng thái", "Ưu tiên", "Người nhận", "Tiến độ"}

var columnWidths = []float64{60, 35, 25, 25, 20, 20}

// GenerateTaskReport renders the task report as an A4 table. Fonts are
// loaded from static/font/ shipped with the deployment.
func GenerateTaskReport(list []reportapimodels.TaskReportRow) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateTaskReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, "Báo cáo nhiệm vụ", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	for idx, header := range taskHeaders {
		pdf.CellFormat(columnWidths[idx], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, item := range list {
		cells := []string{
			item.Title,
			item.Department,
			item.Status,
			item.Priority,
			fmt.Sprintf("%d/%d", item.Assignees, item.Capacity),
			fmt.Sprintf("%d%%", item.Progress),
		}
		for idx, value := range cells {
			pdf.CellFormat(columnWidths[idx], 7, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
