package xlsexport

import (
	"bytes"

	reportapimodels "office-tools-backend/models/api/report"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportTaskReport(list []reportapimodels.TaskReportRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var taskHeaders = []string{"Nhiệm vụ", "Phòng ban", "Trạng thái", "Ưu tiên", "Người nhận", "Số lượng tối đa", "Tiến độ (%)"}

func (i impl) ExportTaskReport(list []reportapimodels.TaskReportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx close failed")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, taskHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}
	if len(list) != 0 {
		if err = writeTaskData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "xlsx data write failed")
		}
	}
	f.SetSheetName(sheet, "Nhiệm vụ")
	return f.WriteToBuffer()
}

func writeTaskData(f *excelize.File, sheet string, list []reportapimodels.TaskReportRow, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(taskHeaders), len(list)+1); err != nil {
		return err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Title); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Department); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Status); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Priority); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Assignees); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Capacity); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Progress); err != nil {
			return err
		}
	}
	return nil
}
