package sheet

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"sheetload/internal/errors"
	"sheetload/internal/log"
	"sheetload/internal/table"
)

// FromWorkbook reads the named worksheet from a local .xlsx workbook into a
// table. An empty worksheet name selects the first sheet in the workbook.
func FromWorkbook(file, worksheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(file)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NotFound(fmt.Sprintf("workbook %s", file))
		}

		return nil, errors.Wrapf(err, "unable to open workbook %s", file)
	}

	defer f.Close()

	if worksheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.NotFound(fmt.Sprintf("worksheet in %s", file))
		}

		worksheet = sheets[0]
	}

	rows, err := f.GetRows(worksheet)
	if err != nil {
		return nil, errors.NotFound(fmt.Sprintf("worksheet %s", worksheet))
	}

	t := table.MakeStrings(rows)
	if t.IsEmpty() {
		log.Warnf("worksheet %s is empty - nothing to load", worksheet)
	} else {
		log.Infof("read %d rows x %d columns from %s (worksheet %s)", len(t.Records), len(t.Columns), file, worksheet)
	}

	return t, nil
}
