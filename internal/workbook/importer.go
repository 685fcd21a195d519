package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/batch"
)

// Expected columns of an imported sheet, after one header row:
// name, condition, span_m, span2_m, udl_kn_m, ei_nmm2, factor(optional)
const minColumns = 6

// ReadJobs reads batch jobs from the first sheet of an xlsx workbook.
// Blank rows are skipped; a malformed row is an error naming its row number.
func ReadJobs(r io.Reader, defaultFactor float64) ([]batch.Job, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("empty sheet")
	}

	var jobs []batch.Job
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		job, err := parseJobRow(rows[i], defaultFactor)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func parseJobRow(row []string, defaultFactor float64) (batch.Job, error) {
	if len(row) < minColumns {
		return batch.Job{}, fmt.Errorf("expected at least %d columns, got %d", minColumns, len(row))
	}

	entry := batch.Entry{
		Name:      strings.TrimSpace(row[0]),
		Condition: strings.TrimSpace(row[1]),
	}

	var err error
	if entry.PrimarySpan, err = toFloat(row[2]); err != nil {
		return batch.Job{}, fmt.Errorf("span: %w", err)
	}
	if entry.SecondarySpan, err = toFloat(row[3]); err != nil {
		return batch.Job{}, fmt.Errorf("span2: %w", err)
	}
	if entry.Load, err = toFloat(row[4]); err != nil {
		return batch.Job{}, fmt.Errorf("load: %w", err)
	}
	if entry.EI, err = toFloat(row[5]); err != nil {
		return batch.Job{}, fmt.Errorf("ei: %w", err)
	}
	if len(row) > 6 && strings.TrimSpace(row[6]) != "" {
		if entry.Factor, err = toFloat(row[6]); err != nil {
			return batch.Job{}, fmt.Errorf("factor: %w", err)
		}
	}

	return entry.Job(nil, defaultFactor)
}

func toFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return cast.ToFloat64E(s)
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
