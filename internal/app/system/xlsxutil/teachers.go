// internal/app/system/xlsxutil/teachers.go
package xlsxutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TeacherRow is the normalized row produced by PreScanTeachersXLSX.
type TeacherRow struct {
	TeacherID string
	Name      string
	Email     string
}

// PreScanTeachersXLSX reads the first sheet of the workbook, locates the
// header row, validates every data row, and either returns normalized rows
// OR a user-facing message describing the first few bad rows. It never
// writes to a DB; it's safe to call before any mutations.
func PreScanTeachersXLSX(r io.Reader) (rows []TeacherRow, userErr string, err error) {
	raw, userErr, err := readSheet(r)
	if userErr != "" || err != nil {
		return nil, userErr, err
	}

	cols, body, userErr := splitHeader(raw, map[string][]string{
		"teacher_id": {"teacher_id", "teacherid", "teacher id", "id"},
		"name":       {"name", "full name", "teacher name"},
		"email":      {"email", "email id", "e-mail"},
	}, []string{"name", "email"})
	if userErr != "" {
		return nil, userErr, nil
	}

	type rowErr struct {
		line   int
		reason string
	}
	var errs []rowErr

	for i, rec := range body {
		row := TeacherRow{
			TeacherID: cell(rec, cols["teacher_id"]),
			Name:      cell(rec, cols["name"]),
			Email:     strings.ToLower(cell(rec, cols["email"])),
		}
		if row.TeacherID == "" && row.Name == "" && row.Email == "" {
			continue
		}
		if row.Name == "" {
			errs = append(errs, rowErr{line: i + 2, reason: "missing name"})
			continue
		}
		if row.Email == "" || !strings.Contains(row.Email, "@") {
			errs = append(errs, rowErr{line: i + 2, reason: "invalid or missing email"})
			continue
		}
		rows = append(rows, row)
	}

	if len(errs) > 0 {
		var b strings.Builder
		b.WriteString("Upload rejected: one or more rows are invalid. Each row must have a Name and an Email.")
		max := 5
		if len(errs) < max {
			max = len(errs)
		}
		for i := 0; i < max; i++ {
			b.WriteString(fmt.Sprintf(" Row %d: %s.", errs[i].line, errs[i].reason))
		}
		return nil, b.String(), nil
	}

	return rows, "", nil
}

/* -------------------------------------------------------------------------- */
/* Shared sheet helpers                                                       */
/* -------------------------------------------------------------------------- */

// readSheet loads the first sheet into a row slice, enforcing MaxRows.
func readSheet(r io.Reader) ([][]string, string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, "Could not read the uploaded file. Please upload a valid .xlsx workbook.", nil
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, "The workbook has no sheets.", nil
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, "", err
	}
	if len(raw) == 0 {
		return nil, "The first sheet is empty.", nil
	}
	if len(raw) > MaxRows+1 {
		return nil, fmt.Sprintf("Too many rows: the limit is %d per upload.", MaxRows), nil
	}
	return raw, "", nil
}

// splitHeader matches the first row against the alias table and returns a
// column index per canonical name plus the data rows. Columns not in the
// alias table keep their header text under an "extra:" key so callers can
// capture free-form columns.
func splitHeader(raw [][]string, aliases map[string][]string, required []string) (map[string]int, [][]string, string) {
	cols := map[string]int{}
	for i, h := range raw[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		matched := false
		for canon, names := range aliases {
			for _, n := range names {
				if key == n {
					if _, dup := cols[canon]; !dup {
						cols[canon] = i
					}
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if !matched {
			cols["extra:"+strings.TrimSpace(h)] = i
		}
	}

	var missing []string
	for _, req := range required {
		if _, ok := cols[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Sprintf("Missing required column(s): %s. The first row must be a header.", strings.Join(missing, ", "))
	}
	return cols, raw[1:], ""
}

// cell returns the trimmed value at index idx, tolerating short rows.
func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}
