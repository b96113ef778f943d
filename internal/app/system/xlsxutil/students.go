// internal/app/system/xlsxutil/students.go
package xlsxutil

import (
	"fmt"
	"io"
	"strings"
)

// StudentRow is the normalized row produced by PreScanStudentsXLSX. Columns
// beyond reg no / name / email land in OtherDetails keyed by header text.
type StudentRow struct {
	RegNo        string
	Name         string
	Email        string
	OtherDetails map[string]string
}

// PreScanStudentsXLSX reads the first sheet of the workbook, locates the
// header row, validates every data row, and either returns normalized rows
// OR a user-facing message describing the first few bad rows.
func PreScanStudentsXLSX(r io.Reader) (rows []StudentRow, userErr string, err error) {
	raw, userErr, err := readSheet(r)
	if userErr != "" || err != nil {
		return nil, userErr, err
	}

	cols, body, userErr := splitHeader(raw, map[string][]string{
		"reg_no": {"reg_no", "regno", "reg no", "registration number", "registration no"},
		"name":   {"name", "full name", "student name"},
		"email":  {"email", "email id", "e-mail"},
	}, []string{"reg_no", "name"})
	if userErr != "" {
		return nil, userErr, nil
	}

	type rowErr struct {
		line   int
		reason string
	}
	var errs []rowErr
	seen := map[string]int{} // reg_no -> first line

	for i, rec := range body {
		row := StudentRow{
			RegNo: cell(rec, cols["reg_no"]),
			Name:  cell(rec, cols["name"]),
			Email: strings.ToLower(cell(rec, cols["email"])),
		}
		for key, idx := range cols {
			if h, ok := strings.CutPrefix(key, "extra:"); ok {
				if v := cell(rec, idx); v != "" {
					if row.OtherDetails == nil {
						row.OtherDetails = map[string]string{}
					}
					row.OtherDetails[h] = v
				}
			}
		}
		if row.RegNo == "" && row.Name == "" && row.Email == "" && len(row.OtherDetails) == 0 {
			continue
		}

		line := i + 2
		if row.RegNo == "" {
			errs = append(errs, rowErr{line: line, reason: "missing registration number"})
			continue
		}
		if row.Name == "" {
			errs = append(errs, rowErr{line: line, reason: "missing name"})
			continue
		}
		if first, dup := seen[row.RegNo]; dup {
			errs = append(errs, rowErr{line: line, reason: fmt.Sprintf("duplicate registration number (first seen on row %d)", first)})
			continue
		}
		seen[row.RegNo] = line
		rows = append(rows, row)
	}

	if len(errs) > 0 {
		var b strings.Builder
		b.WriteString("Upload rejected: one or more rows are invalid. Each row must have a unique Registration Number and a Name.")
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
