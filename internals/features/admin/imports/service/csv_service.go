// file: internals/features/admin/imports/service/csv_service.go
package service

import (
	"strings"
)

// Column aliases seen in society spreadsheets. Keys are header cells after
// lowercasing and stripping spaces/underscores.
var headerAliases = map[string]string{
	"flat":       "flat_number",
	"flatno":     "flat_number",
	"flatnumber": "flat_number",
	"unit":       "flat_number",
	"unitno":     "flat_number",

	"name":       "name",
	"owner":      "name",
	"ownername":  "name",
	"resident":   "name",
	"fullname":   "name",

	"email":   "email",
	"emailid": "email",
	"mail":    "email",

	"phone":    "phone",
	"mobile":   "phone",
	"mobileno": "phone",
	"contact":  "phone",

	"block": "block",
	"tower": "block",
	"wing":  "block",

	"floor": "floor",

	"area":     "area_sqft",
	"areasqft": "area_sqft",
	"sqft":     "area_sqft",
}

func normalizeHeader(cell string) string {
	cell = strings.ToLower(strings.TrimSpace(cell))
	cell = strings.ReplaceAll(cell, " ", "")
	cell = strings.ReplaceAll(cell, "_", "")
	cell = strings.ReplaceAll(cell, "-", "")
	return cell
}

// MapHeaders resolves each CSV header to a canonical field name. Unknown
// columns are ignored.
func MapHeaders(headers []string) map[string]int {
	out := make(map[string]int)
	for i, h := range headers {
		if field, ok := headerAliases[normalizeHeader(h)]; ok {
			if _, seen := out[field]; !seen {
				out[field] = i
			}
		}
	}
	return out
}

// ParseCSVLine splits one CSV line honouring double-quoted fields with ""
// escapes. Society exports come from too many spreadsheet tools to trust
// strict parsing.
func ParseCSVLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}

// SplitCSV breaks file content into non-empty trimmed lines.
func SplitCSV(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func fieldAt(cells []string, idx map[string]int, field string) string {
	i, ok := idx[field]
	if !ok || i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}
