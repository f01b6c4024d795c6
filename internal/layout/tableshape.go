package layout

import "strings"

// Fallback grid shape for tables whose raw text yields nothing usable.
const (
	fallbackRows = 4
	fallbackCols = 3
)

// Side-by-side layouts cap the grid so it still fits a half-slide column.
const (
	bandMaxRows = 8
	bandMaxCols = 5
)

// tableShape derives (rows, cols) from raw pipe-delimited lines. The
// header's cell count gives the columns; every non-blank line counts as a
// row, separator included, matching how single-table layouts size the grid.
func tableShape(lines []string) (rows, cols int) {
	nonBlank := nonBlankLines(lines)
	if len(nonBlank) == 0 {
		return fallbackRows, fallbackCols
	}
	cols = len(splitCells(nonBlank[0]))
	if cols < 1 {
		cols = 1
	}
	rows = len(nonBlank)
	if rows < 1 {
		rows = 1
	}
	return rows, cols
}

// tableGrid parses header and data cells, skipping the separator row and
// capping the grid at maxRows x maxCols. Short rows are padded with empty
// cells. A table with no usable lines gets the fallback shape and no data.
func tableGrid(lines []string, maxRows, maxCols int) (rows, cols int, data [][]string) {
	if len(lines) == 0 {
		return fallbackRows, fallbackCols, nil
	}

	header := splitCells(lines[0])
	if len(header) == 0 {
		header = []string{""}
	}
	var dataLines []string
	if len(lines) > 2 {
		dataLines = lines[2:]
	}

	cols = min(len(header), maxCols)
	rows = min(1+len(dataLines), maxRows)

	data = make([][]string, 0, rows)
	data = append(data, padRow(header, cols))
	for _, line := range dataLines {
		if len(data) >= rows {
			break
		}
		data = append(data, padRow(splitCells(line), cols))
	}
	return rows, cols, data
}

// splitCells splits a pipe-delimited line into trimmed, non-empty cells.
func splitCells(line string) []string {
	var cells []string
	for _, c := range strings.Split(line, "|") {
		if t := strings.TrimSpace(c); t != "" {
			cells = append(cells, t)
		}
	}
	return cells
}

func padRow(cells []string, cols int) []string {
	row := make([]string, cols)
	for i := 0; i < cols && i < len(cells); i++ {
		row[i] = cells[i]
	}
	return row
}

func nonBlankLines(lines []string) []string {
	var out []string
	for _, ln := range lines {
		if strings.TrimSpace(ln) != "" {
			out = append(out, ln)
		}
	}
	return out
}
