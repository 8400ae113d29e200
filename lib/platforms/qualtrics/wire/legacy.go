package wire

import "fmt"

// ReshapeLegacy converts the CSV variant of the legacy response export into
// one record per answer row.
//
// Row 0 carries the question ids and row 1 the question text. A column
// whose id cell is blank but whose text cell is not is a real question
// column that lost its id, so it falls back to a generic Q<n> name; a
// column blank in both header rows is padding and is skipped entirely.
func ReshapeLegacy(table [][]string) []map[string]string {
	if len(table) < 2 {
		return nil
	}

	ids := table[0]
	text := table[1]

	headers := make([]string, len(ids))
	for i, id := range ids {
		if id == "" && i < len(text) && text[i] != "" {
			id = fmt.Sprintf("Q%d", i+1)
		}
		headers[i] = id
	}

	records := make([]map[string]string, 0, len(table)-2)
	for _, row := range table[2:] {
		record := map[string]string{}
		for i, value := range row {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			record[headers[i]] = value
		}
		records = append(records, record)
	}
	return records
}
