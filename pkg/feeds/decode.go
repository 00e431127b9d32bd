package feeds

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"

	"github.com/Diavel78/product-trainer/pkg/errors"
)

// DecodeJSON decodes an inventory JSON feed. The payload is either a bare
// array of records or a wrapping object, in which case the first
// list-valued key (in sorted key order, for determinism) holds the records.
func DecodeJSON(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", "json feed", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, errors.WrapParse("json", "feed", err)
	}

	keys := make([]string, 0, len(wrapper))
	for key := range wrapper {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		var nested []Record
		if err := json.Unmarshal(wrapper[key], &nested); err == nil {
			return nested, nil
		}
	}
	return nil, nil
}

// DecodeTSV decodes a tab-separated feed with a header row into records.
func DecodeTSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	return decodeDelimited(reader, "tsv")
}

// DecodeCSV decodes a comma-separated feed with a header row into records.
func DecodeCSV(r io.Reader) ([]Record, error) {
	return decodeDelimited(csv.NewReader(r), "csv")
}

func decodeDelimited(reader *csv.Reader, format string) ([]Record, error) {
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapParse(format, "feed", err)
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse(format, "feed", err)
		}

		record := make(Record, len(header))
		for i, key := range header {
			if i < len(row) {
				record[key] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}
