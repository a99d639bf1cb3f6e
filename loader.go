package tvm

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/tvm/date"
)

// Column names of a cash-flow file.
const (
	DateColumn   = "Date"
	AmountColumn = "Amount"
)

// DefaultJSONPath selects the cash flows of a JSON document made of a single array.
const DefaultJSONPath = "$[*]"

// LoadCashFlows reads the cash flows stored in file, valued on date on.
//
// Files with a .json extension are decoded with DecodeJSONCashFlows using
// the selector path, any other file is decoded as CSV.
func LoadCashFlows(file, path string, on date.Date) (Series, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s Series
	if strings.EqualFold(filepath.Ext(file), ".json") {
		s, err = DecodeJSONCashFlows(f, path, on)
	} else {
		s, err = DecodeCSVCashFlows(f, on)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", file, err)
	}
	return s, nil
}

// DecodeCSVCashFlows reads a CSV with a header row holding a Date and an
// Amount column (in any case, other columns are ignored) and returns each
// row as a cash flow invested the given number of days before on.
func DecodeCSVCashFlows(r io.Reader, on date.Date) (Series, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, err
	}
	dateCol, amountCol := -1, -1
	for i, name := range header {
		switch {
		case strings.EqualFold(strings.TrimSpace(name), DateColumn):
			dateCol = i
		case strings.EqualFold(strings.TrimSpace(name), AmountColumn):
			amountCol = i
		}
	}
	if dateCol < 0 || amountCol < 0 {
		return nil, fmt.Errorf("header %q must contain %q and %q columns", header, DateColumn, AmountColumn)
	}

	var s Series
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		if dateCol >= len(record) || amountCol >= len(record) {
			return nil, fmt.Errorf("line %d: missing %s or %s", line, DateColumn, AmountColumn)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(record[amountCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount: %w", line, err)
		}
		c, err := newCashFlow(strings.TrimSpace(record[dateCol]), amount, on)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		s = append(s, c)
	}
	return s, nil
}

// DecodeJSONCashFlows reads a JSON document and selects the cash flows with
// the JSONPath expression path (DefaultJSONPath if empty). Each selected
// value must be an object with a "date" and an "amount" field (in any case),
// the amount being either a number or a string.
func DecodeJSONCashFlows(r io.Reader, path string, on date.Date) (Series, error) {
	if path == "" {
		path = DefaultJSONPath
	}
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	items, ok := selected.([]any)
	if !ok {
		return nil, fmt.Errorf("path %q does not select a list of cash flows", path)
	}

	s := make(Series, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("cash flow #%d is not an object", i)
		}
		var (
			day                string
			amount             float64
			hasDate, hasAmount bool
		)
		for k, v := range obj {
			switch {
			case strings.EqualFold(k, DateColumn):
				day, ok = v.(string)
				if !ok {
					return nil, fmt.Errorf("cash flow #%d: date must be a string", i)
				}
				hasDate = true
			case strings.EqualFold(k, AmountColumn):
				switch v := v.(type) {
				case float64:
					amount = v
				case string:
					amount, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
					if err != nil {
						return nil, fmt.Errorf("cash flow #%d: invalid amount: %w", i, err)
					}
				default:
					return nil, fmt.Errorf("cash flow #%d: amount must be a number", i)
				}
				hasAmount = true
			}
		}
		if !hasDate || !hasAmount {
			return nil, fmt.Errorf("cash flow #%d: missing %s or %s", i, DateColumn, AmountColumn)
		}
		c, err := newCashFlow(day, amount, on)
		if err != nil {
			return nil, fmt.Errorf("cash flow #%d: %w", i, err)
		}
		s = append(s, c)
	}
	return s, nil
}

// newCashFlow returns the cash flow of amount invested on day, valued on.
func newCashFlow(day string, amount float64, on date.Date) (CashFlow, error) {
	d, err := date.Parse(day)
	if err != nil {
		return CashFlow{}, err
	}
	days := d.DaysBetween(on)
	if days < 0 {
		return CashFlow{}, fmt.Errorf("%s is after the valuation date %s", d, on)
	}
	return CashFlow{Days: days, Amount: amount}, nil
}
