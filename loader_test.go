package tvm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/tvm/date"
	"github.com/google/go-cmp/cmp"
)

var valuationDate = date.New(2025, 1, 1)

func TestDecodeCSVCashFlows(t *testing.T) {
	input := `Date,Amount,Comment
2024-12-25,4000,christmas
2024-01-02, 3000,
2023-01-03,2000,first
2025-01-01,-500,withdrawal today
`
	got, err := DecodeCSVCashFlows(strings.NewReader(input), valuationDate)
	if err != nil {
		t.Fatalf("DecodeCSVCashFlows() unexpected error: %v", err)
	}
	want := Series{
		{Days: 7, Amount: 4000},
		{Days: 365, Amount: 3000},
		{Days: 729, Amount: 2000},
		{Days: 0, Amount: -500},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeCSVCashFlows() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeCSVCashFlowsHeaderCase(t *testing.T) {
	got, err := DecodeCSVCashFlows(strings.NewReader("amount,date\n100,2024-01-02\n"), valuationDate)
	if err != nil {
		t.Fatalf("DecodeCSVCashFlows() unexpected error: %v", err)
	}
	if diff := cmp.Diff(Series{{Days: 365, Amount: 100}}, got); diff != "" {
		t.Errorf("DecodeCSVCashFlows() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeCSVCashFlowsErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "missing header"},
		{"no amount column", "Date,Value\n2024-01-01,100\n", "must contain"},
		{"bad amount", "Date,Amount\n2024-01-01,abc\n", "line 2: invalid amount"},
		{"bad date", "Date,Amount\n01/01/2024,100\n", "line 2: invalid date"},
		{"future date", "Date,Amount\n2024-01-01,100\n2025-02-01,100\n", "line 3: 2025-02-01 is after the valuation date"},
		{"short row", "Date,Amount\n2024-01-01\n", "line 2: missing"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeCSVCashFlows(strings.NewReader(tc.input), valuationDate)
			if err == nil {
				t.Fatal("DecodeCSVCashFlows() expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("DecodeCSVCashFlows() error = %q, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestDecodeJSONCashFlows(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		path  string
	}{
		{
			name:  "array",
			input: `[{"date":"2024-12-25","amount":4000},{"date":"2024-01-02","amount":"3000"}]`,
		},
		{
			name:  "nested",
			input: `{"account":"isa","flows":[{"Date":"2024-12-25","Amount":4000},{"Date":"2024-01-02","Amount":3000}]}`,
			path:  "$.flows[*]",
		},
	}
	want := Series{{Days: 7, Amount: 4000}, {Days: 365, Amount: 3000}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeJSONCashFlows(strings.NewReader(tc.input), tc.path, valuationDate)
			if err != nil {
				t.Fatalf("DecodeJSONCashFlows() unexpected error: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("DecodeJSONCashFlows() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeJSONCashFlowsErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		path  string
		want  string
	}{
		{"not json", `date,amount`, "", "invalid json"},
		{"not a list", `{"date":"2024-01-01","amount":1}`, "$.date", "does not select a list"},
		{"not an object", `[1, 2]`, "", "is not an object"},
		{"missing amount", `[{"date":"2024-01-01"}]`, "", "missing"},
		{"date twice, no amount", `[{"date":"2024-01-01","Date":"2024-01-02"}]`, "", "missing"},
		{"amount twice, no date", `[{"amount":1,"AMOUNT":2}]`, "", "missing"},
		{"boolean amount", `[{"date":"2024-01-01","amount":true}]`, "", "must be a number"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeJSONCashFlows(strings.NewReader(tc.input), tc.path, valuationDate)
			if err == nil {
				t.Fatal("DecodeJSONCashFlows() expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("DecodeJSONCashFlows() error = %q, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestLoadCashFlows(t *testing.T) {
	dir := t.TempDir()
	csvFile := filepath.Join(dir, "flows.csv")
	jsonFile := filepath.Join(dir, "flows.json")
	if err := os.WriteFile(csvFile, []byte("Date,Amount\n2024-01-02,100\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(jsonFile, []byte(`[{"date":"2024-01-02","amount":100}]`), 0644); err != nil {
		t.Fatal(err)
	}
	want := Series{{Days: 365, Amount: 100}}
	for _, file := range []string{csvFile, jsonFile} {
		got, err := LoadCashFlows(file, "", valuationDate)
		if err != nil {
			t.Fatalf("LoadCashFlows(%q) unexpected error: %v", file, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("LoadCashFlows(%q) mismatch (-want +got):\n%s", file, diff)
		}
	}

	if _, err := LoadCashFlows(filepath.Join(dir, "missing.csv"), "", valuationDate); err == nil {
		t.Error("LoadCashFlows() on a missing file expected an error")
	}
}
