package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyReportCosts() ReportCosts {
	costs := make(ReportCosts, 0, len(Categories))
	for _, c := range Categories {
		costs = append(costs, CategoryCosts{Category: c, Entries: []ReportEntry{}})
	}
	return costs
}

func TestCategoryCosts_MarshalJSON(t *testing.T) {
	cc := CategoryCosts{
		Category: CategoryFood,
		Entries:  []ReportEntry{{Sum: decimal.NewFromInt(8), Description: "pizza", Day: 5}},
	}

	data, err := json.Marshal(cc)

	require.NoError(t, err)
	assert.JSONEq(t, `{"food":[{"sum":8,"description":"pizza","day":5}]}`, string(data))
}

func TestCategoryCosts_MarshalJSON_NilEntriesAsEmptyArray(t *testing.T) {
	data, err := json.Marshal(CategoryCosts{Category: CategoryHealth})

	require.NoError(t, err)
	assert.JSONEq(t, `{"health":[]}`, string(data))
}

func TestCategoryCosts_UnmarshalJSON_RejectsMultipleKeys(t *testing.T) {
	var cc CategoryCosts

	err := json.Unmarshal([]byte(`{"food":[],"health":[]}`), &cc)

	assert.Error(t, err)
}

func TestReportCosts_ValueScan_PreservesOrder(t *testing.T) {
	costs := emptyReportCosts()
	costs[3].Entries = append(costs[3].Entries, ReportEntry{Sum: decimal.RequireFromString("12.5"), Description: "gym", Day: 30})

	value, err := costs.Value()
	require.NoError(t, err)

	var scanned ReportCosts
	require.NoError(t, scanned.Scan(value))

	require.Len(t, scanned, len(Categories))
	for i, c := range Categories {
		assert.Equal(t, c, scanned[i].Category)
	}
	require.Len(t, scanned[3].Entries, 1)
	assert.True(t, scanned[3].Entries[0].Sum.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "gym", scanned[3].Entries[0].Description)
	assert.Equal(t, 30, scanned[3].Entries[0].Day)
}

func TestReportCosts_Scan_Bytes(t *testing.T) {
	var scanned ReportCosts

	err := scanned.Scan([]byte(`[{"food":[]}]`))

	require.NoError(t, err)
	require.Len(t, scanned, 1)
	assert.Equal(t, CategoryFood, scanned[0].Category)
	assert.NotNil(t, scanned[0].Entries)
}

func TestReportCosts_Scan_UnsupportedType(t *testing.T) {
	var scanned ReportCosts

	assert.Error(t, scanned.Scan(42))
}

func TestReport_Validate(t *testing.T) {
	valid := Report{UserID: 1, Year: 2023, Month: 3, Costs: emptyReportCosts()}
	assert.NoError(t, valid.Validate())

	badMonth := valid
	badMonth.Month = 13
	assert.Error(t, badMonth.Validate())

	short := valid
	short.Costs = short.Costs[:4]
	assert.Error(t, short.Validate())
}

func TestReport_Key(t *testing.T) {
	r := Report{UserID: 9, Year: 2024, Month: 12}

	assert.Equal(t, ReportKey{UserID: 9, Year: 2024, Month: 12}, r.Key())
	assert.Equal(t, "9/2024-12", r.Key().String())
}
