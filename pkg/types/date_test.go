package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid", input: "2024-03-04", want: NewDate(2024, time.March, 4)},
		{name: "leap day", input: "2024-02-29", want: NewDate(2024, time.February, 29)},
		{name: "non leap day", input: "2023-02-29", wantErr: true},
		{name: "with time", input: "2024-03-04T10:00:00Z", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestToday_UsesLocalCalendarDay(t *testing.T) {
	// 23:30 local in a zone behind UTC is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2024, time.March, 4, 23, 30, 0, 0, loc)

	assert.Equal(t, "2024-03-04", Today(now, loc).String())
	assert.Equal(t, "2024-03-05", Today(now, time.UTC).String())
}

func TestDate_Comparisons(t *testing.T) {
	a := MustParseDate("2024-03-04")
	b := MustParseDate("2024-03-05")

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(MustParseDate("2024-03-04")))
	assert.Equal(t, b, a.AddDays(1))
	assert.Equal(t, MustParseDate("2024-04-01"), MustParseDate("2024-03-31").AddDays(1))
}

func TestDate_Weekend(t *testing.T) {
	assert.False(t, MustParseDate("2024-03-04").IsWeekend()) // Monday
	assert.True(t, MustParseDate("2024-03-09").IsWeekend())  // Saturday
	assert.True(t, MustParseDate("2024-03-10").IsWeekend())  // Sunday
}

func TestMonthBounds(t *testing.T) {
	assert.Equal(t, "2024-02-01", FirstOfMonth(2024, time.February).String())
	assert.Equal(t, "2024-02-29", LastOfMonth(2024, time.February).String())
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
	assert.Equal(t, "2024-12", MustParseDate("2024-12-31").MonthKey())
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-04", d.String())

	require.NoError(t, d.Scan([]byte("2024-03-05")))
	assert.Equal(t, "2024-03-05", d.String())

	require.NoError(t, d.Scan("2024-03-06T00:00:00Z"))
	assert.Equal(t, "2024-03-06", d.String())

	assert.ErrorIs(t, d.Scan(42), ErrUnsupportedDateSource)
}

func TestDate_Value(t *testing.T) {
	v, err := MustParseDate("2024-03-04").Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date Date `json:"date"`
	}

	data, err := json.Marshal(payload{Date: MustParseDate("2024-03-04")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-03-04"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-12-31"}`), &p))
	assert.Equal(t, MustParseDate("2024-12-31"), p.Date)

	assert.Error(t, json.Unmarshal([]byte(`{"date":"31/12/2024"}`), &p))
}
