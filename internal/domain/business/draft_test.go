package business

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_UnmarshalJSON_Date(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"solo fecha", `"2026-10-16"`, time.Date(2026, 10, 16, 0, 0, 0, 0, time.Local)},
		{"RFC3339", `"2026-10-16T20:15:00Z"`, time.Date(2026, 10, 16, 20, 15, 0, 0, time.UTC)},
		{"con offset", `"2026-10-16T20:15:00.500-03:00"`, time.Date(2026, 10, 16, 23, 15, 0, 500_000_000, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Draft
			require.NoError(t, json.Unmarshal([]byte(`{"date":`+tc.in+`,"total":12.5,"waiterId":"w-1"}`), &d))
			require.NotNil(t, d.Date)
			assert.True(t, d.Date.Equal(tc.want), d.Date.String())
			assert.Equal(t, "12.5", d.Total.String())
			assert.Equal(t, "w-1", *d.WaiterID)
		})
	}
}

func TestDraft_UnmarshalJSON_DateAusente(t *testing.T) {
	for _, in := range []string{`{}`, `{"date":null}`, `{"date":""}`} {
		var d Draft
		require.NoError(t, json.Unmarshal([]byte(in), &d), in)
		assert.Nil(t, d.Date, in)
	}

	_, err := Validate(Draft{})
	assert.Contains(t, requireValidation(t, err).Fields, "date")
}

func TestDraft_UnmarshalJSON_DateInvalida(t *testing.T) {
	var d Draft
	err := json.Unmarshal([]byte(`{"date":"16/10/2026"}`), &d)
	vErr := requireValidation(t, err)
	assert.Equal(t, []string{"date"}, vErr.Fields)
	assert.Contains(t, vErr.Message, `Invalid date value: "16/10/2026"`)
}
