package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordID(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{name: "string id", rec: Record{"id": "a1"}, want: "a1"},
		{name: "missing id", rec: Record{"name": "x"}, want: ""},
		{name: "non-string id", rec: Record{"id": 7}, want: ""},
		{name: "nil id", rec: Record{"id": nil}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.ID())
		})
	}
}

func TestRecordStringField(t *testing.T) {
	rec := Record{
		"name":    "Cat",
		"total":   float64(12.5),
		"count":   3,
		"active":  true,
		"nothing": nil,
	}

	tests := []struct {
		name   string
		field  string
		want   string
		wantOK bool
	}{
		{name: "string", field: "name", want: "Cat", wantOK: true},
		{name: "float", field: "total", want: "12.5", wantOK: true},
		{name: "int", field: "count", want: "3", wantOK: true},
		{name: "bool", field: "active", want: "true", wantOK: true},
		{name: "nil", field: "nothing", wantOK: false},
		{name: "missing", field: "ghost", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rec.StringField(tt.field)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordNumberField(t *testing.T) {
	rec := Record{
		"float":  float64(2.5),
		"int":    41,
		"numStr": "19.5",
		"junk":   "not a number",
		"null":   nil,
	}

	tests := []struct {
		name   string
		field  string
		want   float64
		wantOK bool
	}{
		{name: "float64", field: "float", want: 2.5, wantOK: true},
		{name: "int", field: "int", want: 41, wantOK: true},
		{name: "numeric string", field: "numStr", want: 19.5, wantOK: true},
		{name: "malformed string", field: "junk", wantOK: false},
		{name: "nil", field: "null", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rec.NumberField(tt.field)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordTimeField(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   time.Time
		wantOK bool
	}{
		{
			name:   "RFC3339",
			value:  "2023-06-01T10:30:00Z",
			want:   time.Date(2023, 6, 1, 10, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "date only",
			value:  "2023-01-01",
			want:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "time.Time passthrough",
			value:  time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
			want:   time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{name: "malformed", value: "yesterday-ish", wantOK: false},
		{name: "nil", value: nil, wantOK: false},
		{name: "number", value: 1234.0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{"createdAt": tt.value}
			got, ok := rec.TimeField("createdAt")
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got))
			}
		})
	}
}

func TestRecordClone(t *testing.T) {
	rec := Record{"id": "a", "name": "Cat"}
	clone := rec.Clone()

	clone["name"] = "Dog"
	assert.Equal(t, "Cat", rec["name"])
	assert.Equal(t, "a", clone.ID())
}
