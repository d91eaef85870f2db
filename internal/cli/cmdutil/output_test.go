package cmdutil

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1.5k"},
		{1000000, "1M"},
		{3355129, "3.355M"},
		{-2000, "-2k"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCount(tt.in))
		})
	}
}

func TestFormatValue(t *testing.T) {
	n := 7
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "-"},
		{"empty string", "", "-"},
		{"string", "MVP+", "MVP+"},
		{"true", true, "yes"},
		{"false", false, "no"},
		{"int", 42, "42"},
		{"nil int pointer", (*int)(nil), "-"},
		{"int pointer", &n, "7"},
		{"float", 2.5, "2.5"},
		{"zero time", time.Time{}, "never"},
		{"duration", 45500 * time.Millisecond, "45.5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func TestFormatTime(t *testing.T) {
	got := FormatTime(time.Now().Add(-72 * time.Hour))
	assert.Contains(t, got, "3 days ago")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]int{"count": 3}))

	var out struct {
		Status string         `json:"status"`
		Data   map[string]int `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "success", out.Status)
	assert.Equal(t, 3, out.Data["count"])
}

func TestWriteError(t *testing.T) {
	boom := errors.New("boom")

	var buf bytes.Buffer
	err := WriteError(&buf, true, boom)
	assert.Same(t, boom, err)
	assert.Contains(t, buf.String(), `"status": "error"`)
	assert.Contains(t, buf.String(), `"error": "boom"`)

	buf.Reset()
	_ = WriteError(&buf, false, boom)
	assert.Contains(t, buf.String(), "Error: boom")
}

func TestWriteSections(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSections(&buf, "duhby",
		Section{Fields: []Field{{"Rank", "MVP+"}, {"Level", 26.0}}},
		Section{Title: "Empty"},
		Section{Title: "Bed Wars", Fields: []Field{{"FKDR", 200.0}}},
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "duhby")
	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "MVP+")
	assert.Contains(t, out, "Bed Wars")
	assert.Contains(t, out, "200")
	assert.NotContains(t, out, "Empty")
}

func TestOptions_Client(t *testing.T) {
	var o *Options
	_, err := o.Client()
	assert.Error(t, err)
	assert.NotNil(t, o.Log())
}
