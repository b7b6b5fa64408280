package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		// 12-hour with colon
		{name: "9:30am", input: "9:30am", want: TimeOfDay{Hour: 9, Minute: 30}},
		{name: "9:30pm", input: "9:30pm", want: TimeOfDay{Hour: 21, Minute: 30}},
		{name: "12:00am", input: "12:00am", want: TimeOfDay{Hour: 0, Minute: 0}},
		{name: "12:00pm", input: "12:00pm", want: TimeOfDay{Hour: 12, Minute: 0}},
		{name: "12:30pm", input: "12:30pm", want: TimeOfDay{Hour: 12, Minute: 30}},

		// 12-hour without colon
		{name: "9am", input: "9am", want: TimeOfDay{Hour: 9, Minute: 0}},
		{name: "5pm", input: "5pm", want: TimeOfDay{Hour: 17, Minute: 0}},
		{name: "12am", input: "12am", want: TimeOfDay{Hour: 0, Minute: 0}},
		{name: "12pm", input: "12pm", want: TimeOfDay{Hour: 12, Minute: 0}},

		// 24-hour
		{name: "14:00", input: "14:00", want: TimeOfDay{Hour: 14, Minute: 0}},
		{name: "09:30", input: "09:30", want: TimeOfDay{Hour: 9, Minute: 30}},
		{name: "00:00", input: "00:00", want: TimeOfDay{Hour: 0, Minute: 0}},
		{name: "23:59", input: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},

		// With spaces around am/pm
		{name: "9 am", input: "9 am", want: TimeOfDay{Hour: 9, Minute: 0}},
		{name: "9:30 pm", input: "9:30 pm", want: TimeOfDay{Hour: 21, Minute: 30}},

		// Dot-separator 12-hour
		{name: "9.30am", input: "9.30am", want: TimeOfDay{Hour: 9, Minute: 30}},
		{name: "9.30pm", input: "9.30pm", want: TimeOfDay{Hour: 21, Minute: 30}},
		{name: "12.00pm", input: "12.00pm", want: TimeOfDay{Hour: 12, Minute: 0}},

		// Dot-separator 24-hour
		{name: "14.00", input: "14.00", want: TimeOfDay{Hour: 14, Minute: 0}},
		{name: "09.30", input: "09.30", want: TimeOfDay{Hour: 9, Minute: 30}},

		// 24-hour with seconds
		{name: "09:00:00", input: "09:00:00", want: TimeOfDay{Hour: 9, Minute: 0}},
		{name: "18:45:30", input: "18:45:30", want: TimeOfDay{Hour: 18, Minute: 45}},

		// Errors
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not a time", wantErr: true},
		{name: "hour 25", input: "25:00", wantErr: true},
		{name: "hour 13am", input: "13am", wantErr: true},
		{name: "minute 60", input: "9:60am", wantErr: true},
		{name: "second 60", input: "09:00:60", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeOfDay
		want bool
	}{
		{"earlier hour", TimeOfDay{8, 0}, TimeOfDay{9, 0}, true},
		{"later hour", TimeOfDay{10, 0}, TimeOfDay{9, 0}, false},
		{"same hour earlier minute", TimeOfDay{9, 0}, TimeOfDay{9, 30}, true},
		{"equal", TimeOfDay{9, 0}, TimeOfDay{9, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Before(tt.b))
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:00", TimeOfDay{Hour: 9, Minute: 0}.String())
	assert.Equal(t, "17:30", TimeOfDay{Hour: 17, Minute: 30}.String())
	assert.Equal(t, "00:00", TimeOfDay{Hour: 0, Minute: 0}.String())
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already canonical", "09:00", "09:00"},
		{"with seconds", "09:00:00", "09:00"},
		{"evening with seconds", "18:30:59", "18:30"},
		{"empty", "", ""},
		{"unrecognized passes through", "9am", "9am"},
		{"eight chars without colons", "09.00.00", "09.00.00"},
		{"single digit hour", "9:00", "9:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTime(tt.input))
		})
	}
}

func TestNormalizeTimeIdempotent(t *testing.T) {
	for _, in := range []string{"", "00:00", "07:15:00", "23:59:59", "12:30", "garbage"} {
		once := NormalizeTime(in)
		assert.Equal(t, once, NormalizeTime(once), "input %q", in)
	}
}

func TestNormalizeTimeEquivalence(t *testing.T) {
	assert.Equal(t, "09:00", NormalizeTime("09:00"))
	assert.Equal(t, NormalizeTime("09:00"), NormalizeTime("09:00:00"))
}
