package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
)

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantFreq rrule.Frequency
		wantDays []rrule.Weekday
		wantErr  bool
	}{
		{name: "daily", input: "daily", wantFreq: rrule.DAILY},
		{
			name:     "every weekday",
			input:    "every weekday",
			wantFreq: rrule.WEEKLY,
			wantDays: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
		},
		{
			name:     "weekends",
			input:    "weekends",
			wantFreq: rrule.WEEKLY,
			wantDays: []rrule.Weekday{rrule.SA, rrule.SU},
		},
		{
			name:     "every monday",
			input:    "every monday",
			wantFreq: rrule.WEEKLY,
			wantDays: []rrule.Weekday{rrule.MO},
		},
		{
			name:     "every tuesday and thursday",
			input:    "every tuesday and thursday",
			wantFreq: rrule.WEEKLY,
			wantDays: []rrule.Weekday{rrule.TU, rrule.TH},
		},
		{
			name:     "every mon, wed, fri",
			input:    "every mon, wed, fri",
			wantFreq: rrule.WEEKLY,
			wantDays: []rrule.Weekday{rrule.MO, rrule.WE, rrule.FR},
		},
		{
			name:     "raw RRULE with FREQ prefix",
			input:    "FREQ=WEEKLY;BYDAY=MO,WE,FR",
			wantFreq: rrule.WEEKLY,
			wantDays: []rrule.Weekday{rrule.MO, rrule.WE, rrule.FR},
		},

		// Errors
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not a recurrence", wantErr: true},
		{name: "unknown day", input: "every funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRecurrence(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)

			opts := got.OrigOptions
			assert.Equal(t, tt.wantFreq, opts.Freq, "frequency mismatch")
			if tt.wantDays != nil {
				assert.Equal(t, tt.wantDays, opts.Byweekday, "weekdays mismatch")
			}
		})
	}
}

func TestSlotsFromRecurrence(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{
			name:  "daily covers the whole week",
			input: "daily",
			want: []time.Weekday{
				time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday, time.Saturday,
			},
		},
		{name: "weekends sorted sunday first", input: "weekends", want: []time.Weekday{time.Sunday, time.Saturday}},
		{name: "single day", input: "every wednesday", want: []time.Weekday{time.Wednesday}},
		{name: "duplicates collapse", input: "every mon and monday", want: []time.Weekday{time.Monday}},
		{name: "raw rrule", input: "FREQ=WEEKLY;BYDAY=SU,TH", want: []time.Weekday{time.Sunday, time.Thursday}},

		{name: "biweekly rejected", input: "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO", wantErr: true},
		{name: "bounded rejected", input: "FREQ=WEEKLY;COUNT=3;BYDAY=MO", wantErr: true},
		{name: "weekly without days rejected", input: "FREQ=WEEKLY", wantErr: true},
		{name: "monthly rejected", input: "FREQ=MONTHLY;BYMONTHDAY=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SlotsFromRecurrence(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
