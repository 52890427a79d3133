package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convertTime(t *testing.T, code, text string) time.Time {
	t.Helper()
	conv, err := Builtins().Lookup(code)
	require.NoError(t, err)
	require.True(t, fragmentMatches(t, code, Spec{}, text), "fragment for %q rejects %q", code, text)
	v, err := conv.Convert(text, Spec{Type: code})
	require.NoError(t, err)
	tm, ok := v.(time.Time)
	require.True(t, ok)
	return tm
}

func zone(minutes int) *time.Location {
	return FixedTzOffset{Minutes: minutes}.Location()
}

func TestNamedTimeGrammars(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		text       string
		want       time.Time
		wantOffset int
		hasOffset  bool
	}{
		{
			name: "iso date only",
			code: "ti",
			text: "2011-11-21",
			want: time.Date(2011, 11, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "iso full",
			code:       "ti",
			text:       "2011-11-21T10:21:36.5+10:00",
			want:       time.Date(2011, 11, 21, 10, 21, 36, 500000000, zone(600)),
			wantOffset: 600,
			hasOffset:  true,
		},
		{
			name:      "iso zulu",
			code:      "ti",
			text:      "2011-11-21 10:21Z",
			want:      time.Date(2011, 11, 21, 10, 21, 0, 0, time.UTC),
			hasOffset: true,
		},
		{
			name:       "email",
			code:       "te",
			text:       "Mon, 21 Nov 2011 10:21:36 +1000",
			want:       time.Date(2011, 11, 21, 10, 21, 36, 0, zone(600)),
			wantOffset: 600,
			hasOffset:  true,
		},
		{
			name:       "global with pm",
			code:       "tg",
			text:       "21/11/2011 10:21:36 PM -10:00",
			want:       time.Date(2011, 11, 21, 22, 21, 36, 0, zone(-600)),
			wantOffset: -600,
			hasOffset:  true,
		},
		{
			name: "global month name",
			code: "tg",
			text: "21/Nov/2011",
			want: time.Date(2011, 11, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "american",
			code: "ta",
			text: "11/21/2011 10:21 AM",
			want: time.Date(2011, 11, 21, 10, 21, 0, 0, time.UTC),
		},
		{
			name: "ctime",
			code: "tc",
			text: "Mon Nov 21 10:21:36 2011",
			want: time.Date(2011, 11, 21, 10, 21, 36, 0, time.UTC),
		},
		{
			name:       "http log",
			code:       "th",
			text:       "21/Nov/2011:10:21:36 +1000",
			want:       time.Date(2011, 11, 21, 10, 21, 36, 0, zone(600)),
			wantOffset: 600,
			hasOffset:  true,
		},
		{
			name: "syslog",
			code: "ts",
			text: "Nov 21 10:21:36",
			want: time.Date(time.Now().Year(), 11, 21, 10, 21, 36, 0, time.UTC),
		},
		{
			name: "time with pm",
			code: "tt",
			text: "10:21:36 PM",
			want: time.Date(0, 1, 1, 22, 21, 36, 0, time.UTC),
		},
		{
			name:       "time with offset",
			code:       "tt",
			text:       "10:21:36+05:30",
			want:       time.Date(0, 1, 1, 10, 21, 36, 0, zone(330)),
			wantOffset: 330,
			hasOffset:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertTime(t, tt.code, tt.text)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)

			off, ok := OffsetOf(got)
			assert.Equal(t, tt.hasOffset, ok)
			assert.Equal(t, tt.wantOffset, off.Minutes)
		})
	}
}

func TestNamedTimeGrammars_RenderRoundTrip(t *testing.T) {
	values := []time.Time{
		time.Date(2011, 11, 21, 10, 21, 36, 0, time.UTC),
		time.Date(2011, 11, 21, 10, 21, 36, 0, zone(600)),
		time.Date(1999, 2, 3, 4, 5, 6, 0, zone(-330)),
	}

	for _, code := range []string{"ti", "te", "tg", "ta", "tc", "th"} {
		conv, err := Builtins().Lookup(code)
		require.NoError(t, err)
		for _, v := range values {
			text, err := conv.Format(v, Spec{})
			require.NoError(t, err)
			got := convertTime(t, code, text)
			if code == "tc" {
				// ctime carries no offset
				assert.Equal(t, v.Format("2006-01-02 15:04:05"), got.Format("2006-01-02 15:04:05"), code)
				continue
			}
			assert.True(t, v.Equal(got), "%s: %q parsed as %s", code, text, got)
		}
	}
}

func TestTimeConvert_Errors(t *testing.T) {
	conv, err := Builtins().Lookup("ti")
	require.NoError(t, err)

	_, err = conv.Convert("2011-02-30", Spec{})
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = conv.Convert("2011-13-01", Spec{})
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = conv.Convert("yesterday", Spec{})
	assert.ErrorIs(t, err, ErrConvert)

	_, err = conv.Format("2011-11-21", Spec{})
	assert.ErrorIs(t, err, ErrFormat)
}

func TestFixedTzOffset(t *testing.T) {
	assert.Equal(t, "+10:00", FixedTzOffset{Minutes: 600}.String())
	assert.Equal(t, "-05:30", FixedTzOffset{Minutes: -330}.String())
	assert.Equal(t, "+00:00", FixedTzOffset{}.String())

	_, ok := OffsetOf(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)

	off, ok := OffsetOf(time.Date(2020, 1, 1, 0, 0, 0, 0, FixedTzOffset{Minutes: -60}.Location()))
	assert.True(t, ok)
	assert.Equal(t, -60, off.Minutes)
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Z", 0},
		{"UTC", 0},
		{"+10", 600},
		{"+1000", 600},
		{"-5:30", -330},
		{"-05:30", -330},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := parseOffset(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Minutes)
		})
	}

	_, err := parseOffset("+25:00")
	assert.ErrorIs(t, err, ErrOutOfRange)
}
