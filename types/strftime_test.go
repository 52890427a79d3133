package types

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStrftime(t *testing.T) {
	tests := []struct {
		layout string
		text   string
		want   time.Time
	}{
		{"%Y-%m-%d", "2025-10-31", time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)},
		{"%Y%m%d", "20251031", time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)},
		{"%d/%b/%Y %H:%M", "05/Mar/2024 14:30", time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)},
		{"%d/%b/%Y %H:%M", "05/mar/2024   14:30", time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)},
		{"%B %d, %Y", "March 5, 2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"%I:%M %p", "02:30 PM", time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC)},
		{"%I:%M %p", "12:05 am", time.Date(0, 1, 1, 0, 5, 0, 0, time.UTC)},
		{"%Y %j", "2024 060", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"%y-%m-%d", "99-01-02", time.Date(1999, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"%y-%m-%d", "05-01-02", time.Date(2005, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"%H:%M:%S.%f", "10:21:36.25", time.Date(0, 1, 1, 10, 21, 36, 250000000, time.UTC)},
		{"%m-%d", "10-31", time.Date(1900, 10, 31, 0, 0, 0, 0, time.UTC)},
		{"%c", "Mon Nov 21 10:21:36 2011", time.Date(2011, 11, 21, 10, 21, 36, 0, time.UTC)},
		{"%x", "11/21/11", time.Date(2011, 11, 21, 0, 0, 0, 0, time.UTC)},
		{"%Y-%m-%d %H:%M %z", "2011-11-21 10:21 +1000", time.Date(2011, 11, 21, 10, 21, 0, 0, FixedTzOffset{Minutes: 600}.Location())},
		{"%Y-%m-%d %Z", "2011-11-21 GMT", time.Date(2011, 11, 21, 0, 0, 0, 0, time.UTC)},
		{"100%% on %Y", "100% on 2020", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.layout+"/"+tt.text, func(t *testing.T) {
			conv, err := NewStrftime(tt.layout)
			require.NoError(t, err)

			re := regexp.MustCompile(`^(?:` + conv.Fragment(Spec{}, false) + `)$`)
			assert.True(t, re.MatchString(tt.text))

			v, err := conv.Convert(tt.text, Spec{})
			require.NoError(t, err)
			got := v.(time.Time)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestNewStrftime_Format(t *testing.T) {
	v := time.Date(2025, 3, 7, 14, 5, 9, 123456000, time.UTC)

	tests := []struct {
		layout string
		want   string
	}{
		{"%Y-%m-%d", "2025-03-07"},
		{"%Y%m%d", "20250307"},
		{"%d/%b/%Y:%H:%M:%S", "07/Mar/2025:14:05:09"},
		{"%A %B", "Friday March"},
		{"%I%p", "02PM"},
		{"%j", "066"},
		{"%f", "123456"},
		{"%z", "+0000"},
		{"%Z", "UTC"},
		{"%%%y", "%25"},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			conv, err := NewStrftime(tt.layout)
			require.NoError(t, err)
			got, err := conv.Format(v, Spec{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewStrftime_Errors(t *testing.T) {
	_, err := NewStrftime("%Y-%Q")
	assert.ErrorIs(t, err, ErrBadDirective)

	_, err = NewStrftime("%Y-%")
	assert.ErrorIs(t, err, ErrBadDirective)

	conv, err := NewStrftime("%Y-%m-%d")
	require.NoError(t, err)
	_, err = conv.Convert("2025-02-30", Spec{})
	assert.ErrorIs(t, err, ErrOutOfRange)
}
