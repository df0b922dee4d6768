package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{2411725, "2.3 MB"},
		{5 << 30, "5 GB"},
		{3 << 40, "3072 GB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatFileSize(tc.in), "bytes=%d", tc.in)
	}
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("on"))
	assert.True(t, ParseBool(" TRUE "))
	assert.False(t, ParseBool(""))
	assert.False(t, ParseBool("maybe"))
}
