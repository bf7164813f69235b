package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	for _, s := range []string{"2024-10-05", "2024-10-05 18:30", "2024-10-05 18:30:00", "2024-10-05T18:30:00Z"} {
		_, err := ParseDate(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseDate("next friday")
	assert.Error(t, err)
}
