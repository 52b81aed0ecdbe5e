package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowth(t *testing.T) {
	assert.Equal(t, float64(0), CalculateGrowth(0, 0))
	assert.Equal(t, float64(100), CalculateGrowth(50, 0))
	assert.Equal(t, float64(50), CalculateGrowth(150, 100))
	assert.Equal(t, float64(-25), CalculateGrowth(75, 100))
}

func TestIsValidValueOfConstant(t *testing.T) {
	statuses := []string{"PENDING", "CONFIRMED", "CANCELLED"}
	assert.True(t, IsValidValueOfConstant("PENDING", statuses))
	assert.False(t, IsValidValueOfConstant("UNKNOWN", statuses))
	assert.False(t, IsValidValueOfConstant("", statuses))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))
	s := StringPtr("abc")
	assert.NotNil(t, s)
	assert.Equal(t, "abc", *s)
}
