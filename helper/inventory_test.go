package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStock(t *testing.T) {
	next, err := NextStock(10, 5)
	assert.NoError(t, err)
	assert.Equal(t, 15, next)

	next, err = NextStock(3, -3)
	assert.NoError(t, err)
	assert.Equal(t, 0, next)

	_, err = NextStock(3, -5)
	assert.Error(t, err)
}

func TestRestoreSoldCount(t *testing.T) {
	assert.Equal(t, 7, RestoreSoldCount(10, 3))
	assert.Equal(t, 0, RestoreSoldCount(2, 5))
	assert.Equal(t, 0, RestoreSoldCount(0, 1))
}
