package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	at := time.Date(2031, 6, 1, 0, 0, 0, 0, time.UTC)
	c := FixedClock{T: at}

	assert.Equal(t, at, c.Now())
	assert.Equal(t, 2031, c.Now().Year())
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	now := SystemClock{}.Now()

	assert.False(t, now.Before(before))
}
