package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextOrder(t *testing.T) {
	assert.Equal(t, 1, NextOrder(0))
	assert.Equal(t, 4, NextOrder(3))
	assert.Equal(t, 1, NextOrder(-2))
}
