package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRole(t *testing.T) {
	r, err := checkRole(" manager ")
	require.NoError(t, err)
	assert.Equal(t, "MANAGER", r)

	r, err = checkRole("system")
	require.NoError(t, err)
	assert.Equal(t, "SYSTEM", r)

	_, err = checkRole("CASHIER")
	assert.ErrorContains(t, err, "Invalid role value")

	_, err = checkRole("")
	assert.Error(t, err)
}
