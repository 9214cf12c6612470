package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalidsaidi/topoloom/matrix"
)

func TestNewDense_Validation(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_SetAtClone(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)

	cp := m.Clone()
	require.NoError(t, cp.Set(1, 2, 0))
	v, err = m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v, "clone must not share backing storage")
}
