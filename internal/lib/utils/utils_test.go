package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]int{"id": 1}))
	assert.Equal(t, "{\n\t\"id\": 1\n}\n", buf.String())

	err := WriteJSON(&buf, make(chan int))
	assert.Error(t, err)
}

func TestPtr(t *testing.T) {
	p := Ptr(int64(5))
	assert.Equal(t, int64(5), *p)
}
