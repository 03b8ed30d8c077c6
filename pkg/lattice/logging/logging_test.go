package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvocationLogsAlgorithmAndParams(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(New(&buf))
	defer SetDefault(nil)

	Invocation("kmeans", 4, 12*time.Millisecond, nil)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"algorithm":"kmeans"`)
	assert.Contains(t, out, `"params":4`)
	assert.Contains(t, out, "native invocation complete")
}

func TestInvocationLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(New(&buf))
	defer SetDefault(nil)

	Invocation("pca", 1, time.Millisecond, errors.New("native routine reported failure"))

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "native invocation failed")
}

func TestSetDefaultNilRestoresBackstop(t *testing.T) {
	SetDefault(nil)
	assert.NotNil(t, Default())
}
