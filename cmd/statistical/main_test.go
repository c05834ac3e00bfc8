package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cmd := versionCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	err := cmd.Execute()
	require.NoError(t, err)
	require.Contains(t, out.String(), "statistical ")
	require.Contains(t, out.String(), "commit:")
	require.Contains(t, out.String(), "built:")
}
