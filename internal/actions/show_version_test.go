package actions

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShowVersion_PrintsVersion(t *testing.T) {
	var printed string

	deps := actionDependencies{
		Printf: func(format string, a ...any) (int, error) {
			printed = fmt.Sprintf(format, a...)
			return len(printed), nil
		},
		Version: func() string {
			return "1.2.3"
		},
	}

	err := showVersion(deps)

	require.NoError(t, err)
	require.Equal(t, "botcmd version 1.2.3\n", printed)
}

func TestShowVersion_DefaultDeps(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, ShowVersion(&buf))
	require.Equal(t, "botcmd version dev\n", buf.String())
}
