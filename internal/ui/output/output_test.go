package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weft/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(&bytes.Buffer{}))
}

func TestColorProfile_RegularFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // test cleanup

	assert.Equal(t, termenv.Ascii, output.ColorProfile(f))
}

func TestNew_PlainText(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	out := output.New(buf)
	_, err := out.WriteString(out.String("hello").Bold().String())
	require.NoError(t, err)

	assert.Equal(t, "hello", buf.String())
}
