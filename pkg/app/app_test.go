package app_test

import (
	"bytes"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/payengine/pkg/app"
	"github.com/amirasaad/payengine/pkg/config"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func writeInput(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func newApp() *app.App {
	return app.New(nil, &config.App{Env: "test", Log: &config.Log{}})
}

func TestRunEndToEnd(t *testing.T) {
	t.Parallel()
	input := writeInput(t,
		"type,client,tx,amount\n"+
			"deposit,1,1,5.0\n"+
			"deposit,2,2,2.0\n"+
			"deposit,1,3,3.0\n"+
			"dispute,1,3,\n"+
			"chargeback,1,3,\n"+
			"withdrawal,2,4,1.0\n")

	var out bytes.Buffer
	require.NoError(t, newApp().Run(input, &out))

	want := "client,available,held,total,locked\n" +
		"1,5.0000,0.0000,5.0000,true\n" +
		"2,1.0000,0.0000,1.0000,false\n"
	assert.Equal(t, want, out.String())
}

func TestRunSkipsMalformedRows(t *testing.T) {
	t.Parallel()
	input := writeInput(t,
		"type,client,tx,amount\n"+
			"deposit,1,1,5.0\n"+
			"garbage row that is not an instruction\n"+
			"withdrawal,1,2,1.0\n")

	var out bytes.Buffer
	require.NoError(t, newApp().Run(input, &out))

	assert.Contains(t, out.String(), "1,4.0000,0.0000,4.0000,false\n")
}

func TestRunMissingInputIsFatal(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := newApp().Run(filepath.Join(t.TempDir(), "missing.csv"), &out)
	assert.Error(t, err)
	assert.Empty(t, out.String(), "nothing may be written on a boundary failure")
}
