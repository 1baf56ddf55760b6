package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/freefire/internal/model"
	"github.com/idilsaglam/freefire/internal/session"
	"github.com/idilsaglam/freefire/internal/ui"
)

func writeComponents(t *testing.T, items []model.Component) string {
	t.Helper()
	b, err := json.Marshal(items)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "components.json")
	require.NoError(t, os.WriteFile(p, b, 0o644))
	return p
}

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "freefire.yaml")
	body := "theme: mono\nlogging:\n  output: " + filepath.Join(dir, "freefire.log") + "\n"
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

// execute runs the command line with a test config and returns the exit
// code, stdout and stderr.
func execute(t *testing.T, a *app, args ...string) (int, string, string) {
	t.Helper()
	t.Cleanup(func() { ui.SetTheme("classic") })
	var out, errOut bytes.Buffer
	args = append([]string{"--config", writeConfig(t)}, args...)
	code := run(a, args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func example() []model.Component {
	return []model.Component{
		{Name: "Zeta", Category: "a", Priority: 3},
		{Name: "Alpha", Category: "b", Priority: 7},
		{Name: "Mike", Category: "c", Priority: 1},
	}
}

func TestSortByName(t *testing.T) {
	f := writeComponents(t, example())
	code, out, errOut := execute(t, newApp(), "sort", "--by", "name", "-f", f)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Bubble Sort (name)")
	assert.Contains(t, out, "Comparisons: 3")
	assert.Less(t, strings.Index(out, "Alpha"), strings.Index(out, "Mike"))
	assert.Less(t, strings.Index(out, "Mike"), strings.Index(out, "Zeta"))
}

func TestSortByPriority(t *testing.T) {
	f := writeComponents(t, example())
	code, out, errOut := execute(t, newApp(), "sort", "--by", "priority", "-f", f)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Selection Sort (priority)")
}

func TestSortUnknownKeyIsUsageError(t *testing.T) {
	f := writeComponents(t, example())
	code, _, errOut := execute(t, newApp(), "sort", "--by", "weight", "-f", f)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown sort key")
	assert.Contains(t, errOut, "Usage:")
}

func TestSortWithoutComponents(t *testing.T) {
	code, _, errOut := execute(t, newApp(), "sort")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no components registered")
}

func TestSearch(t *testing.T) {
	f := writeComponents(t, example())
	code, out, errOut := execute(t, newApp(), "search", "Mike", "-f", f)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, `"Mike" found at index 1`)

	code, out, _ = execute(t, newApp(), "search", "Nope", "-f", f)
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"Nope" not found`)
}

func TestSearchNeedsOneName(t *testing.T) {
	code, _, _ := execute(t, newApp(), "search")
	assert.Equal(t, 2, code)
}

func TestListKeepsEntryOrder(t *testing.T) {
	f := writeComponents(t, example())
	code, out, _ := execute(t, newApp(), "ls", "-f", f)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "3/20")
	assert.Less(t, strings.Index(out, "Zeta"), strings.Index(out, "Alpha"))
}

func TestInvalidRecordsAreReportedAndSkipped(t *testing.T) {
	items := append(example(), model.Component{Name: "Broken", Category: "x", Priority: 42})
	f := writeComponents(t, items)
	code, out, errOut := execute(t, newApp(), "ls", "-f", f)
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "priority must be between 1 and 10")
	assert.NotContains(t, out, "Broken")
}

func TestMissingFile(t *testing.T) {
	code, _, errOut := execute(t, newApp(), "ls", "-f", filepath.Join(t.TempDir(), "absent.json"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "absent.json")
}

func TestDemo(t *testing.T) {
	code, out, errOut := execute(t, newApp(), "demo")
	require.Equal(t, 0, code, errOut)
	for _, want := range []string{"Insertion Sort (category)", "Selection Sort (priority)", "Bubble Sort (name)", `"Chip Central" found`} {
		assert.Contains(t, out, want)
	}
}

func TestUnknownCommand(t *testing.T) {
	code, _, errOut := execute(t, newApp(), "fly")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "fly")
}

func TestRootStartsInteractiveSession(t *testing.T) {
	f := writeComponents(t, example())
	var got *session.Session
	a := newApp()
	a.runTUI = func(s *session.Session) error {
		got = s
		return nil
	}
	code, _, errOut := execute(t, a, "-f", f)
	require.Equal(t, 0, code, errOut)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Len())
	assert.Equal(t, session.StateUnsorted, got.State())
}
