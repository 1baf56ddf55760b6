package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/freefire/internal/model"
	"github.com/idilsaglam/freefire/internal/search"
	"github.com/idilsaglam/freefire/internal/session"
	"github.com/idilsaglam/freefire/internal/sorting"
)

func useMono(t *testing.T) {
	t.Helper()
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })
}

func TestSetTheme(t *testing.T) {
	useMono(t)
	assert.Equal(t, "mono", Current().Name)
	SetTheme("NEON")
	assert.Equal(t, "neon", Current().Name)
	SetTheme("unknown")
	assert.Equal(t, "classic", Current().Name)
}

func TestCapacityBar(t *testing.T) {
	useMono(t)
	assert.Equal(t, "##--- 2/5", CapacityBar(2, 5, 5))
	assert.Equal(t, "##### 9/5", CapacityBar(9, 5, 5))
	assert.Equal(t, "----- 0/1", CapacityBar(0, 0, 1))
}

func TestTable(t *testing.T) {
	useMono(t)
	out := Table([]model.Component{
		{Name: "Chip Central", Category: "controle", Priority: 10},
		{Name: "Motor", Category: "propulsao", Priority: 8},
	})
	for _, want := range []string{"Name", "Category", "Priority", "Chip Central", "propulsao", "10"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Chip Central"), strings.Index(out, "Motor"))
	assert.Equal(t, "no components registered", Table(nil))
}

func TestReport(t *testing.T) {
	useMono(t)
	out := Report(session.Report{
		Algorithm:   "Bubble Sort (name)",
		Key:         sorting.KeyName,
		Comparisons: 42,
		Elapsed:     3 * time.Microsecond,
	})
	assert.Contains(t, out, "Bubble Sort (name)")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "3µs")
}

func TestSearchOutcome(t *testing.T) {
	useMono(t)
	hit := SearchOutcome(session.SearchResult{
		Result:    search.Result{Index: 1, Found: true, Comparisons: 1},
		Key:       "Mike",
		Component: model.Component{Name: "Mike", Category: "c", Priority: 1},
	})
	assert.Contains(t, hit, `"Mike" found at index 1`)
	assert.Contains(t, hit, "comparisons: 1")

	miss := SearchOutcome(session.SearchResult{
		Result: search.Result{Index: search.NotFound, Comparisons: 2},
		Key:    "Nope",
	})
	assert.Contains(t, miss, `"Nope" not found`)
	assert.Contains(t, miss, "comparisons: 2")
}

func TestOKFail(t *testing.T) {
	useMono(t)
	var buf bytes.Buffer
	OK(&buf, "sorted")
	Fail(&buf, "empty")
	assert.Equal(t, "ok sorted\nx empty\n", buf.String())
}

func TestHeader(t *testing.T) {
	useMono(t)
	h := Header(3, 20, session.StateSortedByName)
	assert.Contains(t, h, "3/20")
	assert.Contains(t, h, "sorted-by-name")
}
