package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/freefire/internal/model"
)

func TestParseKey(t *testing.T) {
	for in, want := range map[string]Key{
		"name":     KeyName,
		" Name ":   KeyName,
		"category": KeyCategory,
		"type":     KeyCategory,
		"PRIORITY": KeyPriority,
	} {
		got, err := ParseKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseKey("weight")
	assert.Error(t, err)
}

func TestForBindsAlgorithmToKey(t *testing.T) {
	want := map[Key]string{
		KeyName:     "Bubble Sort (name)",
		KeyCategory: "Insertion Sort (category)",
		KeyPriority: "Selection Sort (priority)",
	}
	for k, label := range want {
		s, err := For(k)
		require.NoError(t, err)
		assert.Equal(t, k, s.Key)
		assert.Equal(t, label, s.Label())
	}
	_, err := For(Key(9))
	assert.Error(t, err)
	assert.Equal(t, "Key(9)", Key(9).String())
}

func TestStrategyRun(t *testing.T) {
	s, err := For(KeyPriority)
	require.NoError(t, err)
	items := []model.Component{{Name: "A", Category: "_", Priority: 5}, {Name: "B", Category: "_", Priority: 1}, {Name: "C", Category: "_", Priority: 9}}
	assert.EqualValues(t, 3, s.Run(items))
	assert.Equal(t, []string{"B", "A", "C"}, names(items))
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	require.Len(t, all, 3)
	all[0].Algorithm = "mutated"
	s, _ := For(KeyName)
	assert.Equal(t, "Bubble Sort", s.Algorithm)
}
