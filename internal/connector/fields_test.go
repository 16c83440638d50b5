package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crono-connector/internal/common/errors"
)

func TestPutPredicates(t *testing.T) {
	m := map[string]any{}

	putString(m, "Name", "")
	putString(m, "Website", "https://acme.test")
	putFlag(m, "Completed", false)
	putFlag(m, "Active", true)
	putNumber(m, "Amount", 0)
	putNumber(m, "MinEmployees", 10)

	assert.Equal(t, map[string]any{
		"Website":      "https://acme.test",
		"Active":       true,
		"MinEmployees": float64(10),
	}, m)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		raw      string
		expected []string
	}{
		{"", nil},
		{" , ,", nil},
		{"a,b", []string{"a", "b"}},
		{" hot , emea ", []string{"hot", "emea"}},
		{"solo", []string{"solo"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, splitList(tt.raw), "raw=%q", tt.raw)
	}
}

func TestPutIntList(t *testing.T) {
	t.Run("parses and trims", func(t *testing.T) {
		m := map[string]any{}
		it := Item{Index: 1, Params: map[string]any{"ids": "1, 2,3"}}
		require.NoError(t, putIntList(m, "Ids", it, "ids"))
		assert.Equal(t, []int{1, 2, 3}, m["Ids"])
	})

	t.Run("empty segments dropped", func(t *testing.T) {
		m := map[string]any{}
		it := Item{Params: map[string]any{"ids": "1,,2,"}}
		require.NoError(t, putIntList(m, "Ids", it, "ids"))
		assert.Equal(t, []int{1, 2}, m["Ids"])
	})

	t.Run("absent leaves key unset", func(t *testing.T) {
		m := map[string]any{}
		it := Item{Params: map[string]any{}}
		require.NoError(t, putIntList(m, "Ids", it, "ids"))
		assert.NotContains(t, m, "Ids")
	})

	t.Run("non-numeric segment fails", func(t *testing.T) {
		m := map[string]any{}
		it := Item{Index: 3, Params: map[string]any{"ids": "1,x,2"}}
		err := putIntList(m, "Ids", it, "ids")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidParameter))
		assert.Equal(t, 3, err.(*errors.StandardError).ItemIndex)
	})
}

func TestParamName(t *testing.T) {
	assert.Equal(t, "companyName", paramName("company", "Name"))
	assert.Equal(t, "taskSearchOwnerId", paramName("taskSearch", "OwnerId"))
	assert.Equal(t, "firstName", paramName("", "FirstName"))
	assert.Equal(t, "name", paramName("", "Name"))
}
