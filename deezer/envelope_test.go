package deezer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type element struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestList_PreservesOrder(t *testing.T) {
	input := `{"data": [{"id": 1, "name": "a"}, {"id": 2, "name": "b"}, {"id": 3, "name": "c"}]}`

	var l List[element]
	require.NoError(t, json.Unmarshal([]byte(input), &l))

	require.Len(t, l, 3)
	assert.Equal(t, element{ID: 1, Name: "a"}, l[0])
	assert.Equal(t, element{ID: 2, Name: "b"}, l[1])
	assert.Equal(t, element{ID: 3, Name: "c"}, l[2])
}

func TestList_BareArray(t *testing.T) {
	input := `[{"id": 1, "name": "a"}, {"id": 2, "name": "b"}]`

	var l List[element]
	require.NoError(t, json.Unmarshal([]byte(input), &l))

	require.Len(t, l, 2)
	assert.Equal(t, int64(2), l[1].ID)
}

func TestList_StrictFailsOnBadElement(t *testing.T) {
	input := `{"data": [{"id": 1, "name": "a"}, {"id": "bad", "name": "b"}, {"id": 3, "name": "c"}]}`

	var l List[element]
	err := json.Unmarshal([]byte(input), &l)
	require.Error(t, err)
}

func TestList_EmptyAndMissingData(t *testing.T) {
	for name, input := range map[string]string{
		"empty array":  `{"data": []}`,
		"null data":    `{"data": null}`,
		"missing data": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			var l List[element]
			require.NoError(t, json.Unmarshal([]byte(input), &l))
			assert.Empty(t, l)
		})
	}
}

func TestSkipList_SkipsBadElements(t *testing.T) {
	input := `{"data": [{"id": 1, "name": "a"}, {"id": "bad", "name": "b"}, {"id": 3, "name": "c"}]}`

	var l SkipList[element]
	require.NoError(t, json.Unmarshal([]byte(input), &l))

	require.Len(t, l.Items, 2)
	assert.Equal(t, int64(1), l.Items[0].ID)
	assert.Equal(t, int64(3), l.Items[1].ID)

	require.Len(t, l.Skipped, 1)
	assert.Equal(t, 1, l.Skipped[0].Index)
	assert.JSONEq(t, `{"id": "bad", "name": "b"}`, string(l.Skipped[0].Raw))
	assert.Error(t, l.Skipped[0].Err)
}

func TestSkipList_AllGood(t *testing.T) {
	input := `{"data": [{"id": 1, "name": "a"}, {"id": 2, "name": "b"}]}`

	var l SkipList[element]
	require.NoError(t, json.Unmarshal([]byte(input), &l))

	assert.Len(t, l.Items, 2)
	assert.Empty(t, l.Skipped)
}

func TestSkipList_ReusedValueResetsSkips(t *testing.T) {
	var l SkipList[element]
	require.NoError(t, json.Unmarshal([]byte(`{"data": [{"id": "bad"}]}`), &l))
	require.Len(t, l.Skipped, 1)

	require.NoError(t, json.Unmarshal([]byte(`{"data": [{"id": 7}]}`), &l))
	assert.Len(t, l.Items, 1)
	assert.Empty(t, l.Skipped)
}

func TestSkipList_MarshalsAsBareArray(t *testing.T) {
	l := SkipList[element]{Items: []element{{ID: 1, Name: "a"}}}

	out, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 1, "name": "a"}]`, string(out))
}
