package feed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID int `json:"id"`
}

func TestResolveEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		body string
		keys []string
		want []int
	}{
		{name: "bare array", body: `[{"id":1},{"id":2},{"id":3}]`, keys: []string{EnvelopeData}, want: []int{1, 2, 3}},
		{name: "data envelope", body: `{"data":[{"id":4},{"id":5}],"total":2}`, keys: []string{EnvelopeData}, want: []int{4, 5}},
		{name: "posts envelope", body: `{"posts":[{"id":6}]}`, keys: []string{EnvelopeData, EnvelopePosts}, want: []int{6}},
		{name: "data wins over posts", body: `{"posts":[{"id":1}],"data":[{"id":2}]}`, keys: []string{EnvelopeData, EnvelopePosts}, want: []int{2}},
		{name: "posts not tried unless asked", body: `{"posts":[{"id":6}]}`, keys: []string{EnvelopeData}, want: []int{}},
		{name: "data not an array", body: `{"data":{"id":1},"posts":[{"id":9}]}`, keys: []string{EnvelopeData, EnvelopePosts}, want: []int{9}},
		{name: "unknown object", body: `{"items":[{"id":1}]}`, keys: []string{EnvelopeData}, want: []int{}},
		{name: "null", body: `null`, keys: []string{EnvelopeData}, want: []int{}},
		{name: "number", body: `42`, keys: []string{EnvelopeData}, want: []int{}},
		{name: "string", body: `"ok"`, keys: []string{EnvelopeData}, want: []int{}},
		{name: "empty body", body: ``, keys: []string{EnvelopeData}, want: []int{}},
		{name: "empty array", body: `[]`, want: []int{}},
		{name: "no keys means bare arrays only", body: `{"data":[{"id":1}]}`, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Items[item]([]byte(tt.body), tt.keys...)
			require.NoError(t, err)
			require.NotNil(t, items, "never nil")

			ids := make([]int, len(items))
			for i, it := range items {
				ids[i] = it.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestResolveInvalidJSON(t *testing.T) {
	_, err := Resolve([]byte(`{"data": [`), EnvelopeData)
	assert.Error(t, err)

	_, err = Items[item]([]byte(`<html>`))
	assert.Error(t, err)
}

func TestItemsDropsUndecodableElements(t *testing.T) {
	items, err := Items[item]([]byte(`[{"id":1}, 7, "x", {"id":2}]`))
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 1}, {ID: 2}}, items)
}

func TestResolveKeepsRawElements(t *testing.T) {
	raws, err := Resolve([]byte(`{"data":[1,"two",{"three":3}]}`), EnvelopeData)
	require.NoError(t, err)
	require.Len(t, raws, 3)
	assert.Equal(t, json.RawMessage(`"two"`), raws[1])
}

func TestItemsOrSingle(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []int
	}{
		{name: "object", body: `{"id":3}`, want: []int{3}},
		{name: "empty object", body: `{}`, want: []int{}},
		{name: "null", body: `null`, want: []int{}},
		{name: "array", body: `[{"id":1},{"id":2}]`, want: []int{1, 2}},
		{name: "data envelope", body: `{"data":[{"id":8}]}`, want: []int{8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ItemsOrSingle[item]([]byte(tt.body), EnvelopeData)
			require.NoError(t, err)

			ids := make([]int, len(items))
			for i, it := range items {
				ids[i] = it.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestOne(t *testing.T) {
	got, err := One[item]([]byte(`{"id":5}`))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 5, got.ID)

	got, err = One[item]([]byte(` null `))
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = One[item]([]byte(`[1]`))
	assert.Error(t, err)
}

func TestTake(t *testing.T) {
	in := []int{1, 2, 3, 4}
	assert.Equal(t, []int{1, 2}, take(in, 2))
	assert.Equal(t, in, take(in, 10))
	assert.Empty(t, take(in, 0))
	assert.Empty(t, take([]int{}, 3))
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Kiến trúc & Đô thị", StripHTML("  <p><strong>Kiến trúc</strong> &amp; Đô thị</p>\n"))
	assert.Equal(t, "", StripHTML(""))
	assert.Equal(t, "", StripHTML("<br/>"))
}
