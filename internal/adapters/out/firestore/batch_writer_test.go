// internal/adapters/out/firestore/batch_writer_test.go
package firestore

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDocs(n int) []Doc {
	docs := make([]Doc, n)
	for i := range docs {
		docs[i] = Doc{Collection: "things", ID: fmt.Sprintf("d%04d", i)}
	}
	return docs
}

func TestChunkDocsSizes(t *testing.T) {
	cases := []struct {
		docs, size, chunks int
	}{
		{0, 500, 0},
		{1, 500, 1},
		{500, 500, 1},
		{501, 500, 2},
		{1200, 500, 3},
		{7, 3, 3},
	}

	for _, tc := range cases {
		chunks := chunkDocs(makeDocs(tc.docs), tc.size)
		assert.Len(t, chunks, tc.chunks, "%d docs / chunk %d", tc.docs, tc.size)

		for i, c := range chunks {
			assert.LessOrEqual(t, len(c), tc.size, "chunk %d oversize", i)
			assert.NotEmpty(t, c)
		}
	}
}

func TestChunkDocsCoversEveryDocOnce(t *testing.T) {
	docs := makeDocs(1042)

	seen := map[string]int{}
	order := make([]string, 0, len(docs))
	for _, c := range chunkDocs(docs, 500) {
		for _, d := range c {
			seen[d.ID]++
			order = append(order, d.ID)
		}
	}

	require.Len(t, order, len(docs))
	for _, d := range docs {
		assert.Equal(t, 1, seen[d.ID], "doc %s", d.ID)
	}

	// Order is preserved across chunk boundaries.
	for i, d := range docs {
		assert.Equal(t, d.ID, order[i])
	}
}

func TestChunkDocsNonPositiveSize(t *testing.T) {
	docs := makeDocs(5)

	chunks := chunkDocs(docs, 0)
	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0], 5)

	assert.Nil(t, chunkDocs(nil, 0))
}

func TestBatchWriterNilClient(t *testing.T) {
	var w *BatchWriter
	_, err := w.Write(t.Context(), makeDocs(1))
	require.Error(t, err)

	w2 := &BatchWriter{}
	_, err = w2.Write(t.Context(), makeDocs(1))
	require.Error(t, err)
	_, err = w2.Delete(t.Context(), "things", []string{"a"})
	require.Error(t, err)
}
