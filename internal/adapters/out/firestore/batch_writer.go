// internal/adapters/out/firestore/batch_writer.go
package firestore

import (
	"context"
	"errors"
	"fmt"

	gfs "cloud.google.com/go/firestore"
)

// DefaultChunkSize is the Firestore cap on operations per committed batch.
const DefaultChunkSize = 500

// Doc is one pending write: a document body destined for a collection/id.
type Doc struct {
	Collection string
	ID         string
	Data       map[string]any
}

// BatchWriter commits an ordered sequence of Docs in fixed-size chunks.
// Each chunk commits atomically and independently: a failure in chunk k
// leaves chunks 1..k-1 applied. Callers keep document ids stable so a re-run
// after a partial failure converges instead of duplicating.
type BatchWriter struct {
	Client    *gfs.Client
	ChunkSize int
	Merge     bool // MergeAll instead of overwrite

	// OnChunk, when set, is called after each committed chunk with the number
	// of documents written so far and the total.
	OnChunk func(written, total int)
}

func NewBatchWriter(client *gfs.Client) *BatchWriter {
	return &BatchWriter{Client: client, ChunkSize: DefaultChunkSize}
}

// Write commits all docs. Returns the number of documents committed; on
// error that count covers only fully committed chunks.
func (w *BatchWriter) Write(ctx context.Context, docs []Doc) (int, error) {
	if w == nil || w.Client == nil {
		return 0, errors.New("batch writer: firestore client is nil")
	}

	size := w.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}

	written := 0
	for _, chunk := range chunkDocs(docs, size) {
		batch := w.Client.Batch()
		for _, d := range chunk {
			ref := w.Client.Collection(d.Collection).Doc(d.ID)
			if w.Merge {
				batch.Set(ref, d.Data, gfs.MergeAll)
			} else {
				batch.Set(ref, d.Data)
			}
		}
		if _, err := batch.Commit(ctx); err != nil {
			return written, fmt.Errorf("batch commit after %d docs: %w", written, err)
		}
		written += len(chunk)
		if w.OnChunk != nil {
			w.OnChunk(written, len(docs))
		}
	}
	return written, nil
}

// Delete commits deletes for all ids of a collection, chunked like Write.
func (w *BatchWriter) Delete(ctx context.Context, collection string, ids []string) (int, error) {
	if w == nil || w.Client == nil {
		return 0, errors.New("batch writer: firestore client is nil")
	}

	size := w.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}

	deleted := 0
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batch := w.Client.Batch()
		for _, id := range ids[start:end] {
			batch.Delete(w.Client.Collection(collection).Doc(id))
		}
		if _, err := batch.Commit(ctx); err != nil {
			return deleted, fmt.Errorf("batch delete after %d docs: %w", deleted, err)
		}
		deleted += end - start
		if w.OnChunk != nil {
			w.OnChunk(deleted, len(ids))
		}
	}
	return deleted, nil
}

// chunkDocs splits docs into groups of at most size, preserving order.
// Every input doc lands in exactly one chunk.
func chunkDocs(docs []Doc, size int) [][]Doc {
	if size <= 0 || len(docs) == 0 {
		if len(docs) == 0 {
			return nil
		}
		return [][]Doc{docs}
	}
	chunks := make([][]Doc, 0, (len(docs)+size-1)/size)
	for start := 0; start < len(docs); start += size {
		end := start + size
		if end > len(docs) {
			end = len(docs)
		}
		chunks = append(chunks, docs[start:end])
	}
	return chunks
}
