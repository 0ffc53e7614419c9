package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// EmbeddingCache stores embeddings keyed by a hash of the input text so
// repeated analyses of the same resume or job description do not re-bill
// the embedding backend. The scoring core never touches it directly; it is
// wired in front of the embedder.
type EmbeddingCache interface {
	InitCollection() error
	Get(ctx context.Context, text string) ([]float32, bool)
	Put(ctx context.Context, text string, vector []float32) error
}

type qdrantEmbeddingCache struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewQdrantEmbeddingCache(urlStr, apiKey, collectionName string) (EmbeddingCache, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantEmbeddingCache{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements EmbeddingCache.
func (q *qdrantEmbeddingCache) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Embedding cache collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// Get implements EmbeddingCache.
func (q *qdrantEmbeddingCache) Get(ctx context.Context, text string) ([]float32, bool) {
	points, err := q.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: q.collectionName,
		Ids:            []*qdrant.PointId{qdrant.NewID(pointID(text))},
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil || len(points) == 0 {
		return nil, false
	}

	vectors := points[0].GetVectors()
	if vectors == nil {
		return nil, false
	}

	vector := vectors.GetVector()
	if vector == nil || len(vector.GetData()) == 0 {
		return nil, false
	}

	return vector.GetData(), true
}

// Put implements EmbeddingCache.
func (q *qdrantEmbeddingCache) Put(ctx context.Context, text string, vector []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(pointID(text)),
		Vectors: qdrant.NewVectors(vector...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"sha256": textHash(text),
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

func textHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// pointID derives a stable UUID point ID from the text hash.
func pointID(text string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(textHash(text))).String()
}

// cachedEmbedder consults the cache before the backend and fills it after.
// Cache failures fall through to the backend silently.
type cachedEmbedder struct {
	backend Embedder
	cache   EmbeddingCache
}

func NewCachedEmbedder(backend Embedder, cache EmbeddingCache) Embedder {
	return &cachedEmbedder{backend: backend, cache: cache}
}

func (c *cachedEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if vec, ok := c.cache.Get(ctx, text); ok {
		return vec, nil
	}

	vec, err := c.backend.GenerateEmbedding(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Put(ctx, text, vec); err != nil {
		log.Printf("⚠️  Failed to cache embedding: %v\n", err)
	}

	return vec, nil
}
