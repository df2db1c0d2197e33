package domain

// Corpus is the searchable collection loaded into memory at service start.
// It holds three parallel containers indexed identically: position i in
// each refers to the same chunk. Once loaded, a Corpus is immutable for
// the process lifetime; concurrent readers need no synchronisation.
//
// Invariant: all three slices have equal length and every vector shares
// one dimensionality, fixed at load time.
type Corpus struct {
	// Vectors holds one embedding per chunk.
	Vectors [][]float32

	// Texts holds the chunk texts, aligned with Vectors.
	Texts []string

	// Meta holds the chunk metadata, aligned with Vectors.
	Meta []ChunkMeta
}

// Len returns the number of chunks in the corpus.
func (c *Corpus) Len() int {
	return len(c.Vectors)
}

// Dimensions returns the dimensionality of the first vector, or 0 for
// an empty corpus.
func (c *Corpus) Dimensions() int {
	if len(c.Vectors) == 0 {
		return 0
	}
	return len(c.Vectors[0])
}
