package layers

import (
	"github.com/gokeras/gokeras/pkg/params"
)

// Embedding proxies the library's integer-index embedding layer.
type Embedding struct {
	Base

	inputDim              int
	outputDim             int
	embeddingsInitializer string
	maskZero              bool
	inputLength           *int
}

// EmbeddingOption configures an Embedding proxy.
type EmbeddingOption func(*Embedding)

// WithEmbeddingsInitializer sets the embedding matrix initializer by name.
func WithEmbeddingsInitializer(name string) EmbeddingOption {
	return func(e *Embedding) {
		e.embeddingsInitializer = name
	}
}

// WithEmbeddingMaskZero treats index zero as a padding value to be masked.
func WithEmbeddingMaskZero(maskZero bool) EmbeddingOption {
	return func(e *Embedding) {
		e.maskZero = maskZero
	}
}

// WithEmbeddingInputLength fixes the length of input sequences.
func WithEmbeddingInputLength(length int) EmbeddingOption {
	return func(e *Embedding) {
		e.inputLength = &length
	}
}

// NewEmbedding constructs the library-side Embedding layer mapping inputDim
// vocabulary indices to outputDim-sized vectors.
func NewEmbedding(inputDim, outputDim int, options ...EmbeddingOption) (*Embedding, error) {
	e := &Embedding{
		inputDim:              inputDim,
		outputDim:             outputDim,
		embeddingsInitializer: "uniform",
	}
	for _, opt := range options {
		opt(e)
	}

	bag := params.NewBag().
		Set("input_dim", e.inputDim).
		Set("output_dim", e.outputDim).
		Set("embeddings_initializer", e.embeddingsInitializer).
		Set("mask_zero", e.maskZero).
		SetIntPtr("input_length", e.inputLength)

	if err := e.build("Embedding", bag); err != nil {
		return nil, err
	}
	return e, nil
}
