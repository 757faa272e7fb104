package upack

// CompressionDetails is the only out-of-band metadata the core produces.
// Callers must persist CompressedBitLength and BytesWritten (and, for the
// delta modes, thread last_value forward) in order to call the matching
// Decompress* later.
type CompressionDetails struct {
	CompressedBitLength int
	BytesWritten        int
}
