// Package pack encodes columns of bitsets that share one domain.
//
// A column is a slice of natbitset.Bitset values, for example the candidate
// digits of every cell of a Sudoku grid. Words are laid out contiguously in
// little-endian order and split into blocks that are compressed independently
// (and concurrently) with LZ4 or ZSTD.
//
// # Format
//
//	header: "NBS1" | width u8 | n u8 | compression u8 | reserved u8 | count u32 | blockLen u32
//	block:  uncompressedSize u32 | compressedSize u32 | data
//
// A compressedSize of 0 marks a block stored uncompressed, which happens when
// compression saves less than 10%.
//
// Streams are self-describing: the decoder reads the domain and compression
// type from the header and rejects streams written for a different word type.
// Header counts are not trusted: blocks hold at most MaxBlockLen bitsets, and
// memory grows only as block data is actually read.
//
// # Usage
//
//	data, err := pack.Marshal(grid, pack.WithCompression(pack.CompressionZSTD))
//	...
//	grid, err = pack.Unmarshal[uint16](data)
package pack
