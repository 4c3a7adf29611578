package pack

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Sup2point0/natbitset"
	"github.com/Sup2point0/natbitset/internal/conv"
)

var magic = [4]byte{'N', 'B', 'S', '1'}

const headerSize = 16

type header struct {
	width       uint8
	n           uint8
	compression CompressionType
	count       uint32
	blockLen    uint32
}

func (h header) marshal() []byte {
	buf := make([]byte, headerSize)
	copy(buf, magic[:])
	buf[4] = h.width
	buf[5] = h.n
	buf[6] = byte(h.compression)
	binary.LittleEndian.PutUint32(buf[8:], h.count)
	binary.LittleEndian.PutUint32(buf[12:], h.blockLen)
	return buf
}

func readHeader(r io.Reader) (header, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return header{}, fmt.Errorf("%w: header: %w", ErrCorrupt, err)
	}
	if !bytes.Equal(buf[:4], magic[:]) {
		return header{}, ErrBadMagic
	}
	return header{
		width:       buf[4],
		n:           buf[5],
		compression: CompressionType(buf[6]),
		count:       binary.LittleEndian.Uint32(buf[8:]),
		blockLen:    binary.LittleEndian.Uint32(buf[12:]),
	}, nil
}

// Encoder writes columns of bitsets backed by T.
// It is safe for concurrent use.
type Encoder[T natbitset.Word] struct {
	opts options
}

// NewEncoder creates an Encoder. Defaults: LZ4 compression, DefaultBlockLen
// bitsets per block, DefaultConcurrency parallel blocks, no logging.
func NewEncoder[T natbitset.Word](opts ...Option) *Encoder[T] {
	return &Encoder[T]{opts: newOptions(opts)}
}

// Encode writes sets to w and returns the number of bytes written. All sets
// must share one domain; an empty column is written with the full-width domain.
func (e *Encoder[T]) Encode(ctx context.Context, w io.Writer, sets []natbitset.Bitset[T]) (n int64, err error) {
	start := time.Now()
	c := e.opts.compression
	logger := e.opts.logger
	defer func() {
		e.opts.metricsCollector.RecordEncode(len(sets), n, time.Since(start), err)
		logger.LogEncode(ctx, len(sets), n, c.String(), err)
	}()

	if !c.valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}

	var d natbitset.Domain[T]
	if len(sets) > 0 {
		d = sets[0].Domain()
		for i, s := range sets[1:] {
			if s.Domain() != d {
				return 0, fmt.Errorf("set %d: %w", i+1, &natbitset.DomainMismatchError{Left: d.N(), Right: s.Max()})
			}
		}
	}
	logger = logger.WithDomain(d.N(), d.Width())

	count, err := conv.IntToUint32(len(sets))
	if err != nil {
		return 0, err
	}
	blockLen, err := conv.IntToUint32(e.opts.blockLen)
	if err != nil {
		return 0, err
	}

	blocks, err := e.compressBlocks(ctx, sets, d.Width()/8)
	if err != nil {
		return 0, err
	}

	h := header{
		width:       uint8(d.Width()),
		n:           uint8(d.N()),
		compression: c,
		count:       count,
		blockLen:    blockLen,
	}
	written, err := w.Write(h.marshal())
	n += int64(written)
	if err != nil {
		return n, err
	}
	for _, block := range blocks {
		written, err = w.Write(block)
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (e *Encoder[T]) compressBlocks(ctx context.Context, sets []natbitset.Bitset[T], wordBytes int) ([][]byte, error) {
	blockLen := e.opts.blockLen
	numBlocks := (len(sets) + blockLen - 1) / blockLen
	blocks := make([][]byte, numBlocks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.concurrency)

	for i := range numBlocks {
		chunk := sets[i*blockLen : min((i+1)*blockLen, len(sets))]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			raw := make([]byte, 0, len(chunk)*wordBytes)
			for _, s := range chunk {
				raw = appendWord(raw, uint64(s.Bits()), wordBytes)
			}
			block, err := compressBlock(raw, e.opts.compression)
			if err != nil {
				return err
			}
			blocks[i] = block
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blocks, nil
}

func appendWord(dst []byte, w uint64, wordBytes int) []byte {
	for i := 0; i < wordBytes; i++ {
		dst = append(dst, byte(w>>(8*i)))
	}
	return dst
}

func readWord(src []byte) uint64 {
	var w uint64
	for i, c := range src {
		w |= uint64(c) << (8 * i)
	}
	return w
}

// Decoder reads columns of bitsets backed by T.
// It is safe for concurrent use.
type Decoder[T natbitset.Word] struct {
	opts options
}

// NewDecoder creates a Decoder. Only the concurrency, logger and metrics
// options apply; everything else is read from the stream.
func NewDecoder[T natbitset.Word](opts ...Option) *Decoder[T] {
	return &Decoder[T]{opts: newOptions(opts)}
}

type rawBlock struct {
	payload          []byte
	uncompressedSize uint32
	compressedSize   uint32
}

// Decode reads one column from r.
func (dec *Decoder[T]) Decode(ctx context.Context, r io.Reader) (sets []natbitset.Bitset[T], err error) {
	start := time.Now()
	compression := "unknown"
	logger := dec.opts.logger
	defer func() {
		dec.opts.metricsCollector.RecordDecode(len(sets), time.Since(start), err)
		logger.LogDecode(ctx, len(sets), compression, err)
	}()

	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	compression = h.compression.String()

	var zero natbitset.Domain[T]
	if int(h.width) != zero.Width() {
		return nil, fmt.Errorf("%w: stream has %d-bit words, want %d", ErrWidthMismatch, h.width, zero.Width())
	}
	if !h.compression.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, h.compression)
	}
	d, err := natbitset.NewDomain[T](int(h.n))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	logger = logger.WithDomain(d.N(), d.Width())

	count, err := conv.Uint32ToInt(h.count)
	if err != nil {
		return nil, err
	}
	blockLen, err := conv.Uint32ToInt(h.blockLen)
	if err != nil {
		return nil, err
	}
	if count > 0 && blockLen == 0 {
		return nil, fmt.Errorf("%w: zero block length", ErrCorrupt)
	}
	if blockLen > MaxBlockLen {
		return nil, fmt.Errorf("%w: block length %d exceeds %d", ErrCorrupt, blockLen, MaxBlockLen)
	}

	wordBytes := d.Width() / 8
	numBlocks := 0
	if count > 0 {
		numBlocks = (count + blockLen - 1) / blockLen
	}

	// The header is untrusted: grow with the blocks actually present.
	raws := make([]rawBlock, 0, min(numBlocks, 64))
	for i := range numBlocks {
		want := min(blockLen, count-i*blockLen) * wordBytes
		raw, err := readBlock(r, want)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		raws = append(raws, raw)
	}

	sets = make([]natbitset.Bitset[T], count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(dec.opts.concurrency)

	for i, raw := range raws {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := decompressBlock(raw.payload, raw.uncompressedSize, raw.compressedSize, h.compression)
			if err != nil {
				return fmt.Errorf("block %d: %w", i, err)
			}
			base := i * blockLen
			for j := 0; j*wordBytes < len(data); j++ {
				s, err := d.FromBits(T(readWord(data[j*wordBytes : (j+1)*wordBytes])))
				if err != nil {
					return fmt.Errorf("set %d: %w", base+j, err)
				}
				sets[base+j] = s
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}

// readBlock reads one block whose uncompressed payload must be want bytes.
func readBlock(r io.Reader, want int) (rawBlock, error) {
	var hdr [blockHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return rawBlock{}, fmt.Errorf("%w: block header: %w", ErrCorrupt, err)
	}
	b := rawBlock{
		uncompressedSize: binary.LittleEndian.Uint32(hdr[0:]),
		compressedSize:   binary.LittleEndian.Uint32(hdr[4:]),
	}
	if int(b.uncompressedSize) != want {
		return rawBlock{}, fmt.Errorf("%w: block holds %d bytes, want %d", ErrCorrupt, b.uncompressedSize, want)
	}
	// Compressed blocks are only kept when they beat the raw size.
	if b.compressedSize > b.uncompressedSize {
		return rawBlock{}, fmt.Errorf("%w: compressed size %d exceeds raw size %d", ErrCorrupt, b.compressedSize, b.uncompressedSize)
	}
	size := b.compressedSize
	if size == 0 {
		size = b.uncompressedSize
	}
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, int64(size)); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return rawBlock{}, fmt.Errorf("%w: block payload: %w", ErrCorrupt, err)
	}
	b.payload = buf.Bytes()
	return b, nil
}

// Marshal encodes sets into a byte slice.
func Marshal[T natbitset.Word](sets []natbitset.Bitset[T], opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := NewEncoder[T](opts...).Encode(context.Background(), &buf, sets); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a column produced by Marshal. Trailing bytes are an error.
func Unmarshal[T natbitset.Word](data []byte, opts ...Option) ([]natbitset.Bitset[T], error) {
	r := bytes.NewReader(data)
	sets, err := NewDecoder[T](opts...).Decode(context.Background(), r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, r.Len())
	}
	return sets, nil
}
