package natbitset

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// String renders the members in ascending order, e.g. "{1, 3, 7}".
func (b Bitset[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k := range b.Values() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Itoa(k))
	}
	sb.WriteByte('}')
	return sb.String()
}

// GoString renders the set together with its backing type and N.
func (b Bitset[T]) GoString() string {
	return fmt.Sprintf("natbitset.Bitset[%T](N=%d)%s", b.bits, b.d.N(), b.String())
}

// LogValue implements slog.LogValuer.
func (b Bitset[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("n", b.d.N()),
		slog.Uint64("bits", uint64(b.bits)),
		slog.String("members", b.String()),
	)
}

// MarshalText implements encoding.TextMarshaler using the String format.
func (b Bitset[T]) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The members must lie in
// the receiver's domain; a zero receiver uses the full width of T.
func (b *Bitset[T]) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return fmt.Errorf("%w: %q is not a braced list", ErrInvalidEncoding, s)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	var members []int
	if inner != "" {
		for _, field := range strings.Split(inner, ",") {
			k, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
			}
			members = append(members, k)
		}
	}
	parsed, err := b.d.From(members...)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalJSON encodes the members as an ascending array.
func (b Bitset[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Members())
}

// UnmarshalJSON decodes an array of members. The members must lie in the
// receiver's domain; a zero receiver uses the full width of T. A JSON null
// leaves the receiver unchanged.
func (b *Bitset[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var members []int
	if err := json.Unmarshal(data, &members); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	parsed, err := b.d.From(members...)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalBinary encodes the set as N followed by the word in little-endian
// order (W/8 bytes).
func (b Bitset[T]) MarshalBinary() ([]byte, error) {
	return b.AppendBinary(make([]byte, 0, 1+b.d.Width()/8))
}

// AppendBinary appends the MarshalBinary encoding of b to dst.
func (b Bitset[T]) AppendBinary(dst []byte) ([]byte, error) {
	dst = append(dst, byte(b.d.N()))
	w := uint64(b.bits)
	for i := 0; i < b.d.Width()/8; i++ {
		dst = append(dst, byte(w>>(8*i)))
	}
	return dst, nil
}

// UnmarshalBinary decodes the MarshalBinary encoding. The domain is taken from
// the encoding, not from the receiver.
func (b *Bitset[T]) UnmarshalBinary(data []byte) error {
	size := 1 + widthOf[T]()/8
	if len(data) != size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidEncoding, len(data), size)
	}
	d, err := NewDomain[T](int(data[0]))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	var w uint64
	for i, c := range data[1:] {
		w |= uint64(c) << (8 * i)
	}
	parsed, err := d.FromBits(T(w))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
