package sessionid

import (
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/lightningnetwork/lnd/fn/v2"
)

const (
	// MaxSize is the largest session id allowed by the DTLS handshake
	// encoding, opaque SessionID<0..32>.
	MaxSize = 32

	// RandomSize is the number of random bytes drawn by New.
	RandomSize = MaxSize
)

// emptyID is the canonical session id used before a session id has been
// assigned.
var emptyID = ID{}

// ID identifies a particular DTLS session. An ID is immutable: the bytes are
// copied on the way in and on the way out, so a value can be shared freely
// between goroutines and used as a map key.
//
// The zero value is the empty session id.
type ID struct {
	id string
}

// New returns a session id made of RandomSize bytes drawn from crypto/rand.
// It panics if the system random source fails, as no session can be
// established safely at that point.
func New() ID {
	sid, err := defaultGenerator.Generate()
	if err != nil {
		panic(fmt.Sprintf("unable to generate session id: %v", err))
	}

	return sid
}

// FromBytes returns a session id holding a copy of b. A nil slice is rejected
// with ErrNilBytes, while an empty non-nil slice yields the empty session id.
// The length of b is not checked against MaxSize, use Validate for that.
func FromBytes(b []byte) (ID, error) {
	if b == nil {
		return ID{}, ErrNilBytes
	}

	// Converting to a string copies the bytes.
	return ID{id: string(b)}, nil
}

// FromHex decodes a hex encoded session id as produced by String.
func FromHex(s string) (ID, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}

	// An empty string decodes to the empty session id, whether or not the
	// decoder hands back a nil slice.
	if len(b) == 0 {
		return Empty(), nil
	}

	return FromBytes(b)
}

// Empty returns the canonical empty session id.
func Empty() ID {
	return emptyID
}

// Len returns the number of bytes in the session id.
func (s ID) Len() int {
	return len(s.id)
}

// IsEmpty returns true if no session id bytes are present.
func (s ID) IsEmpty() bool {
	return len(s.id) == 0
}

// Bytes returns a copy of the session id bytes. The returned slice is never
// nil.
func (s ID) Bytes() []byte {
	b := make([]byte, len(s.id))
	copy(b, s.id)

	return b
}

// Equal returns true if both session ids hold the same bytes.
func (s ID) Equal(other ID) bool {
	return s.id == other.id
}

// Hash returns a hash of the session id bytes. Equal session ids always have
// the same hash, regardless of the process computing it.
func (s ID) Hash() uint64 {
	return xxhash.Sum64String(s.id)
}

// Validate checks the session id length against MaxSize.
func (s ID) Validate() error {
	if len(s.id) > MaxSize {
		return fmt.Errorf("%w: got %d bytes, max %d", ErrInvalidLength,
			len(s.id), MaxSize)
	}

	return nil
}

// Option returns None for the empty session id and Some otherwise.
func (s ID) Option() fn.Option[ID] {
	if s.IsEmpty() {
		return fn.None[ID]()
	}

	return fn.Some(s)
}

// String returns a lowercase hex encoding of the session id.
func (s ID) String() string {
	return hex.EncodeToString([]byte(s.id))
}

// MarshalText encodes the session id the same way as String.
//
// NOTE: This is part of the encoding.TextMarshaler interface.
func (s ID) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(s.id)))
	hex.Encode(b, []byte(s.id))

	return b, nil
}

// UnmarshalText decodes a hex encoded session id as produced by MarshalText,
// replacing the receiver.
//
// NOTE: This is part of the encoding.TextUnmarshaler interface.
func (s *ID) UnmarshalText(text []byte) error {
	sid, err := FromHex(string(text))
	if err != nil {
		return err
	}

	*s = sid

	return nil
}
