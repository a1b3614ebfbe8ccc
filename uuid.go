package wireform

import (
	"crypto/rand"
	"encoding/base64"
)

// UUID is a 16-byte identifier, kept from the teacher's uuid.go with its
// generation and text-form logic intact; only its wire (de)serialization
// is adapted, from a bespoke per-byte loop (PackUUID) to UUIDCodec below
// built out of FixedArray over a plain byte codec, so it now exercises
// the same array composition machinery any other 16-byte fixed array
// would.
type UUID [16]byte

// GenerateUUID returns a cryptographically random UUID.
func GenerateUUID() UUID {
	var u UUID
	if _, err := rand.Read(u[:]); err != nil {
		panic(err)
	}
	return u
}

var rawURLEnc = base64.RawURLEncoding

// String renders u as an unpadded, URL-safe base64 string, kept from the
// teacher's UUID.String().
func (u UUID) String() string {
	return rawURLEnc.EncodeToString(u[:])
}

// UUIDFromString is the inverse of String, replacing the teacher's
// FromString error sentinel with a Malformed *ParseError so callers can
// distinguish it from NOT_ENOUGH_DATA the same way any other parse
// failure in this package is distinguished.
func UUIDFromString(s string) (UUID, error) {
	b, err := rawURLEnc.DecodeString(s)
	if err != nil {
		return UUID{}, Malformedf("invalid UUID text: %v", err)
	}
	var u UUID
	if len(b) != len(u) {
		return UUID{}, Malformedf("decoded UUID text has %d bytes, want %d", len(b), len(u))
	}
	copy(u[:], b)
	return u, nil
}

func (u UUID) MarshalJSON() ([]byte, error) {
	return String_(u.String()).MarshalJSON()
}

func (u *UUID) UnmarshalJSON(data []byte) error {
	var v Value
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	s, ok := v.AsString()
	if !ok {
		return Malformedf("UUID text form must be a JSON string")
	}
	decoded, err := UUIDFromString(s)
	if err != nil {
		return err
	}
	*u = decoded
	return nil
}

// UUIDCodec is a Codec[UUID, UUID] built from FixedArray(16, Uint8()),
// replacing the teacher's PackUUID free function with the shared
// array-composition codec every other fixed-length sequence in this
// package goes through.
func UUIDCodec() Codec[UUID, UUID] {
	byteArray := FixedArray(16, Uint8())
	return Codec[UUID, UUID]{
		FixedSize: 16,
		Parse: func(buf []byte) (ParseInfo[UUID], error) {
			pi, err := byteArray.Parse(buf)
			if err != nil {
				return ParseInfo[UUID]{}, err
			}
			var u UUID
			copy(u[:], pi.Rendered)
			return ParseInfo[UUID]{Rendered: u, Tail: pi.Tail}, nil
		},
		Render: func(buf []byte) UUID {
			var u UUID
			copy(u[:], buf[:16])
			return u
		},
		Build: func(r UUID) UUID { return r },
		SerializeInto: func(b UUID, out []byte) []byte {
			return byteArray.SerializeInto(b[:], out)
		},
		SizeBytes: func(UUID) int { return 16 },
	}
}
