package preview

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vango-dev/forms/internal/errors"
	"github.com/vango-dev/forms/pkg/schema"
)

// EncodeShareToken packs s with msgpack and signs it with HMAC-SHA256.
// The token has the form payload.signature, both base64url without padding.
func EncodeShareToken(secret []byte, s schema.State) (string, error) {
	payload, err := msgpack.Marshal(&s)
	if err != nil {
		return "", err
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(payload) + "." + enc.EncodeToString(sign(secret, payload)), nil
}

// DecodeShareToken verifies a token produced by EncodeShareToken and
// returns the state it carries. Any malformed or forged token yields F060.
func DecodeShareToken(secret []byte, token string) (schema.State, error) {
	var s schema.State
	body, sig, ok := strings.Cut(token, ".")
	if !ok {
		return s, errors.New("F060").WithDetail("missing signature")
	}

	enc := base64.RawURLEncoding
	payload, err := enc.DecodeString(body)
	if err != nil {
		return s, errors.New("F060").Wrap(err)
	}
	got, err := enc.DecodeString(sig)
	if err != nil {
		return s, errors.New("F060").Wrap(err)
	}
	if !hmac.Equal(got, sign(secret, payload)) {
		return s, errors.New("F060")
	}
	if err := msgpack.Unmarshal(payload, &s); err != nil {
		return s, errors.New("F060").Wrap(err)
	}
	// msgpack decodes times in the local zone; pickers work in UTC.
	for slug, m := range s.Pickers {
		m.Month, m.Selected, m.Today = m.Month.UTC(), m.Selected.UTC(), m.Today.UTC()
		s.Pickers[slug] = m
	}
	return s, nil
}

func sign(secret, payload []byte) []byte {
	h := hmac.New(sha256.New, secret)
	h.Write(payload)
	return h.Sum(nil)
}
