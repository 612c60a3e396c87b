package appointment

import (
	"encoding/hex"
	"errors"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/blake2b"
)

var (
	ErrClientNameRequired = errors.New("client name is required")
	ErrClientNameTooLong  = errors.New("client name must be at most 120 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrMalformedToken     = errors.New("malformed cancel token")
)

const (
	maxNameLength  = 120
	cancelTokenLen = 20
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-]{6,20}$`)
)

type ClientInfo struct {
	name  string
	email string
	phone string
}

func NewClientInfo(name, email, phone string) (ClientInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ClientInfo{}, ErrClientNameRequired
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ClientInfo{}, ErrClientNameTooLong
	}

	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return ClientInfo{}, ErrInvalidEmail
	}

	phone = strings.TrimSpace(phone)
	if phone != "" && !phoneRegex.MatchString(phone) {
		return ClientInfo{}, ErrInvalidPhone
	}

	return ClientInfo{name: name, email: email, phone: phone}, nil
}

// ReconstructClientInfo skips validation for values already persisted.
func ReconstructClientInfo(name, email, phone string) ClientInfo {
	return ClientInfo{name: name, email: email, phone: phone}
}

func (c ClientInfo) Name() string  { return c.name }
func (c ClientInfo) Email() string { return c.email }
func (c ClientInfo) Phone() string { return c.phone }

// CancelToken is the single-use secret handed to the client. Only its digest is persisted.
type CancelToken struct {
	raw string
}

func GenerateCancelToken(r io.Reader) (CancelToken, error) {
	buf := make([]byte, cancelTokenLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return CancelToken{}, err
	}
	return CancelToken{raw: hex.EncodeToString(buf)}, nil
}

// ParseCancelToken accepts the hex form handed out by GenerateCancelToken.
func ParseCancelToken(s string) (CancelToken, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != cancelTokenLen*2 {
		return CancelToken{}, ErrMalformedToken
	}
	if _, err := hex.DecodeString(s); err != nil {
		return CancelToken{}, ErrMalformedToken
	}
	return CancelToken{raw: s}, nil
}

func (t CancelToken) String() string { return t.raw }

func (t CancelToken) Digest() []byte {
	sum := blake2b.Sum256([]byte(t.raw))
	return sum[:]
}
