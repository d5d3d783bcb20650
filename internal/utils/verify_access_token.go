package utils

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/square/go-jose/v3"
	"golang.org/x/crypto/hkdf"

	"github.com/familyledger/finance-backend/internal/domain/models"
)

var (
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenNotValid = errors.New("token not valid yet")
)

// AccessTokenUtil issues and reads the encrypted session tokens (JWE, dir +
// A256GCM) carried by the session cookie.
type AccessTokenUtil struct {
	encryptionKey []byte
	ttl           time.Duration
	now           func() time.Time
}

func NewAccessTokenUtil(secret string, ttl time.Duration) (*AccessTokenUtil, error) {
	if secret == "" {
		return nil, errors.New("auth secret must not be empty")
	}

	key, err := getDerivedEncryptionKey([]byte(secret), "")
	if err != nil {
		return nil, err
	}

	return &AccessTokenUtil{encryptionKey: key, ttl: ttl, now: time.Now}, nil
}

func (b *AccessTokenUtil) TTL() time.Duration {
	return b.ttl
}

func (b *AccessTokenUtil) CreateToken(identity *models.Identity) (string, error) {
	now := b.now()
	payload, err := json.Marshal(map[string]any{
		"sub":   identity.Id,
		"name":  identity.Name,
		"roles": identity.Roles,
		"iat":   now.Unix(),
		"exp":   now.Add(b.ttl).Unix(),
	})
	if err != nil {
		return "", err
	}

	encrypter, err := jose.NewEncrypter(
		jose.A256GCM,
		jose.Recipient{Algorithm: jose.DIRECT, Key: b.encryptionKey},
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("create encrypter: %w", err)
	}

	object, err := encrypter.Encrypt(payload)
	if err != nil {
		return "", fmt.Errorf("encrypt token: %w", err)
	}

	return object.CompactSerialize()
}

func (b *AccessTokenUtil) DecodeToken(token string) (*models.Identity, error) {
	payload, err := decodeToken(token, b.encryptionKey)
	if err != nil {
		return nil, err
	}

	if err := validateClaims(payload, b.now()); err != nil {
		return nil, err
	}

	identity := &models.Identity{}
	identity.Id, _ = payload["sub"].(string)
	identity.Name, _ = payload["name"].(string)
	if roles, ok := payload["roles"].([]any); ok {
		for _, role := range roles {
			if value, ok := role.(string); ok {
				identity.Roles = append(identity.Roles, value)
			}
		}
	}

	return identity, nil
}

func getDerivedEncryptionKey(keyMaterial []byte, salt string) ([]byte, error) {
	info := []byte("Finance Session Encryption Key")
	if salt != "" {
		info = []byte(fmt.Sprintf("Finance Session Encryption Key (%s)", salt))
	}
	h := hkdf.New(sha256.New, keyMaterial, []byte(salt), info)
	key := make([]byte, 32)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	return key, nil
}

func decodeToken(tokenStr string, encryptionKey []byte) (map[string]interface{}, error) {
	jweObject, err := jose.ParseEncrypted(tokenStr)
	if err != nil {
		return nil, err
	}
	decrypted, err := jweObject.Decrypt(encryptionKey)
	if err != nil {
		return nil, err
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(decrypted, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func validateClaims(payload map[string]interface{}, now time.Time) error {
	if exp, ok := payload["exp"].(float64); ok {
		if now.Unix() > int64(exp) {
			return ErrTokenExpired
		}
	}

	if iat, ok := payload["iat"].(float64); ok {
		if now.Unix() < int64(iat) {
			return ErrTokenNotValid
		}
	}

	return nil
}
