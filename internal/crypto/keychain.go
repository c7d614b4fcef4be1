// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters recommended by OWASP (2024).
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024 // 64 MiB
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32 // 256 bits
)

// NewFieldCodec returns the sealed codec when passphrase is non-empty and the
// plain codec otherwise.
func NewFieldCodec(passphrase string, salt []byte) FieldCodec {
	if passphrase == "" {
		return plainCodec{}
	}
	return &sealedCodec{key: DeriveKey(passphrase, salt)}
}

// DeriveKey derives a 256-bit sealing key from passphrase and salt using
// Argon2id.
func DeriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// plainCodec stores values as JSON.
type plainCodec struct{}

func (plainCodec) Seal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}
	return string(data), nil
}

func (plainCodec) Open(blob string, target any) error {
	if err := json.Unmarshal([]byte(blob), target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return nil
}

// sealedCodec encrypts values with AES-256-GCM.
type sealedCodec struct {
	key []byte
}

// Seal implements [FieldCodec]. It marshals v to JSON, then encrypts it with
// AES-256-GCM. The output is a Base64 (standard encoding) string of the blob:
// nonce (12 bytes) ‖ ciphertext.
func (s *sealedCodec) Seal(v any) (string, error) {
	// 1. Serialize to JSON
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}

	// 2. Build AES-GCM cipher
	gcm, err := s.gcm()
	if err != nil {
		return "", err
	}

	// 3. Generate a random nonce
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// 4. Encrypt: nonce || ciphertext
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [FieldCodec]. An authentication failure almost always
// means the passphrase or salt changed since the value was sealed.
func (s *sealedCodec) Open(blob string, target any) error {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return fmt.Errorf("decode base64: %w", err)
	}

	gcm, err := s.gcm()
	if err != nil {
		return err
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return ErrCiphertextTooShort
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("decrypt data: %w", err)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}

func (s *sealedCodec) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
