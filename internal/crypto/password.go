// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential-hashing component of the service.
// Passwords are hashed with bcrypt: the work factor makes offline brute
// force expensive, the embedded per-hash salt makes equal passwords produce
// distinct digests, and comparison runs in constant time.
package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by [PasswordHasher.Hash] when the plaintext
// password is empty. An empty credential must never reach the hasher.
var ErrEmptyPassword = errors.New("empty password provided")

// bcryptHasher is the private bcrypt-backed implementation of [PasswordHasher].
type bcryptHasher struct {
	// cost is the bcrypt work factor. Raising it by one doubles the
	// hashing time for both the server and an offline attacker.
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] with the given bcrypt work
// factor. Values outside the range supported by bcrypt are clamped to the
// bcrypt default, so a zero-valued or misconfigured cost can never silently
// weaken hashing below the library minimum.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher]. bcrypt generates a random salt per call
// and encodes algorithm, cost, salt, and digest into the returned string, so
// verification needs no external parameters.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// Verify implements [PasswordHasher]. bcrypt re-derives the digest using the
// salt and cost embedded in the stored value and compares the results in
// constant time. Every failure, including a truncated or malformed digest,
// collapses into false.
func (h *bcryptHasher) Verify(plaintext string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
