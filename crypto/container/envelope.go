// Copyright (C) 2025 fincrypt-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

// Package container defines the ASN.1 DER wire structures for FinCrypt
// messages and keyfiles, and the Reed-Solomon framing wrapped around their
// DER encodings. encoding/asn1 handles the DER layer directly: []*big.Int
// fields marshal as SEQUENCE OF INTEGER, which is exactly the shape an
// encapsulated point (x, y) or a signature (r, s) needs.
package container

import (
	"encoding/asn1"
	"errors"
	"math/big"

	"github.com/fincrypt-project/fincrypt/crypto/curve"
	"github.com/fincrypt-project/fincrypt/crypto/primitives/reedsolomon"
	"github.com/fincrypt-project/fincrypt/crypto/signature"
)

// MessageParity is the number of Reed-Solomon parity symbols framed around
// every encoded message envelope.
const MessageParity = 8

// ErrMalformedMessage is returned when a message envelope cannot be decoded,
// whether because the Reed-Solomon frame carried more errors than it could
// correct or because the recovered bytes are not valid DER for the
// envelope structure.
var ErrMalformedMessage = errors.New("container: malformed message envelope")

// derMessage is the DER wire structure: the AES-CBC message body, the
// 2-integer encapsulated KEM point, and the 2-integer ECDSA signature.
type derMessage struct {
	Message   []byte
	Key       []*big.Int
	Signature []*big.Int
}

// Envelope is the decoded, in-memory form of a FinCrypt message.
type Envelope struct {
	EphemeralPoint curve.Point
	Body           []byte
	Signature      signature.Signature
}

// MarshalFramed DER-encodes the envelope and wraps it in Reed-Solomon
// framing so that bit-level transmission damage can be repaired before
// the DER parser ever sees it.
func (e *Envelope) MarshalFramed() ([]byte, error) {
	der, err := asn1.Marshal(derMessage{
		Message:   e.Body,
		Key:       []*big.Int{e.EphemeralPoint.X, e.EphemeralPoint.Y},
		Signature: []*big.Int{e.Signature.R, e.Signature.S},
	})
	if err != nil {
		return nil, errors.Join(ErrMalformedMessage, err)
	}
	return reedsolomon.Encode(der, MessageParity)
}

// ParseEnvelopeFramed reverses MarshalFramed: it corrects errors in the
// Reed-Solomon frame and then parses the recovered DER. The returned int is
// the number of symbol errors the frame absorbed, for callers that want to
// track channel damage.
func ParseEnvelopeFramed(framed []byte) (*Envelope, int, error) {
	der, corrected, err := reedsolomon.Decode(framed, MessageParity)
	if err != nil {
		return nil, 0, errors.Join(ErrMalformedMessage, err)
	}

	var raw derMessage
	if _, err := asn1.Unmarshal(der, &raw); err != nil {
		return nil, corrected, errors.Join(ErrMalformedMessage, err)
	}
	if len(raw.Key) != 2 || len(raw.Signature) != 2 {
		return nil, corrected, ErrMalformedMessage
	}

	return &Envelope{
		EphemeralPoint: curve.Point{X: raw.Key[0], Y: raw.Key[1]},
		Body:           raw.Message,
		Signature:      signature.Signature{R: raw.Signature[0], S: raw.Signature[1]},
	}, corrected, nil
}
