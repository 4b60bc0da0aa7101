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

// Package armor wraps and unwraps the text-safe FinCrypt envelope format:
// a BEGIN/END banner around base64-encoded binary, line-wrapped for
// readability in mail clients and terminals.
package armor

import (
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
)

// Label identifies which of the three armored container kinds a block of
// text holds.
type Label string

const (
	LabelMessage    Label = "MESSAGE"
	LabelPublicKey  Label = "PUBLIC KEY"
	LabelPrivateKey Label = "PRIVATE KEY"
)

// lineWidth is the column at which armored base64 bodies wrap, matching the
// reference tool's output so armored text looks the same either way.
const lineWidth = 76

// ErrMalformedArmor is returned when text does not contain a recognizable
// FinCrypt BEGIN/END block, or its body is not valid base64.
var ErrMalformedArmor = errors.New("armor: malformed armored text")

// armorPattern accepts any run of one or more dashes around the BEGIN/END
// banners and any label of the form [PUBLIC |PRIVATE ]KEY or
// [PUBLIC |PRIVATE ]MESSAGE, to be validated by the caller afterward; this
// mirrors the reference parser's tolerance for differing dash-fence widths.
var armorPattern = regexp.MustCompile(
	`(?s)-+ BEGIN FINCRYPT ((?:PUBLIC |PRIVATE )?(?:KEY|MESSAGE)) -+\r?\n(.+?)\r?\n-+ END FINCRYPT (?:PUBLIC |PRIVATE )?(?:KEY|MESSAGE) -+`,
)

// Armor wraps data in a BEGIN/END banner for the given label, base64-encoded
// and wrapped at 76 columns.
func Armor(label Label, data []byte) string {
	encoded := base64.URLEncoding.EncodeToString(data)

	var body strings.Builder
	for i := 0; i < len(encoded); i += lineWidth {
		end := i + lineWidth
		if end > len(encoded) {
			end = len(encoded)
		}
		if i > 0 {
			body.WriteByte('\n')
		}
		body.WriteString(encoded[i:end])
	}

	banner := func(word string) string {
		text := " " + word + " FINCRYPT " + string(label) + " "
		return center(text, lineWidth, '-')
	}

	var out strings.Builder
	out.WriteString(banner("BEGIN"))
	out.WriteByte('\n')
	out.WriteString(body.String())
	out.WriteByte('\n')
	out.WriteString(banner("END"))
	return out.String()
}

// Dearmor extracts the label and decoded body from armored text. It returns
// ErrMalformedArmor if no well-formed BEGIN/END block is found or the body
// is not valid base64.
func Dearmor(text string) (Label, []byte, error) {
	match := armorPattern.FindStringSubmatch(text)
	if match == nil {
		return "", nil, ErrMalformedArmor
	}

	label := Label(match[1])
	body := strings.Join(strings.Fields(match[2]), "")

	data, err := base64.URLEncoding.DecodeString(body)
	if err != nil {
		return "", nil, errors.Join(ErrMalformedArmor, err)
	}
	return label, data, nil
}

// center pads text with fill characters on both sides to reach width,
// favoring an extra fill character on the right when width-len(text) is odd.
func center(text string, width int, fill byte) string {
	if len(text) >= width {
		return text
	}
	total := width - len(text)
	left := total / 2
	right := total - left
	return strings.Repeat(string(fill), left) + text + strings.Repeat(string(fill), right)
}
