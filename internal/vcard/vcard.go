// Package vcard extracts and injects the few vCard properties the sync
// engine relies on: the UID join key and the display name. Everything else
// in the card is carried through untouched.
package vcard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	govcard "github.com/emersion/go-vcard"
)

// ErrEmptyCard is returned when the input holds no vCard at all.
var ErrEmptyCard = errors.New("vcard: no card in input")

const defaultVersion = "4.0"

// Parse decodes the first card found in text.
func Parse(text string) (govcard.Card, error) {
	card, err := govcard.NewDecoder(strings.NewReader(text)).Decode()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyCard
	}
	if err != nil {
		return nil, fmt.Errorf("vcard: decode: %w", err)
	}

	return card, nil
}

// UID returns the UID property of the card in text, or an empty string
// when the card has none.
func UID(text string) (string, error) {
	card, err := Parse(text)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(card.Value(govcard.FieldUID)), nil
}

// DisplayName returns the formatted name of the card, falling back to the
// structured name. Unparseable input yields an empty string.
func DisplayName(text string) string {
	card, err := Parse(text)
	if err != nil {
		return ""
	}

	if fn := card.PreferredValue(govcard.FieldFormattedName); fn != "" {
		return fn
	}

	name := card.Name()
	if name == nil {
		return ""
	}

	return strings.TrimSpace(strings.Join([]string{name.GivenName, name.FamilyName}, " "))
}

// WithUID returns text re-encoded with its UID property set to uid. A card
// without VERSION is given one since the encoder refuses cards without it.
func WithUID(text, uid string) (string, error) {
	card, err := Parse(text)
	if err != nil {
		return "", err
	}

	if card.Value(govcard.FieldUID) == uid {
		return text, nil
	}

	card.SetValue(govcard.FieldUID, uid)
	if card.Value(govcard.FieldVersion) == "" {
		card.SetValue(govcard.FieldVersion, defaultVersion)
	}

	var b strings.Builder
	if err = govcard.NewEncoder(&b).Encode(card); err != nil {
		return "", fmt.Errorf("vcard: encode: %w", err)
	}

	return b.String(), nil
}
