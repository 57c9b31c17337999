// Package normalize canonicalizes free-form catalog metadata at ingestion.
//
// Song language labels arrive from uploads and imports in every shape the
// world produces: "english", "ENG", "en", "Hindi ". The statistics counters
// and the recommendation language gate both compare labels for exact
// equality, so every label is folded to one canonical display form before
// it is stored. Nothing downstream re-normalizes.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// codeToName maps ISO 639-1 and common ISO 639-2 codes to display names.
//
//nolint:gochecknoglobals // Static lookup table for language normalization
var codeToName = map[string]string{
	"en": "English", "eng": "English",
	"es": "Spanish", "spa": "Spanish",
	"fr": "French", "fra": "French", "fre": "French",
	"de": "German", "deu": "German", "ger": "German",
	"it": "Italian", "ita": "Italian",
	"pt": "Portuguese", "por": "Portuguese",
	"nl": "Dutch", "nld": "Dutch", "dut": "Dutch",
	"ru": "Russian", "rus": "Russian",
	"ja": "Japanese", "jpn": "Japanese",
	"zh": "Chinese", "zho": "Chinese", "chi": "Chinese",
	"ko": "Korean", "kor": "Korean",
	"ar": "Arabic", "ara": "Arabic",
	"hi": "Hindi", "hin": "Hindi",
	"pa": "Punjabi", "pan": "Punjabi",
	"ta": "Tamil", "tam": "Tamil",
	"te": "Telugu", "tel": "Telugu",
	"ml": "Malayalam", "mal": "Malayalam",
	"mr": "Marathi", "mar": "Marathi",
	"bn": "Bengali", "ben": "Bengali",
	"gu": "Gujarati", "guj": "Gujarati",
	"ur": "Urdu", "urd": "Urdu",
	"tr": "Turkish", "tur": "Turkish",
	"pl": "Polish", "pol": "Polish",
	"sv": "Swedish", "swe": "Swedish",
	"no": "Norwegian", "nor": "Norwegian",
	"da": "Danish", "dan": "Danish",
	"fi": "Finnish", "fin": "Finnish",
	"el": "Greek", "ell": "Greek", "gre": "Greek",
	"he": "Hebrew", "heb": "Hebrew",
	"th": "Thai", "tha": "Thai",
	"vi": "Vietnamese", "vie": "Vietnamese",
	"id": "Indonesian", "ind": "Indonesian",
	"tl": "Tagalog", "tgl": "Tagalog", "fil": "Tagalog",
	"sw": "Swahili", "swa": "Swahili",
	"fa": "Persian", "fas": "Persian", "per": "Persian",
	"uk": "Ukrainian", "ukr": "Ukrainian",
	"cs": "Czech", "ces": "Czech", "cze": "Czech",
	"hu": "Hungarian", "hun": "Hungarian",
	"ro": "Romanian", "ron": "Romanian", "rum": "Romanian",
}

// titleCaser folds arbitrary labels to title case ("hindi" → "Hindi").
// Und because labels are display names, not cased per any one locale.
//
//nolint:gochecknoglobals // Casers are safe for concurrent use.
var titleCaser = cases.Title(language.Und)

// Language canonicalizes a free-form language label.
//
// Empty (or all-whitespace) input returns "" — the single representation of
// "no language" throughout the system. Known ISO codes and names map to a
// canonical display name; anything else is title-cased so case variants of
// the same label always collide.
func Language(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if name, ok := codeToName[strings.ToLower(trimmed)]; ok {
		return name
	}

	return titleCaser.String(strings.ToLower(trimmed))
}

// Artist canonicalizes an artist name: trims surrounding whitespace and
// collapses internal runs of whitespace. Casing is preserved — "MIKA" and
// "Mika" are different artists as far as the catalog is concerned.
func Artist(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
