// Package translit implements a reversible substitution between Cyrillic
// letters and short ASCII codes, so course names can travel inside
// ASCII-only callback payloads.
package translit

import "strings"

// toASCII maps each supported letter to a 1-3 character ASCII code.
// Codes of different letters may share prefixes ("sh" vs "shh"), so
// decoding must always try the longest code first.
var toASCII = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "jo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "jj", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "c", 'ч': "ch", 'ш': "sh", 'щ': "shh", 'ъ': "q",
	'ы': "y", 'ь': "x", 'э': "je", 'ю': "yu", 'я': "ya",

	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E", 'Ё': "Jo",
	'Ж': "Zh", 'З': "Z", 'И': "I", 'Й': "Jj", 'К': "K", 'Л': "L", 'М': "M",
	'Н': "N", 'О': "O", 'П': "P", 'Р': "R", 'С': "S", 'Т': "T", 'У': "U",
	'Ф': "F", 'Х': "Kh", 'Ц': "C", 'Ч': "Ch", 'Ш': "Sh", 'Щ': "Shh",
	'Ъ': "Q", 'Ы': "Y", 'Ь': "X", 'Э': "Je", 'Ю': "Yu", 'Я': "Ya",
}

var fromASCII = invert(toASCII)

func invert(m map[rune]string) map[string]rune {
	out := make(map[string]rune, len(m))
	for r, code := range m {
		out[code] = r
	}
	return out
}

// ToASCII replaces every supported letter with its ASCII code.
// Characters outside the table pass through unchanged.
func ToASCII(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if code, ok := toASCII[r]; ok {
			b.WriteString(code)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FromASCII restores text produced by ToASCII. At each position the longest
// matching code wins (3, then 2, then 1 characters); unmatched characters
// pass through unchanged.
func FromASCII(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		matched := false
		for length := 3; length >= 1; length-- {
			if i+length > len(text) {
				continue
			}
			if r, ok := fromASCII[text[i:i+length]]; ok {
				b.WriteRune(r)
				i += length
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(text[i])
			i++
		}
	}
	return b.String()
}
