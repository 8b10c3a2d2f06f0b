package validators

import "strings"

// rutWeights is the repeating weight sequence applied to the reversed body.
var rutWeights = [...]int{2, 3, 4, 5, 6, 7}

// rutPunctuation strips the separators a RUT may be written with.
var rutPunctuation = strings.NewReplacer(".", "", "-", "")

// StripRUT removes "." and "-" from rut.
//
//	StripRUT("12.345.678-5") == "123456785"
func StripRUT(rut string) string {
	return rutPunctuation.Replace(rut)
}

// IsValidRUT reports whether rut carries a correct modulo-11 check digit.
//
// The body (every character but the last, after stripping punctuation) is
// reversed, each digit is multiplied by 2,3,4,5,6,7 (repeating) and the
// products are summed. The expected digit is 11 - sum%11, with 11 mapped to
// "0" and 10 to "K". The comparison with the given check digit ignores case.
//
// Malformed input never panics: a non-digit in the body or an empty body
// simply makes the RUT invalid.
func IsValidRUT(rut string) bool {
	clean := StripRUT(rut)
	if len(clean) < 2 {
		return false
	}

	expected, ok := ComputeRUTCheckDigit(clean[:len(clean)-1])
	if !ok {
		return false
	}

	return strings.EqualFold(clean[len(clean)-1:], expected)
}

// ComputeRUTCheckDigit returns the check digit ("0"-"9" or "K") for a body
// made of digits only. The second result is false if body is empty or holds
// a non-digit.
func ComputeRUTCheckDigit(body string) (string, bool) {
	if body == "" {
		return "", false
	}

	sum := 0
	for i := 0; i < len(body); i++ {
		c := body[len(body)-1-i]
		if c < '0' || c > '9' {
			return "", false
		}
		sum += int(c-'0') * rutWeights[i%len(rutWeights)]
	}

	switch expected := 11 - sum%11; expected {
	case 11:
		return "0", true
	case 10:
		return "K", true
	default:
		return string(rune('0' + expected)), true
	}
}
