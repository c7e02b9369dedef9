// Integer to canonical English phrase conversion.
package numwords

import "strings"

const growConvert = 96 // estimated bytes for a full twelve-digit phrase

// convert renders n as the canonical phrase: magnitude groups joined by
// " and ", hundreds joined to their tens by " and ", tens and ones separated
// by a space. Returns "" if n is out of range.
func convert(n int64) string {
	if n < 0 || n > maxValue {
		return ""
	}
	if n == 0 {
		return wordZero.surface
	}

	var b strings.Builder
	b.Grow(growConvert)

	for _, mag := range largeMagnitudes {
		count := n / mag.value
		if count == 0 {
			continue
		}
		writeGroup(&b, count)
		b.WriteByte(' ')
		b.WriteString(mag.surface)
		n %= mag.value
		if n == 0 {
			return b.String()
		}
		b.WriteString(" and ")
	}

	writeGroup(&b, n)
	return b.String()
}

// writeGroup writes a number in [1, 999] into b.
func writeGroup(b *strings.Builder, n int64) {
	h := n / hundred
	r := n % hundred
	if h > 0 {
		b.WriteString(onesWords[h-1].surface)
		b.WriteByte(' ')
		b.WriteString(magHundred.surface)
		if r == 0 {
			return
		}
		b.WriteString(" and ")
	}
	writeBelow100(b, r)
}

// writeBelow100 writes a number in [1, 99] into b.
func writeBelow100(b *strings.Builder, n int64) {
	switch {
	case n < 10:
		b.WriteString(onesWords[n-1].surface)
	case n == 10:
		b.WriteString(wordTen.surface)
	case n < 20:
		b.WriteString(teenWords[n-11].surface)
	default:
		b.WriteString(tensWords[n/10-2].surface)
		if o := n % 10; o > 0 {
			b.WriteByte(' ')
			b.WriteString(onesWords[o-1].surface)
		}
	}
}
