// Composition of multiplier, magnitude, and remainder.
package numwords

// composition is a parsed "<mult> <base> [remainder]" triple.
type composition struct {
	mult int64
	base int64
	rem  int64
}

func (c composition) value() int64 {
	return c.mult*c.base + c.rem
}

// valid reports whether c satisfies the composition invariants: a positive
// multiplier, a remainder strictly below the base, and a value in range.
func (c composition) valid() bool {
	return c.mult > 0 && c.rem >= 0 && c.rem < c.base && c.value() <= maxValue
}

// compose resolves a multiplier and the base word that matched at basePos
// (ending at pos) into a value, parsing whatever remainder the base allows:
//
//   - base above 100: a remainder built only from smaller magnitudes
//   - base 1: no remainder, the value is the multiplier
//   - dozen, score: a ones remainder
//   - hundred with a multiplier below 20: a lessThan100 remainder
//   - hundred with a multiplier of 20 or more: rejected
func (p *parser) compose(mult, base int64, basePos, pos int) (int64, int, bool) {
	c := composition{mult: mult, base: base}

	var rem rule
	switch {
	case base > hundred:
		bases := smallerBases(base)
		rem = func(q int) (int64, int, bool) {
			return p.scaled(q, p.lessThanThousand, bases)
		}
	case base == magUnit.value:
		if !c.valid() {
			p.fail.record(basePos, InvalidMagnitudeOrder, "")
			return 0, pos, false
		}
		return c.value(), pos, true
	case base < hundred:
		rem = p.ones
	case mult < improperLimit:
		rem = p.lessThan100
	default:
		p.fail.record(basePos, InvalidMagnitudeOrder, "thousand, million or billion")
		return 0, pos, false
	}

	end := pos
	if r, rend, ok := p.conjoined(pos, rem); ok {
		c.rem = r
		end = rend
	}
	if !c.valid() {
		p.fail.record(basePos, InvalidMagnitudeOrder, "")
		return 0, pos, false
	}
	return c.value(), end, true
}
