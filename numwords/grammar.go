// Place-value grammar for English cardinal numbers.
package numwords

import "slices"

// rule parses one grammar production starting at pos. On success it returns
// the value and the offset just past the last word it consumed. On failure it
// returns ok == false and consumes nothing.
type rule func(pos int) (value int64, end int, ok bool)

// parser holds the state of a single parse call. It is never shared.
type parser struct {
	src  string
	fail failure
}

func newParser(s string) *parser {
	return &parser{src: s, fail: failure{offset: -1}}
}

// number is the top-level rule. Alternatives are tried in priority order and
// the first success wins, so longer compositions come before the bare
// lessThanThousand that could claim only their leading word.
func (p *parser) number(pos int) (int64, int, bool) {
	return p.alt(pos, p.leadingA, p.irregular, p.scaledTop, p.lessThanThousand, p.zero)
}

// alt tries rules in order and commits to the first that succeeds.
func (p *parser) alt(pos int, rules ...rule) (int64, int, bool) {
	for _, r := range rules {
		if v, end, ok := r(pos); ok {
			return v, end, true
		}
	}
	return 0, pos, false
}

// oneOf matches the first word of words at pos.
func (p *parser) oneOf(pos int, words []word, label string) (int64, int, bool) {
	for _, w := range words {
		end, _, st := matchWord(p.src, pos, w.surface)
		switch st {
		case matched:
			return w.value, end, true
		case unbounded:
			p.fail.record(pos, BoundaryViolation, label)
		}
	}
	p.fail.record(pos, TokenMismatch, label)
	return 0, pos, false
}

func (p *parser) ones(pos int) (int64, int, bool) {
	return p.oneOf(pos, onesWords, "ones")
}

func (p *parser) teens(pos int) (int64, int, bool) {
	return p.oneOf(pos, teenWords, "teens")
}

// tens parses "twenty".."ninety" with an optional joined ones word.
func (p *parser) tens(pos int) (int64, int, bool) {
	v, end, ok := p.oneOf(pos, tensWords, "tens")
	if !ok {
		return 0, pos, false
	}
	if o, oend, ok := p.conjoined(end, p.ones); ok {
		return v + o, oend, true
	}
	return v, end, true
}

func (p *parser) ten(pos int) (int64, int, bool) {
	return p.oneOf(pos, []word{wordTen}, wordTen.surface)
}

func (p *parser) zero(pos int) (int64, int, bool) {
	return p.oneOf(pos, []word{wordZero}, wordZero.surface)
}

func (p *parser) article(pos int) (int64, int, bool) {
	return p.oneOf(pos, []word{wordA}, wordA.surface)
}

func (p *parser) lessThan100(pos int) (int64, int, bool) {
	return p.alt(pos, p.teens, p.tens, p.ten, p.ones)
}

// properHundreds parses "<ones> hundred [and <lessThan100>]". The article
// stands in for one here so that "a hundred" can itself scale a larger
// magnitude, as in "a hundred thousand".
func (p *parser) properHundreds(pos int) (int64, int, bool) {
	return p.scaled(pos, p.hundredsMultiplier, []magnitude{magHundred})
}

func (p *parser) hundredsMultiplier(pos int) (int64, int, bool) {
	return p.alt(pos, p.ones, p.article)
}

func (p *parser) lessThanThousand(pos int) (int64, int, bool) {
	return p.alt(pos, p.properHundreds, p.lessThan100)
}

// scaledTop covers billions, millions, thousands, and improper hundreds.
func (p *parser) scaledTop(pos int) (int64, int, bool) {
	return p.scaled(pos, p.lessThanThousand, topLevelBases)
}

// irregular parses "four score", "six dozen and two".
func (p *parser) irregular(pos int) (int64, int, bool) {
	return p.scaled(pos, p.ones, irregularBases)
}

// leadingA parses the article standing in for one: "a billion", "a dozen".
// "a hundred" is left to properHundreds.
func (p *parser) leadingA(pos int) (int64, int, bool) {
	return p.scaled(pos, p.article, articleBases)
}

// scaled parses "<multiplier> <base> [remainder]" with the multiplier from
// mult and the base from bases. Once a base word matches the rule commits to
// it: a rejected composition is not retried with another base. If bases
// includes magUnit and no base word follows, the multiplier stands alone.
func (p *parser) scaled(pos int, mult rule, bases []magnitude) (int64, int, bool) {
	m, mend, ok := mult(pos)
	if !ok {
		return 0, pos, false
	}
	if next, ok := gap(p.src, mend); ok {
		for _, b := range bases {
			if b == magUnit {
				continue
			}
			end, _, st := matchWord(p.src, next, b.surface)
			switch st {
			case matched:
				return p.compose(m, b.value, next, end)
			case unbounded:
				p.fail.record(next, BoundaryViolation, b.surface)
			default:
				p.fail.record(next, TokenMismatch, b.surface)
			}
		}
	}
	if slices.Contains(bases, magUnit) {
		return p.compose(m, magUnit.value, mend, mend)
	}
	return 0, pos, false
}

// conjoined parses r after an optional "and" or comma joiner.
func (p *parser) conjoined(pos int, r rule) (int64, int, bool) {
	next, ok := conjunction(p.src, pos)
	if !ok {
		return 0, pos, false
	}
	return r(next)
}
