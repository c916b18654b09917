package bigdecimal

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Big {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustParseWithAccuracy is like [ParseWithAccuracy] but panics if the string
// cannot be parsed.
func MustParseWithAccuracy(s string, acc int) Big {
	d, err := ParseWithAccuracy(s, acc)
	if err != nil {
		panic(fmt.Sprintf("MustParseWithAccuracy(%q, %v) failed: %v", s, acc, err))
	}
	return d
}

// MustInv is like [Decimal.Inv] but panics if d is zero.
func (d Decimal[T, I]) MustInv() Decimal[T, I] {
	f, err := d.Inv()
	if err != nil {
		panic(fmt.Sprintf("MustInv(%v) failed: %v", d, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if e is zero.
func (d Decimal[T, I]) MustQuo(e Decimal[T, I]) Decimal[T, I] {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustPow is like [Decimal.Pow] but panics if computing error.
func (d Decimal[T, I]) MustPow(n int) Decimal[T, I] {
	f, err := d.Pow(n)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", n, err))
	}
	return f
}
