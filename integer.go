package bigdecimal

// Integer is the arbitrary-precision signed integer a [Decimal] is built on.
// The zero value of T must represent 0.
// [math/big.Int] satisfies Integer[big.Int] as is.
//
// Methods follow the conventions of [math/big.Int]: the receiver holds the
// result, may alias any operand, and is returned for chaining.
// String must return the base-10 representation with a leading '-' for
// negative values.
type Integer[T any] interface {
	*T
	Set(x *T) *T
	SetInt64(x int64) *T
	SetString(s string, base int) (*T, bool)
	Sign() int
	Neg(x *T) *T
	Abs(x *T) *T
	Add(x, y *T) *T
	Mul(x, y *T) *T
	QuoRem(x, y, r *T) (*T, *T)
	Cmp(y *T) int
	String() string
}

// newInt returns a fresh integer set to x.
func newInt[T any, I Integer[T]](x int64) I {
	z := I(new(T))
	z.SetInt64(x)
	return z
}

// cloneInt returns a fresh copy of x.
// A nil x is treated as 0.
func cloneInt[T any, I Integer[T]](x I) I {
	z := I(new(T))
	if x != nil {
		z.Set(x)
	}
	return z
}

// pow10 returns 10^n for n >= 0 using exponentiation by squaring.
func pow10[T any, I Integer[T]](n int64) I {
	z := newInt[T, I](1)
	b := newInt[T, I](10)
	for n > 0 {
		if n&1 == 1 {
			z.Mul(z, b)
		}
		n >>= 1
		if n > 0 {
			b.Mul(b, b)
		}
	}
	return z
}

// lsh returns a fresh integer equal to x * 10^shift.
func lsh[T any, I Integer[T]](x I, shift int64) I {
	z := cloneInt[T, I](x)
	if shift <= 0 || z.Sign() == 0 {
		return z
	}
	return I(z.Mul(z, pow10[T, I](shift)))
}

// rshDown returns a fresh integer equal to x / 10^shift truncated toward zero.
func rshDown[T any, I Integer[T]](x I, shift int64) I {
	z := cloneInt[T, I](x)
	if shift <= 0 || z.Sign() == 0 {
		return z
	}
	if shift >= numDigits[T, I](z) {
		return I(new(T))
	}
	r := I(new(T))
	z.QuoRem(z, pow10[T, I](shift), r)
	return z
}

// numDigits returns the number of decimal digits of |x|, 0 for zero.
func numDigits[T any, I Integer[T]](x I) int64 {
	if x == nil || x.Sign() == 0 {
		return 0
	}
	s := x.String()
	if s[0] == '-' {
		s = s[1:]
	}
	return int64(len(s))
}

// trimZeros divides x by ten in place while the remainder is zero
// and returns the number of removed digits.
// x must not be shared with any other value.
func trimZeros[T any, I Integer[T]](x I) int64 {
	if x.Sign() == 0 {
		return 0
	}
	var (
		ten = newInt[T, I](10)
		q   = I(new(T))
		r   = I(new(T))
		n   int64
	)
	for {
		q.QuoRem(x, ten, r)
		if r.Sign() != 0 {
			return n
		}
		x.Set(q)
		n++
	}
}
