package bigdecimal

import (
	"database/sql/driver"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"
)

// Decimal type is a representation of an arbitrary-precision decimal number
// with a bounded number of digits after the decimal point.
// The zero value is the numeric value of 0 with an accuracy of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Mantissa: an arbitrary-precision signed integer without the decimal point.
//   - Exponent: the power of ten the mantissa is multiplied by.
//   - Accuracy: the maximum number of digits kept after the decimal point.
//
// For example, a decimal with a mantissa of 12345 and an exponent of -2
// represents the value 123.45.
// Every decimal is kept in a canonical form: the mantissa has no trailing
// zero digits, the exponent is never less than minus the accuracy, and the
// exponent of zero is always 0.
// Therefore two decimals are numerically equal if and only if their mantissas
// and exponents are equal.
//
// Digits beyond the accuracy are truncated toward zero, never rounded.
// The exponent never exceeds [MaxExponent]; operations that would produce
// a larger exponent fail with [ErrExponentRange].
// Decimals must be compared with [Decimal.Equal] or [Decimal.Cmp], not with ==.
type Decimal[T any, I Integer[T]] struct {
	mant I     // the mantissa of the decimal, nil means 0
	exp  int64 // the power of ten applied to the mantissa
	acc  int   // the maximum number of digits after the decimal point
}

// Big is a decimal backed by [math/big.Int].
type Big = Decimal[big.Int, *big.Int]

const (
	DefaultAccuracy = 100           // accuracy of decimals created by Parse and New
	MaxAccuracy     = math.MaxInt32 // maximum accuracy accepted by WithAccuracy
	MaxExponent     = math.MaxInt32 // maximum exponent of a decimal
)

var (
	// Error is the error class of all errors returned by this package.
	Error = errs.Class("bigdecimal")

	ErrDivisionByZero = Error.New("division by zero")
	ErrInvalidDecimal = Error.New("invalid decimal")
	ErrExponentRange  = Error.New("exponent out of range")
)

// newDecimal returns a normalized decimal.
// The mantissa is owned by the result and may be modified.
func newDecimal[T any, I Integer[T]](mant I, exp int64, acc int) Decimal[T, I] {
	d := Decimal[T, I]{mant: mant, exp: exp, acc: acc}
	d.normalize()
	return d
}

// normalize truncates the digits beyond the accuracy, removes trailing zeros
// and canonicalizes zero.
func (d *Decimal[T, I]) normalize() {
	// Zero
	if d.mant == nil || d.mant.Sign() == 0 {
		d.mant, d.exp = nil, 0
		return
	}

	// Accuracy
	if floor := -int64(d.acc); d.exp < floor {
		d.mant = rshDown[T, I](d.mant, floor-d.exp)
		d.exp = floor
		if d.mant.Sign() == 0 {
			d.mant, d.exp = nil, 0
			return
		}
	}

	// Trailing zeros
	d.exp += trimZeros[T, I](d.mant)
}

// checkRange returns [ErrExponentRange] if the exponent of d exceeds [MaxExponent].
func (d Decimal[T, I]) checkRange() error {
	if d.exp > MaxExponent {
		return fmt.Errorf("exponent %v: %w", d.exp, ErrExponentRange)
	}
	return nil
}

// one returns 1 with an accuracy of 0.
func one[T any, I Integer[T]]() Decimal[T, I] {
	return Decimal[T, I]{mant: newInt[T, I](1)}
}

// New returns a decimal equal to mant * 10^exp with the [DefaultAccuracy].
// Digits beyond the accuracy are truncated.
//
// New panics with [ErrExponentRange] if the value needs an exponent
// greater than [MaxExponent].
func New(mant int64, exp int) Big {
	if mant != 0 && int64(exp) > MaxExponent {
		panic(fmt.Errorf("New(%v, %v): exponent %v: %w", mant, exp, exp, ErrExponentRange))
	}
	d := newDecimal[big.Int, *big.Int](newInt[big.Int, *big.Int](mant), int64(exp), DefaultAccuracy)
	if err := d.checkRange(); err != nil {
		panic(fmt.Errorf("New(%v, %v): %w", mant, exp, err))
	}
	return d
}

// NewFromInt converts a signed integer of any width to a decimal
// with the [DefaultAccuracy].
func NewFromInt[N constraints.Signed](v N) Big {
	return NewFor[big.Int, *big.Int](v)
}

// NewFor is like [NewFromInt] for decimals backed by an arbitrary [Integer].
func NewFor[T any, I Integer[T], N constraints.Signed](v N) Decimal[T, I] {
	var exp int64
	if v != 0 {
		for v%10 == 0 {
			v /= 10
			exp++
		}
	}
	d := Decimal[T, I]{exp: exp, acc: DefaultAccuracy}
	if v != 0 {
		d.mant = newInt[T, I](int64(v))
	}
	return d
}

// Parse converts a string to a decimal with the [DefaultAccuracy].
// The string consists of an optional sign, decimal digits and at most one
// decimal point, for example "-124.2134" or ".5".
// Digits beyond the accuracy are truncated.
//
// Parse returns an error wrapping [ErrInvalidDecimal] if the string does not
// represent a valid decimal number.
func Parse(s string) (Big, error) {
	return ParseFor[big.Int, *big.Int](s, DefaultAccuracy)
}

// ParseWithAccuracy is like [Parse] but keeps at most acc digits
// after the decimal point.
func ParseWithAccuracy(s string, acc int) (Big, error) {
	return ParseFor[big.Int, *big.Int](s, acc)
}

// ParseFor is like [ParseWithAccuracy] for decimals backed by an
// arbitrary [Integer].
func ParseFor[T any, I Integer[T]](s string, acc int) (Decimal[T, I], error) {
	var (
		pos      int
		width    = len(s)
		digits   strings.Builder
		exp      int64
		hasdigit bool
		haspoint bool
	)

	// Sign
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		digits.WriteByte(s[pos])
		pos++
	}

	// Digits and point
	for ; pos < width; pos++ {
		switch c := s[pos]; {
		case c >= '0' && c <= '9':
			hasdigit = true
			digits.WriteByte(c)
			if haspoint {
				exp--
			}
		case c == '.' && !haspoint:
			haspoint = true
		default:
			return Decimal[T, I]{}, fmt.Errorf("invalid character %q at position %v: %w", c, pos, ErrInvalidDecimal)
		}
	}
	if !hasdigit {
		return Decimal[T, I]{}, fmt.Errorf("no digits in %q: %w", s, ErrInvalidDecimal)
	}

	// Mantissa
	mant := I(new(T))
	if _, ok := mant.SetString(digits.String(), 10); !ok {
		return Decimal[T, I]{}, fmt.Errorf("parsing mantissa of %q: %w", s, ErrInvalidDecimal)
	}

	d := newDecimal[T, I](mant, exp, clampAccuracy(acc))
	if err := d.checkRange(); err != nil {
		return Decimal[T, I]{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

// clampAccuracy returns |acc| limited to [MaxAccuracy].
func clampAccuracy(acc int) int {
	if acc < 0 {
		acc = -acc
	}
	if acc < 0 || acc > MaxAccuracy {
		return MaxAccuracy
	}
	return acc
}

// WithAccuracy returns a decimal with the same value and the given accuracy.
// A negative accuracy is taken by its absolute value.
// If the new accuracy is smaller, the digits beyond it are truncated.
func (d Decimal[T, I]) WithAccuracy(acc int) Decimal[T, I] {
	acc = clampAccuracy(acc)
	if d.exp >= -int64(acc) {
		d.acc = acc
		return d
	}
	return newDecimal[T, I](rshDown[T, I](d.mant, -int64(acc)-d.exp), -int64(acc), acc)
}

// Mantissa returns a copy of the mantissa of d.
func (d Decimal[T, I]) Mantissa() I {
	return cloneInt[T, I](d.mant)
}

// Exponent returns the power of ten the mantissa of d is multiplied by.
func (d Decimal[T, I]) Exponent() int64 {
	return d.exp
}

// Accuracy returns the maximum number of digits kept after the decimal point.
func (d Decimal[T, I]) Accuracy() int {
	return d.acc
}

// coef returns the mantissa of d, which must not be modified.
func (d Decimal[T, I]) coef() I {
	if d.mant == nil {
		return I(new(T))
	}
	return d.mant
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal[T, I]) Sign() int {
	if d.mant == nil {
		return 0
	}
	return d.mant.Sign()
}

// IsZero returns true if d == 0.
func (d Decimal[T, I]) IsZero() bool {
	return d.Sign() == 0
}

// IsNeg returns true if d < 0.
func (d Decimal[T, I]) IsNeg() bool {
	return d.Sign() < 0
}

// IsPos returns true if d > 0.
func (d Decimal[T, I]) IsPos() bool {
	return d.Sign() > 0
}

// Neg returns a decimal with the opposite sign.
func (d Decimal[T, I]) Neg() Decimal[T, I] {
	if d.IsZero() {
		return d
	}
	mant := I(new(T))
	mant.Neg(d.mant)
	return Decimal[T, I]{mant: mant, exp: d.exp, acc: d.acc}
}

// Abs returns the absolute value of the decimal.
func (d Decimal[T, I]) Abs() Decimal[T, I] {
	if !d.IsNeg() {
		return d
	}
	return d.Neg()
}

// Cmp compares decimals and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
func (d Decimal[T, I]) Cmp(e Decimal[T, I]) int {
	// Special case: different signs
	switch ds, es := d.Sign(), e.Sign(); {
	case ds > es:
		return 1
	case ds < es:
		return -1
	case ds == 0:
		return 0
	}

	// Magnitude
	dmag, emag := d.exp+numDigits[T, I](d.mant), e.exp+numDigits[T, I](e.mant)
	switch {
	case dmag > emag:
		return d.Sign()
	case dmag < emag:
		return -d.Sign()
	}

	// Alignment
	dcoef, ecoef := d.coef(), e.coef()
	switch {
	case d.exp < e.exp:
		ecoef = lsh[T, I](ecoef, e.exp-d.exp)
	case e.exp < d.exp:
		dcoef = lsh[T, I](dcoef, d.exp-e.exp)
	}

	return dcoef.Cmp(ecoef)
}

// Equal returns true if d and e represent the same number.
// Accuracies are not compared.
func (d Decimal[T, I]) Equal(e Decimal[T, I]) bool {
	if d.exp != e.exp {
		return false
	}
	if d.mant == nil || e.mant == nil {
		return d.IsZero() && e.IsZero()
	}
	return d.mant.Cmp(e.mant) == 0
}

// Less returns true if d < e.
func (d Decimal[T, I]) Less(e Decimal[T, I]) bool {
	return d.Cmp(e) < 0
}

// LessOrEqual returns true if d <= e.
func (d Decimal[T, I]) LessOrEqual(e Decimal[T, I]) bool {
	return d.Cmp(e) <= 0
}

// Greater returns true if d > e.
func (d Decimal[T, I]) Greater(e Decimal[T, I]) bool {
	return d.Cmp(e) > 0
}

// GreaterOrEqual returns true if d >= e.
func (d Decimal[T, I]) GreaterOrEqual(e Decimal[T, I]) bool {
	return d.Cmp(e) >= 0
}

// Max returns the larger decimal.
// See also method [Decimal.Cmp].
func (d Decimal[T, I]) Max(e Decimal[T, I]) Decimal[T, I] {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller decimal.
// See also method [Decimal.Cmp].
func (d Decimal[T, I]) Min(e Decimal[T, I]) Decimal[T, I] {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Add returns the (possibly truncated) sum of decimals d and e.
// The accuracy of the result is the larger of the accuracies of d and e.
//
// Add panics with [ErrExponentRange] if the exponent of the sum
// exceeds [MaxExponent].
func (d Decimal[T, I]) Add(e Decimal[T, I]) Decimal[T, I] {
	var (
		dcoef, ecoef = d.coef(), e.coef()
		exp          int64
	)

	// Alignment
	switch {
	case d.exp < e.exp:
		exp = d.exp
		ecoef = lsh[T, I](ecoef, e.exp-d.exp)
	case e.exp < d.exp:
		exp = e.exp
		dcoef = lsh[T, I](dcoef, d.exp-e.exp)
	default:
		exp = d.exp
	}

	// Mantissa
	mant := I(new(T))
	mant.Add(dcoef, ecoef)

	f := newDecimal[T, I](mant, exp, max(d.acc, e.acc))
	if err := f.checkRange(); err != nil {
		panic(fmt.Errorf("computing [%v + %v]: %w", d.Pretty(), e.Pretty(), err))
	}
	return f
}

// Sub returns the (possibly truncated) difference between decimals d and e.
func (d Decimal[T, I]) Sub(e Decimal[T, I]) Decimal[T, I] {
	return d.Add(e.Neg())
}

// Inc returns d + 1.
func (d Decimal[T, I]) Inc() Decimal[T, I] {
	return d.Add(one[T, I]())
}

// Dec returns d - 1.
func (d Decimal[T, I]) Dec() Decimal[T, I] {
	return d.Sub(one[T, I]())
}

// PostInc increments d and returns its previous value.
func (d *Decimal[T, I]) PostInc() Decimal[T, I] {
	prev := *d
	*d = d.Inc()
	return prev
}

// PostDec decrements d and returns its previous value.
func (d *Decimal[T, I]) PostDec() Decimal[T, I] {
	prev := *d
	*d = d.Dec()
	return prev
}

// Mul returns the (possibly truncated) product of decimals d and e.
// The accuracy of the result is the larger of the accuracies of d and e.
//
// Mul panics with [ErrExponentRange] if the exponent of the product
// exceeds [MaxExponent].
func (d Decimal[T, I]) Mul(e Decimal[T, I]) Decimal[T, I] {
	f, err := d.mul(e, max(d.acc, e.acc))
	if err != nil {
		panic(err)
	}
	return f
}

// mul returns the product of d and e truncated to the accuracy acc.
// Exponents of both operands are within [-MaxAccuracy, MaxExponent],
// so their sum cannot overflow.
func (d Decimal[T, I]) mul(e Decimal[T, I], acc int) (Decimal[T, I], error) {
	mant := I(new(T))
	mant.Mul(d.coef(), e.coef())
	f := newDecimal[T, I](mant, d.exp+e.exp, acc)
	if err := f.checkRange(); err != nil {
		return Decimal[T, I]{}, fmt.Errorf("computing [%v * %v]: %w", d.Pretty(), e.Pretty(), err)
	}
	return f, nil
}

// Inv returns the reciprocal 1 / d computed by long division and truncated
// to the accuracy of d.
//
// Inv returns [ErrDivisionByZero] if d is zero.
func (d Decimal[T, I]) Inv() (Decimal[T, I], error) {
	// Special case: zero
	if d.IsZero() {
		return Decimal[T, I]{}, ErrDivisionByZero
	}

	var (
		ten   = newInt[T, I](10)
		m     = I(new(T))
		x     = newInt[T, I](1)
		q     = I(new(T))
		r     = I(new(T))
		mant  = I(new(T))
		exp   int64
		next  = -d.exp // exponent of the next quotient digit
		floor = -int64(d.acc)
	)
	m.Abs(d.mant)

	// Scale the dividend until the first quotient digit is non-zero
	for x.Cmp(m) < 0 {
		x.Mul(x, ten)
		next--
	}

	// Digits
	for next >= floor {
		q.QuoRem(x, m, r)
		mant.Mul(mant, ten)
		mant.Add(mant, q)
		exp = next
		if r.Sign() == 0 {
			break
		}
		x.Mul(r, ten)
		next--
	}

	// Sign
	if d.mant.Sign() < 0 {
		mant.Neg(mant)
	}

	return newDecimal[T, I](mant, exp, d.acc), nil
}

// Quo returns the (possibly truncated) quotient of decimals d and e,
// computed as d * (1 / e). A non-zero decimal divided by itself is exactly 1.
// The accuracy of the result is the larger of the accuracies of d and e.
//
// Quo returns [ErrDivisionByZero] if e is zero, including 0 / 0.
// Quo returns [ErrExponentRange] if the exponent of the quotient
// exceeds [MaxExponent].
func (d Decimal[T, I]) Quo(e Decimal[T, I]) (Decimal[T, I], error) {
	// Special case: zero divisor
	if e.IsZero() {
		return Decimal[T, I]{}, ErrDivisionByZero
	}

	// Special case: self division
	if d.Equal(e) {
		f := one[T, I]()
		f.acc = max(d.acc, e.acc)
		return f, nil
	}

	inv, err := e.Inv()
	if err != nil {
		return Decimal[T, I]{}, err
	}
	return d.mul(inv, max(d.acc, e.acc))
}

// Pow returns d raised to the integer power n, truncated to the accuracy of d.
// The power d^|n| is computed exactly by squaring and truncated once.
// A negative power is the reciprocal of the exact d^|n|.
// Memory use grows with |n| times the number of digits of d.
//
// Pow returns [ErrDivisionByZero] if d is zero and n is negative.
// Pow returns [ErrExponentRange] if the exponent of d^|n| exceeds [MaxExponent].
func (d Decimal[T, I]) Pow(n int) (Decimal[T, I], error) {
	var (
		neg = n < 0
		u   = uint(n)
		f   = one[T, I]()
		b   = d.WithAccuracy(MaxAccuracy)
		err error
	)
	if neg {
		u = uint(-(n + 1)) + 1
	}
	f.acc = MaxAccuracy

	// Exact power
	for u > 0 {
		if u&1 == 1 {
			if f, err = f.mul(b, MaxAccuracy); err != nil {
				return Decimal[T, I]{}, fmt.Errorf("computing [%v^%v]: %w", d.Pretty(), n, err)
			}
		}
		u >>= 1
		if u > 0 {
			if b, err = b.mul(b, MaxAccuracy); err != nil {
				return Decimal[T, I]{}, fmt.Errorf("computing [%v^%v]: %w", d.Pretty(), n, err)
			}
		}
	}

	if !neg {
		return f.WithAccuracy(d.acc), nil
	}

	// Inv uses the accuracy only as the exponent floor of the reciprocal
	f.acc = d.acc
	inv, err := f.Inv()
	if err != nil {
		return Decimal[T, I]{}, fmt.Errorf("computing [%v^%v]: %w", d.Pretty(), n, err)
	}
	return inv, nil
}

// Pretty returns the mantissa and the exponent of d in the form
// "<mantissa>*e^(<exponent>)", for example "-124*e^(-5)".
func (d Decimal[T, I]) Pretty() string {
	return d.coef().String() + "*e^(" + strconv.FormatInt(d.exp, 10) + ")"
}

// String implements the [fmt.Stringer] interface and returns
// a string representation of the decimal in plain notation,
// for example "-38790.165256912".
// The result holds every digit, so a decimal with an exponent near
// [MaxExponent] produces a string of that many bytes; see [Decimal.Pretty].
func (d Decimal[T, I]) String() string {
	if d.IsZero() {
		return "0"
	}

	var (
		buf    strings.Builder
		digits = d.mant.String()
	)

	// Sign
	if digits[0] == '-' {
		buf.WriteByte('-')
		digits = digits[1:]
	}

	// Digits
	switch scale := -d.exp; {
	case scale <= 0:
		buf.WriteString(digits)
		buf.WriteString(strings.Repeat("0", int(-scale)))
	case scale < int64(len(digits)):
		point := len(digits) - int(scale)
		buf.WriteString(digits[:point])
		buf.WriteByte('.')
		buf.WriteString(digits[point:])
	default:
		buf.WriteString("0.")
		buf.WriteString(strings.Repeat("0", int(scale)-len(digits)))
		buf.WriteString(digits)
	}

	return buf.String()
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Decimal.String].
func (d Decimal[T, I]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The accuracy of d is kept if it is non-zero, otherwise the
// [DefaultAccuracy] is used.
// See also function [Parse].
func (d *Decimal[T, I]) UnmarshalText(text []byte) error {
	acc := d.acc
	if acc == 0 {
		acc = DefaultAccuracy
	}
	var err error
	*d, err = ParseFor[T, I](string(text), acc)
	return err
}

// Scan implements the [sql.Scanner] interface.
// See also method [Decimal.UnmarshalText].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal[T, I]) Scan(value any) error {
	switch value := value.(type) {
	case string:
		return d.UnmarshalText([]byte(value))
	case []byte:
		return d.UnmarshalText(value)
	case int64:
		acc := d.acc
		if acc == 0 {
			acc = DefaultAccuracy
		}
		*d = NewFor[T, I](value).WithAccuracy(acc)
		return nil
	case float64:
		return d.UnmarshalText([]byte(strconv.FormatFloat(value, 'f', -1, 64)))
	default:
		return fmt.Errorf("failed to convert from %T to %T: %w", value, Decimal[T, I]{}, ErrInvalidDecimal)
	}
}

// Value implements the [driver.Valuer] interface.
// See also method [Decimal.String].
func (d Decimal[T, I]) Value() (driver.Value, error) {
	return d.String(), nil
}
