/*
Package bigdecimal implements immutable arbitrary-precision decimal numbers
with a bounded number of digits after the decimal point.

# Representation

[Decimal] is a struct with three fields:

  - Mantissa: an arbitrary-precision signed integer representing the value
    of the decimal without the decimal point.
  - Exponent: a signed integer, the power of ten the mantissa is multiplied by.
    For example, a decimal with a mantissa of 12345 and an exponent of -2
    represents the value 123.45.
  - Accuracy: the maximum number of digits kept after the decimal point.
    Decimals created by [Parse], [New] and [NewFromInt] have an accuracy of
    [DefaultAccuracy] (100).

The numerical value of a decimal is calculated as:

	Mantissa * 10^Exponent

Unlike many other decimal libraries, each value has exactly one representation.
Trailing zeros of the mantissa are always folded into the exponent, so
1, 1.0 and 1.00 are all stored as mantissa 1 and exponent 0, and 1200 is
stored as mantissa 12 and exponent 2.
[Decimal.Pretty] shows this representation, for example "12*e^(2)".

# Integer engine

The mantissa type is a type parameter constrained by [Integer].
[Big] is the decimal backed by [math/big.Int], which is what [Parse], [New]
and [NewFromInt] return.
Other engines can be used with [ParseFor] and [NewFor].

# Accuracy

Every result keeps at most as many digits after the decimal point as the
larger accuracy of its operands.
Digits beyond the accuracy are truncated towards zero.
No other rounding method is supported.
The accuracy of a value can be changed with [Decimal.WithAccuracy].

Addition, subtraction and multiplication are exact unless the result has
more fractional digits than the accuracy.
Powers are computed exactly and truncated once.
Division is computed as a multiplication by the reciprocal, which is
obtained by long division, one decimal digit at a time, and therefore may
lose digits twice: once in [Decimal.Inv] and once in [Decimal.Mul].
A non-zero decimal divided by itself is always exactly 1.

# Errors

Errors are returned in the following cases:

  - Division by Zero.
    [Decimal.Inv], [Decimal.Quo] and [Decimal.Pow] with a negative power
    return [ErrDivisionByZero].
    Unlike a non-zero decimal divided by itself, 0 / 0 is an error too.

  - Exponent Range.
    Exponents are limited to [MaxExponent] and, through the accuracy,
    to -[MaxAccuracy].
    [Parse], [Decimal.Quo] and [Decimal.Pow] return an error wrapping
    [ErrExponentRange] if the result needs a larger exponent.
    [New], [Decimal.Add], [Decimal.Sub] and [Decimal.Mul] have no error
    result and panic with such an error instead.

  - Invalid Decimal.
    [Parse] and related functions return an error wrapping [ErrInvalidDecimal]
    if the string is not an optionally signed sequence of digits with at most
    one decimal point.

All errors belong to the error class [Error].
*/
package bigdecimal
