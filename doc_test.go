package bigdecimal_test

import (
	"encoding/json"
	"fmt"

	"github.com/govalues/bigdecimal"
)

func harmonic(terms, acc int) (bigdecimal.Big, error) {
	sum := bigdecimal.Big{}.WithAccuracy(acc)
	n := bigdecimal.Big{}.WithAccuracy(acc)
	for i := 0; i < terms; i++ {
		n = n.Inc()
		term, err := n.Inv()
		if err != nil {
			return bigdecimal.Big{}, err
		}
		sum = sum.Add(term)
	}
	return sum, nil
}

// This example calculates the partial sums of the harmonic series
// keeping 10 digits after the decimal point.
func Example_harmonicSeries() {
	for _, terms := range []int{1, 2, 5, 10} {
		h, err := harmonic(terms, 10)
		if err != nil {
			panic(err)
		}
		fmt.Println(terms, h)
	}
	// Output:
	// 1 1
	// 2 1.5
	// 5 2.2833333333
	// 10 2.9289682538
}

func ExampleNew() {
	fmt.Println(bigdecimal.New(-5, -2))
	fmt.Println(bigdecimal.New(1234, 6))
	fmt.Println(bigdecimal.New(1234, 6).Pretty())
	// Output:
	// -0.05
	// 1234000000
	// 1234*e^(6)
}

func ExampleNewFromInt() {
	fmt.Println(bigdecimal.NewFromInt(int8(-120)).Pretty())
	fmt.Println(bigdecimal.NewFromInt(int64(1000000)).Pretty())
	// Output:
	// -12*e^(1)
	// 1*e^(6)
}

func ExampleParse() {
	d, err := bigdecimal.Parse("-124.2134")
	if err != nil {
		panic(err)
	}
	fmt.Println(d, d.Pretty(), d.Accuracy())
	// Output: -124.2134 -1242134*e^(-4) 100
}

func ExampleParseWithAccuracy() {
	d, err := bigdecimal.ParseWithAccuracy("-0.1241124", 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(d, d.Pretty())
	// Output: -0.124 -124*e^(-3)
}

func ExampleDecimal_WithAccuracy() {
	d := bigdecimal.MustParse("1.23456")
	fmt.Println(d.WithAccuracy(3))
	fmt.Println(d.WithAccuracy(0))
	fmt.Println(d.WithAccuracy(10))
	// Output:
	// 1.234
	// 1
	// 1.23456
}

func ExampleDecimal_Pretty() {
	fmt.Println(bigdecimal.MustParse("20000.0").Pretty())
	fmt.Println(bigdecimal.MustParse("00000.00124").Pretty())
	fmt.Println(bigdecimal.MustParse("0").Pretty())
	// Output:
	// 2*e^(4)
	// 124*e^(-5)
	// 0*e^(0)
}

func ExampleDecimal_Cmp() {
	d := bigdecimal.MustParse("-452.41")
	e := bigdecimal.MustParse("0.415")
	fmt.Println(d.Cmp(e))
	fmt.Println(e.Cmp(d))
	fmt.Println(d.Cmp(d))
	// Output:
	// -1
	// 1
	// 0
}

func ExampleDecimal_Equal() {
	d := bigdecimal.MustParse("1.50")
	e := bigdecimal.MustParseWithAccuracy("1.5", 1)
	fmt.Println(d.Equal(e))
	// Output: true
}

func ExampleDecimal_Add() {
	d := bigdecimal.MustParse("3124.3312")
	e := bigdecimal.MustParse("-12.41551")
	fmt.Println(d.Add(e))
	// Output: 3111.91569
}

func ExampleDecimal_Sub() {
	d := bigdecimal.MustParse("4120000")
	e := bigdecimal.MustParse("0.00100312")
	fmt.Println(d.Sub(e))
	// Output: 4119999.99899688
}

func ExampleDecimal_Inc() {
	d := bigdecimal.MustParse("4120000")
	fmt.Println(d.Inc())
	// Output: 4120001
}

func ExampleDecimal_PostInc() {
	d := bigdecimal.MustParse("4120000")
	prev := d.PostInc()
	fmt.Println(prev)
	fmt.Println(d)
	// Output:
	// 4120000
	// 4120001
}

func ExampleDecimal_PostDec() {
	d := bigdecimal.MustParse("4120000")
	prev := d.PostDec()
	fmt.Println(prev)
	fmt.Println(d)
	// Output:
	// 4120000
	// 4119999
}

func ExampleDecimal_Mul() {
	d := bigdecimal.MustParse("3124.3312")
	e := bigdecimal.MustParse("-12.41551")
	fmt.Println(d.Mul(e))
	// Output: -38790.165256912
}

func ExampleDecimal_Inv() {
	d := bigdecimal.MustParseWithAccuracy("3", 5)
	fmt.Println(d.Inv())
	fmt.Println(bigdecimal.MustParse("20").Inv())
	fmt.Println(bigdecimal.MustParse("0").Inv())
	// Output:
	// 0.33333 <nil>
	// 0.05 <nil>
	// 0 bigdecimal: division by zero
}

func ExampleDecimal_Quo() {
	d := bigdecimal.MustParseWithAccuracy("4", 5)
	e := bigdecimal.MustParseWithAccuracy("13", 5)
	fmt.Println(d.Quo(e))
	fmt.Println(e.Quo(e))
	// Output:
	// 0.30768 <nil>
	// 1 <nil>
}

func ExampleDecimal_Pow() {
	d := bigdecimal.MustParse("2")
	fmt.Println(d.Pow(10))
	fmt.Println(d.Pow(-2))
	// Output:
	// 1024 <nil>
	// 0.25 <nil>
}

func ExampleDecimal_MarshalText() {
	type Payment struct {
		Amount bigdecimal.Big `json:"amount"`
	}
	data, err := json.Marshal(Payment{Amount: bigdecimal.MustParse("12.50")})
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output: {"amount":"12.5"}
}

func ExampleDecimal_UnmarshalText() {
	var d bigdecimal.Big
	if err := d.UnmarshalText([]byte("-0.00124")); err != nil {
		panic(err)
	}
	fmt.Println(d.Pretty())
	// Output: -124*e^(-5)
}
