// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strnum

import (
	"fmt"
)

type priceSize struct {
	Price, Size Value
}

func ExampleSigned() {
	obook := []priceSize{
		{MustFromString("1.2345"), MustFromString("3.3")},
		{MustFromString("1.235"), MustFromString("1.4")},
		{MustFromString("1.2357"), MustFromString("4")},
		{MustFromString("1.23571"), MustFromString("2.5")},
		{MustFromString("1.23582"), MustFromString("1.5")},
	}

	vw, vol := vwap(obook, MustFromString("10"))
	fmt.Printf("vwap for orber book is %s with volume %s\n", vw, vol)

	vw, vol = vwap(obook, MustFromString("15"))
	fmt.Printf("vwap for orber book is %s with volume %s\n", vw, vol)

	// Output:
	// vwap for orber book is 1.2352 with volume 10
	// vwap for orber book is 1.23532 with volume 12.7
}

func vwap(obook []priceSize, desiredVolume Value) (vwap, vol Value) {
	var tier, spent Signed
	v := PosValue(desiredVolume)
	for _, it := range obook {
		left := v.Sub(tier)
		if left.Sign() <= 0 {
			break
		}
		sz := PosValue(it.Size)
		if left.Cmp(sz) < 0 {
			sz = left
		}
		tier = tier.Add(sz)
		spent = spent.Add(sz.Mul(PosValue(it.Price)))
	}
	res, err := spent.Div(tier, 5)
	if err != nil {
		panic(err)
	}
	return res.V, tier.V
}
