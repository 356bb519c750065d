package strnum

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigned_JSON(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s      string
		mode   int
		result string
	}{
		{"0", JSONModeString, `"0"`},
		{"-0.000", JSONModeString, `"0"`},
		{"-12.3400", JSONModeString, `"-12.34"`},
		{"-12.3400", JSONModeNumber, `-12.34`},
		{"123456789012345678901234567890.5", JSONModeNumber, `123456789012345678901234567890.5`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			data := toJSON(MustSignedFromString(test.s).String(), test.mode)
			a.Equal(test.result, string(data))
			var s Signed
			if a.NoError(json.Unmarshal(data, &s)) {
				a.True(MustSignedFromString(test.s).Eq(s))
			}
		})
	}
}

func TestJSONStruct(t *testing.T) {
	a := assert.New(t)
	type order struct {
		Price  Value   `json:"price"`
		Amount Signed  `json:"amount"`
		Fee    *Signed `json:"fee"`
	}
	in := order{Price: MustFromString("1.2345"), Amount: MustSignedFromString("-10.5")}
	data, err := json.Marshal(in)
	if a.NoError(err) {
		a.Equal(`{"price":"1.2345","amount":"-10.5","fee":null}`, string(data))
	}
	var out order
	if a.NoError(json.Unmarshal([]byte(`{"price":1.2345,"amount":"-10.50","fee":null}`), &out)) {
		a.True(in.Price.Eq(out.Price))
		a.True(in.Amount.Eq(out.Amount))
		a.Nil(out.Fee)
	}
	a.Error(json.Unmarshal([]byte(`{"price":"-1"}`), &out))
	a.Error(json.Unmarshal([]byte(`{"amount":"abc"}`), &out))
}

func TestUnmarshalJSONErrors(t *testing.T) {
	a := assert.New(t)
	var s Signed
	a.Error(s.UnmarshalJSON(nil))
	a.Error(s.UnmarshalJSON([]byte(`"12`)))
	a.ErrorIs(s.UnmarshalJSON([]byte(`"1.2.3"`)), ErrMalformedInput)
	s = MustSignedFromString("7")
	a.NoError(s.UnmarshalJSON([]byte(`null`)))
	a.Equal("7", s.String())
}

func TestText(t *testing.T) {
	a := assert.New(t)
	data, err := MustSignedFromString("-0.50").MarshalText()
	if a.NoError(err) {
		a.Equal("-0.5", string(data))
	}
	var s Signed
	if a.NoError(s.UnmarshalText([]byte(" +3.25 "))) {
		a.Equal("3.25", s.String())
	}
	a.ErrorIs(s.UnmarshalText([]byte("3,25")), ErrMalformedInput)

	var v Value
	data, err = MustFromString("0.50").MarshalText()
	if a.NoError(err) {
		a.Equal("0.5", string(data))
	}
	if a.NoError(v.UnmarshalText([]byte("3.25"))) {
		a.Equal("3.25", v.String())
	}
	a.ErrorIs(v.UnmarshalText([]byte("-3.25")), ErrNegativeValue)
}

func TestSigned_SQL(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		src    interface{}
		result string
		err    bool
	}{
		{"-12.50", "-12.5", false},
		{[]byte("0.001"), "0.001", false},
		{int64(-42), "-42", false},
		{float64(1.25), "1.25", false},
		{nil, "", true},
		{true, "", true},
		{"abc", "", true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var s Signed
			err := s.Scan(test.src)
			if test.err {
				a.Error(err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.result, s.String())
				dv, err := s.Value()
				a.NoError(err)
				a.Equal(test.result, dv)
			}
		})
	}
}
