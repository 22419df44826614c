package convert_test

import (
	"errors"
	"fmt"

	"isis-core/convert"
	"isis-core/kind"
	"isis-core/value"
)

func Example() {
	r := convert.Default()

	// narrowing rounds half to even
	res, _ := r.Generate(value.New(2.5), kind.KindUint8)
	fmt.Println(res.ToString(true))

	// the destination keeps its kind and, on failure, its value
	dst := value.New[int8](1)
	err := r.Convert(value.New[int16](1000), dst)
	fmt.Println(dst.ToString(true), convert.StatusOf(err), errors.Is(err, convert.ErrOverflow))

	// text is parsed locale independent
	res, _ = r.Generate(value.New("<1.5, 2, 3, 4>"), kind.KindDVector4)
	fmt.Println(res.ToString(true))

	_, err = r.Generate(value.New("perhaps"), kind.KindBool)
	fmt.Println(convert.StatusOf(err))

	// Output:
	// 2(u8bit)
	// 1(s8bit) Overflow true
	// <1.5|2|3|4>(dvector4)
	// Ambiguous
}

func ExampleGetAs() {
	m := value.NewPropMap()
	_ = value.SetValue(m, "study/sliceThickness", "1.25")

	thickness, err := convert.GetAs[float32](m, "study/sliceThickness")
	fmt.Println(thickness, err)

	_, err = convert.GetAs[float32](m, "study/slicethickness2")
	fmt.Println(err)

	// Output:
	// 1.25 <nil>
	// no such property: study/slicethickness2 (did you mean [study/sliceThickness]?)
}

func ExampleRegistry_Pairs() {
	for _, pair := range convert.Default().Pairs(convert.StrategyUnsupported) {
		fmt.Println(pair)
	}

	// Output:
	// string -> color24
	// string -> color48
	// string -> PropertyMap
}
