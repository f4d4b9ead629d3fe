package vector_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlspace/scalar"
	"github.com/katalvlaran/lvlspace/vector"
)

// ExampleCrossProduct3 shows the anti-commutative cross product.
func ExampleCrossProduct3() {
	x := vector.Vec3[float64]{1, 0, 0}
	y := vector.Vec3[float64]{0, 1, 0}
	fmt.Println(vector.CrossProduct3(x, y))
	fmt.Println(vector.CrossProduct3(y, x))
	// Output:
	// [0, 0, 1]
	// [0, 0, -1]
}

// ExampleCheckedAdd3 shows overflow detection on integer vectors.
func ExampleCheckedAdd3() {
	_, err := vector.CheckedAdd3(vector.Vec3[int32]{math.MaxInt32, 0, 0}, vector.Vec3[int32]{1, 0, 0})
	fmt.Println(errors.Is(err, scalar.ErrOverflow))
	// Output:
	// true
}

// ExampleTag3 shows imposing and erasing a space tag.
func ExampleTag3() {
	type World struct{}
	p := vector.Tag3[World](vector.Vec3[float64]{3, 4, 0})
	fmt.Println(vector.MagnitudeTagged3(p), p.Untagged())
	// Output:
	// 5 [3, 4, 0]
}
