package rangekit

import "fmt"

// Tuple2 is one synchronized step across two containers.
// Field order matches the order the containers were passed to the factory.
type Tuple2[V1, V2 any] struct {
	V1 V1
	V2 V2
}

// Each visits the tuple's members in positional order.
func (t Tuple2[V1, V2]) Each(fn func(v any)) {
	fn(t.V1)
	fn(t.V2)
}

func (t Tuple2[V1, V2]) String() string {
	return fmt.Sprintf("(%v, %v)", t.V1, t.V2)
}

// Tuple3 is one synchronized step across three containers.
type Tuple3[V1, V2, V3 any] struct {
	V1 V1
	V2 V2
	V3 V3
}

func (t Tuple3[V1, V2, V3]) Each(fn func(v any)) {
	fn(t.V1)
	fn(t.V2)
	fn(t.V3)
}

func (t Tuple3[V1, V2, V3]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.V1, t.V2, t.V3)
}

// Tuple4 is one synchronized step across four containers.
type Tuple4[V1, V2, V3, V4 any] struct {
	V1 V1
	V2 V2
	V3 V3
	V4 V4
}

func (t Tuple4[V1, V2, V3, V4]) Each(fn func(v any)) {
	fn(t.V1)
	fn(t.V2)
	fn(t.V3)
	fn(t.V4)
}

func (t Tuple4[V1, V2, V3, V4]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", t.V1, t.V2, t.V3, t.V4)
}
