package bitfield

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	a5 = []byte{0xa5, 0xa5, 0xa5, 0xa5}
	cc = []byte{0xcc, 0xcc, 0xcc, 0xcc}
)

func TestAnd(t *testing.T) {
	r := require.New(t)

	bf1, bf2 := FromBytes(a5), FromBytes(cc)
	r.True(bf1.And(bf2).Equal(bf2.And(bf1)))
	r.Equal([]byte{0x84, 0x84, 0x84, 0x84}, bf1.And(bf2).Bytes())
}

func TestAndDifferentSizes(t *testing.T) {
	r := require.New(t)

	bf1, bf2 := FromBytes(a5[:2]), FromBytes(cc)
	r.True(bf1.And(bf2).Equal(bf2.And(bf1)))
	r.Equal([]byte{0x00, 0x00, 0x84, 0x84}, bf1.And(bf2).Bytes())

	// 0xffff AND 0x55.
	r.Equal([]byte{0x00, 0x55}, FromBytes([]byte{0xff, 0xff}).And(FromBytes([]byte{0x55})).Bytes())
}

func TestOr(t *testing.T) {
	r := require.New(t)

	bf1, bf2 := FromBytes(a5), FromBytes(cc)
	r.True(bf1.Or(bf2).Equal(bf2.Or(bf1)))
	r.Equal([]byte{0xed, 0xed, 0xed, 0xed}, bf1.Or(bf2).Bytes())
}

func TestOrDifferentSizes(t *testing.T) {
	r := require.New(t)

	bf1, bf2 := FromBytes(a5[:2]), FromBytes(cc)
	r.True(bf1.Or(bf2).Equal(bf2.Or(bf1)))
	r.Equal([]byte{0xcc, 0xcc, 0xed, 0xed}, bf1.Or(bf2).Bytes())
}

func TestXor(t *testing.T) {
	r := require.New(t)

	bf1, bf2 := FromBytes(a5), FromBytes(cc)
	r.True(bf1.Xor(bf2).Equal(bf2.Xor(bf1)))
	r.Equal([]byte{0x69, 0x69, 0x69, 0x69}, bf1.Xor(bf2).Bytes())
}

func TestXorDifferentSizes(t *testing.T) {
	r := require.New(t)

	bf1, bf2 := FromBytes(a5[:2]), FromBytes(cc)
	r.True(bf1.Xor(bf2).Equal(bf2.Xor(bf1)))
	r.Equal([]byte{0xcc, 0xcc, 0x69, 0x69}, bf1.Xor(bf2).Bytes())
}

func TestCombineLeavesOperandsUntouched(t *testing.T) {
	r := require.New(t)

	bf1, bf2 := FromBytes(a5[:2]), FromBytes(cc)
	_ = bf1.Or(bf2)
	_ = bf2.Xor(bf1)
	_ = bf1.And(bf2)
	r.Equal(a5[:2], bf1.Bytes())
	r.Equal(cc, bf2.Bytes())
}

func TestCombineEmpty(t *testing.T) {
	r := require.New(t)

	empty, bf := New(), FromBytes(a5)
	r.Equal(make([]byte, 4), bf.And(empty).Bytes())
	r.Equal(a5, empty.Or(bf).Bytes())
	r.Equal(a5, bf.Xor(empty).Bytes())
	r.True(empty.And(New()).IsEmpty())
	r.True(empty.Not().IsEmpty())
}

func TestNot(t *testing.T) {
	r := require.New(t)

	bf := FromBytes([]byte{0xa5, 0x00, 0xff})
	r.Equal([]byte{0x5a, 0xff, 0x00}, bf.Not().Bytes())
	r.True(bf.Not().Not().Equal(bf))
}

func TestCommutativity(t *testing.T) {
	r := require.New(t)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 500; i++ {
		x := make([]byte, rng.Intn(8))
		y := make([]byte, rng.Intn(8))
		rng.Read(x)
		rng.Read(y)
		a, b := FromBytes(x), FromBytes(y)

		r.True(a.And(b).Equal(b.And(a)))
		r.True(a.Or(b).Equal(b.Or(a)))
		r.True(a.Xor(b).Equal(b.Xor(a)))
		r.True(a.Not().Not().Equal(a))
	}
}
