package ec

import (
	"testing"

	"github.com/dnssecprover/prover/bigint"
	"github.com/dnssecprover/prover/modint"
	"github.com/stretchr/testify/require"
)

func TestP256BasePointOnCurve(t *testing.T) {
	c := P256()
	require.True(t, OnCurve256(c.G, c.A, c.B))
}

func TestP384BasePointOnCurve(t *testing.T) {
	c := P384()
	require.True(t, OnCurve384(c.G, c.A, c.B))
}

func TestP256DoubleStaysOnCurve(t *testing.T) {
	c := P256()
	d := c.G.Double()
	require.False(t, d.IsInfinity())
	require.True(t, OnCurve256(d, c.A, c.B))
}

func TestP256AddWithInfinityIsIdentity(t *testing.T) {
	c := P256()
	inf := Infinity256[modint.P256Field]()
	require.True(t, c.G.Add(inf).X.Equal(c.G.X))
	require.True(t, inf.Add(c.G).X.Equal(c.G.X))
}

func TestP256AddSelfEqualsDouble(t *testing.T) {
	c := P256()
	viaAdd := c.G.Add(c.G)
	viaDouble := c.G.Double()
	// Compare via the curve equation rather than raw Jacobian coordinates:
	// two different Z choices can represent the same affine point.
	require.True(t, OnCurve256(viaAdd, c.A, c.B))
	require.True(t, jacobianEqual256(viaAdd, viaDouble))
}

func TestP256ScalarMulAddMatchesDouble(t *testing.T) {
	c := P256()
	two := bigint.U256{0, 0, 0, 2}
	zero := bigint.U256{}
	got, err := c.G.ScalarMulAdd(two, Infinity256[modint.P256Field](), zero, false)
	require.NoError(t, err)
	require.True(t, jacobianEqual256(got, c.G.Double()))
}

func TestP256ScalarMulAddOneAndOneEqualsDouble(t *testing.T) {
	c := P256()
	one := bigint.U256{0, 0, 0, 1}
	got, err := c.G.ScalarMulAdd(one, c.G, one, false)
	require.NoError(t, err)
	require.True(t, jacobianEqual256(got, c.G.Double()))
}

func TestP256ScalarMulAddZeroIsInfinity(t *testing.T) {
	c := P256()
	zero := bigint.U256{}
	got, err := c.G.ScalarMulAdd(zero, Infinity256[modint.P256Field](), zero, false)
	require.NoError(t, err)
	require.True(t, got.IsInfinity())
}

func TestP384ScalarMulAddMatchesDouble(t *testing.T) {
	c := P384()
	two := bigint.U384{0, 0, 0, 0, 0, 2}
	zero := bigint.U384{}
	got, err := c.G.ScalarMulAdd(two, Infinity384[modint.P384Field](), zero, false)
	require.NoError(t, err)
	require.True(t, jacobianEqual384(got, c.G.Double()))
}

// jacobianEqual256 compares two Jacobian points for representing the same
// affine point, i.e. X1*Z2^2 == X2*Z1^2 and Y1*Z2^3 == Y2*Z1^3.
func jacobianEqual256[CF modint.Modulus256](p, q Point256[CF]) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	z1z1 := p.Z.Square()
	z2z2 := q.Z.Square()
	if !p.X.Mul(z2z2).Equal(q.X.Mul(z1z1)) {
		return false
	}
	return p.Y.Mul(q.Z).Mul(z2z2).Equal(q.Y.Mul(p.Z).Mul(z1z1))
}

func jacobianEqual384[CF modint.Modulus384](p, q Point384[CF]) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	z1z1 := p.Z.Square()
	z2z2 := q.Z.Square()
	if !p.X.Mul(z2z2).Equal(q.X.Mul(z1z1)) {
		return false
	}
	return p.Y.Mul(q.Z).Mul(z2z2).Equal(q.Y.Mul(p.Z).Mul(z1z1))
}
