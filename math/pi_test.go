package math

import (
	"os"
	"strings"
	"testing"

	"github.com/db47h/fixreal"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load_pi(t testing.TB) string {
	b, err := os.ReadFile("testdata/pi1000.txt")
	require.NoError(t, err)
	return strings.TrimSpace(string(b))
}

func Test_pi(t *testing.T) {
	pi1000 := load_pi(t)

	p, err := Pi(5)
	require.NoError(t, err)
	assert.Equal(t, pi1000[:62], p.Text(60))

	if testing.Short() {
		t.SkipNow()
	}
	p, err = Pi(6)
	require.NoError(t, err)
	assert.Equal(t, pi1000[:702], p.Text(700))
}

func TestNewtonSteps(t *testing.T) {
	td := []struct {
		minSig, terms int
		pi            string
	}{
		{-5, 5, "3.14147386823381696428"},
		{-5, 10, "3.14159265358972343929"},
		{-5, 21, "3.14159265358979323846264338327950288419715523"},
		{-5, 38, "3.14159265358979323846264338327950288419716939937510"},
		{-23, 83, "3.141592653589793238462643383279502884197169399375105820974944"},
	}
	nt := NewNewton()
	for i, d := range td {
		s, err := nt.Step()
		require.NoError(t, err)
		assert.Equal(t, i, s.N)
		assert.Equal(t, d.minSig, s.MinSig, "step %d floor", i)
		assert.Equal(t, d.terms, s.Terms, "step %d terms", i)
		assert.Equal(t, d.pi, s.Pi.Text(len(d.pi)-2), "step %d", i)
		assert.True(t, fixreal.Equal(s.X, nt.X()))
		p, err := fixreal.Mul(s.X, two)
		require.NoError(t, err)
		assert.True(t, fixreal.Equal(s.Pi, p))
	}
}

func TestNewtonConverged(t *testing.T) {
	nt := NewNewton()
	nt.d = fixreal.MustNew(fixreal.Negative, -3, 2)
	_, err := nt.Step()
	assert.True(t, errors.Is(err, ErrConverged))

	p, err := Pi(0)
	require.NoError(t, err)
	assert.Equal(t, "3", p.String())
}

func TestCos(t *testing.T) {
	td := []struct {
		theta  *fixreal.Real
		minSig int
		prec   int
		want   string
		terms  int
	}{
		{fixreal.Zero(), -5, -1, "1", 1},
		{fixreal.MustParse("0.5", 1), -4, 10, "0.8776041666", 2},
		{threeHalves, -5, 25, "0.0707369341169084821428571", 5},
	}
	for _, d := range td {
		c, terms, err := Cos(d.theta, d.minSig)
		require.NoError(t, err)
		assert.Equal(t, d.want, c.Text(d.prec), "cos(%s)", d.theta)
		assert.Equal(t, d.terms, terms, "cos(%s) terms", d.theta)
	}
}

func TestCosN(t *testing.T) {
	c, err := CosN(fixreal.MustParse("0.5", 1), 20, 3)
	require.NoError(t, err)
	assert.Equal(t, "0.877582561890372716116281582603", c.Text(30))

	c, err = CosN(fixreal.Zero(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, "1", c.String())

	c, err = CosN(threeHalves, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "1", c.String())
}

func TestThreshold(t *testing.T) {
	thr, err := threshold(fixreal.FromWord(2))
	require.NoError(t, err)
	// 8/12
	assert.Equal(t, "0.66666666666666666666", thr.Text(20))
}

func Benchmark_pi(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Pi(5)
	}
}
