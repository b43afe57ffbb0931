package polyio

import (
	"strings"
	"testing"

	"github.com/osuushi/kirkpatrick/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	input := `# a square
10 10
100 10
100,100
10, 100

200 200
300 200
250 300
`
	polygons, err := ReadText(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	assert.Equal(t, []advanced.Point{{X: 10, Y: 10}, {X: 100, Y: 10}, {X: 100, Y: 100}, {X: 10, Y: 100}}, polygons[0])
	assert.Equal(t, []advanced.Point{{X: 200, Y: 200}, {X: 300, Y: 200}, {X: 250, Y: 300}}, polygons[1])
}

func TestReadTextErrors(t *testing.T) {
	_, err := ReadText(strings.NewReader("1 2\n3\n"))
	assert.EqualError(t, err, `line 2: invalid point "3"`)

	_, err = ReadText(strings.NewReader("1 x\n"))
	assert.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	cases := []struct {
		input    string
		expected advanced.Point
	}{
		{"1 2", advanced.Point{X: 1, Y: 2}},
		{"1,2", advanced.Point{X: 1, Y: 2}},
		{"1, 2", advanced.Point{X: 1, Y: 2}},
		{"-1.5\t2e3", advanced.Point{X: -1.5, Y: 2000}},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			p, err := ParsePoint(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.expected, p)
		})
	}
}

func TestReadSVG(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
  <g>
    <polygon points="10,10 90,10 50,80" />
  </g>
  <polygon points="1 2 3 4 5 6" />
</svg>`
	polygons, err := ReadSVG(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	assert.Equal(t, []advanced.Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 50, Y: 80}}, polygons[0])
	assert.Equal(t, []advanced.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, polygons[1])
}

func TestReadSVGWithoutPolygons(t *testing.T) {
	_, err := ReadSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><rect /></svg>`))
	assert.EqualError(t, err, "no polygons found")
}

func TestParsePointsOddCount(t *testing.T) {
	_, err := ParsePoints("1,2 3")
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	_, err := Read(strings.NewReader(""), "json")
	assert.EqualError(t, err, `unknown input format "json"`)

	polygons, err := Read(strings.NewReader("0 0\n1 0\n0 1\n"), "text")
	require.NoError(t, err)
	assert.Len(t, polygons, 1)
}
