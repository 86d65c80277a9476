package converters_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/converters"
	"github.com/katalvlaran/socialgraph/core"
)

func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range []core.Node{
		{ID: 1, Name: "Ali", Aktiflik: 0.5, Etkilesim: 1},
		{ID: 2, Name: "Ayse", Aktiflik: 0.5, Etkilesim: 1},
		{ID: 3, Name: "Can", Aktiflik: 0.5, Etkilesim: 1},
	} {
		require.Equal(t, core.OutcomeApplied, g.AddNode(n))
	}
	require.Equal(t, core.OutcomeApplied, g.AddEdge(1, 2))
	require.Equal(t, core.OutcomeApplied, g.AddEdge(2, 3))

	return g
}

const chainCSV = "DugumId,Ad,Aktiflik,Etkilesim,BaglantiSayisi,Komsular\n" +
	"1,Ali,0.5,1,1,2\n" +
	"2,Ayse,0.5,1,2,\"1,3\"\n" +
	"3,Can,0.5,1,1,2\n"

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, converters.WriteCSV(&buf, chain(t)))
	assert.Equal(t, chainCSV, buf.String())
}

func TestReadCSVReplaysEdges(t *testing.T) {
	g, rep, err := converters.ReadCSV(strings.NewReader(chainCSV))
	require.NoError(t, err)
	assert.Equal(t, converters.LoadReport{Nodes: 3, Edges: 2}, rep)

	want := chain(t)
	assert.Equal(t, want.Nodes(), g.Nodes())
	assert.Equal(t, want.Edges(), g.Edges())
	assert.Equal(t, []int{1, 3}, g.Neighbors(2))
}

func TestReadCSVGeneratorQuotes(t *testing.T) {
	in := "DugumId,Ad,Aktiflik,Etkilesim,BaglantiSayisi,Komsular\n" +
		"1,Ali,0.42,7,1,\"\"\"2\"\"\"\n" +
		"2,Ayse,0.9,33,2,\"\"\"1,3\"\"\"\n" +
		"3,Can,0.1,50,1,\"\"\"2\"\"\"\n"
	g, rep, err := converters.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Edges)
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 3))

	n, _ := g.Node(3)
	assert.Equal(t, 0.1, n.Aktiflik)
	assert.Equal(t, 50.0, n.Etkilesim)
}

func TestReadCSVSkipsUnknownAndSelf(t *testing.T) {
	in := "Komsular,Ad,DugumId,Aktiflik,Etkilesim\n" +
		"\"2,9,1\",Ali,1,0.5,1\n" +
		"1,Ayse,2,0.5,1\n" +
		",Dup,1,0.7,2\n" +
		"\n"
	g, rep, err := converters.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, converters.LoadReport{Nodes: 2, Edges: 1, SkippedEdges: 2, DuplicateNodes: 1}, rep)

	n, _ := g.Node(1)
	assert.Equal(t, "Ali", n.Name)
}

func TestReadCSVMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"missing column": "DugumId,Ad,Aktiflik,Etkilesim\n1,Ali,0.5,1\n",
		"bad id":         "DugumId,Ad,Aktiflik,Etkilesim,Komsular\nx,Ali,0.5,1,\n",
		"bad aktiflik":   "DugumId,Ad,Aktiflik,Etkilesim,Komsular\n1,Ali,high,1,\n",
		"bad neighbour":  "DugumId,Ad,Aktiflik,Etkilesim,Komsular\n1,Ali,0.5,1,\"2,b\"\n",
		"empty name":     "DugumId,Ad,Aktiflik,Etkilesim,Komsular\n1,,0.5,1,\n",
		"negative id":    "DugumId,Ad,Aktiflik,Etkilesim,Komsular\n-1,Ali,0.5,1,\n",
		"nan aktiflik":   "DugumId,Ad,Aktiflik,Etkilesim,Komsular\n1,Ali,NaN,1,\n",
		"inf etkilesim":  "DugumId,Ad,Aktiflik,Etkilesim,Komsular\n1,Ali,0.5,Inf,\n",
		"-infinity":      "DugumId,Ad,Aktiflik,Etkilesim,Komsular\n1,Ali,-Infinity,1,\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := converters.ReadCSV(strings.NewReader(in))
			require.ErrorIs(t, err, converters.ErrMalformedRecord)
		})
	}
}

func TestReadCSVErrorNamesLineAndColumn(t *testing.T) {
	in := "DugumId,Ad,Aktiflik,Etkilesim,Komsular\n1,Ali,0.5,1,\n2,Veli,0.5,lots,\n"
	_, _, err := converters.ReadCSV(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3 column Etkilesim")
}

func TestReadCSVNonFiniteNamesColumn(t *testing.T) {
	in := "DugumId,Ad,Aktiflik,Etkilesim,BaglantiSayisi,Komsular\n" +
		"1,A,0.4,1,1,2\n" +
		"2,B,0.5,1,2,\"1,3\"\n" +
		"3,C,Inf,2,1,2\n"
	g, _, err := converters.ReadCSV(strings.NewReader(in))
	require.ErrorIs(t, err, converters.ErrMalformedRecord)
	assert.Nil(t, g)
	assert.Contains(t, err.Error(), "line 4 column Aktiflik")
}

func TestJSONRoundTrip(t *testing.T) {
	src, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSocial(30, 0.15))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, converters.WriteJSON(&buf, src))
	g, rep, err := converters.ReadJSON(&buf)
	require.NoError(t, err)

	assert.Equal(t, src.NodeCount(), rep.Nodes)
	assert.Equal(t, src.EdgeCount(), rep.Edges)
	assert.Equal(t, src.Nodes(), g.Nodes())
	assert.Equal(t, src.Edges(), g.Edges())
}

func TestReadJSONRecomputesWeights(t *testing.T) {
	in := `{"nodes":[{"id":1,"name":"Ali","aktiflik":0.5,"etkilesim":1},
	                 {"id":2,"name":"Ayse","aktiflik":0.5,"etkilesim":4}],
	        "edges":[{"source":1,"target":2,"weight":99},{"source":2,"target":7}]}`
	g, rep, err := converters.ReadJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, rep.SkippedEdges)
	assert.InDelta(t, 4.0, g.EdgeWeight(1, 2), 1e-12)
}

func TestReadJSONMalformed(t *testing.T) {
	_, _, err := converters.ReadJSON(strings.NewReader(`{"nodes":[`))
	assert.ErrorIs(t, err, converters.ErrMalformedRecord)

	_, _, err = converters.ReadJSON(strings.NewReader(`{"nodes":[{"id":1,"name":""}]}`))
	assert.ErrorIs(t, err, converters.ErrMalformedRecord)
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := chain(t)
	for _, name := range []string{"graph.csv", "graph.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, converters.SaveFile(path, converters.FormatAuto, src))

			g, rep, err := converters.LoadFile(path, converters.FormatAuto)
			require.NoError(t, err)
			assert.Equal(t, 3, rep.Nodes)
			assert.Equal(t, src.Edges(), g.Edges())
		})
	}
}

func TestFormatSelection(t *testing.T) {
	f, err := converters.ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, converters.FormatJSON, f)

	_, err = converters.ParseFormat("xml")
	assert.ErrorIs(t, err, converters.ErrUnknownFormat)

	err = converters.SaveFile(filepath.Join(t.TempDir(), "graph.txt"), converters.FormatAuto, chain(t))
	assert.ErrorIs(t, err, converters.ErrUnknownFormat)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, converters.WriteReport(&buf, chain(t)))

	want := "=== Social Network Report ===\n\n" +
		"Nodes: 3\nEdges: 2\nDensity: 0.6667\nIsolated: 0\n\n" +
		"Users:\n" +
		"- Ali (id: 1, aktiflik: 0.5, etkilesim: 1, degree: 1)\n" +
		"- Ayse (id: 2, aktiflik: 0.5, etkilesim: 1, degree: 2)\n" +
		"- Can (id: 3, aktiflik: 0.5, etkilesim: 1, degree: 1)\n"
	assert.Equal(t, want, buf.String())
}
