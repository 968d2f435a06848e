package gis

import (
	"errors"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"gonum.org/v1/plot/vg"

	. "github.com/onsi/gomega"
)

func square(x, y, side float64) orb.Ring {
	return orb.Ring{{x, y}, {x + side, y}, {x + side, y + side}, {x, y + side}, {x, y}}
}

func writeLayer(t *testing.T, dir, name string, features ...*geojson.Feature) {
	t.Helper()
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		fc.Append(f)
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".geojson"), data, 0644); err != nil {
		t.Fatal(err)
	}
}

func named(g orb.Geometry, id, name string) *geojson.Feature {
	f := geojson.NewFeature(g)
	if id != "" {
		f.ID = id
	}
	if name != "" {
		f.Properties["name"] = name
	}
	return f
}

// fixtures writes a small region around the projection centre.
func fixtures(t *testing.T) string {
	dir := t.TempDir()
	writeLayer(t, dir, "oblasts",
		named(orb.Polygon{square(36.6, 47.9, 0.4)}, "relation/1", "Oblast"))
	writeLayer(t, dir, "cities",
		named(orb.Polygon{square(36.7, 48.0, 0.1), square(36.72, 48.02, 0.02)}, "", "Town"),
		named(orb.Polygon{square(36.9, 48.2, 0.05)}, "", ""))
	writeLayer(t, dir, "rivers",
		named(orb.MultiPolygon{{square(36.65, 48.25, 0.05)}, {square(36.6, 47.9, 0.0005)}}, "way/1", ""),
		named(orb.Polygon{square(36.8, 47.95, 0.0005)}, "relation/2081686", ""),
		named(orb.LineString{{36.6, 48.0}, {36.9, 48.1}}, "way/2", ""))
	writeLayer(t, dir, "roads",
		named(orb.LineString{{36.6, 48.1}, {37.0, 48.1}}, "way/3", ""))
	return dir
}

func TestDefaultLayers(t *testing.T) {
	g := NewWithT(t)
	layers := DefaultLayers(false, false)
	g.Expect(layers).To(HaveLen(4))

	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = l.Name
	}
	g.Expect(names).To(Equal(LayerNames()))

	g.Expect(layers[0].Filled).To(BeFalse())
	g.Expect(layers[0].Outer).To(Equal(Style{Fill: "#ebf2e7", Line: "#b46198", Width: 2}))
	g.Expect(layers[1].Named).To(BeTrue())
	g.Expect(layers[3].Visible).To(BeFalse())
	g.Expect(layers[2].Dx).To(Equal(36.8))
	g.Expect(layers[2].Dy).To(Equal(48.1))
	g.Expect(layers[2].R).To(Equal(100.0))
	g.Expect(layers[2].Z).To(Equal(1.0))
}

func TestSelect(t *testing.T) {
	g := NewWithT(t)
	all := DefaultLayers(true, true)

	got, err := Select(all, "roads", "oblasts")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got).To(HaveLen(2))
	g.Expect(got[0].Name).To(Equal("roads"))

	_, err = Select(all, "lakes")
	g.Expect(errors.Is(err, ErrUnknownLayer)).To(BeTrue())
}

func TestFlattenPolygonStyles(t *testing.T) {
	tests := []struct {
		name      string
		filled    bool
		outerFill string
	}{
		{"filled", true, "#a1a0a0"},
		{"unfilled", false, "#ebf2e7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayers(true, true)[1]
			l.Filled = tt.filled
			shapes := l.Flatten(orb.Polygon{square(0, 0, 4), square(1, 1, 1)})
			if len(shapes) != 2 {
				t.Fatalf("got %d shapes, want 2", len(shapes))
			}
			outer, hole := shapes[0], shapes[1]
			if outer.Fill != tt.outerFill || outer.Line != "#656464" || outer.Width != 1 {
				t.Errorf("outer = %+v", outer)
			}
			if hole.Fill != "#ebf2e7" || hole.Line != "#ebf2e7" || hole.Width != 0 {
				t.Errorf("hole = %+v", hole)
			}
			if !outer.Closed || !hole.Closed {
				t.Error("polygon rings should be closed shapes")
			}
		})
	}
}

func TestFlattenOtherGeometries(t *testing.T) {
	g := NewWithT(t)
	l := DefaultLayers(true, true)[3]

	shapes := l.Flatten(orb.LineString{{0, 0}, {1, 1}})
	g.Expect(shapes).To(HaveLen(1))
	g.Expect(shapes[0].Closed).To(BeFalse())
	g.Expect(shapes[0].Line).To(Equal("#ffb732"))

	mp := orb.MultiPolygon{{square(0, 0, 1)}, {square(2, 2, 1), square(2.2, 2.2, 0.1)}}
	g.Expect(l.Flatten(mp)).To(HaveLen(3))
	g.Expect(l.Flatten(orb.Point{1, 1})).To(BeEmpty())
}

func TestFlattenMultiLineString(t *testing.T) {
	g := NewWithT(t)
	l := NewLayer("roads")

	shapes := l.Flatten(orb.MultiLineString{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}})
	g.Expect(shapes).To(HaveLen(2))
	for _, s := range shapes {
		g.Expect(s.Closed).To(BeFalse())
		g.Expect(s.Line).To(Equal(l.Outer.Line))
		g.Expect(s.Width).To(Equal(l.Outer.Width))
	}
	g.Expect(shapes[1].Points).To(Equal(orb.LineString{{2, 2}, {3, 3}}))
}

func TestAnnotate(t *testing.T) {
	g := NewWithT(t)
	a, ok := Annotate(named(orb.Polygon{square(2, 4, 2)}, "", "Town"))
	g.Expect(ok).To(BeTrue())
	g.Expect(a.Text).To(Equal("Town"))
	g.Expect(a.At).To(Equal(orb.Point{3, 6}))

	_, ok = Annotate(named(orb.Polygon{square(0, 0, 1)}, "", ""))
	g.Expect(ok).To(BeFalse())
}

func TestRenderSkipsHiddenAndUnnamed(t *testing.T) {
	g := NewWithT(t)
	fc := geojson.NewFeatureCollection()
	fc.Append(named(orb.Polygon{square(0, 0, 1)}, "", "Town"))

	l := NewLayer("x")
	shapes, notes := l.Render(fc)
	g.Expect(shapes).To(HaveLen(1))
	g.Expect(notes).To(BeEmpty())

	l.Named = true
	_, notes = l.Render(fc)
	g.Expect(notes).To(HaveLen(1))

	l.Visible = false
	shapes, notes = l.Render(fc)
	g.Expect(shapes).To(BeEmpty())
	g.Expect(notes).To(BeEmpty())
}

func TestRenderMap(t *testing.T) {
	g := NewWithT(t)
	dir := fixtures(t)
	out := filepath.Join(t.TempDir(), "map.png")

	m := NewMap(dir, DefaultLayers(true, false), nil)
	g.Expect(m.RenderMap(out, 4*vg.Inch)).To(Succeed())

	f, err := os.Open(out)
	g.Expect(err).NotTo(HaveOccurred())
	defer f.Close()
	img, err := png.Decode(f)
	g.Expect(err).NotTo(HaveOccurred())
	b := img.Bounds()
	g.Expect(b.Dy()).To(BeNumerically(">", b.Dx()))
}

func TestRenderMapMissingLayer(t *testing.T) {
	m := NewMap(t.TempDir(), DefaultLayers(true, true), nil)
	if err := m.RenderMap(filepath.Join(t.TempDir(), "map.png"), 4*vg.Inch); err == nil {
		t.Fatal("expected error for missing layer files")
	}
}

func TestSize(t *testing.T) {
	b := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{2, 1}}
	if got := Size(b, 100); got != 75 {
		t.Errorf("Size = %v, want 75", got)
	}
	if got := Size(orb.Bound{}, 100); got != 100 {
		t.Errorf("degenerate Size = %v, want 100", got)
	}
}

func TestRender3D(t *testing.T) {
	g := NewWithT(t)
	dir := fixtures(t)
	layers, err := Select(DefaultLayers(true, true), "oblasts", "roads")
	g.Expect(err).NotTo(HaveOccurred())

	out := filepath.Join(t.TempDir(), "map.obj")
	m := NewMap(dir, layers, nil)
	g.Expect(m.Render3D(out, 50, rand.New(rand.NewSource(3)))).To(Succeed())

	data, err := os.ReadFile(out)
	g.Expect(err).NotTo(HaveOccurred())
	text := string(data)
	g.Expect(text).To(ContainSubstring("o oblasts_mesh0"))
	g.Expect(text).To(ContainSubstring("o oblasts_line0"))
	g.Expect(text).To(ContainSubstring("o roads_line0"))
	g.Expect(strings.Count(text, "\nf ")).To(BeNumerically(">", 0))
}

func TestProjectShiftsToPole(t *testing.T) {
	g := NewWithT(t)
	l := NewLayer("roads")
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.LineString{{36.8, 48.1}, {37.8, 48.1}}))

	s, err := l.Project(fc, 0, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(s.Lines).To(HaveLen(1))
	g.Expect(s.Lines[0][0][0]).To(BeNumerically("~", 0, 1e-12))
	g.Expect(s.Lines[0][0][1]).To(BeNumerically("~", 0, 1e-12))
	g.Expect(s.Lines[0][1][0]).To(BeNumerically(">", 0))
}

func TestProjectMultiLineString(t *testing.T) {
	g := NewWithT(t)
	l := NewLayer("roads")
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.MultiLineString{
		{{36.8, 48.1}, {37.8, 48.1}},
		{{36.8, 48.1}, {36.8, 49.1}, {37.0, 49.5}},
	}))

	s, err := l.Project(fc, 0, nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(s.Lines).To(HaveLen(2))
	g.Expect(s.Lines[1]).To(HaveLen(3))
}

func TestCleanupRivers(t *testing.T) {
	g := NewWithT(t)
	dir := fixtures(t)

	results, err := Cleanup(dir, RiverCleanup())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(results).To(HaveLen(1))
	g.Expect(results[0].Before).To(Equal(3))
	// the multipolygon is large, the small polygon and the line have no area
	g.Expect(results[0].After).To(Equal(1))

	data, err := os.ReadFile(filepath.Join(dir, "riversx.geojson"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(data)).To(ContainSubstring("\n  \"features\""))

	fc, err := ReadCollection(results[0].Path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(fc.Features[0].ID).To(Equal("way/1"))
}

func TestCleanupWhitelistAndSimplify(t *testing.T) {
	g := NewWithT(t)
	dir := fixtures(t)

	results, err := Cleanup(dir, OptimizeCleanup())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(results).To(HaveLen(2))
	g.Expect(results[0].Layer).To(Equal("oblasts"))
	g.Expect(results[0].After).To(Equal(1))

	fc, err := ReadCollection(filepath.Join(dir, "riversx.geojson"))
	g.Expect(err).NotTo(HaveOccurred())
	ids := make([]interface{}, 0, len(fc.Features))
	for _, f := range fc.Features {
		ids = append(ids, f.ID)
	}
	g.Expect(ids).To(ConsistOf("way/1", "relation/2081686"))
}

func TestCleanupMissingLayer(t *testing.T) {
	_, err := Cleanup(t.TempDir(), RiverCleanup())
	if err == nil {
		t.Fatal("expected error")
	}
}
