package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Object is one named group of a Wavefront OBJ file. Face and line
// indices are zero-based and local to the object.
type Object struct {
	Name     string
	Vertices [][3]float64
	Faces    [][3]int
	Lines    [][]int
}

func EncodeOBJ(w io.Writer, objs ...Object) error {
	bw := bufio.NewWriter(w)
	base := 1
	for _, o := range objs {
		if o.Name != "" {
			fmt.Fprintf(bw, "o %s\n", o.Name)
		}
		for _, v := range o.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v[0], v[1], v[2])
		}
		for _, f := range o.Faces {
			for _, idx := range f {
				if idx < 0 || idx >= len(o.Vertices) {
					return fmt.Errorf("obj %s: face index %d out of range", o.Name, idx)
				}
			}
			fmt.Fprintf(bw, "f %d %d %d\n", f[0]+base, f[1]+base, f[2]+base)
		}
		for _, l := range o.Lines {
			if len(l) < 2 {
				continue
			}
			bw.WriteString("l")
			for _, idx := range l {
				if idx < 0 || idx >= len(o.Vertices) {
					return fmt.Errorf("obj %s: line index %d out of range", o.Name, idx)
				}
				fmt.Fprintf(bw, " %d", idx+base)
			}
			bw.WriteString("\n")
		}
		base += len(o.Vertices)
	}
	return bw.Flush()
}

func WriteOBJ(path string, objs ...Object) error {
	return writeFile(path, func(f *os.File) error {
		return EncodeOBJ(f, objs...)
	})
}
