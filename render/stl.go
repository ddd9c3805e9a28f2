package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
)

// CreateSTL writes the triangles of a Renderer to a binary STL file.
func CreateSTL(path string, r Renderer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	// Triangle count is unknown until the renderer is drained,
	// write the header last.
	_, err = file.Seek(stlHeaderSize, io.SeekStart)
	if err != nil {
		return err
	}
	rd := &stlReader{
		r: r,
	}
	n, err := io.CopyBuffer(file, rd, make([]byte, stlTriangleSize*trianglesInBuffer))
	if err != nil {
		return err
	}
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return err
	}
	header := stlHeader{
		Count: uint32(n / stlTriangleSize),
	}
	if err = binary.Write(file, binary.LittleEndian, &header); err != nil {
		return err
	}
	return file.Close()
}

// WriteSTL writes model triangles to a writer in binary STL file format.
func WriteSTL(w io.Writer, model []Triangle3) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	header := stlHeader{
		Count: uint32(len(model)),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	var b [stlTriangleSize]byte
	for _, triangle := range model {
		newSTLRecord(triangle).marshal(b[:])
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

const trianglesInBuffer = 1 << 10

// stlReader adapts a Renderer to an io.Reader of STL triangle records.
type stlReader struct {
	r   Renderer
	buf [trianglesInBuffer]Triangle3
}

func (w *stlReader) Read(b []byte) (int, error) {
	ntMax := min(len(b)/stlTriangleSize, len(w.buf))
	if ntMax == 0 {
		return 0, errors.New("stlReader requires at least 50 bytes to write a single triangle")
	}
	var (
		err error
		it  int // Number of triangles written to byte buffer
		nt  int // number of triangles read during ReadTriangles
	)
	for it < ntMax && err == nil {
		nt, err = w.r.ReadTriangles(w.buf[:ntMax-it])
		if nt > ntMax-it {
			panic("bug: ReadTriangles read more triangles than available in buffer")
		}
		for _, triangle := range w.buf[:nt] {
			newSTLRecord(triangle).marshal(b[it*stlTriangleSize:])
			it++
		}
	}
	return it * stlTriangleSize, err
}

// ReadSTL reads a binary STL model. Every triangle is checked for finite
// coordinates and distinct vertices. Triangles whose stored normal disagrees
// with the winding of their vertices are kept and reported with an error
// matching ErrNormalMismatch.
func ReadSTL(r io.Reader) ([]Triangle3, error) {
	var header stlHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("reading STL header: %w", err)
	}
	if header.Count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		buf      [stlTriangleSize]byte
		rec      stlRecord
		mismatch int
	)
	model := make([]Triangle3, 0, min(int(header.Count), 1<<16))
	for i := 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("STL triangle %d/%d: %w", i+1, header.Count, err)
		}
		rec.unmarshal(buf[:])
		switch err := rec.check(); {
		case errors.Is(err, ErrNormalMismatch):
			mismatch++
		case err != nil:
			return nil, fmt.Errorf("STL triangle %d/%d: %w", i+1, header.Count, err)
		}
		model = append(model, rec.triangle())
	}
	if mismatch > 0 {
		return model, fmt.Errorf("%d of %d triangles: %w", mismatch, header.Count, ErrNormalMismatch)
	}
	return model, nil
}

// ErrNormalMismatch is returned by ReadSTL when a stored normal is not
// approximately equal to the normal calculated from the triangle vertices.
var ErrNormalMismatch = errors.New("triangle normal not approximately equal to calculated normal from vertices")

// stlRecord is a triangle as stored in an STL file: the normal followed by
// three vertices. The trailing attribute byte count is always zero.
type stlRecord [4][3]float32

func newSTLRecord(t Triangle3) stlRecord {
	var rec stlRecord
	rec[0] = to3F32(t.Normal())
	for i, v := range t.V {
		rec[i+1] = to3F32(v)
	}
	return rec
}

func (rec stlRecord) marshal(b []byte) {
	_ = b[stlTriangleSize-1] // early bounds check
	for i, f := range rec {
		for j, c := range f {
			binary.LittleEndian.PutUint32(b[12*i+4*j:], math.Float32bits(c))
		}
	}
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (rec *stlRecord) unmarshal(b []byte) {
	_ = b[stlTriangleSize-1] // early bounds check
	for i := range rec {
		for j := range rec[i] {
			rec[i][j] = math.Float32frombits(binary.LittleEndian.Uint32(b[12*i+4*j:]))
		}
	}
}

func (rec *stlRecord) triangle() Triangle3 {
	var t Triangle3
	for i := range t.V {
		f := rec[i+1]
		t.V[i] = r3.Vec{X: float64(f[0]), Y: float64(f[1]), Z: float64(f[2])}
	}
	return t
}

func (rec *stlRecord) check() error {
	const normTol = 5e-2
	for _, f := range rec {
		for _, c := range f {
			if math32.IsNaN(c) || math32.IsInf(c, 0) {
				return errors.New("inf/NaN in STL triangle")
			}
		}
	}
	if rec[1] == rec[2] || rec[2] == rec[3] || rec[3] == rec[1] {
		return errors.New("triangle is degenerate")
	}
	want := to3F32(rec.triangle().Normal())
	for i, c := range rec[0] {
		if math32.Abs(c-want[i]) > normTol {
			return ErrNormalMismatch
		}
	}
	return nil
}

func to3F32(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
