package fractal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// PGMWriter renders the grid as a greyscale pgm image.
type PGMWriter struct {
	dir  string
	p    Params
	data []byte
}

func NewPGMWriter(dir string, p Params) *PGMWriter {
	return &PGMWriter{
		dir:  dir,
		p:    p,
		data: make([]byte, p.Cells()),
	}
}

func (w *PGMWriter) Filename() string {
	return filepath.Join(w.dir, fmt.Sprintf("%vx%vx%v.pgm", w.p.Width, w.p.Height, w.p.MaxDepth))
}

func (w *PGMWriter) Render(x, y, depth int) {
	var grey byte
	if depth < w.p.MaxDepth {
		grey = byte(255 - 255*depth/w.p.MaxDepth)
	}
	w.data[y*w.p.Width+x] = grey
}

// Flush writes the image to <dir>/<width>x<height>x<depth>.pgm.
func (w *PGMWriter) Flush() error {
	if err := os.MkdirAll(w.dir, os.ModePerm); err != nil {
		return err
	}
	file, err := os.Create(w.Filename())
	if err != nil {
		return err
	}
	defer file.Close()

	header := "P5\n" + strconv.Itoa(w.p.Width) + " " + strconv.Itoa(w.p.Height) + "\n255\n"
	if _, err := file.WriteString(header); err != nil {
		return err
	}
	if _, err := file.Write(w.data); err != nil {
		return err
	}
	if err := file.Sync(); err != nil {
		return err
	}
	log.Printf("File %s output done", w.Filename())
	return nil
}
