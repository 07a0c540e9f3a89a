package utils

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/gen2brain/heic"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ErrUnknownFormat is returned when no registered format matches the input.
var ErrUnknownFormat = errors.New("unknown image format")

// Format describes one decodable encoding. Magic may contain '?' wildcards,
// each matching any single byte.
type Format struct {
	Name   string
	Magic  []string
	Decode func(io.Reader) (image.Image, error)
}

// Decoder dispatches on magic bytes to an explicitly registered set of
// formats. It does not consult the image package's global registry.
type Decoder struct {
	formats []Format
}

// NewDecoder returns a Decoder for png, jpeg, gif, bmp, tiff and webp.
// HEIC/HEIF support is added with RegisterHEIF.
func NewDecoder() *Decoder {
	d := &Decoder{}
	d.Register(Format{Name: "png", Magic: []string{"\x89PNG\r\n\x1a\n"}, Decode: png.Decode})
	d.Register(Format{Name: "jpeg", Magic: []string{"\xff\xd8"}, Decode: jpeg.Decode})
	d.Register(Format{Name: "gif", Magic: []string{"GIF87a", "GIF89a"}, Decode: gif.Decode})
	d.Register(Format{Name: "bmp", Magic: []string{"BM????\x00\x00\x00\x00"}, Decode: bmp.Decode})
	d.Register(Format{Name: "tiff", Magic: []string{"II*\x00", "MM\x00*"}, Decode: tiff.Decode})
	d.Register(Format{Name: "webp", Magic: []string{"RIFF????WEBPVP8"}, Decode: webp.Decode})
	return d
}

// Register adds f. Later registrations win when magics overlap.
func (d *Decoder) Register(f Format) {
	d.formats = append([]Format{f}, d.formats...)
}

// RegisterHEIF enables HEIC/HEIF input. Calling it more than once is harmless.
func (d *Decoder) RegisterHEIF() {
	if d.Supports("heif") {
		return
	}
	d.Register(Format{
		Name: "heif",
		Magic: []string{
			"????ftypheic", "????ftypheix", "????ftyphevc", "????ftyphevx",
			"????ftypheim", "????ftypheis", "????ftyphevm", "????ftyphevs",
			"????ftypmif1", "????ftypmsf1",
		},
		Decode: heic.Decode,
	})
}

func (d *Decoder) Supports(name string) bool {
	for _, f := range d.formats {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Formats returns the registered format names, most recent first.
func (d *Decoder) Formats() []string {
	names := make([]string, len(d.formats))
	for i, f := range d.formats {
		names[i] = f.Name
	}
	return names
}

func match(magic string, b []byte) bool {
	if len(magic) != len(b) {
		return false
	}
	for i, c := range b {
		if magic[i] != c && magic[i] != '?' {
			return false
		}
	}
	return true
}

func (d *Decoder) sniff(r *bufio.Reader) (Format, bool) {
	for _, f := range d.formats {
		for _, m := range f.Magic {
			b, err := r.Peek(len(m))
			if err == nil && match(m, b) {
				return f, true
			}
		}
	}
	return Format{}, false
}

// Decode reads an image from r and reports the name of the matched format.
func (d *Decoder) Decode(r io.Reader) (image.Image, string, error) {
	br := bufio.NewReader(r)
	f, ok := d.sniff(br)
	if !ok {
		return nil, "", ErrUnknownFormat
	}
	img, err := f.Decode(br)
	if err != nil {
		return nil, f.Name, fmt.Errorf("decode %s: %w", f.Name, err)
	}
	return img, f.Name, nil
}

// ReadImage opens and decodes the file at path.
func (d *Decoder) ReadImage(path string) (image.Image, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()
	img, name, err := d.Decode(file)
	if err != nil {
		return nil, name, fmt.Errorf("%s: %w", path, err)
	}
	return img, name, nil
}
