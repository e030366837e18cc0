package sprite

import (
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"path"

	"github.com/samdwyer/roomrunner/internal/entity"
)

// Loaded lists the directions read from files. The rest are derived.
var Loaded = []entity.Direction{
	entity.DirNorth,
	entity.DirSouth,
	entity.DirEast,
	entity.DirNorthEast,
	entity.DirSouthEast,
}

// Sheet holds five frames for each of the eight directions.
type Sheet struct {
	frames [entity.DirSouthWest + 1][]image.Image
}

// NewSheet builds a sheet from the loaded directions.
// West mirrors east; north-west and south-west are the north-east and
// south-east frames rotated half a turn and flipped vertically.
func NewSheet(base map[entity.Direction][]image.Image) (*Sheet, error) {
	s := &Sheet{}
	for _, d := range Loaded {
		frames := base[d]
		if len(frames) != FramesPerDirection {
			return nil, fmt.Errorf("sprite: %s has %d frames, want %d", d, len(frames), FramesPerDirection)
		}
		s.frames[d] = frames
	}

	s.frames[entity.DirWest] = mapFrames(s.frames[entity.DirEast], Mirror)
	s.frames[entity.DirNorthWest] = mapFrames(s.frames[entity.DirNorthEast], rotateFlip)
	s.frames[entity.DirSouthWest] = mapFrames(s.frames[entity.DirSouthEast], rotateFlip)
	return s, nil
}

// LoadSheet reads <dir>/<direction>_<i>.png for every loaded direction.
func LoadSheet(fsys fs.FS, dir string) (*Sheet, error) {
	base := make(map[entity.Direction][]image.Image, len(Loaded))
	for _, d := range Loaded {
		for i := 0; i < FramesPerDirection; i++ {
			name := path.Join(dir, fmt.Sprintf("%s_%d.png", d, i))
			img, err := decodePNG(fsys, name)
			if err != nil {
				return nil, err
			}
			base[d] = append(base[d], img)
		}
	}
	return NewSheet(base)
}

// MustLoadSheet loads a sheet, panicking on error.
func MustLoadSheet(fsys fs.FS, dir string) *Sheet {
	s, err := LoadSheet(fsys, dir)
	if err != nil {
		panic(err)
	}
	return s
}

// Frame returns frame i of direction d. DirNone uses the south frames.
func (s *Sheet) Frame(d entity.Direction, i int) image.Image {
	if d == entity.DirNone {
		d = entity.DirSouth
	}
	return s.frames[d][i]
}

func decodePNG(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite %s: %w", name, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", name, err)
	}
	return img, nil
}

func rotateFlip(img image.Image) *image.RGBA {
	return FlipVertical(Rotate180(img))
}

func mapFrames(frames []image.Image, fn func(image.Image) *image.RGBA) []image.Image {
	out := make([]image.Image, len(frames))
	for i, f := range frames {
		out[i] = fn(f)
	}
	return out
}
