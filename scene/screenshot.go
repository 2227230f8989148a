package scene

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sbinet/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// shot is a queued screenshot. Generation is the tree state the picture is
// meant to show, so a script's shots can be matched to the transitions that
// produced them.
type shot struct {
	seq        int
	label      string
	generation uint64
}

func (sh shot) fileName() string {
	return fmt.Sprintf("%03d_%s_g%d.png", sh.seq, sanitizeLabel(sh.label), sh.generation)
}

// Screenshot queues a labeled capture of the next drawn frame. Files land in
// ScreenshotDir as NNN_label_gG.png, numbered in queue order and tagged
// with the generation of the first tree view's state.
func (s *Scene) Screenshot(label string) {
	var gen uint64
	if len(s.trees) > 0 {
		gen = s.trees[0].presenter.Controller().State().Generation()
	}
	s.shots++
	s.screenshotQueue = append(s.screenshotQueue, shot{seq: s.shots, label: label, generation: gen})
}

// flushScreenshots writes every queued shot from screen. Called at the end
// of Scene.Draw.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		s.logger.Warn("screenshot: mkdir", "dir", s.ScreenshotDir, "err", err)
		return
	}

	// ReadPixels yields premultiplied alpha, which is what image.RGBA holds.
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)

	for _, sh := range s.screenshotQueue {
		path := filepath.Join(s.ScreenshotDir, sh.fileName())
		if err := gg.SavePNG(path, img); err != nil {
			s.logger.Warn("screenshot", "path", path, "err", err)
			continue
		}
		s.logger.Debug("screenshot", "path", path, "generation", sh.generation)
	}
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing everything
// else with '_'.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
