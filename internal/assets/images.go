package assets

import (
	"fmt"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadImage decodes the image bound to kind. A missing file is an error;
// there is no fallback artwork.
func (r *Resources) LoadImage(kind EntityKind) (*ebiten.Image, error) {
	path := r.Path(r.AssetFor(kind))
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s image: %w", kind, err)
	}
	return img, nil
}
