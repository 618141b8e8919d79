package draw

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	labelFont     *truetype.Font
	labelFontErr  error
	labelFontOnce sync.Once
)

func loadLabelFont() (*truetype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = freetype.ParseFont(goregular.TTF)
	})
	return labelFont, labelFontErr
}

// Label draws text with its baseline starting at pt, using size point Go Regular.
func Label(dst Image, pt image.Point, text string, size float64, c color.Color) error {
	f, err := loadLabelFont()
	if err != nil {
		return err
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))
	_, err = ctx.DrawString(text, freetype.Pt(pt.X, pt.Y))
	return err
}

// Caption returns a copy of src with room for one line of text below it.
func Caption(src image.Image, text string, size float64, fg, bg color.Color) (*image.RGBA, error) {
	var (
		sr     = src.Bounds()
		height = int(size*1.5 + 0.5)
		dst    = image.NewRGBA(image.Rect(0, 0, sr.Dx(), sr.Dy()+height))
	)
	Box(dst, dst.Bounds(), bg)
	Draw(dst, sr.Sub(sr.Min), src, sr.Min, Src)
	if err := Label(dst, image.Pt(2, sr.Dy()+int(size+0.5)), text, size, fg); err != nil {
		return nil, err
	}
	return dst, nil
}
