package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

// Sprite textures are drawn once at this size and scaled per draw.
const spriteSize = 64

var (
	white     = color.RGBA{255, 255, 255, 255}
	lightGray = color.RGBA{200, 200, 200, 255}
	darkGray  = color.RGBA{60, 60, 60, 255}
)

// powerUpLabels is printed on each power-up block.
var powerUpLabels = map[breakout.Sprite]string{
	breakout.SpritePowerUpSpeed:       "SPD",
	breakout.SpritePowerUpSticky:      "GLUE",
	breakout.SpritePowerUpPassThrough: "PASS",
	breakout.SpritePowerUpIncrease:    "PAD+",
	breakout.SpritePowerUpConfuse:     "???",
	breakout.SpritePowerUpChaos:       "CHAOS",
}

// spriteCache builds white, tintable textures on first use.
type spriteCache struct {
	images [breakout.SpriteCount]*ebiten.Image
}

func (c *spriteCache) get(s breakout.Sprite) *ebiten.Image {
	if s <= breakout.SpriteNone || s >= breakout.SpriteCount {
		return nil
	}
	if c.images[s] == nil {
		c.images[s] = buildSprite(s)
	}
	return c.images[s]
}

func buildSprite(s breakout.Sprite) *ebiten.Image {
	img := ebiten.NewImage(spriteSize, spriteSize)
	const n = float32(spriteSize)

	switch s {
	case breakout.SpriteBackground:
		img.Fill(color.RGBA{24, 24, 32, 255})
	case breakout.SpriteBlock:
		img.Fill(white)
		vector.StrokeRect(img, 1, 1, n-2, n-2, 4, lightGray, false)
	case breakout.SpriteBlockSolid:
		img.Fill(lightGray)
		vector.StrokeRect(img, 1, 1, n-2, n-2, 6, darkGray, false)
		vector.StrokeLine(img, 0, 0, n, n, 3, darkGray, false)
		vector.StrokeLine(img, n, 0, 0, n, 3, darkGray, false)
	case breakout.SpritePaddle:
		vector.DrawFilledRect(img, 0, n/4, n, n/2, white, true)
		vector.DrawFilledCircle(img, n/4, n/2, n/4, white, true)
		vector.DrawFilledCircle(img, 3*n/4, n/2, n/4, white, true)
	case breakout.SpriteBall, breakout.SpriteParticle:
		vector.DrawFilledCircle(img, n/2, n/2, n/2, white, true)
	default:
		img.Fill(darkGray)
		vector.StrokeRect(img, 1, 1, n-2, n-2, 3, white, false)
		if label, ok := powerUpLabels[s]; ok {
			ebitenutil.DebugPrintAt(img, label, 4, spriteSize/2-8)
		}
	}
	return img
}
