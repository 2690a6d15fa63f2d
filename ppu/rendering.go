package ppu

// renderScanline renders one visible scanline (y in [0,239]) into the
// per-pixel scratch buffers, then composites background and sprites
// into the framebuffer. Called once per scanline, at cycle 0, while
// rendering is enabled - not once per dot, since this core is
// scanline-granular rather than pixel-accurate.
func (p *PPU) renderScanline(y int) {
	for x := 0; x < 256; x++ {
		p.bgOpaque[x] = false
		p.sprOpaque[x] = false
	}

	if p.mask&maskShowBg != 0 {
		p.renderBackground()
	}

	var spritesOnLine int
	if p.mask&maskShowSpr != 0 {
		spritesOnLine = p.renderSprites(y)
	}
	if spritesOnLine > 8 {
		p.statusBits |= statusSpriteOverflow
	}

	p.composite(y)
}

// renderBackground fetches the 33 tiles needed to cover one scanline
// (the extra tile absorbs fine-X overshoot at the right edge), then
// advances the PPU's real v register the way the hardware does at the
// end of a rendered scanline.
func (p *PPU) renderBackground() {
	vv := p.v
	fineY := (p.v >> 12) & 7
	patternBase := uint16(0)
	if p.ctrl&ctrlBgPattern != 0 {
		patternBase = 0x1000
	}

	for tile := 0; tile < 33; tile++ {
		tileID := uint16(p.busRead(0x2000 | (vv & 0x0FFF)))
		attr := p.busRead(0x23C0 | (vv & 0x0C00) | ((vv >> 4) & 0x38) | ((vv >> 2) & 0x07))
		shift := ((vv >> 4) & 4) | (vv & 2)
		palIdx := (attr >> shift) & 3

		lo := p.busRead(patternBase + tileID*16 + fineY)
		hi := p.busRead(patternBase + tileID*16 + fineY + 8)

		for px := 0; px < 8; px++ {
			bit := uint(7 - px)
			pixel := ((hi>>bit)&1)<<1 | (lo>>bit)&1
			sx := tile*8 + px - int(p.fineX)
			if sx < 0 || sx >= 256 {
				continue
			}
			p.bgOpaque[sx] = pixel != 0
			p.bgPalette[sx] = palIdx
			p.bgPixel[sx] = pixel
		}

		if vv&0x1F == 31 {
			vv &^= 0x1F
			vv ^= 0x0400
		} else {
			vv++
		}
	}

	p.advanceVAfterScanline()
	p.v = (p.v &^ 0x041F) | (p.t & 0x041F)
}

func (p *PPU) advanceVAfterScanline() {
	fineY := (p.v >> 12) & 7
	if fineY < 7 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	coarseY := (p.v >> 5) & 0x1F
	switch coarseY {
	case 29:
		coarseY = 0
		p.v ^= 0x0800
	case 31:
		coarseY = 0
	default:
		coarseY++
	}
	p.v = (p.v &^ 0x03E0) | (coarseY << 5)
}

// renderSprites evaluates OAM for scanline y, keeping up to 8 sprites
// and rendering them in reverse order so lower OAM indices win
// sprite-vs-sprite overlaps. Returns the total count of sprites on
// this line, including any beyond the 8-sprite limit (the caller uses
// this to set the overflow flag).
func (p *PPU) renderSprites(y int) int {
	height := 8
	if p.ctrl&ctrlSpriteHeight16 != 0 {
		height = 16
	}

	var selected []int
	count := 0
	for i := 0; i < 64; i++ {
		top := int(p.oam[i*4]) + 1
		if y >= top && y < top+height {
			if count < 8 {
				selected = append(selected, i)
			}
			count++
		}
	}

	for k := len(selected) - 1; k >= 0; k-- {
		p.renderSprite(selected[k], y, height)
	}
	return count
}

func (p *PPU) renderSprite(i, y, height int) {
	top := int(p.oam[i*4]) + 1
	tileIndex := p.oam[i*4+1]
	attr := p.oam[i*4+2]
	xPos := int(p.oam[i*4+3])

	row := y - top
	if attr&0x80 != 0 { // vertical flip
		row = height - 1 - row
	}

	var patternAddr uint16
	if height == 16 {
		table := uint16(tileIndex&1) * 0x1000
		tileNum := uint16(tileIndex &^ 1)
		if row >= 8 {
			tileNum++
			row -= 8
		}
		patternAddr = table + tileNum*16 + uint16(row)
	} else {
		base := uint16(0)
		if p.ctrl&ctrlSpritePattern != 0 {
			base = 0x1000
		}
		patternAddr = base + uint16(tileIndex)*16 + uint16(row)
	}

	lo := p.busRead(patternAddr)
	hi := p.busRead(patternAddr + 8)

	for px := 0; px < 8; px++ {
		bit := uint(px)
		if attr&0x40 == 0 { // no horizontal flip
			bit = uint(7 - px)
		}
		pixel := ((hi>>bit)&1)<<1 | (lo>>bit)&1
		if pixel == 0 {
			continue
		}
		sx := xPos + px
		if sx < 0 || sx >= 256 {
			continue
		}
		p.sprOpaque[sx] = true
		p.sprPixel[sx] = pixel
		p.sprPalette[sx] = attr & 0x03
		p.sprPriority[sx] = attr&0x20 != 0
		p.sprZero[sx] = i == 0
	}
}

// composite resolves background vs. sprite priority per pixel,
// detects sprite-0 hit, and writes the final color into the
// framebuffer.
func (p *PPU) composite(y int) {
	showBgLeft := p.mask&maskShowBgLeft != 0
	showSprLeft := p.mask&maskShowSprLeft != 0

	for x := 0; x < 256; x++ {
		bgOn := p.bgOpaque[x] && (x >= 8 || showBgLeft)
		sprOn := p.sprOpaque[x] && (x >= 8 || showSprLeft)

		if bgOn && sprOn && p.sprZero[x] && x != 255 {
			p.statusBits |= statusSprite0Hit
		}

		var palAddr uint8
		switch {
		case !bgOn && !sprOn:
			palAddr = 0x00
		case !bgOn && sprOn:
			palAddr = 0x10 + p.sprPalette[x]*4 + p.sprPixel[x]
		case bgOn && !sprOn:
			palAddr = p.bgPalette[x]*4 + p.bgPixel[x]
		default:
			if p.sprPriority[x] {
				palAddr = p.bgPalette[x]*4 + p.bgPixel[x]
			} else {
				palAddr = 0x10 + p.sprPalette[x]*4 + p.sprPixel[x]
			}
		}

		color := p.readPaletteRAM(palAddr)
		p.Framebuffer[y*256+x] = masterPalette[color&0x3F]
	}
}
