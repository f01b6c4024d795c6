// Package fontcalc computes font sizes that balance legibility against
// available vertical space and content volume. All computations are pure
// table-driven arithmetic over the loaded configuration; there are no
// failure modes beyond defaulting on missing keys.
package fontcalc

// fallbackBaseSize is used for categories absent from the configuration.
const fallbackBaseSize = 16

// Calculator maps (available height, content volume, category) to a point
// size within the configured per-category range.
//
// The override setters mutate the configuration in place and must not be
// called concurrently with layout calls on the same instance.
type Calculator struct {
	cfg Config
}

// New creates a Calculator over cfg.
func New(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// NewDefault creates a Calculator with the built-in configuration.
func NewDefault() *Calculator {
	return New(DefaultConfig())
}

// SetBaseSize overrides the base size for a category.
func (c *Calculator) SetBaseSize(cat Category, size int) {
	c.cfg.BaseSizes[string(cat)] = size
}

// SetSizeRange overrides the clamping range for a category.
func (c *Calculator) SetSizeRange(cat Category, minSize, maxSize int) {
	c.cfg.SizeRanges[string(cat)] = Range{Min: minSize, Max: maxSize}
}

// TextEstimation exposes the estimator tunables for the layout package.
func (c *Calculator) TextEstimation() TextEstimation {
	return c.cfg.TextEstimation
}

// BaseSize returns the configured base size for a category, defaulting to
// 16 for unknown categories.
func (c *Calculator) BaseSize(cat Category) int {
	if s, ok := c.cfg.BaseSizes[string(cat)]; ok {
		return s
	}
	return fallbackBaseSize
}

// OptimalSize computes the point size for content of the given category.
// availableHeight is in inches; contentAmount only matters for text.
func (c *Calculator) OptimalSize(availableHeight float64, contentAmount int, cat Category) int {
	base := c.BaseSize(cat)

	heightMult := c.heightMultiplier(availableHeight, cat)
	contentMult := 1.0
	if cat == CategoryText {
		contentMult = c.contentMultiplier(contentAmount)
	}

	final := int(float64(base) * heightMult * contentMult)
	return c.clamp(cat, final)
}

// TitleSize computes the size for a subsection title band.
func (c *Calculator) TitleSize(availableHeight float64) int {
	return c.OptimalSize(availableHeight, 1, CategoryTitle)
}

// ParentTitleSize computes the size for a chapter divider title.
func (c *Calculator) ParentTitleSize(availableHeight float64) int {
	return c.OptimalSize(availableHeight, 1, CategoryParentTitle)
}

// TableSize computes a cell font size from the table geometry: the average
// cell height bounds the font, and wide tables are scaled down.
func (c *Calculator) TableSize(tableHeight float64, rows, cols int, cat Category) int {
	base, ok := c.cfg.BaseSizes[string(cat)]
	if !ok {
		if cat == CategoryTableHeader {
			base = 18
		} else {
			base = fallbackBaseSize
		}
	}

	ta := c.cfg.Dynamic.TableAdjustment
	cellHeight := 1.0
	if rows > 0 {
		cellHeight = tableHeight / float64(rows)
	}
	maxByHeight := int(cellHeight * 72 * multiplier(ta.CellHeightRatio, 0.6))

	colAdj := lookupMult(ta.ColAdjustments, "normal", 1.0)
	switch {
	case cols > 5:
		colAdj = lookupMult(ta.ColAdjustments, "too_many", 0.8)
	case cols > 3:
		colAdj = lookupMult(ta.ColAdjustments, "many", 0.9)
	}

	scaled := float64(base) * multiplier(ta.BaseSizeMultiplier, 1.5)
	optimal := int(min(scaled, float64(maxByHeight)) * colAdj)
	return c.clamp(cat, optimal)
}

// heightMultiplier buckets availableHeight. Captions live in much shorter
// strips than body content, so they get tighter thresholds.
func (c *Calculator) heightMultiplier(availableHeight float64, cat Category) float64 {
	hm := c.cfg.Dynamic.HeightMultipliers
	if cat == CategoryCaption {
		switch {
		case availableHeight <= 0.5:
			return lookupMult(hm, "small", 0.75)
		case availableHeight <= 1.0:
			return lookupMult(hm, "medium", 0.9)
		default:
			return lookupMult(hm, "large", 1.0)
		}
	}
	switch {
	case availableHeight <= 1.5:
		return lookupMult(hm, "small", 0.75)
	case availableHeight <= 3.0:
		return lookupMult(hm, "medium", 0.9)
	case availableHeight <= 5.0:
		return lookupMult(hm, "large", 1.0)
	default:
		return lookupMult(hm, "extra_large", 1.2)
	}
}

func (c *Calculator) contentMultiplier(amount int) float64 {
	cm := c.cfg.Dynamic.ContentMultipliers
	switch {
	case amount <= 2:
		return lookupMult(cm, "few", 1.2)
	case amount <= 5:
		return lookupMult(cm, "normal", 1.0)
	case amount <= 10:
		return lookupMult(cm, "many", 0.9)
	default:
		return lookupMult(cm, "too_many", 0.8)
	}
}

func (c *Calculator) clamp(cat Category, size int) int {
	r, ok := c.cfg.SizeRanges[string(cat)]
	if !ok {
		r, ok = c.cfg.SizeRanges[RangeKeyDefault]
		if !ok {
			r = Range{Min: 14, Max: 22}
		}
	}
	return max(r.Min, min(size, r.Max))
}

func lookupMult(m map[string]float64, key string, fallback float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

func multiplier(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}
