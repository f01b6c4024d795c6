package fontcalc

import (
	"fmt"

	"github.com/alnah/go-md2pptx/internal/yamlutil"
)

// Category identifies what a font size is being computed for.
type Category string

// Content categories recognized by the calculator. Unknown categories fall
// back to a base size of 16 and the default size range.
const (
	CategoryParentTitle Category = "parent_title"
	CategoryTitle       Category = "title"
	CategoryText        Category = "text"
	CategoryTableHeader Category = "table_header"
	CategoryTableData   Category = "table_data"
	CategoryCaption     Category = "caption"
)

// RangeKeyDefault is the size-range key used when a category has no
// configured range.
const RangeKeyDefault = "default"

// Range bounds a font size in points, inclusive.
type Range struct {
	Min int
	Max int
}

// UnmarshalYAML accepts the two-element sequence form used by the
// configuration file: `text: [14, 22]`.
func (r *Range) UnmarshalYAML(unmarshal func(any) error) error {
	var pair []int
	if err := unmarshal(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("fontcalc: size range must have exactly 2 elements, got %d", len(pair))
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

// MarshalYAML renders the range back in the sequence form.
func (r Range) MarshalYAML() (any, error) {
	return []int{r.Min, r.Max}, nil
}

// Config holds every tunable the calculator reads. Zero values mean
// "use the built-in default"; see DefaultConfig.
type Config struct {
	BaseSizes      map[string]int    `yaml:"base_sizes"`
	SizeRanges     map[string]Range  `yaml:"size_ranges"`
	Dynamic        DynamicAdjustment `yaml:"dynamic_adjustment"`
	TextEstimation TextEstimation    `yaml:"text_estimation"`
}

// DynamicAdjustment scales base sizes by available space and content volume.
type DynamicAdjustment struct {
	HeightMultipliers  map[string]float64 `yaml:"height_multipliers"`
	ContentMultipliers map[string]float64 `yaml:"content_multipliers"`
	TableAdjustment    TableAdjustment    `yaml:"table_adjustment"`
}

// TableAdjustment tunes table cell font sizing.
type TableAdjustment struct {
	CellHeightRatio    float64            `yaml:"cell_height_ratio"`
	BaseSizeMultiplier float64            `yaml:"base_size_multiplier"`
	ColAdjustments     map[string]float64 `yaml:"col_adjustments"`
}

// TextEstimation tunes the text height estimator. Gaps are in points.
type TextEstimation struct {
	LineHeightRatio float64 `yaml:"line_height_ratio"`
	GapList         float64 `yaml:"gap_list"`
	GapParagraph    float64 `yaml:"gap_paragraph"`
	MinCharsPerLine int     `yaml:"min_chars_per_line"`
}

// DefaultConfig returns the built-in configuration. The constants match the
// shipped pptx_font_config defaults.
func DefaultConfig() Config {
	return Config{
		BaseSizes: map[string]int{
			string(CategoryParentTitle): 26,
			string(CategoryTitle):       20,
			string(CategoryText):        18,
			string(CategoryTableHeader): 18,
			string(CategoryTableData):   16,
		},
		SizeRanges: map[string]Range{
			RangeKeyDefault: {Min: 14, Max: 22},
		},
		Dynamic: DynamicAdjustment{
			HeightMultipliers: map[string]float64{
				"small": 0.75, "medium": 0.9, "large": 1.0, "extra_large": 1.2,
			},
			ContentMultipliers: map[string]float64{
				"few": 1.2, "normal": 1.0, "many": 0.9, "too_many": 0.8,
			},
			TableAdjustment: TableAdjustment{
				CellHeightRatio:    0.6,
				BaseSizeMultiplier: 1.5,
				ColAdjustments: map[string]float64{
					"normal": 1.0, "many": 0.9, "too_many": 0.8,
				},
			},
		},
		TextEstimation: TextEstimation{
			LineHeightRatio: 1.2,
			GapList:         6,
			GapParagraph:    8,
			MinCharsPerLine: 8,
		},
	}
}

// ParseConfig merges YAML data over the defaults. Entries present in the
// file override per key; everything missing keeps its default. Malformed
// YAML is an error for the caller to surface, but a valid file can never
// leave the configuration without a usable value.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	var overlay Config
	if err := yamlutil.Unmarshal(data, &overlay); err != nil {
		return cfg, err
	}
	mergeConfig(&cfg, overlay)
	return cfg, nil
}

func mergeConfig(dst *Config, src Config) {
	for k, v := range src.BaseSizes {
		if v > 0 {
			dst.BaseSizes[k] = v
		}
	}
	for k, v := range src.SizeRanges {
		if v.Min > 0 && v.Max >= v.Min {
			dst.SizeRanges[k] = v
		}
	}
	for k, v := range src.Dynamic.HeightMultipliers {
		if v > 0 {
			dst.Dynamic.HeightMultipliers[k] = v
		}
	}
	for k, v := range src.Dynamic.ContentMultipliers {
		if v > 0 {
			dst.Dynamic.ContentMultipliers[k] = v
		}
	}
	ta := src.Dynamic.TableAdjustment
	if ta.CellHeightRatio > 0 {
		dst.Dynamic.TableAdjustment.CellHeightRatio = ta.CellHeightRatio
	}
	if ta.BaseSizeMultiplier > 0 {
		dst.Dynamic.TableAdjustment.BaseSizeMultiplier = ta.BaseSizeMultiplier
	}
	for k, v := range ta.ColAdjustments {
		if v > 0 {
			dst.Dynamic.TableAdjustment.ColAdjustments[k] = v
		}
	}
	te := src.TextEstimation
	if te.LineHeightRatio > 0 {
		dst.TextEstimation.LineHeightRatio = te.LineHeightRatio
	}
	if te.GapList > 0 {
		dst.TextEstimation.GapList = te.GapList
	}
	if te.GapParagraph > 0 {
		dst.TextEstimation.GapParagraph = te.GapParagraph
	}
	if te.MinCharsPerLine > 0 {
		dst.TextEstimation.MinCharsPerLine = te.MinCharsPerLine
	}
}
