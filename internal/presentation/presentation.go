// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package presentation is the in-memory output model the evaluator builds:
// slides, their elements, named stylings, and the file lists an emitter
// (out of scope here, spec.md §1) would later consume. Most mutating
// methods are called by the evaluator's assignment/post-initialisation
// handling; Grid.AddChild, NewCustomElement, AddExternFile and
// Label.RenderedHTML have no caller in this module.
package presentation

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownRenderer renders label text the way
// original_source/slides-rs-core/src/elements/label/markdown.rs does:
// goldmark's CommonMark with the strikethrough extension added; tables are
// not enabled and raw HTML is omitted (goldmark's default).
var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.Strikethrough))

// Color is a CSS color, carried as the original source text (e.g. "#112233",
// "red") rather than parsed into channels: nothing downstream of binding
// needs to inspect its components, only to emit it verbatim into CSS.
type Color struct {
	CSS string
}

// Background is either unspecified or a solid Color.
type Background struct {
	set   bool
	Color Color
}

// Unspecified reports whether no background was ever assigned.
func (b Background) Unspecified() bool { return !b.set }

// NewBackground returns a Background carrying c.
func NewBackground(c Color) Background { return Background{set: true, Color: c} }

// ObjectFit mirrors CSS object-fit.
type ObjectFit int

const (
	ObjectFitContain ObjectFit = iota
	ObjectFitCover
	ObjectFitFill
	ObjectFitNone
)

var objectFitNames = [...]string{"contain", "cover", "fill", "none"}

func (o ObjectFit) String() string { return objectFitNames[o] }

// HAlign is a horizontal alignment.
type HAlign int

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
	HAlignStretch
)

var hAlignNames = [...]string{"Left", "Center", "Right", "Stretch"}

func (a HAlign) String() string { return hAlignNames[a] }

// VAlign is a vertical alignment.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
	VAlignStretch
)

var vAlignNames = [...]string{"Top", "Center", "Bottom", "Stretch"}

func (a VAlign) String() string { return vAlignNames[a] }

// TextAlign is a paragraph text alignment.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
	TextAlignJustify
)

var textAlignNames = [...]string{"Left", "Center", "Right", "Justify"}

func (a TextAlign) String() string { return textAlignNames[a] }

// Font names a font family, optionally loaded from Google Fonts (gfont).
type Font struct {
	Family string
	Google bool
}

// StyleUnit is a numeric value with a CSS unit suffix, e.g. "50%" or "12px".
type StyleUnit struct {
	Text string
}

// Thickness is a CSS-style four-sided measurement.
type Thickness struct {
	Top, Right, Bottom, Left StyleUnit
}

// Position is a computed element position, each axis already rendered to a
// CSS length (spec §6 built-ins leftTop/sizeOf/positionInside).
type Position struct {
	X, Y string
}

// Filter is a CSS filter function, e.g. brightness(1.2).
type Filter struct {
	CSS string
}

// Animation attaches a reveal step to an element.
type Animation struct {
	ShowAfterStep int
}

// Path is a reference to an imported asset file, relative to the project
// root. download-backed paths are recorded in the owning Presentation's
// file lists, not here.
type Path struct {
	Value string
}

// Positioning is the layout half of an element's appearance: alignment
// within its parent plus margin/padding, independent of its type-specific
// styling (text color, object-fit, ...).
type Positioning struct {
	VAlign  VAlign
	HAlign  HAlign
	Margin  Thickness
	Padding Thickness
}

// NewPositioning returns the default positioning: top-left, no margin or
// padding.
func NewPositioning() Positioning {
	return Positioning{VAlign: VAlignTop, HAlign: HAlignLeft}
}

// TextStyling is the subset of a Label's appearance that a Styling's
// `text` pre-registered member addresses (spec §4.5: "Label scopes
// additionally seed a text variable of TextStyling").
type TextStyling struct {
	Align TextAlign
	Font  Font
}

// BaseElementStyling is the styling every element kind shares.
type BaseElementStyling struct {
	Background Background
}

// LabelStyling is the Label-specific styling bundle.
type LabelStyling struct {
	BaseElementStyling
	TextColor Color
	hasColor  bool
	Text      TextStyling
}

// WithTextColor returns a copy of s with TextColor set.
func (s LabelStyling) WithTextColor(c Color) LabelStyling {
	s.TextColor = c
	s.hasColor = true
	return s
}

// HasTextColor reports whether a text color was ever assigned.
func (s LabelStyling) HasTextColor() bool { return s.hasColor }

// SetTextColor mutates l's text color in place (evaluator member-write on
// `label.text_color = ...`).
func (l *Label) SetTextColor(c Color) { l.Styling = l.Styling.WithTextColor(c) }

// SetBackground mutates l's background in place.
func (l *Label) SetBackground(bg Background) { l.Styling.Background = bg }

// ImageStyling is the Image-specific styling bundle.
type ImageStyling struct {
	BaseElementStyling
	ObjectFit ObjectFit
	HAlign    HAlign
	VAlign    VAlign
}

// SlideStyling is the Slide-specific styling bundle.
type SlideStyling struct {
	BaseElementStyling
}

// StylingReference names a registered styling bundle (spec §3
// StyleReference), resolved against a Presentation's Stylings map.
type StylingReference struct {
	Name string
}

// Kind tags the variant an Element wraps.
type Kind int

const (
	KindLabel Kind = iota
	KindImage
	KindGrid
	KindFlex
	KindCustom
	// KindSlide only ever tags a StylingDef, never an Element: a Slide is
	// never itself placed as a child element, but its styling is built the
	// same way Label/Image stylings are (evaluator's evaluateStylingStatement).
	KindSlide
)

// Element is the generic, shared-mutable handle for any slide-level
// element — the type the binder's `{Label|Image|CustomElement} → Element`
// implicit conversion (spec §4.4) targets, and the type Grid/Flex children
// are stored as (SPEC_FULL.md supplemented features). ID/ParentID/Namespace
// mirror original_source/slides-rs-core's WebRenderable::set_fallback_id /
// set_parent_id / set_namespace, applied once at slide/grid/flex
// finalisation.
type Element struct {
	Kind        Kind
	ID          string
	ParentID    string
	Namespace   string
	Positioning Positioning
	Animations  []Animation
	Stylings    []StylingReference

	Label  *Label
	Image  *Image
	Grid   *Grid
	Flex   *Flex
	Custom *CustomElement
}

// SetFallbackID assigns id unless one was already set, per
// WebRenderable::set_fallback_id's get_or_insert semantics.
func (e *Element) SetFallbackID(id string) {
	if e.ID == "" {
		e.ID = id
	}
}

// Label is the shared-mutable text element (spec §3 Value::Label).
type Label struct {
	ID          string
	Text        string
	Positioning Positioning
	Styling     LabelStyling
}

// NewLabel returns a Label with text and default positioning/styling.
func NewLabel(text string) *Label {
	return &Label{Text: text, Positioning: NewPositioning()}
}

// RenderedHTML renders l.Text through goldmark to the inline HTML an
// emitter would place inside the label's element, matching
// original_source's render_markdown: every label's text is always run
// through the renderer, there is no per-label opt-out.
func (l *Label) RenderedHTML() (string, error) {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(l.Text), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Image is the shared-mutable image element (spec §3 Value::Image).
type Image struct {
	ID          string
	Source      Path
	Positioning Positioning
	Styling     ImageStyling
}

// NewImage returns an Image sourced from path.
func NewImage(path Path) *Image {
	return &Image{Source: path, Positioning: NewPositioning()}
}

// SetBackground mutates i's background in place.
func (i *Image) SetBackground(bg Background) { i.Styling.Background = bg }

// SetObjectFit mutates i's object-fit in place.
func (i *Image) SetObjectFit(f ObjectFit) { i.Styling.ObjectFit = f }

// SetHAlign mutates i's horizontal alignment in place.
func (i *Image) SetHAlign(a HAlign) { i.Styling.HAlign = a }

// SetVAlign mutates i's vertical alignment in place.
func (i *Image) SetVAlign(a VAlign) { i.Styling.VAlign = a }

// GridCellSize is one track of a Grid's column or row template, e.g. `1fr`
// (one fractional share, written `1*` in source) or `200px` (fixed).
type GridCellSize struct {
	Text string
}

// GridEntry is the placement metadata for one child of a Grid
// (SPEC_FULL.md: "the bound/evaluated Grid ... values ... carry entries,
// not just an opaque handle"), grounded on
// original_source/slides-rs-core/src/elements/grid.rs's GridEntry.
type GridEntry struct {
	ColumnSpan int
	RowSpan    int
}

// NewGridEntry returns the default 1x1 entry.
func NewGridEntry() GridEntry { return GridEntry{ColumnSpan: 1, RowSpan: 1} }

// Grid is a CSS-grid container (spec §3 Type::Grid), whose children each
// carry a GridEntry describing their placement.
type Grid struct {
	ID        string
	Namespace string
	Columns   []GridCellSize
	Rows      []GridCellSize
	Children  []*Element
	Entries   []GridEntry
	Styling   BaseElementStyling
	Stylings  []StylingReference
}

// NewGrid returns an empty Grid with the given column/row templates.
func NewGrid(columns, rows []GridCellSize) *Grid {
	return &Grid{Columns: columns, Rows: rows}
}

// SetBackground mutates g's background in place.
func (g *Grid) SetBackground(bg Background) { g.Styling.Background = bg }

// AddChild appends child with a fresh default GridEntry and returns a
// pointer to that entry so callers (post-initialisation) can mutate its
// span in place.
func (g *Grid) AddChild(child *Element) *GridEntry {
	g.Children = append(g.Children, child)
	g.Entries = append(g.Entries, NewGridEntry())
	return &g.Entries[len(g.Entries)-1]
}

// Flex is a flexbox container built by stackv/stackh (spec §3 Type::Flex).
type Flex struct {
	ID        string
	Namespace string
	Vertical  bool
	Children  []*Element
	Styling   BaseElementStyling
	Stylings  []StylingReference
}

// NewFlex returns a Flex over children, stacked vertically if vertical.
func NewFlex(children []*Element, vertical bool) *Flex {
	return &Flex{Children: children, Vertical: vertical}
}

// SetBackground mutates f's background in place.
func (f *Flex) SetBackground(bg Background) { f.Styling.Background = bg }

// CustomElement is a module-provided element instance (SPEC_FULL.md
// supplemented features): the host never inspects its fields directly,
// only through the owning module's call_function.
type CustomElement struct {
	ID        string
	ParentID  string
	TypeName  string
	Children  []*Element
	Styling   BaseElementStyling
	Stylings  []StylingReference
	Fields    map[string]string
}

// NewCustomElement returns an empty instance of the module type typeName.
func NewCustomElement(typeName string, children []*Element) *CustomElement {
	return &CustomElement{TypeName: typeName, Children: children, Fields: map[string]string{}}
}

// SetBackground mutates c's background in place.
func (c *CustomElement) SetBackground(bg Background) { c.Styling.Background = bg }

// Slide is one presentation slide (spec §3, §4.5).
type Slide struct {
	ID       string
	Elements []*Element
	Styling  SlideStyling
}

// NewSlide returns an empty slide.
func NewSlide() *Slide { return &Slide{Styling: SlideStyling{}} }

// AddElement appends el to the slide.
func (s *Slide) AddElement(el *Element) { s.Elements = append(s.Elements, el) }

// SetBackground mutates s's background in place.
func (s *Slide) SetBackground(bg Background) { s.Styling.Background = bg }

// Placement is where module-produced or imported text is pasted into the
// emitted output (spec §4.5, §6, grounded on
// original_source/slides-lang/.../module/state.rs's place_text_in_output).
type Placement int

const (
	PlacementUnknown Placement = iota
	PlacementHtmlHead
	PlacementJavascriptInit
	PlacementJavascriptSlideChange
)

// ExternText is one piece of text placed by an import or a module call,
// tagged with the source that produced it (a file path or a module name)
// for diagnostics.
type ExternText struct {
	Source string
	Text   string
}

// StylingDef is a named, registered styling bundle available for
// reference by name once bound (spec §3 StyleReference).
type StylingDef struct {
	Name    string
	Kind    Kind
	Label   LabelStyling
	Image   ImageStyling
	Slide   SlideStyling
}

// Presentation is the finished, in-memory output tree the evaluator
// builds and an out-of-core-scope emitter would consume (spec §1).
// ExternFiles and CopiedFiles are kept distinct (SPEC_FULL.md supplemented
// features, grounded on original_source/slides-rs-core/src/output.rs and
// the module bridge's download_file/add_file_reference): CopiedFiles are
// local paths referenced directly by the source; ExternFiles are paths a
// module downloaded at compile time.
type Presentation struct {
	Slides      []*Slide
	Stylings    []StylingDef
	ExternTexts map[Placement][]ExternText
	CopiedFiles []string
	ExternFiles []string
}

// New returns an empty Presentation.
func New() *Presentation {
	return &Presentation{ExternTexts: make(map[Placement][]ExternText)}
}

// AddSlide appends slide in source order (spec §5: "slides are added to
// the presentation in source order").
func (p *Presentation) AddSlide(slide *Slide) { p.Slides = append(p.Slides, slide) }

// AddStyling registers a named styling bundle and returns a reference to
// it (spec §5: "styling references are assigned names in definition
// order").
func (p *Presentation) AddStyling(def StylingDef) StylingReference {
	p.Stylings = append(p.Stylings, def)
	return StylingReference{Name: def.Name}
}

// AddCopiedFile records a local path referenced directly by the source for
// the emitter to copy alongside the output.
func (p *Presentation) AddCopiedFile(path string) {
	p.CopiedFiles = append(p.CopiedFiles, path)
}

// AddExternFile records a path a module downloaded during compilation.
func (p *Presentation) AddExternFile(path string) {
	p.ExternFiles = append(p.ExternFiles, path)
}

// AddExternText appends text at placement, attributed to source.
func (p *Presentation) AddExternText(placement Placement, source, text string) {
	p.ExternTexts[placement] = append(p.ExternTexts[placement], ExternText{Source: source, Text: text})
}
