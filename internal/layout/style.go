package layout

import "strings"

// FlexDirection specifies the main axis for laying out children.
type FlexDirection uint8

const (
	Column        FlexDirection = iota // Children laid out top-to-bottom
	ColumnReverse                      // Children laid out bottom-to-top
	Row                                // Children laid out left-to-right
	RowReverse                         // Children laid out right-to-left
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReversed reports whether items run against the axis direction.
func (d FlexDirection) IsReversed() bool {
	return d == RowReverse || d == ColumnReverse
}

// FlexWrap specifies whether items may wrap onto multiple lines.
type FlexWrap uint8

const (
	NoWrap      FlexWrap = iota // All items on a single line
	Wrap                        // Lines stacked along the cross axis
	WrapReverse                 // Lines stacked in reverse cross order
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
	JustifyStretch                     // Grid only: stretch auto tracks
)

// Align specifies how children are positioned on the cross axis.
// AlignAuto is only meaningful for per-item overrides and defers to the
// container.
type Align uint8

const (
	AlignAuto    Align = iota // Use the container's setting
	AlignStart                // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// AlignContent specifies how flex lines share spare cross-axis space.
type AlignContent uint8

const (
	AlignContentStretch AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround
)

// AutoFlow controls how the grid auto-placement cursor advances.
type AutoFlow uint8

const (
	FlowRow AutoFlow = iota
	FlowColumn
	FlowRowDense
	FlowColumnDense
)

// IsColumn reports whether auto-placement fills columns first.
func (f AutoFlow) IsColumn() bool {
	return f == FlowColumn || f == FlowColumnDense
}

// IsDense reports whether auto-placement backfills earlier holes.
func (f AutoFlow) IsDense() bool {
	return f == FlowRowDense || f == FlowColumnDense
}

type enumNames[T comparable] struct {
	parse  map[string]T
	format map[T]string
}

func newEnumNames[T comparable](canonical map[T]string, aliases map[string]T) enumNames[T] {
	e := enumNames[T]{parse: make(map[string]T), format: canonical}
	for v, name := range canonical {
		e.parse[name] = v
	}
	for name, v := range aliases {
		e.parse[name] = v
	}
	return e
}

func (e enumNames[T]) lookup(s string) (T, bool) {
	v, ok := e.parse[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

var (
	flexDirectionNames = newEnumNames(map[FlexDirection]string{
		Column:        "column",
		ColumnReverse: "column-reverse",
		Row:           "row",
		RowReverse:    "row-reverse",
	}, nil)

	flexWrapNames = newEnumNames(map[FlexWrap]string{
		NoWrap:      "nowrap",
		Wrap:        "wrap",
		WrapReverse: "wrap-reverse",
	}, map[string]FlexWrap{"no-wrap": NoWrap})

	justifyNames = newEnumNames(map[Justify]string{
		JustifyStart:        "flex-start",
		JustifyEnd:          "flex-end",
		JustifyCenter:       "center",
		JustifySpaceBetween: "space-between",
		JustifySpaceAround:  "space-around",
		JustifySpaceEvenly:  "space-evenly",
		JustifyStretch:      "stretch",
	}, map[string]Justify{"start": JustifyStart, "end": JustifyEnd, "centre": JustifyCenter})

	alignNames = newEnumNames(map[Align]string{
		AlignAuto:    "auto",
		AlignStart:   "flex-start",
		AlignEnd:     "flex-end",
		AlignCenter:  "center",
		AlignStretch: "stretch",
	}, map[string]Align{"start": AlignStart, "end": AlignEnd, "centre": AlignCenter})

	alignContentNames = newEnumNames(map[AlignContent]string{
		AlignContentStretch:      "stretch",
		AlignContentStart:        "flex-start",
		AlignContentEnd:          "flex-end",
		AlignContentCenter:       "center",
		AlignContentSpaceBetween: "space-between",
		AlignContentSpaceAround:  "space-around",
	}, map[string]AlignContent{"start": AlignContentStart, "end": AlignContentEnd, "centre": AlignContentCenter})

	autoFlowNames = newEnumNames(map[AutoFlow]string{
		FlowRow:         "row",
		FlowColumn:      "column",
		FlowRowDense:    "row dense",
		FlowColumnDense: "column dense",
	}, map[string]AutoFlow{"dense": FlowRowDense, "row-dense": FlowRowDense, "column-dense": FlowColumnDense})
)

// ParseFlexDirection parses a flex-direction keyword.
func ParseFlexDirection(s string) (FlexDirection, bool) { return flexDirectionNames.lookup(s) }

// ParseFlexWrap parses a flex-wrap keyword.
func ParseFlexWrap(s string) (FlexWrap, bool) { return flexWrapNames.lookup(s) }

// ParseJustify parses a justify-content keyword. Both the flex spellings
// ("flex-start") and the grid spellings ("start") are accepted.
func ParseJustify(s string) (Justify, bool) { return justifyNames.lookup(s) }

// ParseAlign parses an align-items, align-self, justify-items or
// justify-self keyword.
func ParseAlign(s string) (Align, bool) { return alignNames.lookup(s) }

// ParseAlignContent parses a flex align-content keyword.
func ParseAlignContent(s string) (AlignContent, bool) { return alignContentNames.lookup(s) }

// ParseAutoFlow parses a grid auto-flow keyword.
func ParseAutoFlow(s string) (AutoFlow, bool) {
	return autoFlowNames.lookup(strings.Join(strings.Fields(s), " "))
}

func (d FlexDirection) String() string { return flexDirectionNames.format[d] }
func (w FlexWrap) String() string      { return flexWrapNames.format[w] }
func (j Justify) String() string       { return justifyNames.format[j] }
func (a Align) String() string         { return alignNames.format[a] }
func (a AlignContent) String() string  { return alignContentNames.format[a] }
func (f AutoFlow) String() string      { return autoFlowNames.format[f] }
