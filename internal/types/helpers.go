package types

import (
	"fmt"
	"strconv"
	"strings"
)

func functionKey(args []TypeId, ret TypeId, minArgumentCount int) string {
	var b strings.Builder
	b.WriteString("fn(")
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(a)))
	}
	b.WriteString(")->")
	b.WriteString(strconv.Itoa(int(ret)))
	b.WriteByte('#')
	b.WriteString(strconv.Itoa(minArgumentCount))
	return b.String()
}

func enumKey(base TypeId, variants []string) string {
	return fmt.Sprintf("enum(%d){%s}", base, strings.Join(variants, ","))
}

func kindName(k Kind) string {
	switch k {
	case KindError:
		return "Error"
	case KindVoid:
		return "Void"
	case KindFloat:
		return "Float"
	case KindInteger:
		return "Integer"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindDynamicDict:
		return "DynamicDict"
	case KindStyling:
		return "Styling"
	case KindBackground:
		return "Background"
	case KindColor:
		return "Color"
	case KindObjectFit:
		return "ObjectFit"
	case KindHAlign:
		return "HAlign"
	case KindVAlign:
		return "VAlign"
	case KindTextAlign:
		return "TextAlign"
	case KindFont:
		return "Font"
	case KindStyleUnit:
		return "StyleUnit"
	case KindSlide:
		return "Slide"
	case KindElement:
		return "Element"
	case KindLabel:
		return "Label"
	case KindGrid:
		return "Grid"
	case KindFlex:
		return "Flex"
	case KindGridEntry:
		return "GridEntry"
	case KindImage:
		return "Image"
	case KindPath:
		return "Path"
	case KindThickness:
		return "Thickness"
	case KindFilter:
		return "Filter"
	case KindTextStyling:
		return "TextStyling"
	case KindAnimation:
		return "Animation"
	case KindPosition:
		return "Position"
	case KindFunction:
		return "Function"
	case KindEnum:
		return "Enum"
	case KindCustomElement:
		return "CustomElement"
	case KindArray:
		return "Array"
	default:
		return "?"
	}
}

// String renders a Kind through its interner-independent kind name; for
// Enum and CustomElement it needs the interner to recover the name, so
// callers wanting full fidelity should use Interner.Describe instead.
func (k Kind) String() string { return kindName(k) }

// Describe renders a human-readable name for id, used in diagnostics such as
// "cannot convert Integer to String" and "unknown member ... of Label".
func (in *Interner) Describe(id TypeId) string {
	t := in.Resolve(id)
	switch t.Kind {
	case KindEnum:
		return "Enum"
	case KindCustomElement:
		return t.Name
	case KindFunction:
		return "Function"
	case KindArray:
		return "[" + in.Describe(t.Elem) + "]"
	default:
		return kindName(t.Kind)
	}
}
