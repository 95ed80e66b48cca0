package router

// View identifies which assembly renders a location.
type View uint8

const (
	ViewOverview View = iota
	ViewSelfDrivenDemo
	ViewSelfDrivenCode
	ViewParentDrivenDemo
	ViewParentDrivenCode
	ViewContextDrivenDemo
	ViewContextDrivenCode
)

// String returns the string representation of the View.
func (v View) String() string {
	switch v {
	case ViewOverview:
		return "Overview"
	case ViewSelfDrivenDemo:
		return "Self-driven demo"
	case ViewSelfDrivenCode:
		return "Self-driven explainer"
	case ViewParentDrivenDemo:
		return "Parent-driven demo"
	case ViewParentDrivenCode:
		return "Parent-driven explainer"
	case ViewContextDrivenDemo:
		return "Shared-store demo"
	case ViewContextDrivenCode:
		return "Shared-store explainer"
	default:
		return "Unknown"
	}
}

// IsCode reports whether v is an explainer view.
func (v View) IsCode() bool {
	return v == ViewSelfDrivenCode || v == ViewParentDrivenCode || v == ViewContextDrivenCode
}

// ViewFor returns the view rendered at l. Unknown locations are normalized
// first, so they render the overview.
func ViewFor(l Location) View {
	switch Normalize(string(l)) {
	case SelfDriven:
		return ViewSelfDrivenDemo
	case SelfDrivenCode:
		return ViewSelfDrivenCode
	case ParentDriven:
		return ViewParentDrivenDemo
	case ParentDrivenCode:
		return ViewParentDrivenCode
	case ContextDriven:
		return ViewContextDrivenDemo
	case ContextDrivenCode:
		return ViewContextDrivenCode
	default:
		return ViewOverview
	}
}
