package market

// Page identifies one of the four application pages. Transitions happen
// only through Controller.Navigate, never from a timer or background
// event.
type Page int

const (
	PageHome Page = iota
	PageBrowse
	PageSell
	PageAdmin
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageBrowse:
		return "browse"
	case PageSell:
		return "sell"
	case PageAdmin:
		return "admin"
	default:
		return "unknown"
	}
}
