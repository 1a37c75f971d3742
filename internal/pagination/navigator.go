package pagination

// Navigator binds a Window to the collaborator that reflects page changes, usually into the
// request URL. Every move is validated before OnPageChanged fires.
type Navigator struct {
	Window        Window
	OnPageChanged func(page int)
}

func (n Navigator) GoTo(requested int) int {
	return n.notify(GoToPage(requested, n.Window))
}

func (n Navigator) Left() int {
	return n.notify(MoveLeft(n.Window))
}

func (n Navigator) Right() int {
	return n.notify(MoveRight(n.Window))
}

// Tokens is ComputePageTokens for the bound window.
func (n Navigator) Tokens() []Token {
	return ComputePageTokens(n.Window)
}

func (n Navigator) notify(page int) int {
	if n.OnPageChanged != nil {
		n.OnPageChanged(page)
	}
	return page
}
