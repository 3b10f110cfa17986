package templates

// HomePageData feeds the week picker; games and plays load from the API.
type HomePageData struct {
	Weeks []int
}
