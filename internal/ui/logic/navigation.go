package logic

// Navigator handles cursor movement and viewport management for one list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 20}
}

// UpdateState updates the navigator's view of the list
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
	n.clamp()
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clamp()
	return n.selectedIndex, n.viewportOffset
}

// Move applies a navigation direction and returns the new index and offset
func (n *Navigator) Move(direction string) (int, int) {
	page := n.viewportHeight - 2
	if page < 1 {
		page = 1
	}

	switch direction {
	case "up":
		n.selectedIndex--
	case "down":
		n.selectedIndex++
	case "pageup":
		n.selectedIndex -= page
	case "pagedown":
		n.selectedIndex += page
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = n.totalItems - 1
	}
	n.clamp()
	return n.selectedIndex, n.viewportOffset
}

// clamp keeps the index inside the list and the index inside the viewport
func (n *Navigator) clamp() {
	if n.selectedIndex >= n.totalItems {
		n.selectedIndex = n.totalItems - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}

	height := n.viewportHeight
	if height < 1 {
		height = 1
	}

	// If selected item is above viewport, scroll up
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	// If selected item is below viewport, scroll down
	if n.selectedIndex >= n.viewportOffset+height {
		n.viewportOffset = n.selectedIndex - height + 1
	}

	// Don't leave empty space at the bottom
	maxOffset := n.totalItems - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
