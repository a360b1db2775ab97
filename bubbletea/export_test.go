package bubbletea

// BlockSeparator exports blockSeparator for testing.
func BlockSeparator(prev, curr MessageBlock) string {
	return blockSeparator(prev, curr)
}

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// Blocks returns the transcript blocks of m.
func Blocks(m Model) []MessageBlock {
	return m.blocks
}

// BlockFocus returns the index of the focused collapsible block.
func BlockFocus(m Model) int {
	return m.blockFocus
}
