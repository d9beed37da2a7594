package main

// positionToOffset converts a 0-based line/character position into a
// byte offset into content. Positions past the end clamp to the end.
func positionToOffset(content string, pos Position) int {
	offset := 0
	line := 0
	n := len(content)

	for line < pos.Line && offset < n {
		if content[offset] == '\n' {
			line++
		}
		offset++
	}

	for ch := 0; ch < pos.Character && offset < n; ch++ {
		if content[offset] == '\n' {
			break
		}
		offset++
	}

	return offset
}

// offsetToPosition converts a byte offset into a 0-based line/character
// position.
func offsetToPosition(content string, offset int) Position {
	if offset > len(content) {
		offset = len(content)
	}
	line := 0
	lineStart := 0
	for i := 0; i < offset; i++ {
		if content[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return Position{Line: line, Character: offset - lineStart}
}
