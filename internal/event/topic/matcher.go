package topic

// Match reports whether a concrete event topic matches a subscription
// pattern. Patterns may use "*" to match exactly one segment and "**" to
// match zero or more trailing or interior segments.
//
// Examples:
//
//	Match("buffer.content.*", "buffer.content.inserted") == true
//	Match("buffer.**", "buffer.content.inserted") == true
//	Match("zoom.in", "zoom.out") == false
func Match(pattern, eventTopic Topic) bool {
	if pattern == eventTopic {
		return true
	}
	return matchSegments(pattern.Segments(), eventTopic.Segments())
}

func matchSegments(pattern, segments []string) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case WildcardMulti:
			// Trailing ** matches everything that remains.
			if len(pattern) == 1 {
				return true
			}
			// Try consuming zero or more segments.
			for i := 0; i <= len(segments); i++ {
				if matchSegments(pattern[1:], segments[i:]) {
					return true
				}
			}
			return false
		case WildcardSingle:
			if len(segments) == 0 {
				return false
			}
		default:
			if len(segments) == 0 || pattern[0] != segments[0] {
				return false
			}
		}
		pattern = pattern[1:]
		segments = segments[1:]
	}
	return len(segments) == 0
}
