package artifacts

import (
	"regexp"

	"setup-project/internal/config"
	"setup-project/internal/logger"
)

// titleRe matches the first title element. The entry point is a fixed, known
// template, so a targeted substitution beats pulling in an HTML parser.
var titleRe = regexp.MustCompile(`(?s)(<title[^>]*>).*?(</title>)`)

// rewriteMarkup replaces the content of the first <title> element with the
// project name. A template without a title element is left unchanged with an
// advisory notice.
func rewriteMarkup(current []byte, p config.Project) ([]byte, error) {
	loc := titleRe.FindSubmatchIndex(current)
	if loc == nil {
		logger.Warn("[WARN] %s has no <title> element, leaving it unchanged\n", MarkupFile)
		return current, nil
	}

	// Splice: everything up to the end of the opening tag, the project name,
	// then from the start of the closing tag onward.
	out := make([]byte, 0, len(current)+len(p.Name))
	out = append(out, current[:loc[3]]...)
	out = append(out, p.Name...)
	out = append(out, current[loc[4]:]...)
	return out, nil
}
