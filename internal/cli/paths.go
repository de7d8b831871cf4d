package cli

import (
	"strings"

	"github.com/Andrejchrcek/Atlas-v2-xmodel/pkg/pipeline"
)

// outputPaths maps artifact keys to file paths derived from a base path.
func outputPaths(base string) map[string]string {
	return map[string]string{
		pipeline.ArtifactModel3D: base + "_3D.xmodel",
		pipeline.ArtifactModel2D: base + "_2D.xmodel",
		pipeline.ArtifactCSV:     base + ".csv",
	}
}

// defaultBase derives a file base path from a fixture name: lowercased, with
// spaces collapsed to underscores and anything else non-alphanumeric dropped.
// "Atlas v2" becomes "atlas_v2".
func defaultBase(name string) string {
	var sb strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
			lastUnderscore = false
		case (r == ' ' || r == '_') && !lastUnderscore && sb.Len() > 0:
			sb.WriteByte('_')
			lastUnderscore = true
		}
	}
	out := strings.TrimSuffix(sb.String(), "_")
	if out == "" {
		return "atlas"
	}
	return out
}
