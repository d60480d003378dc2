package revision

import (
	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/git"
)

// checkShallowClone warns when a CI checkout is too shallow for meaningful
// revision dates. It only logs.
func (r *Resolver) checkShallowClone() {
	shallow, err := git.IsShallowClone(r.root)
	if err != nil {
		r.logger.Debug("unable to determine if repository is a shallow clone", "error", err)
		return
	}
	if !shallow {
		return
	}

	counts, err := git.CommitCounts(r.root)
	if err != nil {
		r.logger.Debug("unable to count commits of shallow clone", "error", err)
		return
	}

	depth := effectiveDepth(counts)
	r.logger.Debug("repository is a shallow clone", "depth", depth)

	for _, p := range shallowWarnings(depth, r.opts.providers(), r.getenv) {
		r.logger.Warn("Running on "+p.Name+" might lead to wrong git revision dates due to a shallow git fetch depth. "+
			"Make sure to fetch more history: "+p.Remedy,
			"provider", p.Name, "depth", depth, "default_depth", p.DefaultDepth)
	}
}

// effectiveDepth is the largest reachable commit count over all refs.
func effectiveDepth(counts map[string]int) int {
	depth := 0
	for _, n := range counts {
		if n > depth {
			depth = n
		}
	}
	return depth
}

// shallowWarnings returns the providers that are active according to getenv
// and whose default depth the checkout falls below.
func shallowWarnings(depth int, providers []CIProvider, getenv func(string) string) []CIProvider {
	var out []CIProvider
	for _, p := range providers {
		if p.EnvVar == "" || getenv(p.EnvVar) == "" {
			continue
		}
		if depth < p.DefaultDepth {
			out = append(out, p)
		}
	}
	return out
}
