package scaffold

import (
	"fmt"
	"strings"
	"time"
)

// Documentation skeleton, shared by `stackforge docs` and by presets
// that enable the docs extra. Unlike the code scaffolds these are not
// spec-dependent; only the date is substituted, so they use plain
// string replacement instead of text/template.

const adrReadmeBody = `# Architecture Decision Records

This directory collects Architecture Decision Records (ADRs).

An ADR captures a single architecturally significant decision: its
context, the decision itself, and its consequences. Records are never
edited after acceptance; superseding decisions get a new record that
links back.

Create a new record by copying the latest one, incrementing the number
prefix, and setting the status to "Proposed".
`

const adrFirstBody = `# 1. Record architecture decisions

Date: @DATE@

## Status

Accepted

## Context

We need to record the architectural decisions made on this project so
future contributors understand why things are the way they are.

## Decision

We will use Architecture Decision Records, as described by Michael
Nygard, kept in docs/adr/ and numbered sequentially.

## Consequences

Every architecturally significant decision gets a short record here.
Decisions can be revisited, but only by a new record that supersedes
the old one.
`

const branchingBody = `# Branching strategy

Last updated: @DATE@

## Model

- ` + "`main`" + ` is always deployable. Direct pushes are disabled.
- Work happens on short-lived branches named ` + "`<type>/<summary>`" + `,
  e.g. ` + "`feature/checkout-flow`" + ` or ` + "`fix/login-redirect`" + `.
- Branches merge into ` + "`main`" + ` via pull request with at least one
  approving review and green CI.

## Branch types

| Prefix | Purpose |
|---|---|
| feature/ | New functionality |
| fix/ | Bug fixes |
| chore/ | Tooling, dependencies, cleanup |
| docs/ | Documentation-only changes |

## Releases

Releases are tagged from ` + "`main`" + ` using semantic versioning
(` + "`vMAJOR.MINOR.PATCH`" + `). Hotfixes branch from the release tag and
merge back into ` + "`main`" + `.
`

const onboardingBody = `# Onboarding

Last updated: @DATE@

Welcome aboard. Work through this list top to bottom; most people
finish in under a day.

## Day one

- [ ] Clone the repository and run the setup steps in the README
- [ ] Copy ` + "`.env.example`" + ` to ` + "`.env`" + ` and fill in local credentials
- [ ] Start the stack locally and hit the health endpoint
- [ ] Read ` + "`docs/branching-strategy.md`" + `
- [ ] Skim the accepted records in ` + "`docs/adr/`" + `

## First week

- [ ] Pick up a starter task from the issue tracker
- [ ] Open your first pull request and go through a review cycle
- [ ] Add yourself to the project README if it lists maintainers
`

const codeReviewChecklistBody = `# Code review checklist

- [ ] The change does what the description says, and nothing else
- [ ] New behavior is covered by tests
- [ ] Names and comments match what the code actually does
- [ ] Errors are handled, not swallowed
- [ ] No secrets, credentials, or personal data in the diff
- [ ] Breaking changes are called out and documented
`

const releaseChecklistBody = `# Release checklist

- [ ] CI is green on main
- [ ] Changelog entry written for the new version
- [ ] Version bumped in the package manifest(s)
- [ ] Tag created and pushed (vMAJOR.MINOR.PATCH)
- [ ] Deployment verified on staging before promoting
- [ ] Rollback path confirmed
`

const docsIndexBody = `# Documentation

- [Branching strategy](branching-strategy.md)
- [Onboarding](onboarding.md)
- [Architecture Decision Records](adr/README.md)
- [Checklists](checklists/)
`

// DocsFiles returns the documentation skeleton with date stamps
// substituted. The returned paths are relative to the project root.
func DocsFiles(t time.Time) ([]File, error) {
	if t.IsZero() {
		return nil, fmt.Errorf("scaffold: docs generation requires a valid timestamp")
	}
	date := DateStamp(t)

	stamp := func(body string) []byte {
		return []byte(strings.ReplaceAll(body, "@DATE@", date))
	}

	return []File{
		{Path: "docs/README.md", Content: stamp(docsIndexBody)},
		{Path: "docs/adr/README.md", Content: stamp(adrReadmeBody)},
		{Path: "docs/adr/0001-record-architecture-decisions.md", Content: stamp(adrFirstBody)},
		{Path: "docs/branching-strategy.md", Content: stamp(branchingBody)},
		{Path: "docs/onboarding.md", Content: stamp(onboardingBody)},
		{Path: "docs/checklists/code-review.md", Content: stamp(codeReviewChecklistBody)},
		{Path: "docs/checklists/release.md", Content: stamp(releaseChecklistBody)},
	}, nil
}
