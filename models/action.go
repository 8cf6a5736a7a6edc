package models

import "strings"

// ActionReference is a single `uses:` occurrence found in a workflow file.
type ActionReference struct {
	File       string
	Line       int
	RawText    string // trimmed source line
	Action     string // e.g. "actions/checkout@v4"
	ActionPath string // e.g. "actions/checkout"
	Version    string // e.g. "v4"
}

func NewActionReference(file string, line int, rawText, action string) ActionReference {
	ref := ActionReference{
		File:    file,
		Line:    line,
		RawText: rawText,
		Action:  action,
	}
	if i := strings.LastIndex(action, "@"); i >= 0 {
		ref.ActionPath = action[:i]
		ref.Version = action[i+1:]
	} else {
		ref.ActionPath = action
	}
	return ref
}

// Auditable reports whether the reference has an owner/name@version shape.
func (r ActionReference) Auditable() bool {
	return strings.Contains(r.Action, "@") && strings.Contains(r.ActionPath, "/")
}

func (r ActionReference) Owner() string {
	owner, _, _ := strings.Cut(r.ActionPath, "/")
	return owner
}

func (r ActionReference) Name() string {
	_, rest, found := strings.Cut(r.ActionPath, "/")
	if !found {
		return ""
	}
	name, _, _ := strings.Cut(rest, "/")
	return name
}
